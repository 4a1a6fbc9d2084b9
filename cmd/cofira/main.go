package main

import (
	stdLog "log"

	"github.com/Astemirdum/biblioteca-service/cofira/app"
	"github.com/Astemirdum/biblioteca-service/cofira/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using process environment: ", err)
	}
	if err := app.Run(config.NewConfig()); err != nil {
		stdLog.Fatal("cofira ", err)
	}
}
