package main

import (
	stdLog "log"

	"github.com/Astemirdum/biblioteca-service/stats/app"
	"github.com/Astemirdum/biblioteca-service/stats/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using process environment: ", err)
	}
	if err := app.Run(config.NewConfig()); err != nil {
		stdLog.Fatal("stats ", err)
	}
}
