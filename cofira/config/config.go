package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/logger"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"COFIRA_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"COFIRA_HTTP_PORT" default:"8070"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"30s"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Auth     auth.Config `yaml:"auth"`
	Log      logger.Log  `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

func NewConfig() *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})
	return cfg
}
