package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/cache"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/logger"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BIBLIOTECA_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BIBLIOTECA_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Storage struct {
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

type Scheduler struct {
	PurgeSpec string `envconfig:"REVOKED_PURGE_SPEC" default:"@every 1h"`
}

type Config struct {
	Server         HTTPServer             `yaml:"server"`
	Database       postgres.DB            `yaml:"db"`
	Kafka          kafka.Config           `yaml:"kafka"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	Redis          cache.Config           `yaml:"redis"`
	Auth           auth.Config            `yaml:"auth"`
	Storage        Storage                `yaml:"storage"`
	Scheduler      Scheduler              `yaml:"scheduler"`
	Log            logger.Log             `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
