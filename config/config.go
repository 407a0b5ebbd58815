package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/pagebound/bookclub-service/pkg/kafka"
	"github.com/pagebound/bookclub-service/pkg/logger"
	"github.com/pagebound/bookclub-service/pkg/postgres"
	"github.com/pagebound/bookclub-service/pkg/server"
)

// Pages holds the listing window sizes.
type Pages struct {
	Applications int `envconfig:"APPLICATIONS_PER_PAGE" default:"10"`
	Users        int `envconfig:"USERS_PER_PAGE" default:"10"`
	Clubs        int `envconfig:"CLUBS_PER_PAGE" default:"10"`
}

type Config struct {
	Server   server.Config   `yaml:"server"`
	Database postgres.Config `yaml:"database"`
	Kafka    kafka.Config
	Pages    Pages
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}
