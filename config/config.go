package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"library-catalog/pkg/kafka"
	"library-catalog/pkg/logger"
	"library-catalog/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s"`
}

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

type Store struct {
	Backend string `envconfig:"STORE_BACKEND" default:"postgres"`
}

type Engine struct {
	// AtomicOps wraps multi-step operations in one store transaction.
	AtomicOps bool `envconfig:"ATOMIC_OPS" default:"false"`
	// RatingBlocksDelete makes ratings block book/user removal like
	// borrows do.
	RatingBlocksDelete bool `envconfig:"RATING_BLOCKS_DELETE" default:"false"`
}

type Config struct {
	Server   HTTPServer
	Store    Store
	Engine   Engine
	Database postgres.Config
	Kafka    kafka.Config
	Log      logger.Log
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

type Option func(*Config)

func WithLogLevel(lvl zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = lvl
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
