package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `envconfig:"LOG_LEVEL" default:"info"`
	Sink     string        `envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	c.DisableStacktrace = true
	if cfg.Sink != "" {
		c.OutputPaths = []string{cfg.Sink}
	}
	l, err := c.Build()
	if err != nil {
		log.Fatal("logger build ", err)
	}
	return l.Named(name)
}

// Op tags every line of one logical operation and adds a success level on
// top of zap's info/warn/error.
type Op struct {
	*zap.Logger
}

func NewOp(l *zap.Logger, tag string) Op {
	return Op{l.Named(tag)}
}

func (o Op) Success(msg string, fields ...zap.Field) {
	o.Info(msg, append(fields, zap.String("status", "success"))...)
}
