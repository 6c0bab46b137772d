// Package logger owns the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var (
	mu  sync.RWMutex
	log = New(Config{}, os.Stdout)
)

// New builds a logger. An unknown level falls back to info; any format other
// than "json" is rendered as text.
func New(cfg Config, out io.Writer) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stdout
	}
	l.SetOutput(out)
	return l
}

// Init replaces the global logger. LOG_LEVEL and LOG_FORMAT override cfg.
func Init(cfg Config) *logrus.Logger {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.Level = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		cfg.Format = v
	}
	l := New(cfg, os.Stdout)
	Set(l)
	return l
}

func Set(l *logrus.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	log = l
	mu.Unlock()
}

// L returns the global logger.
func L() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}
