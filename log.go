package ecs

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logMu  sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
)

// SetLogger replaces the package-wide logger used for recoverable warnings
// and fatal terminations. The default logs to stdout.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

func currentLogger() *zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return &logger
}
