// Package logger holds the process-wide sugared zap logger for the khata
// service.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

// EnvVar selects the logging profile. Anything other than "production"
// gets the human-readable console encoder.
const EnvVar = "KHATA_ENV"

const envProduction = "production"

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger for the given environment: JSON encoding in
// production, console encoding everywhere else. Subsequent calls are no-ops.
func Init(env string) {
	once.Do(func() {
		base, err := newBase(env)
		if err != nil {
			base = zap.NewNop()
		}
		sugar = base.Named("khata").Sugar()
	})
}

func newBase(env string) (*zap.Logger, error) {
	if env == envProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Get returns the global sugared logger, initializing it from KHATA_ENV when
// Init has not run yet.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init(os.Getenv(EnvVar))
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
