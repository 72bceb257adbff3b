package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

// Environment variables that override the configuration file.
const (
	EnvLogLevel   = "TMPLTIME_LOG_LEVEL"
	EnvLogFormat  = "TMPLTIME_LOG_FORMAT"
	EnvNamedZones = "TMPLTIME_NAMED_ZONES"
	EnvLocales    = "TMPLTIME_LOCALES"
)

// envFiles are loaded highest precedence first: godotenv never overwrites a variable that is
// already set, so the process environment beats .env.local, which beats .env.
var envFiles = []string{".env.local", ".env"}

func loadEnvFiles() {
	for _, path := range envFiles {
		_ = godotenv.Load(path)
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Logging.Level = LogLevel(v)
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.Logging.Format = LogFormat(v)
	}
	for _, o := range []struct {
		env    string
		target **bool
	}{
		{EnvNamedZones, &cfg.Capabilities.NamedZones},
		{EnvLocales, &cfg.Capabilities.Locales},
	} {
		raw, ok := os.LookupEnv(o.env)
		if !ok {
			continue
		}
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return ferrors.ConfigError(fmt.Sprintf("invalid boolean in %s", o.env)).WithCause(err).WithContext("value", raw).Build()
		}
		*o.target = &enabled
	}
	return nil
}
