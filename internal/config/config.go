// Package config resolves library settings from the environment. The
// library has no CLI surface, so environment variables are the only
// configuration channel; every variable is prefixed with FIBMOD_ and every
// setting has a working default.
package config

import (
	"os"
	"strings"
)

// EnvPrefix is prepended to every environment variable the library reads.
const EnvPrefix = "FIBMOD_"

// DefaultBackend is the arbitrary-precision backend used when none is
// configured. It is always registered.
const DefaultBackend = "matrix"

// Settings holds the environment-resolved library configuration.
type Settings struct {
	// Backend selects the arbitrary-precision calculator backend:
	// "matrix" (default) or "gmp" when built with the gmp tag.
	// Env: FIBMOD_BACKEND.
	Backend string

	// LogLevel, when non-empty, is applied as the global zerolog level.
	// An empty value leaves the host application's level untouched.
	// Env: FIBMOD_LOG_LEVEL.
	LogLevel string

	// Debug forces the log level to debug, overriding LogLevel.
	// Env: FIBMOD_DEBUG.
	Debug bool
}

// FromEnv reads the library settings from the environment.
func FromEnv() Settings {
	return Settings{
		Backend:  getEnvString("BACKEND", DefaultBackend),
		LogLevel: getEnvString("LOG_LEVEL", ""),
		Debug:    getEnvBool("DEBUG", false),
	}
}

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as bool, or the default value if not
// set. Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}
