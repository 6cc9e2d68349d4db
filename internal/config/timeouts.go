package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable poll timing values.
// These values can be customized via environment variables.
type Timeouts struct {
	PollInterval time.Duration // Delay between observations of a transitional state
	PollTimeout  time.Duration // Ceiling for one poll loop; zero polls until the target state
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - LIVEPIPE_POLL_INTERVAL (default: 2s)
//   - LIVEPIPE_POLL_TIMEOUT (default: 0, no ceiling)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		PollInterval: parseDuration("LIVEPIPE_POLL_INTERVAL", 2*time.Second),
		PollTimeout:  parseDuration("LIVEPIPE_POLL_TIMEOUT", 0),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set, fails to parse or is negative, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
