package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable wait and retry tunables.
// These values can be customized via environment variables.
type Timeouts struct {
	ConfigSignal         time.Duration // Total wait for the workload-manager config signal
	ConfigSignalInterval time.Duration // Poll interval for the config signal
	Registration         time.Duration // Total wait for cluster node registration
	RegistrationInterval time.Duration // Poll interval for node registration
	AddressMaxAttempts   int           // Attempts for self-address discovery
	AddressInitialDelay  time.Duration // Initial backoff for self-address discovery
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - NODEUP_TIMEOUT_CONFIG_SIGNAL (default: 60s)
//   - NODEUP_INTERVAL_CONFIG_SIGNAL (default: 5s)
//   - NODEUP_TIMEOUT_REGISTRATION (default: 120s)
//   - NODEUP_INTERVAL_REGISTRATION (default: 5s)
//   - NODEUP_ADDRESS_MAX_ATTEMPTS (default: 7)
//   - NODEUP_ADDRESS_INITIAL_DELAY (default: 5s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		ConfigSignal:         parseDuration("NODEUP_TIMEOUT_CONFIG_SIGNAL", 60*time.Second),
		ConfigSignalInterval: parseDuration("NODEUP_INTERVAL_CONFIG_SIGNAL", 5*time.Second),
		Registration:         parseDuration("NODEUP_TIMEOUT_REGISTRATION", 120*time.Second),
		RegistrationInterval: parseDuration("NODEUP_INTERVAL_REGISTRATION", 5*time.Second),
		AddressMaxAttempts:   parseInt("NODEUP_ADDRESS_MAX_ATTEMPTS", 7),
		AddressInitialDelay:  parseDuration("NODEUP_ADDRESS_INITIAL_DELAY", 5*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
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

	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return n
}
