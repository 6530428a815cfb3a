package util

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

func GetEnvironmentString(env map[string]string, name string, fallback string) string {
	if value := strings.TrimSpace(env[name]); value != "" {
		return value
	}

	return fallback
}

func GetEnvironmentInt(env map[string]string, name string, fallback int) (int, error) {
	value := strings.TrimSpace(env[name])
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func GetEnvironmentDuration(env map[string]string, name string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(env[name])
	if value == "" {
		return fallback, nil
	}

	return time.ParseDuration(value)
}
