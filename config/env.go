package config

import "os"

// GetEnv reads an environment variable, returning "" when unset.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault reads an environment variable with a fallback value.
func GetEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
