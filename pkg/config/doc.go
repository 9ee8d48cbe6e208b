// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which loads an optional .env file once
// per process, and github.com/caarlos0/env/v11, which parses the environment
// into structs annotated with `env` and `envDefault` tags. Each configuration
// type is parsed once and cached; Reset clears the cache for tests.
package config
