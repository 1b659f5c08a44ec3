package config

import "os"

type Config struct {
	Env            string
	Port           string
	DataFile       string
	SessionSecret  string
	SessionBackend string // memory | redis
	RedisAddr      string
	Origin         string // CORS
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		Env:            env("APP_ENV", "dev"),
		Port:           env("API_PORT", "8080"),
		DataFile:       env("DATA_FILE", "data/tickets.json"),
		SessionSecret:  env("SESSION_SECRET", "dev-insecure-secret"),
		SessionBackend: env("SESSION_BACKEND", "memory"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		Origin:         env("CORS_ORIGIN", "http://localhost:3000"),
	}
}
