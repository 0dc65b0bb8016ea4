package config

import (
	"os"
)

type ServerConfig struct {
	Address string
}

func GetServerConfig() *ServerConfig {
	return &ServerConfig{
		Address: getEnv("STOREFRONT_ADDR", ":8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
