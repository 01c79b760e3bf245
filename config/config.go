package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Store  StoreConfig
	Client ClientConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StoreConfig seeds the in-memory register state at startup.
type StoreConfig struct {
	SiteName       string
	Currency       string
	PaymentMethods []string
	DemoCatalog    bool
}

type ClientConfig struct {
	Addr       string
	OperatorID string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8085"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			SiteName:       getEnv("STORE_SITE_NAME", "EPOS System"),
			Currency:       getEnv("STORE_CURRENCY", "$"),
			PaymentMethods: getEnvSlice("STORE_PAYMENT_METHODS", nil),
			DemoCatalog:    getEnvBool("STORE_SEED_DEMO_CATALOG", false),
		},
		Client: ClientConfig{
			Addr:       getEnv("POS_ADDR", "localhost:8085"),
			OperatorID: getEnv("POS_OPERATOR_ID", ""),
		},
	}
}

// ListenAddr returns the gRPC port as a listen address.
func (c ServerConfig) ListenAddr() string {
	if strings.Contains(c.GRPCPort, ":") {
		return c.GRPCPort
	}
	return ":" + c.GRPCPort
}

func (c ServerConfig) IsDevelopment() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
