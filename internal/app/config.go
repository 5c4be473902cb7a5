package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/yungbote/recipegraph-backend/internal/observability"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
)

const configPathEnv = "CONFIG_PATH"

type ServerConfig struct {
	Port                   int      `koanf:"port" validate:"gt=0,lte=65535"`
	ShutdownTimeoutSeconds int      `koanf:"shutdown_timeout_seconds" validate:"gte=0"`
	CORSOrigins            []string `koanf:"cors_origins"`
}

type LogConfig struct {
	Mode string `koanf:"mode" validate:"oneof=development dev production prod"`
}

type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

type PaginationConfig struct {
	DefaultLimit int `koanf:"default_limit" validate:"gte=1,ltefield=MaxLimit"`
	MaxLimit     int `koanf:"max_limit" validate:"gte=1"`
}

type Config struct {
	Server     ServerConfig             `koanf:"server"`
	Log        LogConfig                `koanf:"log"`
	Neo4j      neo4jdb.Config           `koanf:"neo4j"`
	Metrics    MetricsConfig            `koanf:"metrics"`
	OTel       observability.OtelConfig `koanf:"otel"`
	Pagination PaginationConfig         `koanf:"pagination"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:                   8080,
			ShutdownTimeoutSeconds: 10,
		},
		Log: LogConfig{Mode: "development"},
		Neo4j: neo4jdb.Config{
			URI:            "neo4j://localhost:7687",
			User:           "neo4j",
			TimeoutSeconds: 10,
			MaxPoolSize:    50,
		},
		Metrics: MetricsConfig{Enabled: true},
		OTel: observability.OtelConfig{
			ServiceName: "recipegraph",
			Environment: "development",
			SampleRatio: 1,
			Insecure:    true,
		},
		Pagination: PaginationConfig{DefaultLimit: 10, MaxLimit: 50},
	}
}

// envKeys maps flat environment variables onto config paths. Anything not
// listed is ignored, so unrelated process env never leaks into the config.
var envKeys = map[string]string{
	"PORT":                        "server.port",
	"SHUTDOWN_TIMEOUT_SECONDS":    "server.shutdown_timeout_seconds",
	"CORS_ORIGINS":                "server.cors_origins",
	"LOG_MODE":                    "log.mode",
	"NEO4J_URI":                   "neo4j.uri",
	"NEO4J_USER":                  "neo4j.user",
	"NEO4J_PASSWORD":              "neo4j.password",
	"NEO4J_DATABASE":              "neo4j.database",
	"NEO4J_TIMEOUT_SECONDS":       "neo4j.timeout_seconds",
	"NEO4J_MAX_POOL_SIZE":         "neo4j.max_pool_size",
	"NEO4J_BREAKER_TIMEOUT":       "neo4j.breaker.timeout",
	"NEO4J_BREAKER_RATIO":         "neo4j.breaker.failure_ratio",
	"METRICS_ENABLED":             "metrics.enabled",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENVIRONMENT":            "otel.environment",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SAMPLE_RATIO":           "otel.sample_ratio",
	"PAGINATION_DEFAULT_LIMIT":    "pagination.default_limit",
	"PAGINATION_MAX_LIMIT":        "pagination.max_limit",
}

var sliceKeys = []string{"server.cors_origins"}

// LoadConfig layers struct defaults, the optional YAML file named by
// CONFIG_PATH and the environment, in that order, then validates the result.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv(configPathEnv))
}

// LoadConfigFile is LoadConfig with an explicit file in place of CONFIG_PATH.
func LoadConfigFile(path string) (Config, error) {
	return loadConfig(path)
}

func loadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if path = strings.TrimSpace(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	if err := splitSlices(k); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func envKey(key string) string {
	return envKeys[strings.ToUpper(key)]
}

// splitSlices turns comma-separated env values into lists. Lists from YAML are
// left alone.
func splitSlices(k *koanf.Koanf) error {
	for _, path := range sliceKeys {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		var out []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}
