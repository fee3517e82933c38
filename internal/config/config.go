package config

import (
	"os"

	"github.com/annel0/antgrid/internal/logging"
	"github.com/annel0/antgrid/internal/world"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	Sim       SimConfig       `yaml:"sim"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
}

type SimConfig struct {
	RegistryBackend  string `yaml:"registry_backend"`
	RegistryCapacity int    `yaml:"registry_capacity"`
	MapCapacity      int    `yaml:"map_capacity"`
	ProgressEvery    uint64 `yaml:"progress_every"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			RegistryBackend:  string(world.BackendHash),
			RegistryCapacity: world.DefaultRegistryCapacity,
			MapCapacity:      world.DefaultMapCapacity,
		},
		Telemetry: TelemetryConfig{ServiceName: "antgrid"},
		Log:       LogConfig{Level: "info"},
	}
}

// Backend возвращает выбранный backend реестра
func (s *SimConfig) Backend() world.Backend {
	return world.Backend(s.RegistryBackend)
}

// GetAddr возвращает адрес /metrics: config -> env -> пусто (выключено)
func (m *MetricsConfig) GetAddr() string {
	return getWithEnvFallback(m.Addr, "ANTGRID_METRICS_ADDR", "")
}

// LogLevel разбирает уровень логирования
func (l *LogConfig) LogLevel() (logging.LogLevel, error) {
	return logging.ParseLevel(l.Level)
}

// getWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getWithEnvFallback(configValue, envVar, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultValue
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	switch c.Sim.Backend() {
	case world.BackendHash, world.BackendOrdered:
	default:
		return errors.WithHint(
			errors.Newf("sim.registry_backend: unsupported value %q", c.Sim.RegistryBackend),
			"use hash or ordered",
		)
	}
	if c.Sim.RegistryCapacity < 0 || c.Sim.MapCapacity < 0 {
		return errors.New("sim: capacities must not be negative")
	}
	if _, err := c.Log.LogLevel(); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать путь из ENV ANTGRID_CONFIG;
// если и он не задан, возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("ANTGRID_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
