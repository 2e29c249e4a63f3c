package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Generator GeneratorConfig `yaml:"generator"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig selects the storage backend. The default is an in-memory
// SQLite database; postgres exists for multi-instance deployments.
type DatabaseConfig struct {
	Backend  string `yaml:"backend"` // sqlite | postgres
	Path     string `yaml:"path"`    // sqlite file, empty = in-memory
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type GeneratorConfig struct {
	Strategy string `yaml:"strategy"` // progression | shuffle
	Seed     int64  `yaml:"seed"`     // shuffle strategy seed, 0 = time-based
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns the connection string for the configured backend.
func (d DatabaseConfig) DSN() string {
	if d.Backend != "postgres" {
		return d.Path
	}
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix CALIQ_ and underscore-separated paths:
//
//	CALIQ_SERVER_HOST, CALIQ_SERVER_PORT,
//	CALIQ_DB_BACKEND, CALIQ_DB_PATH,
//	CALIQ_DB_HOST, CALIQ_DB_PORT, CALIQ_DB_NAME,
//	CALIQ_DB_USER, CALIQ_DB_PASSWORD, CALIQ_DB_SSLMODE,
//	CALIQ_GENERATOR_STRATEGY
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CALIQ_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("CALIQ_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("CALIQ_DB_BACKEND"); v != "" {
		cfg.Database.Backend = v
	}
	if v := os.Getenv("CALIQ_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("CALIQ_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("CALIQ_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("CALIQ_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("CALIQ_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("CALIQ_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("CALIQ_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("CALIQ_GENERATOR_STRATEGY"); v != "" {
		cfg.Generator.Strategy = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Database.Backend {
	case "", "sqlite":
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required for postgres")
		}
		if c.Database.Port == 0 {
			return fmt.Errorf("database.port is required for postgres")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required for postgres")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required for postgres")
		}
	default:
		return fmt.Errorf("database.backend must be sqlite or postgres, got %q", c.Database.Backend)
	}
	switch c.Generator.Strategy {
	case "", "progression", "shuffle":
	default:
		return fmt.Errorf("generator.strategy must be progression or shuffle, got %q", c.Generator.Strategy)
	}
	return nil
}
