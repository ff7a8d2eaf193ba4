package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	APITimeout    time.Duration `yaml:"timeout"`
	StorageDriver string        `yaml:"storage_driver"`
	DatabasePath  string        `yaml:"database_path"`
	SeedFixtures  bool          `yaml:"seed_fixtures"`
}

// LoadConfig builds a Config from defaults and environment variables, then
// overlays values from an optional YAML file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("ROOFTY_ADDR", ":8080"),
		APITimeout:    15 * time.Second,
		StorageDriver: getEnv("ROOFTY_STORAGE_DRIVER", DriverMemory),
		DatabasePath:  getEnv("ROOFTY_DATABASE_PATH", "roofty.db"),
		SeedFixtures:  true,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	switch c.StorageDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.APITimeout <= 0 {
		c.APITimeout = 15 * time.Second
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
