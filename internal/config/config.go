package config

import (
	"fmt"
	"strings"

	"github.com/ecommlabs/gocatalog/pkg/config"
	"github.com/ecommlabs/gocatalog/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Database config.DatabaseConfig `koanf:"database"`
	Log      config.LogConfig      `koanf:"log"`
	Seed     config.SeedConfig     `koanf:"seed"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Database Configuration ---\n")
	b.WriteString(fmt.Sprintf("  database.url: %s\n", config.MaskURL(c.Database.URL)))
	b.WriteString(fmt.Sprintf("  database.connect.timeout: %s\n", c.Database.Timeout))

	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  seed.count: %d\n", c.Seed.Count))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Seed.Validate(); err != nil {
		return err
	}
	return nil
}
