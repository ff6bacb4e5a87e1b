package config

import "fmt"

// SeedConfig controls the default size of generated demo data.
type SeedConfig struct {
	Count int `koanf:"count"`
}

func (c *SeedConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("seed count must not be negative: %d", c.Count)
	}
	return nil
}
