package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gostorefront_api/config/values"
)

type StorefrontConfig struct {
	Values values.StorefrontValues `yaml:"default_values"`
	Promos values.PromoTable       `yaml:"promo_codes"`
}

type AppConfig struct {
	Address    string           `yaml:"address"`
	Storefront StorefrontConfig `yaml:"storefront"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig is used when no config file is provided.
func DefaultConfig() *AppConfig {
	config := &AppConfig{}
	config.applyDefaults()
	return config
}

func (c *AppConfig) applyDefaults() {
	if c.Address == "" {
		c.Address = GetServerConfig().Address
	}
	if c.Storefront.Values.SuggestLatencyMs == 0 {
		c.Storefront.Values.SuggestLatencyMs = 300
	}
	if c.Storefront.Values.LowStockThreshold == 0 {
		c.Storefront.Values.LowStockThreshold = 10
	}
	if c.Storefront.Values.Currency == "" {
		c.Storefront.Values.Currency = "kr"
	}
	if len(c.Storefront.Promos.Codes) == 0 {
		c.Storefront.Promos = values.DefaultPromoTable()
	}
}

// validate rejects promo rates outside [0, 1); a rate of 1 or more would
// zero out or invert grand totals.
func (c *AppConfig) validate() error {
	for code, rate := range c.Storefront.Promos.Codes {
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("promo code %s: rate %v must be in [0, 1)", code, rate)
		}
	}
	return nil
}
