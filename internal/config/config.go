package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

// DefaultShippingFee is the flat fee charged on every cart, in đồng.
const DefaultShippingFee = 30000

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// SeedPath points at a YAML seed file; empty means the built-in sample data.
	SeedPath string
	// ShippingFee overrides the fee from the seed when set.
	ShippingFee *decimal.Decimal
	// LogFile receives the JSON logs; empty disables logging.
	LogFile  string
	LogLevel string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		SeedPath: getEnv("STOREFRONT_SEED_PATH", ""),
		LogFile:  getEnv("STOREFRONT_LOG_FILE", "storefront.log"),
		LogLevel: getEnv("STOREFRONT_LOG_LEVEL", "info"),
	}

	if fee := os.Getenv("STOREFRONT_SHIPPING_FEE"); fee != "" {
		if err := cfg.SetShippingFee(fee); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetShippingFee parses a fee given as a plain number.
func (c *Config) SetShippingFee(raw string) error {
	fee, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: shipping fee %q: %v", ErrInvalidConfig, raw, err)
	}
	c.ShippingFee = &fee
	return nil
}

func (c *Config) Validate() error {
	if c.ShippingFee != nil && c.ShippingFee.IsNegative() {
		return fmt.Errorf("%w: shipping fee must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
