package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Parse struct {
		// MinConfidence is the threshold below which batch results are
		// flagged for manual review instead of auto-apply.
		MinConfidence float64 `mapstructure:"min_confidence" yaml:"min_confidence"`
	} `mapstructure:"parse" yaml:"parse"`

	Vendors struct {
		// Names overrides the built-in package-id → display-name table.
		Names map[string]string `mapstructure:"names" yaml:"names"`
	} `mapstructure:"vendors" yaml:"vendors"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then NOTIF_-prefixed environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.notif-parse")
	v.AddConfigPath(".notif-parse")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NOTIF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars on a broken config file.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("parse.min_confidence", 0.6)
}

// defaultVendorNames is the built-in package-id → display-name table.
var defaultVendorNames = map[string]string{
	"com.nu.production":      "Nubank",
	"com.itau":               "Itaú",
	"com.itau.iti":           "iti Itaú",
	"com.bradesco":           "Bradesco",
	"com.picpay":             "PicPay",
	"com.mercadopago.wallet": "Mercado Pago",
	"com.mercadolibre":       "Mercado Livre",
	"br.com.intermedium":     "Banco Inter",
}

// VendorName resolves a package identifier to its display name, preferring
// configured overrides, then the built-in table, then the identifier itself.
func (c *Config) VendorName(packageID string) string {
	if c != nil {
		if name, ok := c.Vendors.Names[packageID]; ok {
			return name
		}
	}
	if name, ok := defaultVendorNames[packageID]; ok {
		return name
	}
	return packageID
}

// LoadVendorNames reads a standalone YAML vendor-name table
// (package-id → display name) and merges it into the configuration.
func (c *Config) LoadVendorNames(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return fmt.Errorf("error reading vendor names file: %w", err)
	}

	names := make(map[string]string)
	if err := yaml.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("error parsing vendor names file: %w", err)
	}

	if c.Vendors.Names == nil {
		c.Vendors.Names = make(map[string]string, len(names))
	}
	for pkg, name := range names {
		c.Vendors.Names[pkg] = name
	}
	return nil
}
