package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the storefront demo configuration, loadable from environment
// variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	Location string `default:"" usage:"Startup pickup location id (empty selects the catalog default)" flag:"location"`
	Voucher  string `default:"CHURRO20" usage:"Voucher code redeemed during the demo checkout" flag:"voucher"`
	Demo     DemoConfig
}

// DemoConfig controls the scripted demo session.
type DemoConfig struct {
	Name  string `default:"Ana"             usage:"Demo sign-in name"`
	Email string `default:"ana@example.com" usage:"Demo sign-in email"`
	Phone string `default:"9876543210"      usage:"Demo checkout phone number"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
