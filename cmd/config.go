package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-uefi-guid/pkg/app"
)

// EnvPrefix prefixes environment overrides, e.g. UEFI_GUID_LOWERCASE=true
const EnvPrefix = "UEFI_GUID"

// Config holds the resolved render and output settings
type Config struct {
	Lowercase bool   `mapstructure:"lowercase"`
	Standard  bool   `mapstructure:"standard"`
	Output    string `mapstructure:"output"`
	Verbose   bool   `mapstructure:"verbose"`
	Quiet     bool   `mapstructure:"quiet"`
}

var configKeys = []string{"lowercase", "standard", "output", "verbose", "quiet"}

// LoadConfig merges command flags with UEFI_GUID_* environment variables.
// Flags set on the command line take precedence. No config file is read.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("lowercase", false)
	v.SetDefault("standard", false)
	v.SetDefault("output", app.OutputText)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)

	// Allow environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, key := range configKeys {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
