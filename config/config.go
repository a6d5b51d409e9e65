package config

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/hjson"
	"github.com/knadh/koanf/providers/cliflagv2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
)

// ScanDuration is the duration of a single scan.
const ScanDuration = 30 * time.Second

// Config describes the configuration for the app.
type Config struct {
	Values Values
}

// NewConfig returns a new configuration.
func NewConfig() *Config {
	return &Config{}
}

// Load loads the configuration from the optional configuration file
// and the command-line flags. Flags take precedence over the file.
func (c *Config) Load(k *koanf.Koanf, cliCtx *cli.Context) error {
	if err := c.loadFile(k, cliCtx.String("config")); err != nil {
		return err
	}

	if err := k.Load(cliflagv2.Provider(cliCtx, "."), nil); err != nil {
		return err
	}

	return c.unmarshal(k)
}

// ValidateValues validates the configuration values.
func (c *Config) ValidateValues() error {
	return c.Values.validateValues()
}

// loadFile loads the hjson configuration file at path, if one is specified.
func (c *Config) loadFile(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}

	if err := k.Load(file.Provider(path), hjson.Parser()); err != nil {
		return fmt.Errorf("%s: the configuration could not be loaded: %w", path, err)
	}

	return nil
}

// unmarshal stores the loaded configuration into the configuration values.
func (c *Config) unmarshal(k *koanf.Koanf) error {
	return k.UnmarshalWithConf("", &c.Values, koanf.UnmarshalConf{Tag: "koanf"})
}
