package config

import (
	"fmt"
	"regexp"

	"github.com/darkhz/bluescan/bluez"
)

// adapterName matches Bluez adapter names, for example "hci0".
var adapterName = regexp.MustCompile(`^hci[0-9]+$`)

// Values describes the possible configuration values that a user can
// modify and supply to the application.
type Values struct {
	Adapter    string `koanf:"adapter"`
	NoColor    bool   `koanf:"no-color"`
	NoProgress bool   `koanf:"no-progress"`
}

// validateValues validates all configuration values.
func (v *Values) validateValues() error {
	for _, validate := range []func() error{
		v.validateAdapter,
	} {
		if err := validate(); err != nil {
			return err
		}
	}

	return nil
}

// validateAdapter validates the name of the adapter to scan with.
// If no adapter is specified, the default adapter is selected.
func (v *Values) validateAdapter() error {
	if v.Adapter == "" {
		v.Adapter = bluez.DefaultAdapter
		return nil
	}

	if !adapterName.MatchString(v.Adapter) {
		return fmt.Errorf("%s: invalid adapter name (for example, hci0)", v.Adapter)
	}

	return nil
}
