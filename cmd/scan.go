package cmd

import (
	"io"

	"github.com/darkhz/bluescan/bluez"
	"github.com/darkhz/bluescan/config"
	"github.com/fatih/color"
)

// openSession opens a Bluez session on the system bus.
var openSession = bluez.Open

// scan opens a Bluez session, performs a single scan and prints its report.
// Only a failure to connect to the system bus is returned as an error.
func scan(w io.Writer, cfg *config.Config) error {
	if cfg.Values.NoColor {
		color.NoColor = true
	}

	session, err := openSession(bluez.Options{
		Adapter: cfg.Values.Adapter,
		Waiter:  waiter(cfg.Values.NoProgress),
		Status: func(message string) {
			printStatus(w, message)
		},
		Warn: printWarn,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	records, err := session.Scan(config.ScanDuration)
	if err != nil {
		if bluez.IsScanAborted(err) {
			printError(err)
			return nil
		}

		return err
	}

	printReport(w, records)

	return nil
}
