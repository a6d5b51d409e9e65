package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/darkhz/bluescan/config"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
)

// These values are set at compile-time.
var (
	Version  = ""
	Revision = ""
)

// Run runs the commandline application.
func Run() error {
	return newApp().Run(os.Args)
}

// newApp returns a new commandline application.
func newApp() *cli.App {
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Fprintf(cCtx.App.Writer, "%s (%s)\n", Version, Revision)
	}

	return &cli.App{
		Name:                   "bluescan",
		Usage:                  "Bluetooth device scanner.",
		Version:                Version + " (" + Revision + ")",
		Description:            "Discover nearby Bluetooth devices for 30 seconds and print a report.",
		Copyright:              "(c) bluescan authors.",
		Compiled:               time.Now(),
		UseShortOptionHandling: true,
		Suggest:                true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "adapter",
				Aliases: []string{"a"},
				Usage:   "Specify an adapter to scan with. (For example, hci0)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"f"},
				Usage:   "Specify a configuration file to load.",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"n"},
				Usage:   "Do not colorize the output.",
			},
			&cli.BoolFlag{
				Name:    "no-progress",
				Aliases: []string{"p"},
				Usage:   "Do not display a progress bar while scanning.",
			},
		},
		Action: func(cliCtx *cli.Context) error {
			// required for koanf to merge all global flags under the root namespace.
			cliCtx.Command.Name = "global"

			k, cfg := koanf.New("."), config.NewConfig()
			if err := cfg.Load(k, cliCtx); err != nil {
				return err
			}
			if err := cfg.ValidateValues(); err != nil {
				return err
			}

			return scan(cliCtx.App.Writer, cfg)
		},
		ExitErrHandler: func(_ *cli.Context, err error) {
			if err == nil {
				return
			}

			printError(err)
		},
	}
}
