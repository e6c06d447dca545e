package main

import (
	"os"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("component", "dbgconf")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.WithError(err).Fatal("dbgconf failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dbgconf",
		Usage: "Inspect debug tier settings and send tiered debug output over a UART",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "Configuration file path (.yaml or .toml)",
			},
			&cli.StringFlag{
				Name:  "defines",
				Usage: `Compiler-style overrides, e.g. "-DDEBUG=0 -DWEAK_DEBUG"`,
			},
			&cli.StringFlag{
				Name:  flagOption(buildcfg.Debug),
				Usage: "Override DEBUG (0/1/true/false)",
			},
			&cli.StringFlag{
				Name:  flagOption(buildcfg.ModerateDebug),
				Usage: "Override MODERATE_DEBUG (0/1/true/false)",
			},
			&cli.StringFlag{
				Name:  flagOption(buildcfg.WeakDebug),
				Usage: "Override WEAK_DEBUG (0/1/true/false)",
			},
		},
		Commands: []*cli.Command{
			showCommand(),
			portsCommand(),
			emitCommand(),
		},
	}
}
