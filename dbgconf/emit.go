package main

import (
	"io"
	"strings"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/itohio/dbgconf/pkg/dbglog"
	"github.com/itohio/dbgconf/pkg/uart"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func emitCommand() *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Usage:     "Send a message through the tier-gated debug logger",
		ArgsUsage: "MESSAGE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tier",
				Value: buildcfg.WeakDebug.String(),
				Usage: "Tier of the message (DEBUG, MODERATE_DEBUG, WEAK_DEBUG)",
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Serial port override (e.g., COM3 or /dev/ttyACM0)",
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "Write to stdout instead of the serial port",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("message is required")
			}

			tier, err := buildcfg.ParseFlag(c.String("tier"))
			if err != nil {
				return err
			}

			s, err := loadSession(c)
			if err != nil {
				return err
			}

			var out io.Writer = c.App.Writer
			if !c.Bool("stdout") {
				port := s.cfg.Serial.Port
				if c.IsSet("port") {
					port = c.String("port")
				}
				link, err := uart.Open(port, s.cfg.Serial.BaudRate)
				if err != nil {
					return err
				}
				defer link.Close()
				out = link
			}

			written := emit(s, out, tier, strings.Join(c.Args().Slice(), " "))
			if !written {
				log.WithField("tier", tier.String()).Info("tier disabled, message dropped")
			}
			return nil
		},
	}
}

func emit(s *session, out io.Writer, tier buildcfg.Flag, msg string) bool {
	l := dbglog.New(s.settings,
		dbglog.WithOutput(out),
		dbglog.WithFormat(s.cfg.Log.Format),
		dbglog.WithTimestamps(s.cfg.Log.Timestamps),
	)
	return l.Log(tier, msg)
}
