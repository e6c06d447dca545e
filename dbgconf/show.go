package main

import (
	"fmt"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/itohio/dbgconf/pkg/uart"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type flagReport struct {
	Name       string `yaml:"name"`
	Value      int    `yaml:"value"`
	Default    int    `yaml:"default"`
	Overridden bool   `yaml:"overridden"`
}

type serialReport struct {
	Speed    uint32 `yaml:"speed"`
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

type report struct {
	Serial serialReport `yaml:"serial"`
	Flags  []flagReport `yaml:"flags"`
}

func newReport(s *session) report {
	r := report{
		Serial: serialReport{
			Speed:    buildcfg.SerialSpeed,
			Port:     s.cfg.Serial.Port,
			BaudRate: s.cfg.Serial.BaudRate,
		},
	}
	for _, res := range buildcfg.Explain(s.overrides) {
		r.Flags = append(r.Flags, flagReport{
			Name:       res.Flag.String(),
			Value:      boolInt(res.Value),
			Default:    boolInt(res.Default),
			Overridden: res.Overridden,
		})
	}
	return r
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the resolved serial speed and debug tiers",
		Action: func(c *cli.Context) error {
			s, err := loadSession(c)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(c.App.Writer)
			enc.SetIndent(2)
			if err := enc.Encode(newReport(s)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func portsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ports",
		Usage: "List serial ports",
		Action: func(c *cli.Context) error {
			ports, err := uart.Ports()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Fprintln(c.App.Writer, "no serial ports found")
				return nil
			}
			for _, p := range ports {
				if p.Description != "" && p.Description != p.Name {
					fmt.Fprintf(c.App.Writer, "%s (%s)\n", p.Name, p.Description)
					continue
				}
				fmt.Fprintln(c.App.Writer, p.Name)
			}
			return nil
		},
	}
}
