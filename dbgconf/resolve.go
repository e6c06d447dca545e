package main

import (
	"strings"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/itohio/dbgconf/pkg/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// session is the configuration a command runs with.
type session struct {
	cfg       *config.Config
	overrides buildcfg.Overrides
	settings  buildcfg.Settings
}

func flagOption(f buildcfg.Flag) string {
	return strings.ToLower(strings.ReplaceAll(f.String(), "_", "-"))
}

func loadSession(c *cli.Context) (*session, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	build, err := buildcfg.BuildOverrides()
	if err != nil {
		return nil, err
	}

	opts := make(map[buildcfg.Flag]string)
	for _, f := range buildcfg.Flags() {
		if name := flagOption(f); c.IsSet(name) {
			opts[f] = c.String(name)
		}
	}

	o, err := layer(build, cfg.Debug, c.String("defines"), opts)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:       cfg,
		overrides: o,
		settings:  buildcfg.Resolve(o),
	}, nil
}

// layer stacks override sources, lowest precedence first: link-time, config
// file, --defines, per-flag options.
func layer(build buildcfg.Overrides, file config.DebugConfig, defines string, opts map[buildcfg.Flag]string) (buildcfg.Overrides, error) {
	fromFile, err := file.Overrides()
	if err != nil {
		return buildcfg.Overrides{}, err
	}

	fromDefines, err := buildcfg.ParseDefines(defines)
	if err != nil {
		return buildcfg.Overrides{}, errors.Wrap(err, "--defines")
	}

	var fromOpts buildcfg.Overrides
	for f, s := range opts {
		v, err := buildcfg.ParseValue(s)
		if err != nil {
			return buildcfg.Overrides{}, errors.Wrapf(err, "--%s", flagOption(f))
		}
		fromOpts.Set(f, v)
	}

	return build.Merge(fromFile).Merge(fromDefines).Merge(fromOpts), nil
}
