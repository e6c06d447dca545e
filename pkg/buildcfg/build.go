package buildcfg

import (
	"sync"

	"github.com/pkg/errors"
)

// Link-time overrides, set with
//
//	go build -ldflags "-X github.com/itohio/dbgconf/pkg/buildcfg.debugFlag=0"
//
// Empty means not supplied. The per-flag variables win over defines.
var (
	defines           string
	debugFlag         string
	moderateDebugFlag string
	weakDebugFlag     string
)

var current struct {
	once     sync.Once
	settings Settings
}

// BuildOverrides returns the overrides this binary was linked with.
func BuildOverrides() (Overrides, error) {
	return buildOverrides(defines, [numFlags]string{
		Debug:         debugFlag,
		ModerateDebug: moderateDebugFlag,
		WeakDebug:     weakDebugFlag,
	})
}

func buildOverrides(defs string, vars [numFlags]string) (Overrides, error) {
	o, err := ParseDefines(defs)
	if err != nil {
		return Overrides{}, errors.Wrap(err, "link-time defines")
	}

	for _, f := range Flags() {
		if vars[f] == "" {
			continue
		}
		v, err := ParseValue(vars[f])
		if err != nil {
			return Overrides{}, errors.Wrapf(err, "link-time %s", f)
		}
		o.Set(f, v)
	}

	return o, nil
}

// Current returns the settings of this build. They are resolved once, on
// first use, and never change afterwards. A binary linked with an
// unparseable override panics here, as its C counterpart would have failed
// to compile.
func Current() Settings {
	current.once.Do(func() {
		o, err := BuildOverrides()
		if err != nil {
			panic(err)
		}
		current.settings = Resolve(o)
	})
	return current.settings
}
