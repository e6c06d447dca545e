// Package buildcfg holds the build-wide tunables: the UART speed used for
// debug output and the three debug verbosity tiers.
//
// Every tier has a default that applies unless the build supplies an
// override. Overrides come from link-time variables (see build.go), from
// C-style define strings, or from a configuration file; Resolve turns any
// combination of them into a fully defined Settings value.
package buildcfg

import (
	"strings"

	"github.com/pkg/errors"
)

// SerialSpeed is the baud rate of the debug UART.
const SerialSpeed uint32 = 115200

// Flag identifies one debug verbosity tier.
type Flag int

const (
	// Debug gates diagnostics that could have a real impact on execution.
	Debug Flag = iota
	// ModerateDebug gates diagnostics that may have an impact but should still be okay.
	ModerateDebug
	// WeakDebug gates very light diagnostics with no chance to interfere with execution.
	WeakDebug

	numFlags
)

var (
	// ErrUnknownFlag is returned when a name does not match any flag.
	ErrUnknownFlag = errors.New("unknown debug flag")
	// ErrInvalidValue is returned when an override value cannot be parsed.
	ErrInvalidValue = errors.New("invalid debug flag value")
)

var flagNames = [numFlags]string{
	Debug:         "DEBUG",
	ModerateDebug: "MODERATE_DEBUG",
	WeakDebug:     "WEAK_DEBUG",
}

var flagDefaults = [numFlags]bool{
	Debug:         true,
	ModerateDebug: false,
	WeakDebug:     true,
}

// Flags returns all flags in declaration order.
func Flags() []Flag {
	return []Flag{Debug, ModerateDebug, WeakDebug}
}

// String returns the canonical build-definition name of the flag.
func (f Flag) String() string {
	if !f.valid() {
		return "UNKNOWN"
	}
	return flagNames[f]
}

func (f Flag) valid() bool {
	return f >= 0 && f < numFlags
}

// lookupMacro matches a macro name exactly, as the preprocessor does.
func lookupMacro(name string) (Flag, bool) {
	for _, f := range Flags() {
		if flagNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

// ParseFlag looks a flag up by name, ignoring case. Dashes are accepted in
// place of underscores so CLI spellings such as "moderate-debug" work.
// Define strings use the exact macro names instead.
func ParseFlag(name string) (Flag, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for _, f := range Flags() {
		if flagNames[f] == key {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFlag, "%q", name)
}

// Default returns the value a flag takes when nothing overrides it.
func Default(f Flag) bool {
	if !f.valid() {
		return false
	}
	return flagDefaults[f]
}

// Settings is a fully resolved set of debug tiers.
type Settings struct {
	Debug         bool
	ModerateDebug bool
	WeakDebug     bool
}

// Defaults returns the settings used when no override is supplied.
func Defaults() Settings {
	return Resolve(Overrides{})
}

// Get reports whether the tier is enabled.
func (s Settings) Get(f Flag) bool {
	switch f {
	case Debug:
		return s.Debug
	case ModerateDebug:
		return s.ModerateDebug
	case WeakDebug:
		return s.WeakDebug
	}
	return false
}

// Int returns the tier as the 0/1 integer a C consumer would see.
func (s Settings) Int(f Flag) int {
	if s.Get(f) {
		return 1
	}
	return 0
}

func (s *Settings) set(f Flag, v bool) {
	switch f {
	case Debug:
		s.Debug = v
	case ModerateDebug:
		s.ModerateDebug = v
	case WeakDebug:
		s.WeakDebug = v
	}
}
