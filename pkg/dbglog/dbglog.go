// Package dbglog provides a logger whose output is gated by the debug tiers
// of the build. Each tier is checked on its own; enabling DEBUG does not
// imply MODERATE_DEBUG or WEAK_DEBUG.
package dbglog

import (
	"fmt"
	"io"
	"os"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/sirupsen/logrus"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger writes diagnostic messages for the enabled tiers.
type Logger struct {
	settings buildcfg.Settings
	logger   *logrus.Logger
	entry    *logrus.Entry
}

type options struct {
	out        io.Writer
	format     string
	timestamps bool
	component  string
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sets the destination of log lines, stderr by default.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithFormat selects "text" or "json" output.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithTimestamps toggles timestamps on each line.
func WithTimestamps(on bool) Option {
	return func(o *options) { o.timestamps = on }
}

// WithComponent adds a component field to every line.
func WithComponent(name string) Option {
	return func(o *options) { o.component = name }
}

// New creates a logger for the given settings.
func New(s buildcfg.Settings, opts ...Option) *Logger {
	o := options{
		out:        os.Stderr,
		format:     FormatText,
		timestamps: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	l := logrus.New()
	l.SetOutput(o.out)
	// Tier gating happens here, so logrus lets everything through.
	l.SetLevel(logrus.DebugLevel)

	switch o.format {
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: !o.timestamps,
		})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableTimestamp: !o.timestamps,
			DisableColors:    true,
		})
	}

	entry := logrus.NewEntry(l)
	if o.component != "" {
		entry = entry.WithField("component", o.component)
	}

	return &Logger{
		settings: s,
		logger:   l,
		entry:    entry,
	}
}

// Settings returns the tiers this logger was created with.
func (l *Logger) Settings() buildcfg.Settings {
	return l.settings
}

// Enabled reports whether messages of tier f are written.
func (l *Logger) Enabled(f buildcfg.Flag) bool {
	return l.settings.Get(f)
}

// Log writes msg at tier f if that tier is enabled. It reports whether the
// message was written.
func (l *Logger) Log(f buildcfg.Flag, msg string) bool {
	if !l.Enabled(f) {
		return false
	}
	l.write(f, msg)
	return true
}

// Debugf logs diagnostics that could have a real impact on execution.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(buildcfg.Debug, format, args...)
}

// Moderatef logs diagnostics that may have an impact but should still be okay.
func (l *Logger) Moderatef(format string, args ...any) {
	l.logf(buildcfg.ModerateDebug, format, args...)
}

// Weakf logs very light diagnostics.
func (l *Logger) Weakf(format string, args ...any) {
	l.logf(buildcfg.WeakDebug, format, args...)
}

func (l *Logger) logf(f buildcfg.Flag, format string, args ...any) {
	if !l.Enabled(f) {
		return
	}
	l.write(f, fmt.Sprintf(format, args...))
}

func (l *Logger) write(f buildcfg.Flag, msg string) {
	l.entry.WithField("tier", f.String()).Log(level(f), msg)
}

// level maps a tier to the logrus level its lines carry.
func level(f buildcfg.Flag) logrus.Level {
	switch f {
	case buildcfg.Debug:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}
