package dbglog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(buf *bytes.Buffer) []string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestLogger_DefaultTiers(t *testing.T) {
	var buf bytes.Buffer
	l := New(buildcfg.Defaults(), WithOutput(&buf), WithTimestamps(false))

	l.Debugf("heavy %d", 1)
	l.Moderatef("moderate %d", 2)
	l.Weakf("weak %d", 3)

	got := lines(&buf)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "heavy 1")
	assert.Contains(t, got[0], "tier=DEBUG")
	assert.Contains(t, got[1], "weak 3")
	assert.Contains(t, got[1], "tier=WEAK_DEBUG")
	assert.NotContains(t, buf.String(), "moderate")
}

func TestLogger_TiersAreIndependent(t *testing.T) {
	tests := []struct {
		name     string
		settings buildcfg.Settings
		want     []string
	}{
		{
			name:     "all off",
			settings: buildcfg.Settings{},
			want:     nil,
		},
		{
			name:     "moderate only",
			settings: buildcfg.Settings{ModerateDebug: true},
			want:     []string{"moderate"},
		},
		{
			name:     "debug without lighter tiers",
			settings: buildcfg.Settings{Debug: true},
			want:     []string{"heavy"},
		},
		{
			name:     "all on",
			settings: buildcfg.Settings{Debug: true, ModerateDebug: true, WeakDebug: true},
			want:     []string{"heavy", "moderate", "weak"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.settings, WithOutput(&buf), WithTimestamps(false))

			l.Debugf("heavy")
			l.Moderatef("moderate")
			l.Weakf("weak")

			got := lines(&buf)
			require.Len(t, got, len(tt.want))
			for i, msg := range tt.want {
				assert.Contains(t, got[i], "msg="+msg)
			}
		})
	}
}

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := New(buildcfg.Settings{WeakDebug: true}, WithOutput(&buf))

	assert.True(t, l.Log(buildcfg.WeakDebug, "ping"))
	assert.False(t, l.Log(buildcfg.Debug, "pong"))
	assert.False(t, l.Log(buildcfg.Flag(5), "nothing"))

	got := lines(&buf)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "msg=ping")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(buildcfg.Settings{Debug: true},
		WithOutput(&buf),
		WithFormat(FormatJSON),
		WithTimestamps(false),
		WithComponent("test"),
	)

	l.Debugf("value=%v", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "value=42", entry["msg"])
	assert.Equal(t, "DEBUG", entry["tier"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "debug", entry["level"])
	assert.NotContains(t, entry, "time")
}

func TestLogger_Enabled(t *testing.T) {
	s := buildcfg.Settings{Debug: false, ModerateDebug: true, WeakDebug: false}
	l := New(s)

	assert.Equal(t, s, l.Settings())
	assert.False(t, l.Enabled(buildcfg.Debug))
	assert.True(t, l.Enabled(buildcfg.ModerateDebug))
	assert.False(t, l.Enabled(buildcfg.WeakDebug))
}

type countingStringer struct{ calls *int }

func (c countingStringer) String() string {
	*c.calls++
	return "counted"
}

func TestLogger_DisabledTierSkipsFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := New(buildcfg.Settings{WeakDebug: true}, WithOutput(&buf), WithTimestamps(false))

	calls := 0
	l.Moderatef("%v", countingStringer{&calls})
	assert.Equal(t, 0, calls)
	assert.Empty(t, buf.String())

	l.Weakf("%v", countingStringer{&calls})
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "msg=counted")
}
