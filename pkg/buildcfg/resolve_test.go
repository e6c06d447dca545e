package buildcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NoOverrides(t *testing.T) {
	s := Resolve(Overrides{})

	assert.Equal(t, Settings{Debug: true, ModerateDebug: false, WeakDebug: true}, s)
}

func TestResolve_OverrideWins(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
		want Settings
	}{
		{
			name: "DEBUG off",
			o:    Overrides{Debug: Bool(false)},
			want: Settings{Debug: false, ModerateDebug: false, WeakDebug: true},
		},
		{
			name: "MODERATE_DEBUG on",
			o:    Overrides{ModerateDebug: Bool(true)},
			want: Settings{Debug: true, ModerateDebug: true, WeakDebug: true},
		},
		{
			name: "WEAK_DEBUG off",
			o:    Overrides{WeakDebug: Bool(false)},
			want: Settings{Debug: true, ModerateDebug: false, WeakDebug: false},
		},
		{
			name: "override equal to default",
			o:    Overrides{Debug: Bool(true)},
			want: Settings{Debug: true, ModerateDebug: false, WeakDebug: true},
		},
		{
			name: "all inverted",
			o:    Overrides{Debug: Bool(false), ModerateDebug: Bool(true), WeakDebug: Bool(false)},
			want: Settings{Debug: false, ModerateDebug: true, WeakDebug: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.o))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	o := Overrides{ModerateDebug: Bool(true)}

	first := Resolve(o)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(o))
	}

	// Resolving must not touch the overrides.
	v, ok := o.Lookup(ModerateDebug)
	assert.True(t, ok)
	assert.True(t, v)
	_, ok = o.Lookup(Debug)
	assert.False(t, ok)
}

func TestOverrides_SetUnset(t *testing.T) {
	var o Overrides
	assert.True(t, o.Empty())

	o.Set(WeakDebug, false)
	assert.False(t, o.Empty())
	v, ok := o.Lookup(WeakDebug)
	assert.True(t, ok)
	assert.False(t, v)

	o.Unset(WeakDebug)
	assert.True(t, o.Empty())

	// Out of range flags are ignored.
	o.Set(Flag(9), true)
	assert.True(t, o.Empty())
}

func TestOverrides_Merge(t *testing.T) {
	base := Overrides{Debug: Bool(false), WeakDebug: Bool(false)}
	top := Overrides{Debug: Bool(true), ModerateDebug: Bool(true)}

	got := base.Merge(top)

	assert.Equal(t, Settings{Debug: true, ModerateDebug: true, WeakDebug: false}, Resolve(got))
	// base is left alone
	assert.False(t, *base.Debug)
	assert.Nil(t, base.ModerateDebug)
}

func TestExplain(t *testing.T) {
	got := Explain(Overrides{Debug: Bool(false)})

	assert.Equal(t, []Resolution{
		{Flag: Debug, Value: false, Default: true, Overridden: true},
		{Flag: ModerateDebug, Value: false, Default: false, Overridden: false},
		{Flag: WeakDebug, Value: true, Default: true, Overridden: false},
	}, got)
}

func TestOverrides_MergeUndefine(t *testing.T) {
	base := Overrides{Debug: Bool(false), ModerateDebug: Bool(true)}
	var top Overrides
	top.Unset(Debug)

	got := base.Merge(top)

	_, ok := got.Lookup(Debug)
	assert.False(t, ok)
	assert.True(t, got.Undefined(Debug))
	assert.Equal(t, Settings{Debug: true, ModerateDebug: true, WeakDebug: true}, Resolve(got))

	// The undefine keeps propagating through further layers.
	got = Overrides{Debug: Bool(false)}.Merge(got)
	_, ok = got.Lookup(Debug)
	assert.False(t, ok)

	// A value in a higher layer wins over an undefine below it.
	got = got.Merge(Overrides{Debug: Bool(false)})
	v, ok := got.Lookup(Debug)
	assert.True(t, ok)
	assert.False(t, v)
	assert.False(t, got.Undefined(Debug))
}
