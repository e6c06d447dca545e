package buildcfg

// Overrides carries an optional value per flag. A nil entry means the build
// did not supply that flag. A flag can also be explicitly undefined, which
// drops overrides from lower layers when merged.
type Overrides struct {
	Debug         *bool
	ModerateDebug *bool
	WeakDebug     *bool

	undef [numFlags]bool
}

// Resolution explains how a single flag was resolved.
type Resolution struct {
	Flag       Flag
	Value      bool
	Default    bool
	Overridden bool
}

// Bool returns a pointer to v, for building Overrides literals.
func Bool(v bool) *bool {
	return &v
}

func (o *Overrides) slot(f Flag) **bool {
	switch f {
	case Debug:
		return &o.Debug
	case ModerateDebug:
		return &o.ModerateDebug
	case WeakDebug:
		return &o.WeakDebug
	}
	return nil
}

// Lookup returns the override for f and whether one was supplied.
func (o Overrides) Lookup(f Flag) (bool, bool) {
	p := o.slot(f)
	if p == nil || *p == nil {
		return false, false
	}
	return **p, true
}

// Set supplies an override for f.
func (o *Overrides) Set(f Flag, v bool) {
	if p := o.slot(f); p != nil {
		*p = Bool(v)
		o.undef[f] = false
	}
}

// Unset removes the override for f so its default applies again. The flag
// stays marked undefined, so merging o on top of other overrides removes
// theirs too.
func (o *Overrides) Unset(f Flag) {
	if p := o.slot(f); p != nil {
		*p = nil
		o.undef[f] = true
	}
}

// Undefined reports whether f was explicitly undefined.
func (o Overrides) Undefined(f Flag) bool {
	return f.valid() && o.undef[f]
}

// Empty reports whether no flag is overridden.
func (o Overrides) Empty() bool {
	return o.Debug == nil && o.ModerateDebug == nil && o.WeakDebug == nil
}

// Merge returns o with other applied on top: values supplied by other win,
// and flags other undefines lose their override.
func (o Overrides) Merge(other Overrides) Overrides {
	out := o
	for _, f := range Flags() {
		if v, ok := other.Lookup(f); ok {
			out.Set(f, v)
		} else if other.Undefined(f) {
			out.Unset(f)
		}
	}
	return out
}

// Resolve returns the supplied override for each flag, or its default when
// there is none. It never fails and always yields a value for every flag.
func Resolve(o Overrides) Settings {
	var s Settings
	for _, f := range Flags() {
		v, ok := o.Lookup(f)
		if !ok {
			v = Default(f)
		}
		s.set(f, v)
	}
	return s
}

// Explain resolves o like Resolve and reports the decision for every flag.
func Explain(o Overrides) []Resolution {
	out := make([]Resolution, 0, numFlags)
	for _, f := range Flags() {
		v, ok := o.Lookup(f)
		if !ok {
			v = Default(f)
		}
		out = append(out, Resolution{
			Flag:       f,
			Value:      v,
			Default:    Default(f),
			Overridden: ok,
		})
	}
	return out
}
