package buildcfg

import (
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// ParseValue parses an override value the way a preprocessor conditional
// would read it: any integer literal (non-zero is enabled), optionally with
// u/l suffixes and wrapped in parentheses, or a boolean word. An empty value
// is invalid, as "#if NAME" would be for a macro defined empty.
func ParseValue(s string) (bool, error) {
	v := strings.TrimSpace(s)
	for len(v) >= 2 && v[0] == '(' && v[len(v)-1] == ')' {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	if v == "" {
		return false, errors.Wrapf(ErrInvalidValue, "%q", s)
	}
	if n, err := strconv.ParseInt(trimIntSuffix(v), 0, 64); err == nil {
		return n != 0, nil
	}
	if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
		return b, nil
	}
	return false, errors.Wrapf(ErrInvalidValue, "%q", s)
}

// trimIntSuffix drops C integer suffixes such as U, L, UL and ULL.
func trimIntSuffix(v string) string {
	if v == "" || !strings.ContainsRune("+-0123456789", rune(v[0])) {
		return v
	}
	return strings.TrimRight(v, "uUlL")
}

// ParseDefines reads a compiler-style definition list such as
//
//	-DDEBUG=0 -D WEAK_DEBUG "-DMODERATE_DEBUG=(1)" -UDEBUG
//
// and returns the overrides it describes. Tokens are split with shell
// quoting rules and applied left to right, so a later -D or -U wins. -U marks
// the flag undefined, which also drops overrides of lower layers on Merge.
// A bare -DNAME enables the flag. NAME=VALUE without a dash is accepted too.
// Macro names are matched exactly; other macros and unrelated compiler
// options are ignored.
func ParseDefines(s string) (Overrides, error) {
	var o Overrides

	tokens, err := shlex.Split(s)
	if err != nil {
		return o, errors.Wrap(err, "failed to split defines")
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		var (
			body  string
			undef bool
		)
		switch {
		case strings.HasPrefix(tok, "-D"), strings.HasPrefix(tok, "-U"):
			undef = tok[1] == 'U'
			body = tok[2:]
			if body == "" {
				if i+1 >= len(tokens) {
					return o, errors.Errorf("missing macro name after %s", tok)
				}
				i++
				body = tokens[i]
			}
		case strings.HasPrefix(tok, "-"):
			continue
		case strings.Contains(tok, "="):
			body = tok
		default:
			continue
		}

		name, value, hasValue := strings.Cut(body, "=")
		f, ok := lookupMacro(name)
		if !ok {
			continue
		}

		if undef {
			o.Unset(f)
			continue
		}
		if !hasValue {
			o.Set(f, true)
			continue
		}

		v, err := ParseValue(value)
		if err != nil {
			return o, errors.Wrapf(err, "define %s", f)
		}
		o.Set(f, v)
	}

	return o, nil
}
