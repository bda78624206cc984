package argp

import "unicode/utf8"

// Param identifies a parameter by one of its spellings: a short form such
// as -v or a long form such as --verbose. A logical parameter registered
// under both forms owns two distinct Params that point at the same storage.
type Param struct {
	short bool
	ch    rune
	name  string
}

// Short returns the key for a single character parameter (-c).
func Short(ch rune) Param {
	return Param{short: true, ch: ch}
}

// Long returns the key for a named parameter (--name) or a setting (name=).
func Long(name string) Param {
	return Param{name: name}
}

// ParseKey maps an alias string to a key: one character is a short key,
// anything longer is a long key. The empty string yields a long key that
// is never registered.
func ParseKey(alias string) Param {
	if ch, size := utf8.DecodeRuneInString(alias); size > 0 && size == len(alias) {
		return Short(ch)
	}
	return Long(alias)
}

// IsShort reports whether p is the short form.
func (p Param) IsShort() bool { return p.short }

// Rune returns the character of a short key, or 0 for a long key.
func (p Param) Rune() rune { return p.ch }

// Name returns the name of a long key, or "" for a short key.
func (p Param) Name() string { return p.name }

// String renders the key the way it is typed on the command line.
func (p Param) String() string {
	if p.short {
		return "-" + string(p.ch)
	}
	return "--" + p.name
}
