package argp

// Kind is the declared type of a parameter.
type Kind uint8

const (
	// KindFlag is a boolean parameter toggled by presence (-v, --verbose).
	KindFlag Kind = iota + 1
	// KindOpt is a value-bearing parameter (-s 4, -s4, --size=4).
	KindOpt
	// KindSetting is an unprefixed name=value parameter, as used by dd.
	KindSetting
)

// String returns the name used in declaration files.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOpt:
		return "option"
	case KindSetting:
		return "setting"
	default:
		return "unknown"
	}
}

// value is the per-alias descriptor stored in the registry.
//
// The pointed-to cells (flag, str, found) are shared by every alias of the
// same logical parameter. occurrences belongs to this alias alone, so -v and
// --verbose are counted separately while both observe the same boolean.
type value struct {
	kind        Kind
	flag        *bool
	str         *string
	found       *bool
	occurrences int
}

func newFlagValue(cell *bool) *value {
	return &value{kind: KindFlag, flag: cell}
}

func newOptValue(kind Kind, cell *string, found *bool) *value {
	return &value{kind: kind, str: cell, found: found}
}

// assign stores an explicit name=value assignment. A first assignment over an
// empty cell restarts the count at one instead of inheriting a stale count.
func (v *value) assign(s string) {
	if *v.str == "" {
		v.occurrences = 1
	} else {
		v.occurrences++
	}
	*v.str = s
	*v.found = true
}

// isFound reports the read-side visibility of the parameter.
func (v *value) isFound() bool {
	switch v.kind {
	case KindFlag:
		return *v.flag
	case KindOpt, KindSetting:
		return *v.found
	default:
		return false
	}
}
