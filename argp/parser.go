package argp

import (
	"slices"
	"strings"
	"unicode/utf8"

	snapio "github.com/dzonerzy/snapargs/io"
)

// Parser is a registry of flags, options and settings plus the state left
// behind by a parse pass.
//
// Registration happens first through the Add* builder methods (or
// NewFromDecls). Parse then walks the argument vector once, and the accessor
// methods read the result. A Parser is not safe for concurrent use.
type Parser struct {
	params  map[Param]*value
	invalid []Param
	args    []string

	// scratch cells handed out by Flag/Opt for keys that do not resolve
	garbageFlag bool
	garbageOpt  string

	logger *snapio.Logger
}

// New creates an empty parser. capacity is a hint for the total number of
// keys (short and long) that will be registered.
func New(capacity int) *Parser {
	if capacity < 0 {
		capacity = 0
	}
	return &Parser{
		params: make(map[Param]*value, capacity),
	}
}

// SetLogger enables debug tracing of token classification. A nil logger
// disables tracing.
func (p *Parser) SetLogger(logger *snapio.Logger) *Parser {
	p.logger = logger
	return p
}

// AddFlag registers a boolean flag under every alias. One character aliases
// become short keys, longer ones long keys, and empty aliases are skipped.
// All aliases share a single boolean that starts out false.
//
//	ls -l --human-readable
//	   ^  ^
//	   |  `-- long flag
//	   `-- short flag
func (p *Parser) AddFlag(aliases ...string) *Parser {
	cell := new(bool)
	for _, alias := range aliases {
		if alias == "" {
			continue
		}
		p.params[ParseKey(alias)] = newFlagValue(cell)
	}
	return p
}

// AddOpt registers a value-bearing option with an optional short form (the
// first character of short) and an optional long form. The option starts
// empty and not found.
//
//	ls -T 4 --color=always
//	   ^    ^
//	   |    `-- long option with value "always"
//	   `-- short option with value "4"
func (p *Parser) AddOpt(short, long string) *Parser {
	return p.addOpt(short, long, "", false)
}

// AddOptDefault registers an option like AddOpt with an initial value. A
// defaulted option counts as found, so GetOpt returns the default even when
// the option never appears on the command line.
func (p *Parser) AddOptDefault(short, long, def string) *Parser {
	return p.addOpt(short, long, def, true)
}

func (p *Parser) addOpt(short, long, def string, hasDefault bool) *Parser {
	cell := new(string)
	*cell = def
	found := new(bool)
	*found = hasDefault
	if ch, size := utf8.DecodeRuneInString(short); size > 0 {
		p.params[Short(ch)] = newOptValue(KindOpt, cell, found)
	}
	if long != "" {
		p.params[Long(long)] = newOptValue(KindOpt, cell, found)
	}
	return p
}

// AddSetting registers an unprefixed name=value setting, the style used by
// dd (dd if=/path/file). Settings only have a long form.
func (p *Parser) AddSetting(name string) *Parser {
	return p.addSetting(name, "", false)
}

// AddSettingDefault registers a setting with an initial value that is
// visible through GetSetting before any assignment.
func (p *Parser) AddSettingDefault(name, def string) *Parser {
	return p.addSetting(name, def, true)
}

func (p *Parser) addSetting(name, def string, hasDefault bool) *Parser {
	if name == "" {
		return p
	}
	cell := new(string)
	*cell = def
	found := new(bool)
	*found = hasDefault
	p.params[Long(name)] = newOptValue(KindSetting, cell, found)
	return p
}

// Params returns the number of registered keys.
func (p *Parser) Params() int {
	return len(p.params)
}

// KindOf returns the kind registered under key and whether it exists.
func (p *Parser) KindOf(key Param) (Kind, bool) {
	v, ok := p.params[key]
	if !ok {
		return 0, false
	}
	return v.kind, true
}

// Keys returns every registered key, short keys first (by character) and
// then long keys (by name).
func (p *Parser) Keys() []Param {
	keys := make([]Param, 0, len(p.params))
	for k := range p.params {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Param) int {
		switch {
		case a.short && !b.short:
			return -1
		case !a.short && b.short:
			return 1
		case a.short:
			return int(a.ch - b.ch)
		default:
			return strings.Compare(a.name, b.name)
		}
	})
	return keys
}

func (p *Parser) trace(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(format, args...)
	}
}
