package argp

// The string-keyed accessors resolve their key with lookup: a one character
// key means the short form when one is registered, otherwise the long form
// of that name. The *Param variants take the exact key.

func (p *Parser) lookup(key string) Param {
	param := ParseKey(key)
	if param.IsShort() {
		if _, ok := p.params[param]; !ok {
			return Long(key)
		}
	}
	return param
}

// Count returns how many times this exact spelling of a flag or option was
// used. Settings and unknown keys report 0.
func (p *Parser) Count(key string) int { return p.CountParam(p.lookup(key)) }

// CountParam is Count for an exact key.
func (p *Parser) CountParam(key Param) int {
	v, ok := p.params[key]
	if !ok || v.kind == KindSetting {
		return 0
	}
	return v.occurrences
}

// Found reports whether a flag is set, or whether an option or setting holds
// a value (assigned on the command line or defaulted).
func (p *Parser) Found(key string) bool { return p.FoundParam(p.lookup(key)) }

// FoundParam is Found for an exact key.
func (p *Parser) FoundParam(key Param) bool {
	v, ok := p.params[key]
	return ok && v.isFound()
}

// Flag returns a pointer to the boolean shared by every alias of the flag,
// for reading or overriding its state. Keys that are not flags get a private
// scratch cell, so a typo can never clobber another parameter.
func (p *Parser) Flag(key string) *bool { return p.FlagParam(p.lookup(key)) }

// FlagParam is Flag for an exact key.
func (p *Parser) FlagParam(key Param) *bool {
	if v, ok := p.params[key]; ok && v.kind == KindFlag {
		return v.flag
	}
	return &p.garbageFlag
}

// Opt returns a pointer to the value shared by every alias of the option.
// Keys that are not options get a private scratch cell.
func (p *Parser) Opt(key string) *string { return p.OptParam(p.lookup(key)) }

// OptParam is Opt for an exact key.
func (p *Parser) OptParam(key Param) *string {
	if v, ok := p.params[key]; ok && v.kind == KindOpt {
		return v.str
	}
	return &p.garbageOpt
}

// GetOpt returns the value of an option if it has been set or defaulted.
func (p *Parser) GetOpt(key string) (string, bool) { return p.GetOptParam(p.lookup(key)) }

// GetOptParam is GetOpt for an exact key.
func (p *Parser) GetOptParam(key Param) (string, bool) {
	return p.getValue(key, KindOpt)
}

// GetSetting returns the value of a setting if it has been set or defaulted.
func (p *Parser) GetSetting(name string) (string, bool) {
	return p.getValue(Long(name), KindSetting)
}

func (p *Parser) getValue(key Param, kind Kind) (string, bool) {
	v, ok := p.params[key]
	if !ok || v.kind != kind || !*v.found {
		return "", false
	}
	return *v.str, true
}

// Args returns the positional arguments in their original order, including
// everything after a lone "--".
func (p *Parser) Args() []string {
	return p.args
}
