package argp

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Parse walks the full process argument vector once. args[0] is the program
// name and is always skipped. Parse never fails: unknown parameters are
// collected for FoundInvalid and everything that is not a parameter ends up
// in Args.
func (p *Parser) Parse(args []string) {
	p.ParseSeq(slices.Values(args))
}

// ParseSeq is Parse over an arbitrary token sequence. The sequence is read
// through a single cursor, so a short option that takes its value from the
// following token consumes that token for good.
func (p *Parser) ParseSeq(seq iter.Seq[string]) {
	next, stop := iter.Pull(seq)
	defer stop()

	// program name
	if _, ok := next(); !ok {
		return
	}

	for {
		arg, ok := next()
		if !ok {
			return
		}

		switch {
		case arg == "--":
			// everything after the stop marker is positional, verbatim
			for rest, more := next(); more; rest, more = next() {
				p.args = append(p.args, rest)
			}
			p.trace("stop marker, %d positional args", len(p.args))
			return
		case strings.HasPrefix(arg, "--"):
			p.parseLong(arg[2:])
		case strings.HasPrefix(arg, "-") && arg != "-":
			p.parseShort(arg[1:], next)
		case strings.Contains(arg, "="):
			p.parseSetting(arg)
		default:
			p.args = append(p.args, arg)
		}
	}
}

// parseLong handles --name and --name=value. Only options accept a value;
// a bare --name marks an option as used without touching its value.
func (p *Parser) parseLong(arg string) {
	if name, rhs, hasValue := strings.Cut(arg, "="); hasValue {
		v, ok := p.params[Long(name)]
		if !ok || v.kind != KindOpt {
			p.addInvalid(Long(name))
			return
		}
		v.assign(rhs)
		p.trace("option --%s=%q (count %d)", name, rhs, v.occurrences)
		return
	}

	v, ok := p.params[Long(arg)]
	if !ok {
		p.addInvalid(Long(arg))
		return
	}
	switch v.kind {
	case KindFlag:
		*v.flag = true
		v.occurrences++
		p.trace("flag --%s (count %d)", arg, v.occurrences)
	case KindOpt:
		v.occurrences++
		*v.found = true
		p.trace("option --%s without value (count %d)", arg, v.occurrences)
	case KindSetting:
		p.addInvalid(Long(arg))
	}
}

// parseShort handles a cluster such as -abc or -s4. Flags keep the scan
// going, an option ends it by taking the rest of the cluster (or, when
// nothing is left, the next token) as its value.
func (p *Parser) parseShort(cluster string, next func() (string, bool)) {
	for i, ch := range cluster {
		v, ok := p.params[Short(ch)]
		if !ok || v.kind == KindSetting {
			p.addInvalid(Short(ch))
			continue
		}

		if v.kind == KindFlag {
			*v.flag = true
			v.occurrences++
			p.trace("flag -%c (count %d)", ch, v.occurrences)
			continue
		}

		_, size := utf8.DecodeRuneInString(cluster[i:])
		rest := cluster[i+size:]
		if rest == "" {
			// a missing trailing value is an empty value, not an error
			rest, _ = next()
		}
		*v.str = rest
		*v.found = true
		p.trace("option -%c=%q", ch, rest)
		return
	}
}

// parseSetting handles an unprefixed name=value token.
func (p *Parser) parseSetting(arg string) {
	name, rhs, _ := strings.Cut(arg, "=")
	v, ok := p.params[Long(name)]
	if !ok || v.kind != KindSetting {
		p.addInvalid(Long(name))
		return
	}
	v.assign(rhs)
	p.trace("setting %s=%q (count %d)", name, rhs, v.occurrences)
}

func (p *Parser) addInvalid(key Param) {
	p.invalid = append(p.invalid, key)
	p.trace("invalid parameter %s", key)
}
