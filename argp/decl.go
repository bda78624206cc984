package argp

import "unicode/utf8"

// Decl declares one logical parameter, as an alternative to the builder
// methods. Aliases follow AddFlag's rule: one character is a short form,
// anything longer a long form. An option takes at most one of each and a
// setting exactly one name.
type Decl struct {
	Kind    Kind
	Aliases []string
	// Default is the initial value of an option or setting; nil means none.
	Default *string
}

// NewFromDecls builds a parser from a declaration list. Registration order
// follows the list, so a later declaration of the same key wins.
func NewFromDecls(decls []Decl) (*Parser, error) {
	p := New(len(decls) * 2)
	for i, d := range decls {
		if err := p.declare(i, d); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Parser) declare(i int, d Decl) error {
	aliases := make([]string, 0, len(d.Aliases))
	for _, alias := range d.Aliases {
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}
	if len(aliases) == 0 {
		return &DeclError{Index: i, Message: d.Kind.String() + " has no aliases"}
	}

	switch d.Kind {
	case KindFlag:
		if d.Default != nil {
			return &DeclError{Index: i, Message: "flag cannot have a default"}
		}
		p.AddFlag(aliases...)

	case KindOpt:
		var short, long string
		for _, alias := range aliases {
			if utf8.RuneCountInString(alias) == 1 {
				if short != "" {
					return &DeclError{Index: i, Message: "option has more than one short alias"}
				}
				short = alias
				continue
			}
			if long != "" {
				return &DeclError{Index: i, Message: "option has more than one long alias"}
			}
			long = alias
		}
		if d.Default != nil {
			p.AddOptDefault(short, long, *d.Default)
		} else {
			p.AddOpt(short, long)
		}

	case KindSetting:
		if len(aliases) != 1 {
			return &DeclError{Index: i, Message: "setting takes exactly one name"}
		}
		if d.Default != nil {
			p.AddSettingDefault(aliases[0], *d.Default)
		} else {
			p.AddSetting(aliases[0])
		}

	default:
		return &DeclError{Index: i, Message: "unknown parameter kind"}
	}
	return nil
}

// ParseKind maps a declaration file kind name to a Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "flag":
		return KindFlag, true
	case "option", "opt":
		return KindOpt, true
	case "setting":
		return KindSetting, true
	default:
		return 0, false
	}
}
