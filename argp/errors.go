package argp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dzonerzy/snapargs/internal/fuzzy"
)

// ErrorType represents error categories produced by this package.
// These categories drive exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeInvalidParameter ErrorType = "invalid_parameter"
	ErrorTypeInvalidDecl      ErrorType = "invalid_declaration"
)

// suggestDistance is the maximum edit distance for Suggest.
const suggestDistance = 2

// InvalidParamsError reports every parameter that was referenced on the
// command line but is not registered, in order of appearance.
type InvalidParamsError struct {
	Params []Param
}

// Type returns ErrorTypeInvalidParameter.
func (e *InvalidParamsError) Type() ErrorType { return ErrorTypeInvalidParameter }

// Error renders the summary line, for example
//
//	Invalid parameters '-z' and '--bogus'
//
// including the trailing newline.
func (e *InvalidParamsError) Error() string {
	var b strings.Builder
	if len(e.Params) == 1 {
		b.WriteString("Invalid parameter")
	} else {
		b.WriteString("Invalid parameters")
	}
	for i, param := range e.Params {
		if i > 0 {
			b.WriteString(" and")
		}
		b.WriteString(" '")
		b.WriteString(param.String())
		b.WriteByte('\'')
	}
	b.WriteByte('\n')
	return b.String()
}

// DeclError is returned by NewFromDecls for a malformed declaration.
type DeclError struct {
	Index   int
	Message string
}

// Type returns ErrorTypeInvalidDecl.
func (e *DeclError) Type() ErrorType { return ErrorTypeInvalidDecl }

func (e *DeclError) Error() string {
	return fmt.Sprintf("declaration %d: %s", e.Index, e.Message)
}

// FoundInvalid returns nil when every parameter on the command line was
// recognized, and an *InvalidParamsError listing the rest otherwise.
func (p *Parser) FoundInvalid() error {
	if len(p.invalid) == 0 {
		return nil
	}
	return &InvalidParamsError{Params: p.Invalid()}
}

// Invalid returns a copy of the unrecognized parameters in encounter order.
func (p *Parser) Invalid() []Param {
	out := make([]Param, len(p.invalid))
	copy(out, p.invalid)
	return out
}

// Suggest returns the registered long parameter closest to an invalid long
// key, rendered with its prefix ("--name" or "name=" for settings), or ""
// when nothing is close enough. Short keys never get suggestions.
func (p *Parser) Suggest(key Param) string {
	if key.IsShort() {
		return ""
	}

	names := make([]string, 0, len(p.params))
	for k := range p.params {
		if !k.IsShort() {
			names = append(names, k.Name())
		}
	}
	sort.Strings(names)

	best := fuzzy.Closest(key.Name(), names, suggestDistance)
	if best == "" {
		return ""
	}
	if p.params[Long(best)].kind == KindSetting {
		return best + "="
	}
	return Long(best).String()
}
