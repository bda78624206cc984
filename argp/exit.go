package argp

import (
	"errors"
	"reflect"
)

// ExitError is a sentinel used to request a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// typedError is implemented by the errors of this package.
type typedError interface {
	error
	Type() ErrorType
}

// ExitCodeManager maps errors and categories to process exit codes.
type ExitCodeManager struct {
	codesByType  map[reflect.Type]int
	codesByCateg map[ErrorType]int
	defaults     ExitCodeDefaults
}

// NewExitCodeManager returns a manager with invalid parameters mapped to the
// misusage code and bad declarations to the validation code.
func NewExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByType:  make(map[reflect.Type]int),
		codesByCateg: make(map[ErrorType]int),
		defaults:     defaultExitDefaults(),
	}
}

// DefineError maps a concrete error value (by its dynamic type) to an exit
// code. Category mappings take precedence over type mappings.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	e.codesByType[reflect.TypeOf(err)] = code
	return e
}

// DefineCategory overrides the exit code used for an error category.
func (e *ExitCodeManager) DefineCategory(typ ErrorType, code int) *ExitCodeManager {
	e.codesByCateg[typ] = code
	return e
}

// Default replaces the manager's default codes. Invalid parameters and bad
// declarations follow the new MisusageError and ValidationError unless
// DefineCategory overrode them.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. category mapping (DefineCategory)
//  3. concrete error type mapping (DefineError)
//  4. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var typed typedError
	if errors.As(err, &typed) {
		if code, ok := e.categoryCode(typed.Type()); ok {
			return code
		}
	}

	for t, code := range e.codesByType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}

	return e.defaults.GeneralError
}

func (e *ExitCodeManager) categoryCode(typ ErrorType) (int, bool) {
	if code, ok := e.codesByCateg[typ]; ok {
		return code, true
	}
	switch typ {
	case ErrorTypeInvalidParameter:
		return e.defaults.MisusageError, true
	case ErrorTypeInvalidDecl:
		return e.defaults.ValidationError, true
	}
	return 0, false
}
