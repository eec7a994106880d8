package interp

import "fmt"

// ErrorKind categorises execution failures.
type ErrorKind int

const (
	DivisionByZero ErrorKind = iota
	// VariableNotFound is a defensive re-check of what the parser already
	// validated; loop bodies re-execute against an environment that can
	// change between iterations.
	VariableNotFound
	TypeError
	ColorIndexOutOfRange
)

// ExecutionError aborts the run at the first failing instruction. Segments
// already issued to the canvas stay issued; nothing is rolled back.
type ExecutionError struct {
	Kind     ErrorKind
	Name     string // variable name for VariableNotFound
	Expected string // expectation for TypeError
}

func (e *ExecutionError) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return "division by zero"
	case VariableNotFound:
		return fmt.Sprintf("variable not found: %q", e.Name)
	case TypeError:
		return fmt.Sprintf("type error: expected %s", e.Expected)
	case ColorIndexOutOfRange:
		return "colour index must be between 0 and 15 inclusive"
	default:
		return "execution error"
	}
}

func divisionByZero() error {
	return &ExecutionError{Kind: DivisionByZero}
}

func variableNotFound(name string) error {
	return &ExecutionError{Kind: VariableNotFound, Name: name}
}

func typeError(expected string) error {
	return &ExecutionError{Kind: TypeError, Expected: expected}
}

func colorOutOfRange() error {
	return &ExecutionError{Kind: ColorIndexOutOfRange}
}
