package parser

import (
	"errors"
	"fmt"
)

// ErrorKind categorises parse failures.
type ErrorKind int

const (
	// UnexpectedToken reports an unrecognised leading keyword.
	UnexpectedToken ErrorKind = iota
	// InvalidSyntax reports malformed block delimiters, operators, or
	// literals.
	InvalidSyntax
	// VariableNotFound reports a reference or ADDASSIGN target with no
	// prior MAKE.
	VariableNotFound
)

// Error is a parse error. Parsing fails eagerly: a script either parses in
// full or produces no AST and no drawing.
type Error struct {
	Kind       ErrorKind
	Token      string // offending token, when one exists
	Details    string
	Incomplete bool // input ended inside an open block
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %q", e.Token)
	case VariableNotFound:
		return fmt.Sprintf("variable not found: %q", e.Token)
	default:
		return fmt.Sprintf("invalid syntax: %s", e.Details)
	}
}

func unexpectedToken(tok string) error {
	return &Error{Kind: UnexpectedToken, Token: tok}
}

func variableNotFound(name string) error {
	return &Error{Kind: VariableNotFound, Token: name}
}

func invalidSyntax(format string, args ...interface{}) error {
	return &Error{Kind: InvalidSyntax, Details: fmt.Sprintf(format, args...)}
}

func incompleteInput(format string, args ...interface{}) error {
	return &Error{Kind: InvalidSyntax, Details: fmt.Sprintf(format, args...), Incomplete: true}
}

// IsIncomplete reports whether err means the input ended mid-block, which a
// line-buffering caller can treat as "keep reading".
func IsIncomplete(err error) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Incomplete
	}
	return false
}
