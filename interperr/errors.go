/*
File    : interperr/errors.go

Package interperr defines the interpreter's error taxonomy: the seven
categories from the language specification, each surfaced as a Go error
carrying a Kind so callers can branch on category without string matching.
Every fatal condition in the lexer, parser, and evaluator is constructed
through this package; only the driver ever calls os.Exit.
*/
package interperr

import (
	"errors"
	"fmt"
)

// Kind enumerates the fixed error taxonomy. Two members — VariableAlready
// Declared and InvalidArguments — are reserved by the taxonomy but never
// raised by this implementation, matching the language's documented
// behavior of silently overwriting redeclarations and silently ignoring
// arity mismatches.
type Kind int

const (
	InvalidToken Kind = iota
	UndefinedVariable
	VariableAlreadyDeclared
	TypeMismatch
	UnsupportedSyntax
	InvalidDataType
	InvalidArguments
)

var kindMessages = map[Kind]string{
	InvalidToken:            "Syntax error: Unexpected token",
	UndefinedVariable:       "Type error: Variable is not defined",
	VariableAlreadyDeclared: "Type error: Variable is already declared",
	TypeMismatch:            "Type error: Invalid type provided",
	UnsupportedSyntax:       "Syntax error: This syntax is currently unsupported",
	InvalidDataType:         "Type error: Unknown type",
	InvalidArguments:        "Type error: Invalid arguments list for function",
}

func (k Kind) String() string {
	if m, ok := kindMessages[k]; ok {
		return m
	}
	return "Unknown runtime error"
}

// Error is the concrete error type raised by every interpreter component.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// New builds an Error of the given kind. When format is empty the category's
// default message is used verbatim; otherwise format/args produce a more
// specific message while Kind is preserved for programmatic handling.
func New(kind Kind, format string, args ...interface{}) *Error {
	msg := kind.String()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Msg: msg}
}

// KindOf reports the Kind carried by err, if err is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
