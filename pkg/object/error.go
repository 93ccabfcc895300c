package object

import "fmt"

// ErrorKind classifies a failure so callers can react without parsing the
// message.
type ErrorKind string

const (
	LexError             ErrorKind = "LexError"
	ParseError           ErrorKind = "ParseError"
	UnresolvedIdentifier ErrorKind = "UnresolvedIdentifier"
	UnknownModule        ErrorKind = "UnknownModule"
	UnknownFunction      ErrorKind = "UnknownFunction"
	ArityError           ErrorKind = "ArityError"
	TypeError            ErrorKind = "TypeError"
	RuntimeError         ErrorKind = "RuntimeError"
)

// Error is both a runtime value (it propagates through evaluation the same
// way other objects do) and a Go error for the session-driver boundary.
// Line and Column are 1-based; zero means no position is known.
type Error struct {
	ErrKind ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *Error) Kind() ObjectKind { return KindError }

func (e *Error) Inspect() string { return "ERROR: " + e.Message }

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{ErrKind: kind, Message: fmt.Sprintf(format, a...)}
}

func NewErrorAt(kind ErrorKind, line, column int, format string, a ...interface{}) *Error {
	return &Error{ErrKind: kind, Message: fmt.Sprintf(format, a...), Line: line, Column: column}
}

func IsError(obj Object) bool {
	if obj != nil {
		return obj.Kind() == KindError
	}
	return false
}
