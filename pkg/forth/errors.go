package forth

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownToken     = errors.New("unknown token")
	ErrInvalidSyntax    = errors.New("invalid syntax")
	ErrMissingSemicolon = errors.New("missing ; to end word definition")
	ErrMissingThen      = errors.New("missing THEN")
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrOutOfGas         = errors.New("ran out of gas")
	ErrCallDepth        = errors.New("return stack overflow")
)

// Error is returned by Engine.Execute. Phase is "compile" or "execute";
// Token is the offending source word or opcode.
type Error struct {
	Phase string
	Token string
	Err   error
}

func (err *Error) Error() string {
	if err.Token == "" {
		return fmt.Sprintf("%s: %v", err.Phase, err.Err)
	}
	return fmt.Sprintf("%s %q: %v", err.Phase, err.Token, err.Err)
}

func (err *Error) Unwrap() error { return err.Err }

func compileError(tok string, err error) *Error {
	return &Error{Phase: "compile", Token: tok, Err: err}
}

func execError(op Opcode, err error) *Error {
	return &Error{Phase: "execute", Token: op.String(), Err: err}
}
