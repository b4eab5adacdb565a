package errors

import (
	"errors"
	"io/fs"
	"sort"
	"strconv"

	"github.com/r3d91ll/forthshell/pkg/forth"
)

// FromInterpreter wraps an engine failure as a KindInterpreter error.
func FromInterpreter(err error) *ShellError {
	code := ErrEngineFailed
	switch {
	case errors.Is(err, forth.ErrUnknownToken):
		code = ErrEngineUnknownToken
	case errors.Is(err, forth.ErrInvalidSyntax),
		errors.Is(err, forth.ErrMissingSemicolon),
		errors.Is(err, forth.ErrMissingThen):
		code = ErrEngineSyntax
	case errors.Is(err, forth.ErrStackUnderflow):
		code = ErrEngineStackUnderflow
	case errors.Is(err, forth.ErrDivisionByZero):
		code = ErrEngineDivisionByZero
	case errors.Is(err, forth.ErrOutOfGas):
		code = ErrEngineOutOfGas
	case errors.Is(err, forth.ErrCallDepth):
		code = ErrEngineCallDepth
	}
	se := Wrap(err, code, KindInterpreter, "interpreter failed")
	var ferr *forth.Error
	if errors.As(err, &ferr) {
		se.WithContext("phase", ferr.Phase)
		if ferr.Token != "" {
			se.WithContext("token", ferr.Token)
		}
	}
	return AttachSuggestions(se)
}

// FromIO wraps a file or line-reading failure as a KindIO error.
func FromIO(err error) *ShellError {
	code := ErrIOReadFailed
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = ErrIOFileNotFound
	case errors.Is(err, fs.ErrPermission):
		code = ErrIOPermissionDenied
	}
	se := Wrap(err, code, KindIO, "I/O failed")
	var perr *fs.PathError
	if errors.As(err, &perr) {
		se.WithContext("op", perr.Op).WithContext("path", perr.Path)
	}
	return AttachSuggestions(se)
}

// FromParse wraps an integer parse failure as a KindParse error.
func FromParse(err error) *ShellError {
	code := ErrParseInvalidInteger
	if errors.Is(err, strconv.ErrRange) {
		code = ErrParseOutOfRange
	}
	se := Wrap(err, code, KindParse, "not a 64-bit integer")
	var nerr *strconv.NumError
	if errors.As(err, &nerr) {
		se.WithContext("value", nerr.Num)
	}
	return AttachSuggestions(se)
}

// Convert classifies any error into the unified type. Errors already unified
// are returned as is; unrecognized errors become KindUnknown.
func Convert(err error) *ShellError {
	if err == nil {
		return nil
	}
	if se, ok := AsShellError(err); ok {
		return se
	}
	var (
		ferr *forth.Error
		nerr *strconv.NumError
		perr *fs.PathError
	)
	switch {
	case errors.As(err, &ferr):
		return FromInterpreter(err)
	case errors.As(err, &nerr):
		return FromParse(err)
	case errors.As(err, &perr),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return FromIO(err)
	}
	return Wrap(err, ErrUnknown, KindUnknown, "unexpected failure")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
