package forth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Execute(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		stack  []int64
	}{
		{"literals", "1 2 3", []int64{1, 2, 3}},
		{"negative literal", "-4", []int64{-4}},
		{"add", "5 7 ADD", []int64{12}},
		{"sub", "5 7 SUB", []int64{-2}},
		{"mul", "6 7 MUL", []int64{42}},
		{"div", "13 3 DIV", []int64{4}},
		{"mod", "13 3 MOD", []int64{1}},
		{"lowercase words", "5 7 add", []int64{12}},
		{"dup", "3 DUP", []int64{3, 3}},
		{"drop", "3 4 DROP", []int64{3}},
		{"swap", "3 4 SWAP", []int64{4, 3}},
		{"over", "3 4 OVER", []int64{3, 4, 3}},
		{"rot", "1 2 3 ROT", []int64{2, 3, 1}},
		{"eq", "2 2 EQ 2 3 EQ", []int64{1, 0}},
		{"lt gt", "2 3 LT 2 3 GT", []int64{1, 0}},
		{"not", "0 NOT 5 NOT", []int64{1, 0}},
		{"if true", "1 IF 1 2 ADD THEN", []int64{3}},
		{"if false", "0 IF 1 2 ADD THEN", nil},
		{"if else true", "1 IF 1 2 ADD ELSE 3 4 ADD THEN", []int64{3}},
		{"if else false", "0 IF 1 2 ADD ELSE 3 4 ADD THEN", []int64{7}},
		{"nested if", "1 IF 0 IF 10 ELSE 20 THEN ELSE 30 THEN", []int64{20}},
		{"word", ": SQUARE DUP MUL ; 7 SQUARE", []int64{49}},
		{"word calling word", ": SQ DUP MUL ; : QUAD SQ SQ ; 2 QUAD", []int64{16}},
		{"word with if", ": ABS DUP 0 LT IF 0 SWAP SUB THEN ; -5 ABS 5 ABS", []int64{5, 5}},
		{"recursive word", ": DOWN DUP IF 1 SUB DOWN THEN ; 3 DOWN", []int64{0}},
		{"multi line", "5\n7\nADD\n", []int64{12}},
		{"empty", "", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := New()
			require.NoError(t, e.Execute(tc.source, Limited(1000)))
			assert.Equal(t, tc.stack, nilIfEmpty(e.Stack()))
		})
	}
}

func TestEngine_Errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		err    error
		stack  []int64
	}{
		{"unknown token", "1 FOO", ErrUnknownToken, nil},
		{"underflow", "1 ADD", ErrStackUnderflow, []int64{1}},
		{"drop empty", "DROP", ErrStackUnderflow, nil},
		{"div by zero", "4 0 DIV", ErrDivisionByZero, []int64{4, 0}},
		{"mod by zero", "4 0 MOD", ErrDivisionByZero, []int64{4, 0}},
		{"missing semicolon", ": FOO 1", ErrMissingSemicolon, nil},
		{"missing then", "1 IF 2", ErrMissingThen, nil},
		{"missing then in word", ": FOO IF 1 ; ", ErrMissingThen, nil},
		{"stray semicolon", "1 ;", ErrInvalidSyntax, nil},
		{"stray then", "THEN", ErrInvalidSyntax, nil},
		{"stray else", "ELSE", ErrInvalidSyntax, nil},
		{"nested definition", ": A : B ; ;", ErrInvalidSyntax, nil},
		{"define builtin", ": ADD 1 ;", ErrInvalidSyntax, nil},
		{"define number", ": 12 1 ;", ErrInvalidSyntax, nil},
		{"colon at end", "1 :", ErrInvalidSyntax, nil},
		{"endless recursion", ": LOOP LOOP ; LOOP", ErrOutOfGas, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := New()
			err := e.Execute(tc.source, Limited(100))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)

			var ferr *Error
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, tc.stack, nilIfEmpty(e.Stack()))
		})
	}
}

func TestEngine_CompileIsAtomic(t *testing.T) {
	e := New()
	require.NoError(t, e.Execute(": TWO 2 ; TWO", Unlimited()))
	code := e.Opcodes()

	err := e.Execute(": THREE 3 ; THREE BOGUS", Unlimited())
	require.ErrorIs(t, err, ErrUnknownToken)
	assert.Equal(t, code, e.Opcodes(), "failed compile must not change code")
	assert.Equal(t, []int64{2}, e.Stack())

	err = e.Execute("THREE", Unlimited())
	require.ErrorIs(t, err, ErrUnknownToken, "words from a failed compile must not persist")
}

func TestEngine_WordsPersist(t *testing.T) {
	e := New()
	require.NoError(t, e.Execute(": SQUARE DUP MUL ;", Unlimited()))
	require.NoError(t, e.Execute("3 SQUARE", Unlimited()))
	assert.Equal(t, []int64{9}, e.Stack())
}

func TestEngine_Gas(t *testing.T) {
	e := New()
	// LDI LDI ADD RET
	require.NoError(t, e.Execute("5 7 ADD", Limited(4)))

	e = New()
	err := e.Execute("5 7 ADD", Limited(3))
	require.ErrorIs(t, err, ErrOutOfGas)
	assert.Equal(t, []int64{12}, e.Stack())

	e = New()
	require.ErrorIs(t, e.Execute("1", Limited(0)), ErrOutOfGas)
}

func TestEngine_UnlimitedGasStopsRunawayRecursion(t *testing.T) {
	e := New()
	err := e.Execute(": F F ; F", Unlimited())
	require.ErrorIs(t, err, ErrCallDepth)

	// deep but bounded recursion still completes
	e = New()
	require.NoError(t, e.Execute(": DOWN DUP IF 1 SUB DOWN THEN ; 1000 DOWN", Unlimited()))
	assert.Equal(t, []int64{0}, e.Stack())
}

func TestEngine_StackOps(t *testing.T) {
	e := New()
	e.Push(5)
	e.Push(7)
	s := e.Stack()
	s[0] = 99
	assert.Equal(t, []int64{5, 7}, e.Stack(), "Stack must return a copy")

	require.NoError(t, e.Execute("ADD", Unlimited()))
	assert.Equal(t, []int64{12}, e.Stack())

	e.ClearStack()
	assert.Empty(t, e.Stack())
}

func TestEngine_Opcodes(t *testing.T) {
	e := New()
	require.NoError(t, e.Execute(": SQ DUP MUL ; 1 IF 3 SQ ELSE 0 THEN", Unlimited()))
	var got []string
	for _, op := range e.Opcodes() {
		got = append(got, op.String())
	}
	assert.Equal(t, []string{
		"DUP", "MUL", "RET", // SQ at 0
		"LDI(1)", "JZ(+4)", "LDI(3)", "CALL(0)", "JMP(+2)", "LDI(0)", "RET",
	}, got)
}

func TestGasLimit_String(t *testing.T) {
	assert.Equal(t, "unlimited", Unlimited().String())
	assert.Equal(t, "limited(100)", Limited(100).String())
}

func nilIfEmpty(s []int64) []int64 {
	if len(s) == 0 {
		return nil
	}
	return s
}
