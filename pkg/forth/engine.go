// Package forth implements the small Forth-like compiler and stack machine
// that the interactive shell drives.
//
// Source text is compiled into opcodes which are appended to the engine's
// code; word definitions (": name ... ;") stay callable by later texts. The
// operand stack holds 64-bit signed integers and survives between calls to
// Execute.
package forth

import "fmt"

// GasLimit bounds the number of opcodes a single Execute may run.
type GasLimit struct {
	limited bool
	n       int
}

// MaxCallDepth bounds nested word calls within one Execute. Jumps only go
// forward, so with this bound even unlimited gas cannot run forever through
// recursion alone.
const MaxCallDepth = 4096

// Unlimited returns a GasLimit that never runs out. A word that recurses
// without a base case then fails with ErrCallDepth instead of ErrOutOfGas.
func Unlimited() GasLimit { return GasLimit{} }

// Limited returns a GasLimit allowing at most n executed opcodes.
func Limited(n int) GasLimit { return GasLimit{limited: true, n: n} }

func (g GasLimit) String() string {
	if !g.limited {
		return "unlimited"
	}
	return fmt.Sprintf("limited(%d)", g.n)
}

// Engine is a compiler plus stack machine. The zero value is not usable; call New.
type Engine struct {
	code  []Opcode
	words map[string]int
	stack []int64
}

// New returns an engine with no compiled code and an empty stack.
func New() *Engine {
	return &Engine{words: make(map[string]int)}
}

// Execute compiles source and runs its top level code under gas.
//
// Compilation is all or nothing: a compile error leaves code, words and stack
// untouched. A failure while running leaves whatever the executed opcodes did
// to the stack in place.
func (e *Engine) Execute(source string, gas GasLimit) error {
	c := newCompiler(len(e.code), e.words)
	if err := c.compile(source); err != nil {
		return err
	}
	e.code = append(e.code, c.defs...)
	start := len(e.code)
	e.code = append(e.code, c.main...)
	e.words = c.words
	return e.run(start, gas)
}

// Stack returns a copy of the operand stack, bottom first.
func (e *Engine) Stack() []int64 {
	return append([]int64(nil), e.stack...)
}

// Push pushes n onto the operand stack.
func (e *Engine) Push(n int64) { e.stack = append(e.stack, n) }

// ClearStack removes every value from the operand stack.
func (e *Engine) ClearStack() { e.stack = e.stack[:0] }

// Opcodes returns a copy of all compiled code in address order.
func (e *Engine) Opcodes() []Opcode {
	return append([]Opcode(nil), e.code...)
}

func (e *Engine) pop(op Opcode) (int64, error) {
	n := len(e.stack)
	if n == 0 {
		return 0, execError(op, ErrStackUnderflow)
	}
	v := e.stack[n-1]
	e.stack = e.stack[:n-1]
	return v, nil
}

func (e *Engine) need(op Opcode, n int) error {
	if len(e.stack) < n {
		return execError(op, ErrStackUnderflow)
	}
	return nil
}

func (e *Engine) run(pc int, gas GasLimit) error {
	var rstack []int
	for steps := 0; ; steps++ {
		if gas.limited && steps >= gas.n {
			return &Error{Phase: "execute", Err: ErrOutOfGas}
		}
		op := e.code[pc]
		switch op.Kind {
		case OpLDI:
			e.Push(op.Arg)
			pc++

		case OpCall:
			if len(rstack) >= MaxCallDepth {
				return execError(op, ErrCallDepth)
			}
			rstack = append(rstack, pc+1)
			pc = int(op.Arg)

		case OpRet:
			n := len(rstack)
			if n == 0 {
				return nil
			}
			pc = rstack[n-1]
			rstack = rstack[:n-1]

		case OpJmp:
			pc += int(op.Arg)

		case OpJz:
			v, err := e.pop(op)
			if err != nil {
				return err
			}
			if v == 0 {
				pc += int(op.Arg)
			} else {
				pc++
			}

		case OpDup, OpDrop, OpSwap, OpOver, OpRot, OpNot:
			if err := e.shuffle(op); err != nil {
				return err
			}
			pc++

		default:
			if err := e.binary(op); err != nil {
				return err
			}
			pc++
		}
	}
}

func (e *Engine) shuffle(op Opcode) error {
	s := e.stack
	n := len(s)
	switch op.Kind {
	case OpDup:
		if err := e.need(op, 1); err != nil {
			return err
		}
		e.stack = append(s, s[n-1])
	case OpDrop:
		if err := e.need(op, 1); err != nil {
			return err
		}
		e.stack = s[:n-1]
	case OpSwap:
		if err := e.need(op, 2); err != nil {
			return err
		}
		s[n-1], s[n-2] = s[n-2], s[n-1]
	case OpOver:
		if err := e.need(op, 2); err != nil {
			return err
		}
		e.stack = append(s, s[n-2])
	case OpRot:
		if err := e.need(op, 3); err != nil {
			return err
		}
		s[n-3], s[n-2], s[n-1] = s[n-2], s[n-1], s[n-3]
	case OpNot:
		if err := e.need(op, 1); err != nil {
			return err
		}
		s[n-1] = truth(s[n-1] == 0)
	}
	return nil
}

func (e *Engine) binary(op Opcode) error {
	if err := e.need(op, 2); err != nil {
		return err
	}
	n := len(e.stack)
	a, b := e.stack[n-2], e.stack[n-1]
	var r int64
	switch op.Kind {
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMul:
		r = a * b
	case OpDiv, OpMod:
		if b == 0 {
			return execError(op, ErrDivisionByZero)
		}
		if op.Kind == OpDiv {
			r = a / b
		} else {
			r = a % b
		}
	case OpEq:
		r = truth(a == b)
	case OpLt:
		r = truth(a < b)
	case OpGt:
		r = truth(a > b)
	default:
		return execError(op, ErrInvalidSyntax)
	}
	e.stack = append(e.stack[:n-2], r)
	return nil
}

func truth(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
