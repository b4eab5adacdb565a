package forth

import (
	"strconv"
	"strings"
)

// compiler turns one source text into opcodes without touching the engine
// until the whole text has compiled.
type compiler struct {
	base  int // len(engine code) before this text
	words map[string]int

	defs []Opcode // word bodies, placed at base
	main []Opcode // top level code, placed after defs
	out  *[]Opcode

	defining bool
	ctl      []int // open IF/ELSE sites in *out
}

func newCompiler(base int, words map[string]int) *compiler {
	c := &compiler{
		base:  base,
		words: make(map[string]int, len(words)),
	}
	for name, addr := range words {
		c.words[name] = addr
	}
	c.out = &c.main
	return c
}

func (c *compiler) emit(kind OpKind, arg int64) {
	*c.out = append(*c.out, Opcode{Kind: kind, Arg: arg})
}

func (c *compiler) compile(source string) error {
	tokens := strings.Fields(source)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch word := strings.ToUpper(tok); word {
		case ":":
			if c.defining || len(c.ctl) > 0 {
				return compileError(tok, ErrInvalidSyntax)
			}
			if i+1 >= len(tokens) {
				return compileError(tok, ErrInvalidSyntax)
			}
			i++
			name := strings.ToUpper(tokens[i])
			if !definable(name) {
				return compileError(tokens[i], ErrInvalidSyntax)
			}
			// registered before the body so that words may recurse
			c.words[name] = c.base + len(c.defs)
			c.defining = true
			c.out = &c.defs

		case ";":
			if !c.defining {
				return compileError(tok, ErrInvalidSyntax)
			}
			if len(c.ctl) > 0 {
				return compileError(tok, ErrMissingThen)
			}
			c.emit(OpRet, 0)
			c.defining = false
			c.out = &c.main

		case "IF":
			c.ctl = append(c.ctl, len(*c.out))
			c.emit(OpJz, 0)

		case "ELSE":
			at, ok := c.popCtl()
			if !ok || (*c.out)[at].Kind != OpJz {
				return compileError(tok, ErrInvalidSyntax)
			}
			jmp := len(*c.out)
			c.emit(OpJmp, 0)
			(*c.out)[at].Arg = int64(jmp + 1 - at)
			c.ctl = append(c.ctl, jmp)

		case "THEN":
			at, ok := c.popCtl()
			if !ok {
				return compileError(tok, ErrInvalidSyntax)
			}
			(*c.out)[at].Arg = int64(len(*c.out) - at)

		default:
			if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
				c.emit(OpLDI, n)
			} else if kind, ok := builtins[word]; ok {
				c.emit(kind, 0)
			} else if addr, ok := c.words[word]; ok {
				c.emit(OpCall, int64(addr))
			} else {
				return compileError(tok, ErrUnknownToken)
			}
		}
	}
	if c.defining {
		return compileError("", ErrMissingSemicolon)
	}
	if len(c.ctl) > 0 {
		return compileError("", ErrMissingThen)
	}
	c.emit(OpRet, 0)
	return nil
}

func (c *compiler) popCtl() (int, bool) {
	n := len(c.ctl)
	if n == 0 {
		return 0, false
	}
	at := c.ctl[n-1]
	c.ctl = c.ctl[:n-1]
	return at, true
}

func definable(name string) bool {
	switch name {
	case ":", ";", "IF", "ELSE", "THEN":
		return false
	}
	if _, ok := builtins[name]; ok {
		return false
	}
	_, err := strconv.ParseInt(name, 10, 64)
	return err != nil
}
