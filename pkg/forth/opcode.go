package forth

import "fmt"

// OpKind identifies a compiled instruction.
type OpKind uint8

const (
	OpLDI  OpKind = iota // push Arg
	OpCall               // call the word compiled at address Arg
	OpRet                // return from a word, or halt at top level
	OpJmp                // pc += Arg
	OpJz                 // pop; pc += Arg when the popped value is zero
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpDup
	OpDrop
	OpSwap
	OpOver
	OpRot
	OpEq
	OpLt
	OpGt
	OpNot
)

var opNames = [...]string{
	OpLDI:  "LDI",
	OpCall: "CALL",
	OpRet:  "RET",
	OpJmp:  "JMP",
	OpJz:   "JZ",
	OpAdd:  "ADD",
	OpSub:  "SUB",
	OpMul:  "MUL",
	OpDiv:  "DIV",
	OpMod:  "MOD",
	OpDup:  "DUP",
	OpDrop: "DROP",
	OpSwap: "SWAP",
	OpOver: "OVER",
	OpRot:  "ROT",
	OpEq:   "EQ",
	OpLt:   "LT",
	OpGt:   "GT",
	OpNot:  "NOT",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) && opNames[k] != "" {
		return opNames[k]
	}
	return fmt.Sprintf("OP%d", uint8(k))
}

// builtins maps source words onto the single opcode they compile to.
var builtins = map[string]OpKind{
	"ADD":  OpAdd,
	"SUB":  OpSub,
	"MUL":  OpMul,
	"DIV":  OpDiv,
	"MOD":  OpMod,
	"DUP":  OpDup,
	"DROP": OpDrop,
	"SWAP": OpSwap,
	"OVER": OpOver,
	"ROT":  OpRot,
	"EQ":   OpEq,
	"LT":   OpLt,
	"GT":   OpGt,
	"NOT":  OpNot,
}

// Opcode is one compiled instruction.
type Opcode struct {
	Kind OpKind
	Arg  int64
}

func (op Opcode) String() string {
	switch op.Kind {
	case OpLDI, OpCall:
		return fmt.Sprintf("%v(%d)", op.Kind, op.Arg)
	case OpJmp, OpJz:
		return fmt.Sprintf("%v(%+d)", op.Kind, op.Arg)
	default:
		return op.Kind.String()
	}
}
