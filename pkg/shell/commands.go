package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	serrors "github.com/r3d91ll/forthshell/pkg/errors"
	"github.com/r3d91ll/forthshell/pkg/forth"
	"github.com/r3d91ll/forthshell/pkg/log"
)

// Command ids of the standard command set.
const (
	CmdLoad                = "l"
	CmdNumberStack         = "n"
	CmdPush                = "p"
	CmdInteractive         = "i"
	CmdListWords           = "list_words"
	CmdListCompiledOpcodes = "list_compiled_opcodes"
	CmdClearNumberStack    = "clear_number_stack"
)

// Capturer collects free-form source text.
type Capturer interface {
	Run(ctx context.Context) (string, error)
}

// Builtins configures the standard command set.
type Builtins struct {
	Out        io.Writer
	Capture    Capturer
	LoadGas    forth.GasLimit
	CaptureGas forth.GasLimit
}

// Commands returns the standard commands in registration order.
func (b Builtins) Commands() []Command {
	return []Command{
		NewDescriptor(CmdLoad, "file1.f [file2.f ...]", "Load Forth files", b.load),
		NewDescriptor(CmdNumberStack, "", "Print the number stack", b.numberStack),
		NewDescriptor(CmdPush, "n1 [n2 ...]", "Push numbers on the stack", b.push),
		NewDescriptor(CmdInteractive, "", "Enter Forth interactively, Ctrl+D to run", b.interactive),
		NewDescriptor(CmdListWords, "", "List defined words", b.listWords),
		NewDescriptor(CmdListCompiledOpcodes, "", "List compiled opcodes", b.listCompiledOpcodes),
		NewDescriptor(CmdClearNumberStack, "", "Clear the number stack", b.clearNumberStack),
	}
}

// Register adds the standard commands to r.
func (b Builtins) Register(r *Registry) {
	r.Register(b.Commands()...)
}

func (b Builtins) load(ctx context.Context, _ string, params []string, eng Engine) (Result, error) {
	for _, path := range params {
		source, err := os.ReadFile(path)
		if err != nil {
			return NotHandled, serrors.FromIO(err)
		}
		log.FromCtx(ctx).Debug().Str("path", path).Stringer("gas", b.LoadGas).Msg("loading file")
		if err := eng.Execute(string(source), b.LoadGas); err != nil {
			return NotHandled, serrors.FromInterpreter(err).WithContext("path", path)
		}
	}
	return Handled, nil
}

func (b Builtins) numberStack(_ context.Context, _ string, _ []string, eng Engine) (Result, error) {
	fmt.Fprintf(b.Out, "Number Stack %s\n", FormatStack(eng.Stack()))
	return Handled, nil
}

func (b Builtins) push(_ context.Context, _ string, params []string, eng Engine) (Result, error) {
	for _, p := range params {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return NotHandled, serrors.FromParse(err)
		}
		eng.Push(n)
	}
	return Handled, nil
}

func (b Builtins) interactive(ctx context.Context, _ string, _ []string, eng Engine) (Result, error) {
	if b.Capture == nil {
		return NotHandled, nil
	}
	source, err := b.Capture.Run(ctx)
	if err != nil {
		return NotHandled, err
	}
	if err := eng.Execute(source, b.CaptureGas); err != nil {
		return NotHandled, serrors.FromInterpreter(err)
	}
	return Handled, nil
}

func (b Builtins) listWords(context.Context, string, []string, Engine) (Result, error) {
	return Handled, nil
}

func (b Builtins) listCompiledOpcodes(_ context.Context, _ string, _ []string, eng Engine) (Result, error) {
	for addr, op := range eng.Opcodes() {
		fmt.Fprintf(b.Out, "%4d  %s\n", addr, op)
	}
	return Handled, nil
}

func (b Builtins) clearNumberStack(_ context.Context, _ string, _ []string, eng Engine) (Result, error) {
	eng.ClearStack()
	return Handled, nil
}

// FormatStack renders stack bottom first, e.g. "[5, 7]".
func FormatStack(stack []int64) string {
	parts := make([]string, len(stack))
	for i, n := range stack {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
