package shell

import (
	"context"

	"github.com/r3d91ll/forthshell/pkg/forth"
	"github.com/r3d91ll/forthshell/pkg/help"
)

// Result reports whether a command handled a line.
type Result int

const (
	NotHandled Result = iota
	Handled
)

func (r Result) String() string {
	if r == Handled {
		return "handled"
	}
	return "not handled"
}

// Engine is the interpreter state every command operates on.
// *forth.Engine implements it.
type Engine interface {
	Execute(source string, gas forth.GasLimit) error
	Stack() []int64
	Push(n int64)
	ClearStack()
	Opcodes() []forth.Opcode
}

var _ Engine = (*forth.Engine)(nil)

// Command is one registered shell command.
type Command interface {
	help.Entry

	// Handle runs the command. id is the dispatched command id and params
	// are the remaining tokens of the line, unparsed.
	Handle(ctx context.Context, id string, params []string, eng Engine) (Result, error)
}

// Action is the function bound to a Descriptor.
type Action func(ctx context.Context, id string, params []string, eng Engine) (Result, error)

// Descriptor is an immutable Command built from an id, usage and help text
// and an Action.
type Descriptor struct {
	id     string
	usage  string
	help   string
	action Action
}

// NewDescriptor binds action to id.
func NewDescriptor(id, usage, helpText string, action Action) *Descriptor {
	return &Descriptor{id: id, usage: usage, help: helpText, action: action}
}

func (d *Descriptor) ID() string    { return d.id }
func (d *Descriptor) Usage() string { return d.usage }
func (d *Descriptor) Help() string  { return d.help }

// Handle implements Command.
func (d *Descriptor) Handle(ctx context.Context, id string, params []string, eng Engine) (Result, error) {
	if d.action == nil {
		return NotHandled, nil
	}
	return d.action(ctx, id, params, eng)
}

// Registry is the ordered list of commands. Registration order is the order
// of dispatch and of the help table. Ids are not required to be unique.
type Registry struct {
	commands []Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends commands as given, without validation.
func (r *Registry) Register(cmds ...Command) {
	r.commands = append(r.commands, cmds...)
}

// All returns the commands in registration order.
func (r *Registry) All() []Command {
	return append([]Command(nil), r.commands...)
}

// Entries returns the commands as help table rows, in registration order.
func (r *Registry) Entries() []help.Entry {
	entries := make([]help.Entry, len(r.commands))
	for i, c := range r.commands {
		entries[i] = c
	}
	return entries
}

// IDs returns each distinct command id once, in registration order.
func (r *Registry) IDs() []string {
	seen := make(map[string]bool, len(r.commands))
	var ids []string
	for _, c := range r.commands {
		if id := c.ID(); !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
