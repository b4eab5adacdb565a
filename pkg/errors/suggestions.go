package errors

// Registry maps error codes to their remediation suggestions.
type Registry struct {
	suggestions map[string][]string
}

// NewRegistry creates a new suggestion registry.
func NewRegistry() *Registry {
	return &Registry{
		suggestions: make(map[string][]string),
	}
}

// Register adds a suggestion for an error code.
func (r *Registry) Register(code, text string) *Registry {
	r.suggestions[code] = append(r.suggestions[code], text)
	return r
}

// Get returns all suggestions for an error code in registration order.
func (r *Registry) Get(code string) []string {
	return r.suggestions[code]
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by AttachSuggestions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func init() {
	defaultRegistry.
		Register(ErrEngineUnknownToken, "Define the word first with ': NAME ... ;'").
		Register(ErrEngineSyntax, "Check that every ':' has a ';' and every IF has a THEN").
		Register(ErrEngineStackUnderflow, "Push operands first, e.g. 'p 5 7', then inspect with 'n'").
		Register(ErrEngineOutOfGas, "Raise engine.load_gas_limit or engine.capture_gas_limit (0 = unlimited)").
		Register(ErrEngineOutOfGas, "Check for a word that calls itself without a base case").
		Register(ErrEngineCallDepth, "Check for a word that calls itself without a base case").
		Register(ErrIOFileNotFound, "Check the file path; relative paths resolve from the working directory").
		Register(ErrIOPermissionDenied, "Check the file permissions").
		Register(ErrParseInvalidInteger, "Parameters to 'p' must be decimal integers, e.g. 'p 5 -7'").
		Register(ErrParseOutOfRange, "Values must fit in a signed 64-bit integer")
}

// AttachSuggestions appends the default registry's suggestions for err.Code.
func AttachSuggestions(err *ShellError) *ShellError {
	if err == nil {
		return nil
	}
	for _, s := range defaultRegistry.Get(err.Code) {
		err.WithSuggestion(s)
	}
	return err
}
