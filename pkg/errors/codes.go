package errors

// -----------------------------------------------------------------------------
// Interpreter Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrEngineUnknownToken indicates the source used a word that is not defined.
	ErrEngineUnknownToken = "ENGINE_UNKNOWN_TOKEN"

	// ErrEngineSyntax covers malformed definitions and IF/ELSE/THEN nesting.
	ErrEngineSyntax = "ENGINE_SYNTAX"

	// ErrEngineStackUnderflow indicates an operation needed more stack values.
	ErrEngineStackUnderflow = "ENGINE_STACK_UNDERFLOW"

	// ErrEngineDivisionByZero indicates DIV or MOD with a zero divisor.
	ErrEngineDivisionByZero = "ENGINE_DIVISION_BY_ZERO"

	// ErrEngineOutOfGas indicates execution exceeded its step budget.
	ErrEngineOutOfGas = "ENGINE_OUT_OF_GAS"

	// ErrEngineCallDepth indicates words nested deeper than the engine allows.
	ErrEngineCallDepth = "ENGINE_CALL_DEPTH"

	// ErrEngineFailed is any other engine failure.
	ErrEngineFailed = "ENGINE_FAILED"
)

// -----------------------------------------------------------------------------
// IO Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrIOFileNotFound indicates a file passed to a command does not exist.
	ErrIOFileNotFound = "IO_FILE_NOT_FOUND"

	// ErrIOPermissionDenied indicates a file exists but cannot be accessed.
	ErrIOPermissionDenied = "IO_PERMISSION_DENIED"

	// ErrIOReadFailed is any other file or line read failure.
	ErrIOReadFailed = "IO_READ_FAILED"

	// ErrIOHistoryFailed indicates a history store could not be written.
	ErrIOHistoryFailed = "IO_HISTORY_FAILED"
)

// -----------------------------------------------------------------------------
// Parse Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrParseInvalidInteger indicates a parameter is not an integer.
	ErrParseInvalidInteger = "PARSE_INVALID_INTEGER"

	// ErrParseOutOfRange indicates an integer does not fit in 64 bits.
	ErrParseOutOfRange = "PARSE_OUT_OF_RANGE"
)

// ErrUnknown is the code of the reserved Unknown variant.
const ErrUnknown = "UNKNOWN"
