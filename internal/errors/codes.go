package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeCanceled           Code = "CANCELED"

	// CodeCorruptSave marks persisted game state that could not be decoded
	// or that violates the state invariants. Callers fall back to a fresh game.
	CodeCorruptSave Code = "CORRUPT_SAVE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether the caller can continue with a fresh game state
// instead of failing the operation.
func (c Code) Recoverable() bool {
	switch c {
	case CodeCorruptSave, CodeNotFound:
		return true
	default:
		return false
	}
}
