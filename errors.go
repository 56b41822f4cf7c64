package uuid

import "fmt"

// Code is the error taxonomy returned by this package's operations,
// mirroring OSSP uuid's uuid_rc_t: every failure boils down to one of
// these five kinds.
type Code int

const (
	// OK indicates success. Operations never return OK as an error value;
	// it exists so Code's zero value has a defined meaning.
	OK Code = iota
	// InvalidArgument marks malformed input: a string that doesn't match
	// the UUID grammar, a V3 namespace that is neither a well-known name
	// nor a UUID string, an unknown request type, or use of a Generator
	// after Close. A nil *Generator is not checked for: calling its
	// methods panics rather than returning InvalidArgument.
	InvalidArgument
	// OutOfMemory marks an allocation failure.
	OutOfMemory
	// SystemError marks a failure to sample the wall clock during V1
	// generation.
	SystemError
	// InternalError marks a failure constructing a Generator's PRNG or
	// MD5 sub-state.
	InternalError
)

// Error implements the error interface, returning the same short,
// static strings as OSSP uuid's uuid_error().
func (c Code) Error() string {
	switch c {
	case OK:
		return "everything ok"
	case InvalidArgument:
		return "invalid argument"
	case OutOfMemory:
		return "out of memory"
	case SystemError:
		return "system error"
	case InternalError:
		return "internal error"
	default:
		return "unknown error"
	}
}

// wrap produces an error that carries both a human-readable detail
// message and the Code a caller can recover with errors.Is/errors.As.
func wrap(c Code, format string, args ...any) error {
	return &codeError{code: c, msg: fmt.Sprintf(format, args...)}
}

type codeError struct {
	code Code
	msg  string
}

func (e *codeError) Error() string { return "uuid: " + e.msg }

func (e *codeError) Unwrap() error { return e.code }

func (e *codeError) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.code
}
