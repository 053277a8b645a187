package commerce

import (
	"errors"
	"fmt"
)

// Kind classifies a failure crossing the commerce boundary.
type Kind int

const (
	KindRemote Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "remote"
	}
}

// Error is the only error type returned by Client implementations.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with a kind; a nil err stays nil.
func NewError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of err, treating unclassified errors as remote.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindRemote
}

func IsValidation(err error) bool     { return err != nil && KindOf(err) == KindValidation }
func IsAuthentication(err error) bool { return err != nil && KindOf(err) == KindAuthentication }
func IsNotFound(err error) bool       { return err != nil && KindOf(err) == KindNotFound }
