// Package animerr defines the error taxonomy of an animation run.
//
// Every failure is fatal to the run. Callers classify a failure with
// errors.Is against one of the sentinel kinds below; the concrete *Error
// carries the position and identifier of the offending record.
package animerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedRecord reports a raw record with the wrong shape: zero or
	// several kind keys, a non-object payload, or a non-scalar id/ref.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrConflictingIdentifier reports an id given both on the record and
	// inside its payload.
	ErrConflictingIdentifier = errors.New("conflicting identifier")
	// ErrDuplicateIdentifier reports two records resolving to the same id.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrUnsupportedVersion reports an extension whose declared version fails
	// the compatibility rule for its kind.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrDuplicateExtensionName reports two extensions with the same name.
	ErrDuplicateExtensionName = errors.New("duplicate extension name")
	// ErrMissingSource reports an edge without a source reference.
	ErrMissingSource = errors.New("missing source")
	// ErrMissingTarget reports an edge without a target reference.
	ErrMissingTarget = errors.New("missing target")
	// ErrNotMissing reports an attempt to synthesize a node for an id that is
	// already registered. It always indicates a bug in the caller.
	ErrNotMissing = errors.New("node is not missing")
)

// Error is a single violated invariant.
type Error struct {
	// Kind is one of the sentinel errors of this package.
	Kind error
	// Index is the input position of the offending record, or -1.
	Index int
	// ID is the printable identifier of the offending record, if known.
	ID  string
	Msg string
	// Err is an optional underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Index >= 0 {
		fmt.Fprintf(&sb, " (record %d)", e.Index)
	}
	if e.ID != "" {
		fmt.Fprintf(&sb, " [id %s]", e.ID)
	}
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New builds an *Error of the given kind with no position information.
func New(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Index: -1, Msg: fmt.Sprintf(format, args...)}
}

// WithIndex sets the input position and returns the receiver.
func (e *Error) WithIndex(index int) *Error {
	e.Index = index
	return e
}

// WithID sets the printable identifier and returns the receiver.
func (e *Error) WithID(id fmt.Stringer) *Error {
	e.ID = id.String()
	return e
}

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// Locate fills in the record position on err if it is an *Error that does
// not carry one yet. Any other error is returned unchanged.
func Locate(err error, index int) error {
	var ae *Error
	if errors.As(err, &ae) && ae.Index < 0 {
		ae.Index = index
	}
	return err
}
