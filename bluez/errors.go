package bluez

import (
	"context"
	"errors"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// The different session error types.
var (
	ErrConnection     = errors.New("system bus is unreachable")
	ErrDiscoveryStart = errors.New("cannot start discovery")
	ErrDiscoveryStop  = errors.New("cannot stop discovery")
	ErrEnumeration    = errors.New("cannot enumerate managed objects")
	ErrPropertyRead   = errors.New("cannot read device property")
)

// kindError marks an error with its error type. Its message is the
// message of the wrapped error only.
type kindError struct {
	kind, err error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// wrapError wraps err with the provided error kind, so that the result
// matches both via errors.Is, and attaches the fault metadata and message.
func wrapError(kind, err error, message string, metadata ...string) error {
	return fault.Wrap(&kindError{kind: kind, err: err},
		fctx.With(context.Background(), metadata...),
		ftag.With(ftag.Internal),
		fmsg.With(message),
	)
}
