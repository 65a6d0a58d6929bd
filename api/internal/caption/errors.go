package caption

import "errors"

// Kind classifies a captioning failure.
type Kind string

const (
	// KindDecode: the upload could not be parsed as an image.
	KindDecode Kind = "decode"
	// KindTransport: the request never reached the provider (network,
	// timeout, cancellation).
	KindTransport Kind = "transport"
	// KindProvider: the provider itself rejected or failed the call.
	KindProvider Kind = "provider"
	// KindInternal: anything else.
	KindInternal Kind = "internal"
)

// Error tags an underlying failure with its Kind so the HTTP boundary can
// map it without matching on message text.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with kind. Already-tagged errors keep their original kind.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return err
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the Kind of err, defaulting to KindInternal for untagged
// errors.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}
