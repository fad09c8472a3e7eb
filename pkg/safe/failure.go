package safe

// Kind categorizes how a failure came to be.
type Kind string

const (
	// KindError marks a failure produced from a returned error.
	KindError Kind = "error"
	// KindPanic marks a failure captured from a panicking callable.
	KindPanic Kind = "panic"
	// KindRejection marks a failure produced from a rejected awaitable.
	KindRejection Kind = "rejection"
	// KindCanceled marks a failure caused by context cancellation or timeout.
	KindCanceled Kind = "canceled"
)

// Failure describes the failed half of a Result: a message, a kind tag,
// an optional typed payload and an optional underlying error.
// Failure values are immutable; the With* builders return copies.
type Failure[E any] struct {
	kind       Kind
	message    string
	payload    E
	hasPayload bool
	cause      error
}

func NewFailure[E any](kind Kind, message string) Failure[E] {
	return Failure[E]{
		kind:    kind,
		message: message,
	}
}

// WithPayload returns a copy of f carrying p as its typed payload.
func (f Failure[E]) WithPayload(p E) Failure[E] {
	f.payload = p
	f.hasPayload = true
	return f
}

// WithCause returns a copy of f carrying err as its underlying error.
func (f Failure[E]) WithCause(err error) Failure[E] {
	f.cause = err
	return f
}

func (f Failure[E]) Kind() Kind {
	return f.kind
}

func (f Failure[E]) Message() string {
	return f.message
}

// Payload returns the typed payload, if one was attached. The payload is
// whatever was thrown or rejected, preserved verbatim; it is never
// normalized into a canonical error shape.
func (f Failure[E]) Payload() (E, bool) {
	return f.payload, f.hasPayload
}

func (f Failure[E]) Cause() error {
	return f.cause
}

// Error makes Failure usable as an error value.
func (f Failure[E]) Error() string {
	return f.message
}

// Unwrap exposes the underlying error to errors.Is/As.
func (f Failure[E]) Unwrap() error {
	return f.cause
}
