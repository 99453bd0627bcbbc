package messenger

// ErrorKind classifies messenger failures. Each kind is itself an error so
// callers can match with errors.Is(err, ErrSignatureMismatch).
type ErrorKind string

const (
	ErrInvalidArgument       ErrorKind = "invalid argument"
	ErrNullCallback          ErrorKind = "null callback"
	ErrInconsistentSignature ErrorKind = "inconsistent signature"
	ErrSignatureMismatch     ErrorKind = "signature mismatch"
)

// Error implements the error interface.
func (k ErrorKind) Error() string {
	return string(k)
}

// Error describes a rejected Register or NotifyColleagues call. All of them
// are programmer errors at the call site and are never retried.
type Error struct {
	Kind    ErrorKind
	Message string // message name the call was made with

	// Expected and Actual are set for signature errors.
	Expected Signature
	Actual   Signature

	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Detail != "" {
		return string(e.Kind) + ": " + e.Detail
	}
	return string(e.Kind)
}

// Unwrap returns the error kind
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind ErrorKind, message, detail string) *Error {
	return &Error{Kind: kind, Message: message, Detail: detail}
}

func errEmptyMessage(message string) *Error {
	return newError(ErrInvalidArgument, message, "message cannot be empty")
}
