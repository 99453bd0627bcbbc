package messenger

import "reflect"

// Signature identifies the payload a callback expects. The zero value is the
// signature of a callback that takes no payload. Signatures are comparable
// with ==; the type is only used as an identity tag and never to invoke.
type Signature struct {
	payload reflect.Type
}

// SignatureOf returns the signature of a callback taking a single T.
func SignatureOf[T any]() Signature {
	return Signature{payload: reflect.TypeFor[T]()}
}

// HasPayload reports whether callbacks with this signature take a value.
func (s Signature) HasPayload() bool {
	return s.payload != nil
}

// Arity is 0 or 1.
func (s Signature) Arity() int {
	if s.payload == nil {
		return 0
	}
	return 1
}

// PayloadType returns the payload type name, or "" for no payload.
func (s Signature) PayloadType() string {
	if s.payload == nil {
		return ""
	}
	return s.payload.String()
}

// String renders the signature as a Go func type, e.g. "func(int)".
func (s Signature) String() string {
	return "func(" + s.PayloadType() + ")"
}
