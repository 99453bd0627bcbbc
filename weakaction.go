package messenger

import (
	"sync/atomic"
	"weak"

	"github.com/google/uuid"
)

// invoker calls a resolved callback. The payload is nil for callbacks that
// take none.
type invoker func(payload any)

// weakAction is one registered callback. It never holds its target strongly.
type weakAction struct {
	id        uuid.UUID
	signature Signature

	// resolve returns nil once the target has been collected. Unbound
	// actions resolve forever.
	resolve func() invoker

	// removed is set by Unregister so a batch already in flight skips it.
	removed atomic.Bool
}

func (a *weakAction) alive() bool {
	return a.resolve() != nil
}

func staticAction(callback func()) *weakAction {
	call := invoker(func(any) { callback() })
	return &weakAction{
		id:      uuid.New(),
		resolve: func() invoker { return call },
	}
}

func staticActionWith[T any](callback func(T)) *weakAction {
	call := invoker(func(payload any) {
		v, _ := payload.(T) // a nil interface payload arrives as the zero T
		callback(v)
	})
	return &weakAction{
		id:        uuid.New(),
		signature: SignatureOf[T](),
		resolve:   func() invoker { return call },
	}
}

func targetAction[R any](target *R, callback func(*R)) *weakAction {
	ref := weak.Make(target)
	return &weakAction{
		id: uuid.New(),
		resolve: func() invoker {
			r := ref.Value()
			if r == nil {
				return nil
			}
			return func(any) { callback(r) }
		},
	}
}

func targetActionWith[R, T any](target *R, callback func(*R, T)) *weakAction {
	ref := weak.Make(target)
	return &weakAction{
		id:        uuid.New(),
		signature: SignatureOf[T](),
		resolve: func() invoker {
			r := ref.Value()
			if r == nil {
				return nil
			}
			return func(payload any) {
				v, _ := payload.(T)
				callback(r, v)
			}
		},
	}
}
