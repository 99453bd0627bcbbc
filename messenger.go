package messenger

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Messenger delivers named notifications to weakly held callbacks.
type Messenger struct {
	mu      sync.Mutex
	actions map[string][]*weakAction // message -> actions in registration order

	verify bool
	logger *slog.Logger
}

// Option configures a Messenger.
type Option func(*Messenger)

// WithVerification turns the registration-time signature consistency check
// on or off. It defaults to on unless built with -tags messenger_release.
func WithVerification(enabled bool) Option {
	return func(m *Messenger) {
		m.verify = enabled
	}
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Messenger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates an empty Messenger.
func New(opts ...Option) *Messenger {
	m := &Messenger{
		actions: make(map[string][]*weakAction),
		verify:  verifyByDefault,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Verifying reports whether Register checks signature consistency.
func (m *Messenger) Verifying() bool {
	return m.verify
}

// Subscription is the handle returned by the Register functions. Keeping it
// is optional; weakly bound subscriptions go away with their target.
type Subscription struct {
	ID      uuid.UUID
	Message string

	unsubscribeFunc func() bool
	unsubscribed    atomic.Bool
}

// Unsubscribe removes the subscription from its Messenger. Only the first
// call has an effect; it reports whether the subscription was still registered.
func (s *Subscription) Unsubscribe() bool {
	if !s.unsubscribed.CompareAndSwap(false, true) {
		return false
	}
	return s.unsubscribeFunc()
}

// Register registers a callback without a payload. The callback is not
// bound to any object and stays registered until unsubscribed.
func (m *Messenger) Register(message string, callback func()) (*Subscription, error) {
	if message == "" {
		return nil, errEmptyMessage(message)
	}
	if callback == nil {
		return nil, newError(ErrNullCallback, message, "callback cannot be nil")
	}
	return m.register(message, staticAction(callback))
}

// RegisterWith registers a callback receiving a T payload. The callback is
// not bound to any object and stays registered until unsubscribed.
func RegisterWith[T any](m *Messenger, message string, callback func(T)) (*Subscription, error) {
	if message == "" {
		return nil, errEmptyMessage(message)
	}
	if callback == nil {
		return nil, newError(ErrNullCallback, message, "callback cannot be nil")
	}
	return m.register(message, staticActionWith(callback))
}

// RegisterTarget registers callback to be invoked on target. Only a weak
// reference to target is kept: once target is garbage collected the
// subscription is dead and is dropped on the next notification of message.
//
// callback must not capture target itself or the target will never be
// collected. A method expression such as (*View).Refresh is the usual form.
//
// Targets smaller than 16 bytes that contain no pointers may share a memory
// block with other small allocations, and their weak reference stays valid
// while any object in that block is reachable. Such a subscription may keep
// being delivered to after its target was dropped. Give targets a pointer
// field or make them at least 16 bytes.
func RegisterTarget[R any](m *Messenger, message string, target *R, callback func(*R)) (*Subscription, error) {
	if message == "" {
		return nil, errEmptyMessage(message)
	}
	if callback == nil {
		return nil, newError(ErrNullCallback, message, "callback cannot be nil")
	}
	if target == nil {
		return nil, newError(ErrInvalidArgument, message, "target cannot be nil")
	}
	return m.register(message, targetAction(target, callback))
}

// RegisterTargetWith is RegisterTarget for callbacks receiving a T payload.
func RegisterTargetWith[R, T any](m *Messenger, message string, target *R, callback func(*R, T)) (*Subscription, error) {
	if message == "" {
		return nil, errEmptyMessage(message)
	}
	if callback == nil {
		return nil, newError(ErrNullCallback, message, "callback cannot be nil")
	}
	if target == nil {
		return nil, newError(ErrInvalidArgument, message, "target cannot be nil")
	}
	return m.register(message, targetActionWith(target, callback))
}

func (m *Messenger) register(message string, action *weakAction) (*Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.verify {
		if err := m.verifyLocked(message, action.signature); err != nil {
			return nil, err
		}
	}

	m.actions[message] = append(m.actions[message], action)
	m.logger.Debug("messenger: registered callback",
		"message", message, "id", action.id, "signature", action.signature.String())

	id := action.id
	return &Subscription{
		ID:              id,
		Message:         message,
		unsubscribeFunc: func() bool { return m.Unregister(message, id) },
	}, nil
}

func (m *Messenger) verifyLocked(message string, sig Signature) error {
	registered, ok := m.signatureLocked(message)
	if !ok || registered == sig {
		return nil
	}

	var detail string
	if registered.HasPayload() && sig.HasPayload() {
		detail = fmt.Sprintf("callbacks for message %q take %s, cannot add one taking %s",
			message, registered.PayloadType(), sig.PayloadType())
	} else {
		detail = fmt.Sprintf("callbacks for message %q take %d parameter(s), cannot add one taking %d",
			message, registered.Arity(), sig.Arity())
	}
	return &Error{
		Kind:     ErrInconsistentSignature,
		Message:  message,
		Expected: registered,
		Actual:   sig,
		Detail:   detail,
	}
}

// signatureLocked returns the signature of the oldest live action of message.
func (m *Messenger) signatureLocked(message string) (Signature, bool) {
	for _, a := range m.actions[message] {
		if a.alive() {
			return a.signature, true
		}
	}
	return Signature{}, false
}

// Signature reports the payload signature of the live callbacks registered
// for message.
func (m *Messenger) Signature(message string) (Signature, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.signatureLocked(message)
}

// Unregister removes the subscription with the given id. It reports whether
// the subscription was found.
func (m *Messenger) Unregister(message string, id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.actions[message]
	if !ok {
		return false
	}

	remaining := slices.DeleteFunc(actions, func(a *weakAction) bool {
		if a.id != id {
			return false
		}
		a.removed.Store(true)
		return true
	})
	if len(remaining) == len(actions) {
		return false
	}
	if len(remaining) == 0 {
		delete(m.actions, message)
	} else {
		m.actions[message] = remaining
	}
	m.logger.Debug("messenger: unsubscribed", "message", message, "id", id)
	return true
}

// NotifyColleagues invokes every live callback registered for message, in
// registration order, on the calling goroutine. Callbacks for message must
// take no payload.
//
// A panicking callback is not recovered: the panic reaches the caller and
// the callbacks after it are not invoked.
func (m *Messenger) NotifyColleagues(message string) error {
	return m.notify(message, Signature{}, nil)
}

// NotifyColleaguesWith is NotifyColleagues for callbacks taking a T payload.
// T must be exactly the payload type the callbacks were registered with.
func NotifyColleaguesWith[T any](m *Messenger, message string, payload T) error {
	return m.notify(message, SignatureOf[T](), payload)
}

func (m *Messenger) notify(message string, sig Signature, payload any) error {
	if message == "" {
		return errEmptyMessage(message)
	}

	actions, err := m.lookup(message, sig)
	if err != nil {
		return err
	}

	// Earlier callbacks may unsubscribe later ones or let their targets die,
	// so check each again before invoking it.
	for _, a := range actions {
		if a.removed.Load() {
			continue
		}
		if call := a.resolve(); call != nil {
			call(payload)
		}
	}
	return nil
}

// lookup checks sig against the live callbacks of message, drops the dead
// ones and returns the callbacks to deliver to in registration order.
// Nothing is modified when the signatures disagree.
func (m *Messenger) lookup(message string, sig Signature) ([]*weakAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.actions[message]
	if !ok {
		return nil, nil
	}

	live := make([]*weakAction, 0, len(actions))
	for _, a := range actions {
		if a.alive() {
			live = append(live, a)
		}
	}

	if len(live) > 0 && live[0].signature != sig {
		return nil, mismatch(message, live[0].signature, sig)
	}

	if purged := len(actions) - len(live); purged > 0 {
		m.logger.Debug("messenger: purged dead callbacks", "message", message, "count", purged)
	}
	if len(live) == 0 {
		delete(m.actions, message)
		return nil, nil
	}
	m.actions[message] = live

	deliver := make([]*weakAction, 0, len(live))
	for _, a := range live {
		// Only reachable with verification off.
		if a.signature != sig {
			m.logger.Debug("messenger: skipped callback with inconsistent signature",
				"message", message, "id", a.id, "signature", a.signature.String(), "expected", sig.String())
			continue
		}
		deliver = append(deliver, a)
	}
	return deliver, nil
}

func mismatch(message string, registered, sent Signature) *Error {
	var detail string
	switch {
	case !registered.HasPayload():
		detail = fmt.Sprintf("cannot pass a %s payload with message %q, registered callbacks expect none",
			sent.PayloadType(), message)
	case !sent.HasPayload():
		detail = fmt.Sprintf("message %q must carry a %s payload, registered callbacks expect it",
			message, registered.PayloadType())
	default:
		detail = fmt.Sprintf("message %q carries %s, got %s",
			message, registered.PayloadType(), sent.PayloadType())
	}
	return &Error{
		Kind:     ErrSignatureMismatch,
		Message:  message,
		Expected: registered,
		Actual:   sent,
		Detail:   detail,
	}
}

// Len returns the number of callbacks stored for message, including dead
// ones that have not been purged yet.
func (m *Messenger) Len(message string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.actions[message])
}

// Messages returns the message names that currently have callbacks, sorted.
func (m *Messenger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Sorted(maps.Keys(m.actions))
}
