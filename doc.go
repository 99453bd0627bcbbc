/*
Package messenger implements a loosely-coupled, in-process notification
system in which every subscriber is held by a weak reference.

Components that should not keep each other alive (a log view and the view
model writing to the log, a status bar and the documents it reports on)
talk through a shared Messenger using plain string message names. A
subscriber registers once and never has to unregister: when it is garbage
collected its subscription dies with it and is dropped the next time the
message is broadcast.

# Key Features

  - Weak Subscribers: RegisterTarget and RegisterTargetWith keep only a
    weak.Pointer to the target. Free functions registered with Register or
    RegisterWith stay alive until they are unsubscribed.

  - Payload Signatures: each message carries either no payload or a payload
    of one exact Go type. NotifyColleagues and NotifyColleaguesWith return an
    ErrSignatureMismatch error instead of delivering the wrong shape.

  - Verification: with verification enabled (the default, turned off by the
    messenger_release build tag or WithVerification(false)), registering a
    callback whose signature disagrees with the live callbacks of the same
    message fails with ErrInconsistentSignature.

  - Ordered, Synchronous Delivery: callbacks run on the notifying goroutine
    in registration order. The registry lock is not held while they run, so
    a callback may register, unsubscribe or notify again.

  - Fail Fast: a panic in a callback is not recovered. It reaches the caller
    of NotifyColleagues and the remaining callbacks of that batch are skipped.

# Usage Examples

# Creating a Messenger

A Messenger has no global instance. Create one at the composition root and
hand it to every component that publishes or subscribes.

	m := messenger.New()

	// Log debug output (registrations, purges) through your own logger.
	m = messenger.New(messenger.WithLogger(logger))

# Registering Weak Subscribers

Bind callbacks to a target with a method expression. A closure that
captures the target would keep it alive forever.

	type StatusView struct{ lines int }

	func (v *StatusView) LogAppended()         { v.lines++ }
	func (v *StatusView) ValueChanged(n int)   { fmt.Println("value:", n) }

	view := &StatusView{}
	messenger.RegisterTarget(m, "Log Appended", view, (*StatusView).LogAppended)
	messenger.RegisterTargetWith(m, "Value Changed", view, (*StatusView).ValueChanged)

# Broadcasting

	if err := m.NotifyColleagues("Log Appended"); err != nil {
		// err is a *messenger.Error; it only occurs for bad call sites.
	}

	// The payload type must match the registered signature exactly.
	err := messenger.NotifyColleaguesWith(m, "Value Changed", 42)

	// Fails with messenger.ErrSignatureMismatch: "Value Changed" carries an int.
	err = m.NotifyColleagues("Value Changed")
	if errors.Is(err, messenger.ErrSignatureMismatch) {
		// ...
	}

# Known Hazard

If a callback drops the last reference to a subscriber that comes later in
the same batch, whether that subscriber still runs depends on whether the
garbage collector has reclaimed it by the time it is reached. The Messenger
makes no stronger guarantee.

Targets smaller than 16 bytes that hold no pointers, such as
struct{ dirty bool } or struct{ n int }, are packed together with other
small allocations. A weak reference to one of them stays valid as long as
anything sharing its memory block is alive, so the subscription may outlive
the target and keep being delivered to. Targets with a pointer field, or of
16 bytes or more, are collected on their own.
*/
package messenger
