package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	messenger "github.com/jonoton/go-messenger"
)

type logView struct {
	name  string
	lines int
}

func (v *logView) LogAppended() {
	v.lines++
	fmt.Printf("(%s) log appended, %d lines seen\n", v.name, v.lines)
}

func (v *logView) ValueChanged(n int) {
	fmt.Printf("(%s) value changed to %d\n", v.name, n)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := messenger.New(messenger.WithLogger(logger))

	kept := &logView{name: "kept"}
	messenger.RegisterTarget(m, "Log Appended", kept, (*logView).LogAppended)
	messenger.RegisterTargetWith(m, "Value Changed", kept, (*logView).ValueChanged)

	// Registered and immediately forgotten.
	messenger.RegisterTarget(m, "Log Appended", &logView{name: "temporary"}, (*logView).LogAppended)

	// Free functions stay registered until unsubscribed.
	sub, _ := m.Register("Log Appended", func() { fmt.Println("(func) log appended") })

	fmt.Println("\n--- Notifying 'Log Appended' ---")
	m.NotifyColleagues("Log Appended")

	fmt.Println("\n--- Collecting garbage ---")
	runtime.GC()
	m.NotifyColleagues("Log Appended")
	fmt.Printf("'Log Appended' now has %d subscribers\n", m.Len("Log Appended"))

	fmt.Println("\n--- Unsubscribing the func ---")
	sub.Unsubscribe()
	m.NotifyColleagues("Log Appended")

	fmt.Println("\n--- Payloads ---")
	messenger.NotifyColleaguesWith(m, "Value Changed", 42)
	if err := m.NotifyColleagues("Value Changed"); errors.Is(err, messenger.ErrSignatureMismatch) {
		fmt.Println("Correctly caught signature mismatch:", err)
	}
	if _, err := m.Register("Value Changed", func() {}); errors.Is(err, messenger.ErrInconsistentSignature) {
		fmt.Println("Correctly caught inconsistent registration:", err)
	}

	runtime.KeepAlive(kept)
}
