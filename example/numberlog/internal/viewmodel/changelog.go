package viewmodel

import (
	"fmt"
	"slices"

	messenger "github.com/jonoton/go-messenger"
)

// ChangeLog records a line for every change of its Number and broadcasts
// MsgLogAppended after each line.
type ChangeLog struct {
	messenger *messenger.Messenger
	number    *Number
	lines     []string
}

// NewChangeLog creates a log observing number. The log is only weakly
// registered, so it stops observing once it is no longer referenced.
func NewChangeLog(m *messenger.Messenger, number *Number) (*ChangeLog, error) {
	l := &ChangeLog{messenger: m, number: number}
	if _, err := messenger.RegisterTargetWith(m, MsgPropertyChanged, l, (*ChangeLog).propertyChanged); err != nil {
		return nil, fmt.Errorf("failed to observe number: %w", err)
	}
	return l, nil
}

func (l *ChangeLog) Number() *Number {
	return l.number
}

// Lines returns a copy of the log.
func (l *ChangeLog) Lines() []string {
	return slices.Clone(l.lines)
}

func (l *ChangeLog) Len() int {
	return len(l.lines)
}

func (l *ChangeLog) propertyChanged(c PropertyChanged) {
	if c.Source != l.number {
		return
	}

	n := l.number
	switch c.Name {
	case PropValue:
		l.append(fmt.Sprintf("Value: %d", n.Value()))
	case PropIsEven:
		if n.IsEven() {
			l.append("\tNumber is now even")
		} else {
			l.append("\tNumber is now odd")
		}
	case PropIsNegative:
		if n.IsNegative() {
			l.append("\tNumber is now negative")
		} else {
			l.append("\tNumber is now positive")
		}
	}
}

func (l *ChangeLog) append(line string) {
	l.lines = append(l.lines, line)
	// Subscribers of this message take no payload; an error here is a
	// wiring bug elsewhere in the program.
	if err := l.messenger.NotifyColleagues(MsgLogAppended); err != nil {
		panic(err)
	}
}
