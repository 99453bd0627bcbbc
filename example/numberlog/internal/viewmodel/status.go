package viewmodel

import (
	"fmt"

	messenger "github.com/jonoton/go-messenger"
)

// Status summarises the demo: how many log lines were appended and the
// last value seen. It holds no reference to what it observes.
type Status struct {
	Name      string
	Appended  int
	LastValue int
	Seen      bool
}

// NewStatus creates a Status subscribed weakly to MsgLogAppended and
// MsgValueChanged.
func NewStatus(m *messenger.Messenger, name string) (*Status, error) {
	s := &Status{Name: name}
	if _, err := messenger.RegisterTarget(m, MsgLogAppended, s, (*Status).logAppended); err != nil {
		return nil, err
	}
	if _, err := messenger.RegisterTargetWith(m, MsgValueChanged, s, (*Status).valueChanged); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Status) logAppended() {
	s.Appended++
}

func (s *Status) valueChanged(v int) {
	s.LastValue = v
	s.Seen = true
}

func (s *Status) String() string {
	if !s.Seen {
		return fmt.Sprintf("%s: %d log lines", s.Name, s.Appended)
	}
	return fmt.Sprintf("%s: %d log lines, value %d", s.Name, s.Appended, s.LastValue)
}
