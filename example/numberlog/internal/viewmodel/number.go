package viewmodel

import (
	messenger "github.com/jonoton/go-messenger"
)

// Number is an integer that announces its changes.
type Number struct {
	messenger *messenger.Messenger
	value     int
}

// NewNumber creates a Number starting at start. No change is announced for
// the initial value.
func NewNumber(m *messenger.Messenger, start int) *Number {
	return &Number{messenger: m, value: start}
}

func (n *Number) Value() int {
	return n.value
}

func (n *Number) IsEven() bool {
	return n.value%2 == 0
}

func (n *Number) IsNegative() bool {
	return n.value < 0
}

// SetValue changes the value and raises Value, then IsEven and IsNegative
// when they flipped, then MsgValueChanged with the new value.
func (n *Number) SetValue(v int) error {
	if v == n.value {
		return nil
	}

	wasEven := n.IsEven()
	wasNegative := n.IsNegative()
	n.value = v

	if err := n.raise(PropValue); err != nil {
		return err
	}
	if wasEven != n.IsEven() {
		if err := n.raise(PropIsEven); err != nil {
			return err
		}
	}
	if wasNegative != n.IsNegative() {
		if err := n.raise(PropIsNegative); err != nil {
			return err
		}
	}
	return messenger.NotifyColleaguesWith(n.messenger, MsgValueChanged, v)
}

func (n *Number) Increment() error {
	return n.SetValue(n.value + 1)
}

func (n *Number) Decrement() error {
	return n.SetValue(n.value - 1)
}

func (n *Number) raise(name string) error {
	return messenger.NotifyColleaguesWith(n.messenger, MsgPropertyChanged, PropertyChanged{Source: n, Name: name})
}
