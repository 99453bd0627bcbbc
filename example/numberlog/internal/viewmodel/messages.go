// Package viewmodel holds the view models of the number change log demo.
// They never refer to the views observing them; views subscribe through a
// shared messenger.Messenger.
package viewmodel

// Message names shared by publishers and subscribers.
const (
	MsgLogAppended     = "Log Appended"
	MsgValueChanged    = "Value Changed"    // payload: int
	MsgPropertyChanged = "Property Changed" // payload: PropertyChanged
)

// Property names raised by Number.
const (
	PropValue      = "Value"
	PropIsEven     = "IsEven"
	PropIsNegative = "IsNegative"
)

// PropertyChanged is the payload of MsgPropertyChanged.
type PropertyChanged struct {
	Source *Number
	Name   string
}
