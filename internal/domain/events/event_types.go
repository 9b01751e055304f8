package events

// EventType represents the type of application event
type EventType int

const (
	// Resolution events
	AfterResolve EventType = iota

	// Saving throw events
	AfterSavingThrow

	// Hit point events
	BeforeApplyDamage
	AfterApplyDamage
	BeforeApplyTempHP
	AfterApplyTempHP

	// Session events
	OnSessionOpen
	OnSessionClose
)

// String returns the string representation of the event type
func (e EventType) String() string {
	names := [...]string{
		"AfterResolve",
		"AfterSavingThrow",
		"BeforeApplyDamage",
		"AfterApplyDamage",
		"BeforeApplyTempHP",
		"AfterApplyTempHP",
		"OnSessionOpen",
		"OnSessionClose",
	}
	if e < AfterResolve || int(e) >= len(names) {
		return "Unknown"
	}
	return names[e]
}
