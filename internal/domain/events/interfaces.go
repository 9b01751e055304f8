package events

//go:generate mockgen -destination=mock/mock_event_listener.go -package=mockevents -source=interfaces.go

// EventListener observes resolution, save and hit point events. Lower
// priority runs first; a listener may Cancel a Before* event to keep the
// host from being written.
type EventListener interface {
	HandleEvent(event *GameEvent) error
	Priority() int
}

// Bus is what the application service emits on
type Bus interface {
	Subscribe(eventType EventType, listener EventListener)
	Unsubscribe(eventType EventType, listener EventListener)
	Emit(event *GameEvent) error
	Clear()
	ListenerCount(eventType EventType) int
}
