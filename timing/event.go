package timing

// VTimeInCycle is the simulated time measured in ticks.
type VTimeInCycle uint64

// Handler processes events delivered by an engine. Events are plain data;
// handlers use type switches to tell them apart.
type Handler interface {
	Handle(event any) error
}

// TimeTeller exposes the current simulation cycle.
type TimeTeller interface {
	CurrentTime() VTimeInCycle
}

// EventScheduler schedules events in the simulation timeline.
type EventScheduler interface {
	TimeTeller
	Schedule(event ScheduledEvent)
}

// ScheduledEvent is the engine-facing wrapper for user-defined events.
type ScheduledEvent struct {
	// Event is the payload delivered to the handler.
	Event any

	// Time is the cycle when the event should be processed.
	Time VTimeInCycle

	// Handler is the component that will process this event.
	Handler Handler

	// IsSecondary events run after all primary events of the same cycle.
	IsSecondary bool
}

// TickEvent asks a ticking component to advance by one time step.
type TickEvent struct {
	Tick VTimeInCycle
}

// MakeTickEvent wraps a tick for the given handler at the given cycle.
func MakeTickEvent(handler Handler, tick VTimeInCycle) ScheduledEvent {
	return ScheduledEvent{
		Event:   &TickEvent{Tick: tick},
		Time:    tick,
		Handler: handler,
	}
}
