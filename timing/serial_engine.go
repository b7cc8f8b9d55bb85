package timing

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/sarchlab/ringwalk/hooking"
)

// HookPosBeforeEvent fires before an event is handled. Item is the
// ScheduledEvent.
var HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent fires after an event is handled successfully.
var HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}

// SerialEngine delivers scheduled events one at a time in cycle order.
type SerialEngine struct {
	*hooking.HookableBase

	runLock sync.Mutex
	nowLock sync.RWMutex
	now     VTimeInCycle
	queue   *eventQueue
}

// NewSerialEngine creates an engine with an empty queue at cycle 0.
func NewSerialEngine() *SerialEngine {
	return &SerialEngine{
		HookableBase: hooking.NewHookableBase(),
		queue:        newEventQueue(),
	}
}

// Schedule queues evt. Scheduling before the current cycle panics.
func (e *SerialEngine) Schedule(evt ScheduledEvent) {
	if now := e.CurrentTime(); evt.Time < now {
		panic(fmt.Sprintf(
			"timing: cannot schedule %s @ %d, already at %d",
			reflect.TypeOf(evt.Event), evt.Time, now,
		))
	}

	e.queue.push(evt)
}

// Run handles events until none are left. A handler error stops the engine
// and is returned wrapped; the remaining events stay queued.
func (e *SerialEngine) Run() error {
	e.runLock.Lock()
	defer e.runLock.Unlock()

	for {
		evt, ok := e.queue.pop()
		if !ok {
			return nil
		}

		e.nowLock.Lock()
		e.now = evt.Time
		e.nowLock.Unlock()

		if err := e.handle(evt); err != nil {
			return err
		}
	}
}

func (e *SerialEngine) handle(evt ScheduledEvent) error {
	ctx := hooking.HookCtx{Domain: e, Pos: HookPosBeforeEvent, Item: evt}
	e.InvokeHook(ctx)

	if evt.Handler != nil {
		if err := evt.Handler.Handle(evt.Event); err != nil {
			return fmt.Errorf("timing: handling %s @ %d: %w",
				reflect.TypeOf(evt.Event), evt.Time, err)
		}
	}

	ctx.Pos = HookPosAfterEvent
	e.InvokeHook(ctx)

	return nil
}

// CurrentTime returns the cycle of the event being or last handled.
func (e *SerialEngine) CurrentTime() VTimeInCycle {
	e.nowLock.RLock()
	defer e.nowLock.RUnlock()

	return e.now
}

// Pending returns the number of queued events.
func (e *SerialEngine) Pending() int {
	return e.queue.len()
}

var _ EventScheduler = (*SerialEngine)(nil)
