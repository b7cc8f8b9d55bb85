package ring

import (
	"fmt"

	"github.com/sarchlab/ringwalk/hooking"
	"github.com/sarchlab/ringwalk/timing"
)

// HookPosBeforeTick fires before a tick starts. Item is the tick number.
var HookPosBeforeTick = &hooking.HookPos{Name: "BeforeTick"}

// HookPosMove fires after every node-level move attempt. Item is a
// MoveAttempt.
var HookPosMove = &hooking.HookPos{Name: "Move"}

// HookPosAfterTick fires when a tick completes. Item is the tick number and
// Detail a copy of the state.
var HookPosAfterTick = &hooking.HookPos{Name: "AfterTick"}

// MoveAttempt describes one node's decision within a tick.
type MoveAttempt struct {
	Tick      int
	Node      int
	Neighbor  int
	Direction Direction
	Moved     bool
}

// A Scheduler drives one run of the ring process.
type Scheduler interface {
	hooking.Hookable
	timing.Handler

	// Run advances initial through all ticks and returns the recorded
	// History. Configuration problems are reported before anything runs.
	Run(initial State) (*History, error)

	// State returns a copy of the current working state.
	State() State

	// Strategy tells how the scheduler applies moves.
	Strategy() UpdateStrategy
}

// NewScheduler returns the scheduler for cfg.Dynamics.
func NewScheduler(cfg Config, source DirectionSource) (Scheduler, error) {
	switch cfg.Dynamics {
	case Synchronous:
		return NewSynchronousScheduler(cfg, source), nil
	case Sequential:
		return NewSequentialScheduler(cfg, source), nil
	default:
		return nil, configErrorf("dynamics_type", cfg.Dynamics,
			"must be %q or %q", Synchronous, Sequential)
	}
}

// Simulate validates cfg, initializes the ring and runs the matching
// scheduler.
func Simulate(cfg Config, source DirectionSource) (*History, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	initial, err := Initialize(cfg.NumNodes, cfg.InitialOccupancy, cfg.Capacity)
	if err != nil {
		return nil, err
	}

	s, err := NewScheduler(cfg, source)
	if err != nil {
		return nil, err
	}

	return s.Run(initial)
}

// tickingScheduler holds what both disciplines share: the tick loop on a
// serial engine, hook invocation and history bookkeeping.
type tickingScheduler struct {
	*hooking.HookableBase

	cfg     Config
	cadence Cadence
	source  DirectionSource
	self    Scheduler
	tickFn  func(t int) error

	engine  *timing.SerialEngine
	state   State
	history *History
}

func newTickingScheduler(
	cfg Config,
	dynamics Dynamics,
	source DirectionSource,
) *tickingScheduler {
	cfg.Dynamics = dynamics

	return &tickingScheduler{
		HookableBase: hooking.NewHookableBase(),
		cfg:          cfg,
		source:       source,
	}
}

func (s *tickingScheduler) Run(initial State) (*History, error) {
	if err := s.cfg.validateHorizon(); err != nil {
		return nil, err
	}

	cadence, err := s.cfg.EffectiveCadence()
	if err != nil {
		return nil, err
	}

	if err := s.cfg.validateSampling(cadence); err != nil {
		return nil, err
	}

	if s.cfg.NumNodes < 1 {
		return nil, configErrorf("num_nodes", s.cfg.NumNodes,
			"node count must be >= 1")
	}

	if len(initial) != s.cfg.NumNodes {
		return nil, configErrorf("num_nodes", s.cfg.NumNodes,
			"initial state has %d nodes", len(initial))
	}

	if s.source == nil {
		return nil, fmt.Errorf("ring: no direction source")
	}

	s.cadence = cadence
	s.state = initial.Clone()
	s.history = NewHistory(s.state, s.cfg.CollectionTime)
	s.engine = timing.NewSerialEngine()

	s.engine.Schedule(timing.MakeTickEvent(s.self, 1))

	if err := s.engine.Run(); err != nil {
		return nil, err
	}

	return s.history, nil
}

// Handle runs one tick and schedules the following one.
func (s *tickingScheduler) Handle(event any) error {
	evt, ok := event.(*timing.TickEvent)
	if !ok {
		return fmt.Errorf("ring: unexpected event type %T", event)
	}

	t := int(evt.Tick)

	s.InvokeHook(hooking.HookCtx{
		Domain: s.self,
		Pos:    HookPosBeforeTick,
		Item:   t,
	})

	if err := s.tickFn(t); err != nil {
		return err
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s.self,
		Pos:    HookPosAfterTick,
		Item:   t,
		Detail: s.state.Clone(),
	})

	if t < s.cfg.TimeSteps {
		s.engine.Schedule(timing.MakeTickEvent(s.self, evt.Tick+1))
	}

	return nil
}

func (s *tickingScheduler) nextDirection() (Direction, error) {
	d := s.source.Next()
	if !d.Valid() {
		return d, fmt.Errorf("ring: direction source produced %v", d)
	}

	return d, nil
}

func (s *tickingScheduler) reportMove(
	t, node, neighbor int,
	d Direction,
	moved bool,
) {
	if s.NumHooks() == 0 {
		return
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s.self,
		Pos:    HookPosMove,
		Item: MoveAttempt{
			Tick:      t,
			Node:      node,
			Neighbor:  neighbor,
			Direction: d,
			Moved:     moved,
		},
	})
}

func (s *tickingScheduler) State() State {
	return s.state.Clone()
}

// Config returns the parameters the scheduler was built with.
func (s *tickingScheduler) Config() Config {
	return s.cfg
}
