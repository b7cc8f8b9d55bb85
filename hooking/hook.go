// Package hooking lets observers attach to the schedulers and the tick engine
// without changing what they compute.
package hooking

// HookPos names a place where hooks fire. Positions are compared by pointer.
type HookPos struct {
	Name string
}

// HookCtx describes one hook invocation.
type HookCtx struct {
	// Domain is the object firing the hook.
	Domain Hookable

	// Pos tells where in Domain the hook fires.
	Pos *HookPos

	// Item is the subject of the invocation, such as an event, a tick number
	// or a move attempt.
	Item any

	// Detail is optional extra data. It may be nil.
	Detail any
}

// Hookable is implemented by objects that fire hooks.
type Hookable interface {
	// AcceptHook registers hook. Hooks are registered before a run starts
	// and cannot be removed.
	AcceptHook(hook Hook)

	NumHooks() int
	Hooks() []Hook

	// InvokeHook calls every registered hook in registration order.
	InvokeHook(ctx HookCtx)
}

// Hook observes a Hookable.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc turns a function into a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// HookableBase implements Hookable and is meant to be embedded.
type HookableBase struct {
	hooks []Hook
}

// NewHookableBase creates a HookableBase with no hooks.
func NewHookableBase() *HookableBase {
	return &HookableBase{}
}

// NumHooks returns how many hooks are registered.
func (b *HookableBase) NumHooks() int {
	return len(b.hooks)
}

// Hooks returns the registered hooks.
func (b *HookableBase) Hooks() []Hook {
	return b.hooks
}

// AcceptHook registers hook. Registering the same hook value twice panics;
// HookFunc values are not compared.
func (b *HookableBase) AcceptHook(hook Hook) {
	if _, ok := hook.(HookFunc); !ok {
		for _, h := range b.hooks {
			if h == hook {
				panic("hooking: hook registered twice")
			}
		}
	}

	b.hooks = append(b.hooks, hook)
}

// InvokeHook calls every registered hook with ctx.
func (b *HookableBase) InvokeHook(ctx HookCtx) {
	for _, h := range b.hooks {
		h.Func(ctx)
	}
}

var _ Hookable = (*HookableBase)(nil)
