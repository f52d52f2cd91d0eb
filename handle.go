package locale

import "sync/atomic"

// Handle publishes the current Engine to concurrent readers. An Engine is
// immutable once built; reloading locale data means building a fresh Engine
// and swapping it in whole.
type Handle struct {
	current atomic.Pointer[Engine]
}

// NewHandle returns a Handle holding e.
func NewHandle(e *Engine) *Handle {
	h := &Handle{}
	h.current.Store(e)
	return h
}

// Current returns the Engine most recently stored. Callers should grab it
// once per unit of work so one generation serves the whole unit.
func (h *Handle) Current() *Engine {
	return h.current.Load()
}

// Swap publishes e and returns the previous Engine. In-flight work keeps
// using the generation it already holds.
func (h *Handle) Swap(e *Engine) *Engine {
	return h.current.Swap(e)
}
