package locale

import "fmt"

// RendererCapabilities describes what a rendering backend can draw.
type RendererCapabilities struct {
	Text   bool
	Raster bool
	Vector bool
	Alpha  bool
}

// Satisfies reports whether c covers every capability want asks for.
func (c RendererCapabilities) Satisfies(want RendererCapabilities) bool {
	if want.Text && !c.Text {
		return false
	}
	if want.Raster && !c.Raster {
		return false
	}
	if want.Vector && !c.Vector {
		return false
	}
	if want.Alpha && !c.Alpha {
		return false
	}
	return true
}

func mergeCapabilities(a, b RendererCapabilities) RendererCapabilities {
	return RendererCapabilities{
		Text:   a.Text || b.Text,
		Raster: a.Raster || b.Raster,
		Vector: a.Vector || b.Vector,
		Alpha:  a.Alpha || b.Alpha,
	}
}

// Renderer is a registered rendering backend. Renderers receive text the
// Engine has already normalized; they never do locale work themselves.
type Renderer interface {
	Name() string
	Capabilities() RendererCapabilities
}

// StaticRenderer is a fixed name and capability set, enough for selection.
type StaticRenderer struct {
	RendererName string
	Caps         RendererCapabilities
}

func (r StaticRenderer) Name() string { return r.RendererName }

func (r StaticRenderer) Capabilities() RendererCapabilities { return r.Caps }

// SelectRenderer returns the first registered renderer satisfying every
// capability in want. Registration order is the preference order.
func (e *Engine) SelectRenderer(want RendererCapabilities) (Renderer, error) {
	for _, r := range e.renderers {
		if r.Capabilities().Satisfies(want) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w for %+v", ErrNoRenderer, want)
}

// Renderers returns the registered renderers in registration order.
func (e *Engine) Renderers() []Renderer {
	out := make([]Renderer, len(e.renderers))
	copy(out, e.renderers)
	return out
}

// Capabilities returns the union of all registered renderer capabilities.
func (e *Engine) Capabilities() RendererCapabilities {
	var merged RendererCapabilities
	for _, r := range e.renderers {
		merged = mergeCapabilities(merged, r.Capabilities())
	}
	return merged
}
