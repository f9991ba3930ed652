package reader

// Frame is what a front end needs to draw the current state. Prefix, Anchor
// and Suffix concatenate to the current unit's text.
type Frame struct {
	Prefix string
	Anchor string
	Suffix string
	Index  int // one-based, 0 for an empty document
	Total  int
	Held   bool
	Reason StopReason
}

// Text returns the full unit text.
func (f Frame) Text() string {
	return f.Prefix + f.Anchor + f.Suffix
}

// Renderer receives a Frame after every state-affecting operation.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

func (f RendererFunc) Render(fr Frame) { f(fr) }

// Cursor is the external text cursor the session repositions when the user
// releases playback.
type Cursor interface {
	MoveTo(offset int)
}

// CursorFunc adapts a function to Cursor.
type CursorFunc func(offset int)

func (f CursorFunc) MoveTo(offset int) { f(offset) }

// InputSignal is the edge-triggered boundary between an input device and the
// scheduler. Adapters are responsible for discarding key repeats.
type InputSignal interface {
	OnEngageEdge()
	OnDisengageEdge()
}
