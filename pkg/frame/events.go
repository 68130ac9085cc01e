package frame

import (
	"github.com/leterax/go-cubes/internal/log"
	"github.com/leterax/go-cubes/pkg/input"
)

// Surface is the part of the window and graphics state that key and
// resize events act on.
type Surface interface {
	SetViewport(width, height int)
	SetWireframe(enabled bool)
	SetCursorCaptured(captured bool)
	RequestClose()
}

// AspectSetter receives the new framebuffer size after a resize
type AspectSetter interface {
	SetAspect(width, height int)
}

// Handler routes window events into the frame state. It replaces what
// would otherwise be process-wide flags reached from window callbacks.
type Handler struct {
	input   *input.State
	surface Surface
	aspect  AspectSetter

	wireframe      bool
	cursorCaptured bool
	closeRequested bool
}

var _ input.EventSink = (*Handler)(nil)

// NewHandler creates a handler writing into state. cursorCaptured is the
// capture mode the window was created with.
func NewHandler(state *input.State, surface Surface, aspect AspectSetter, cursorCaptured bool) *Handler {
	return &Handler{
		input:          state,
		surface:        surface,
		aspect:         aspect,
		cursorCaptured: cursorCaptured,
	}
}

// FramebufferResized re-applies the viewport for the new framebuffer size
func (h *Handler) FramebufferResized(width, height int) {
	h.surface.SetViewport(width, height)
	if h.aspect != nil {
		h.aspect.SetAspect(width, height)
	}
}

// KeyChanged handles the one-shot keys. Held movement keys are sampled
// by polling instead.
func (h *Handler) KeyChanged(key input.Key, action input.Action) {
	if action != input.Press {
		return
	}

	switch key {
	case input.KeyEscape:
		h.closeRequested = true
		h.surface.RequestClose()
	case input.KeyF8:
		h.wireframe = !h.wireframe
		h.surface.SetWireframe(h.wireframe)
		log.Debug("wireframe mode: %v", h.wireframe)
	case input.KeyC:
		h.cursorCaptured = !h.cursorCaptured
		h.surface.SetCursorCaptured(h.cursorCaptured)
		h.input.ResetMouse()
	}
}

// Scrolled accumulates the vertical offset until the next input update
func (h *Handler) Scrolled(_, yOffset float64) {
	h.input.AddScroll(yOffset)
}

func (h *Handler) CloseRequested() bool {
	return h.closeRequested
}

func (h *Handler) Wireframe() bool {
	return h.wireframe
}

func (h *Handler) CursorCaptured() bool {
	return h.cursorCaptured
}

// Input returns the state the handler writes into
func (h *Handler) Input() *input.State {
	return h.input
}
