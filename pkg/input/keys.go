package input

// Key identifies a keyboard key the application reacts to. The windowing
// layer translates its own key codes into these values.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyC
	KeyEscape
	KeyF8
)

// Action is the state change reported with a key event
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyC:
		return "C"
	case KeyEscape:
		return "Escape"
	case KeyF8:
		return "F8"
	default:
		return "Unknown"
	}
}

// EventSink receives window events as they are delivered during polling.
// Implementations run on the thread that owns the window.
type EventSink interface {
	FramebufferResized(width, height int)
	KeyChanged(key Key, action Action)
	Scrolled(xOffset, yOffset float64)
}
