// Package input turns polled device state into per-frame movement flags,
// mouse deltas and scroll deltas.
package input

// Sample is a snapshot of the devices taken once per frame
type Sample struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	CursorX float64
	CursorY float64
}

// State holds the input consumed by the camera for the current frame.
// It is overwritten in place every frame.
type State struct {
	// Movement flags mirror the held keys of the latest sample
	MoveForward  bool
	MoveBackward bool
	MoveLeft     bool
	MoveRight    bool

	// Mouse state
	LastMouseX       float32
	LastMouseY       float32
	MouseDX          float32
	MouseDY          float32
	mouseInitialized bool

	// Scroll state, CurrentScroll is fed by scroll events between frames
	CurrentScroll float32
	LastScroll    float32
	ScrollDelta   float32
}

// Update samples the devices for a new frame. Mouse and scroll deltas are
// relative to the previous call; the first call after creation or
// ResetMouse always yields a zero mouse delta.
func (s *State) Update(sample Sample) {
	s.MoveForward = sample.Forward
	s.MoveBackward = sample.Backward
	s.MoveLeft = sample.Left
	s.MoveRight = sample.Right

	x := float32(sample.CursorX)
	y := float32(sample.CursorY)
	if !s.mouseInitialized {
		s.LastMouseX = x
		s.LastMouseY = y
		s.mouseInitialized = true
	}

	s.MouseDX = x - s.LastMouseX
	s.MouseDY = s.LastMouseY - y // screen y grows downwards
	s.LastMouseX = x
	s.LastMouseY = y

	s.ScrollDelta = s.CurrentScroll - s.LastScroll
	s.LastScroll = s.CurrentScroll
}

// AddScroll accumulates a vertical scroll offset until the next Update
func (s *State) AddScroll(yOffset float64) {
	s.CurrentScroll += float32(yOffset)
}

// ResetMouse makes the next Update treat the cursor position as the new
// origin, e.g. after the cursor was captured or released.
func (s *State) ResetMouse() {
	s.mouseInitialized = false
}

// Moving reports whether any movement flag is set
func (s *State) Moving() bool {
	return s.MoveForward || s.MoveBackward || s.MoveLeft || s.MoveRight
}
