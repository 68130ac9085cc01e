// Package frame drives the per-frame sequence: poll input, move the camera,
// draw the scene and present it.
package frame

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/internal/log"
	"github.com/leterax/go-cubes/pkg/camera"
	"github.com/leterax/go-cubes/pkg/input"
)

// State of the frame loop
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Platform is the window and device side of a frame
type Platform interface {
	// Time returns seconds from a monotonic clock
	Time() float64
	// PollEvents delivers queued window events to the registered sink
	PollEvents()
	Sample() input.Sample
	ShouldClose() bool
	SwapBuffers()
}

// Backend issues the draw work of a frame
type Backend interface {
	Clear()
	// BeginScene binds the shader, textures and mesh and uploads the
	// camera matrices.
	BeginScene(view, projection mgl32.Mat4)
	Draw(model mgl32.Mat4)
}

// Loop owns the per-frame state and runs on the window thread
type Loop struct {
	platform Platform
	backend  Backend
	handler  *Handler
	camera   *camera.Camera
	scene    *Scene

	state     State
	lastTime  float64
	deltaTime float32
	frames    uint64

	fpsTime   float64
	fpsFrames int
}

// New creates a loop in the Running state
func New(platform Platform, backend Backend, handler *Handler, cam *camera.Camera, scene *Scene) *Loop {
	now := platform.Time()
	return &Loop{
		platform: platform,
		backend:  backend,
		handler:  handler,
		camera:   cam,
		scene:    scene,
		state:    Running,
		lastTime: now,
		fpsTime:  now,
	}
}

// Step runs one frame and returns the resulting state. Once Closing is
// reached no more frames are rendered.
func (l *Loop) Step() State {
	if l.state == Closing {
		return l.state
	}
	if l.handler.CloseRequested() || l.platform.ShouldClose() {
		l.state = Closing
		log.Debug("frame loop %s after %d frames", l.state, l.frames)
		return l.state
	}

	currentTime := l.platform.Time()
	l.deltaTime = float32(currentTime - l.lastTime)
	l.lastTime = currentTime

	l.platform.PollEvents()
	in := l.handler.Input()
	in.Update(l.platform.Sample())
	l.camera.ProcessInput(in, l.deltaTime)

	l.backend.Clear()

	l.camera.UpdateViewMat()
	l.camera.UpdateProjMat()
	l.backend.BeginScene(l.camera.ViewMat(), l.camera.ProjMat())

	for i := 0; i < l.scene.Len(); i++ {
		l.backend.Draw(l.scene.Model(i))
	}

	l.platform.SwapBuffers()

	l.frames++
	l.reportFPS(currentTime)

	return l.state
}

// Run steps until the loop is closing and returns the number of frames drawn
func (l *Loop) Run() uint64 {
	for l.Step() == Running {
	}
	return l.frames
}

func (l *Loop) reportFPS(now float64) {
	l.fpsFrames++
	if elapsed := now - l.fpsTime; elapsed >= 1 {
		log.Debug("%.1f fps, camera at %v", float64(l.fpsFrames)/elapsed, l.camera.Position())
		l.fpsTime = now
		l.fpsFrames = 0
	}
}

func (l *Loop) State() State {
	return l.state
}

// DeltaTime returns the duration of the last frame in seconds
func (l *Loop) DeltaTime() float32 {
	return l.deltaTime
}

func (l *Loop) Frames() uint64 {
	return l.frames
}
