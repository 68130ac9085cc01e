package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/pkg/input"
)

const eps = 1e-5

func TestNewDefaults(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, DefaultFOV)

	yaw, pitch := c.Orientation()
	if yaw != DefaultYaw || pitch != DefaultPitch {
		t.Errorf("orientation is (%f, %f), expected (%f, %f)", yaw, pitch, DefaultYaw, DefaultPitch)
	}
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("front is %v, expected looking along -Z", c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("right is %v, expected +X", c.Right())
	}

	expectedView := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	if !c.ViewMat().ApproxEqualThreshold(expectedView, eps) {
		t.Errorf("view matrix is %v, expected %v", c.ViewMat(), expectedView)
	}
}

func TestProcessInputMouseYaw(t *testing.T) {
	c := New(mgl32.Vec3{}, DefaultFOV, WithYawPitch(0, 0), WithSensitivity(0.1))

	in := &input.State{MouseDX: 100}
	c.ProcessInput(in, 0.016)

	yaw, pitch := c.Orientation()
	if !mgl32.FloatEqualThreshold(yaw, 10, eps) {
		t.Errorf("yaw is %f, expected 10", yaw)
	}
	if pitch != 0 {
		t.Errorf("pitch is %f, expected 0", pitch)
	}
}

func TestProcessInputMovement(t *testing.T) {
	testCases := []struct {
		name  string
		state input.State
		front float32
		right float32
	}{
		{"forward", input.State{MoveForward: true}, 0.25, 0},
		{"backward", input.State{MoveBackward: true}, -0.25, 0},
		{"left", input.State{MoveLeft: true}, 0, -0.25},
		{"right", input.State{MoveRight: true}, 0, 0.25},
		{"forward right", input.State{MoveForward: true, MoveRight: true}, 0.25, 0.25},
		{"backward left", input.State{MoveBackward: true, MoveLeft: true}, -0.25, -0.25},
		{"opposite keys", input.State{MoveForward: true, MoveBackward: true}, 0, 0},
		{"idle", input.State{}, 0, 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := New(mgl32.Vec3{}, DefaultFOV, WithMoveSpeed(2.5))
			front, right := c.Front(), c.Right()

			state := tt.state
			c.ProcessInput(&state, 0.1)

			expected := front.Mul(tt.front).Add(right.Mul(tt.right))
			if !c.Position().ApproxEqualThreshold(expected, eps) {
				t.Errorf("position is %v, expected %v", c.Position(), expected)
			}
		})
	}
}

func TestProcessInputNormalizedDiagonal(t *testing.T) {
	c := New(mgl32.Vec3{}, DefaultFOV, WithMoveSpeed(2.5), WithNormalizedDiagonal(true))

	c.ProcessInput(&input.State{MoveForward: true, MoveRight: true}, 0.1)

	if d := c.Position().Len(); !mgl32.FloatEqualThreshold(d, 0.25, eps) {
		t.Errorf("distance moved is %f, expected 0.25", d)
	}
}

func TestPitchStaysInsideLimits(t *testing.T) {
	deltas := []float32{1e6, 1e6, -3e6, 899.9, 890, -1780, 1e9, -1e9, 5, -5}

	c := New(mgl32.Vec3{}, DefaultFOV)
	for i, dy := range deltas {
		c.ProcessInput(&input.State{MouseDY: dy}, 0.016)

		_, pitch := c.Orientation()
		if pitch >= PitchLimit || pitch <= -PitchLimit {
			t.Fatalf("[%d] pitch %f left (-%v, %v)", i, pitch, PitchLimit, PitchLimit)
		}
	}

	// Looking straight up must still give a usable right vector
	c.ProcessInput(&input.State{MouseDY: 1e6}, 0.016)
	if r := c.Right(); math.IsNaN(float64(r.X())) || !mgl32.FloatEqualThreshold(r.Len(), 1, 1e-3) {
		t.Errorf("right vector degenerated to %v", r)
	}
}

func TestFOVStaysInsideLimits(t *testing.T) {
	testCases := []struct {
		scroll   float32
		expected float32
	}{
		{1, 44},
		{10, 34},
		{100, MinFOV},
		{-2, 3},
		{-500, MaxFOV},
		{0, MaxFOV},
		{44, MinFOV},
	}

	c := New(mgl32.Vec3{}, DefaultFOV)
	for i, tt := range testCases {
		c.ProcessInput(&input.State{ScrollDelta: tt.scroll}, 0.016)
		if fov := c.FOV(); !mgl32.FloatEqualThreshold(fov, tt.expected, eps) {
			t.Errorf("[%d] fov is %f, expected %f", i, fov, tt.expected)
		}
	}
}

func TestUpdateProjMat(t *testing.T) {
	c := New(mgl32.Vec3{}, 30, WithAspect(1024, 512), WithClipPlanes(0.5, 50))
	c.UpdateProjMat()

	expected := mgl32.Perspective(mgl32.DegToRad(30), 2, 0.5, 50)
	if !c.ProjMat().ApproxEqualThreshold(expected, eps) {
		t.Errorf("projection is %v, expected %v", c.ProjMat(), expected)
	}
}

func TestSetAspectIgnoresEmptyViewport(t *testing.T) {
	c := New(mgl32.Vec3{}, DefaultFOV, WithAspect(800, 600))

	c.SetAspect(0, 0)
	c.SetAspect(640, 0)
	if !mgl32.FloatEqualThreshold(c.Aspect(), 800.0/600.0, eps) {
		t.Errorf("aspect is %f, expected %f", c.Aspect(), 800.0/600.0)
	}

	c.SetAspect(1920, 1080)
	if !mgl32.FloatEqualThreshold(c.Aspect(), 1920.0/1080.0, eps) {
		t.Errorf("aspect is %f, expected %f", c.Aspect(), 1920.0/1080.0)
	}
}

func TestUpdateViewMatFollowsPosition(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, DefaultFOV)
	c.ProcessInput(&input.State{MoveForward: true}, 1)
	c.UpdateViewMat()

	// The camera position maps to the view space origin
	eye := c.ViewMat().Mul4x1(c.Position().Vec4(1))
	if !eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, eps) {
		t.Errorf("camera position in view space is %v, expected origin", eye)
	}
}
