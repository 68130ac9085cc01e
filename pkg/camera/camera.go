// Package camera implements a first-person camera driven by per-frame input.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/pkg/input"
)

// Camera is a fly-through camera described by a position and Euler angles
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Camera options
	fov               float32
	moveSpeed         float32
	sensitivity       float32
	zoomSensitivity   float32
	normalizeDiagonal bool

	// Projection
	aspect float32
	near   float32
	far    float32

	viewMat mgl32.Mat4
	projMat mgl32.Mat4
}

// Option customizes a camera created by New
type Option func(*Camera)

// WithMoveSpeed sets the movement speed in units per second
func WithMoveSpeed(speed float32) Option {
	return func(c *Camera) { c.moveSpeed = speed }
}

// WithSensitivity sets the degrees of rotation per pixel of mouse movement
func WithSensitivity(sensitivity float32) Option {
	return func(c *Camera) { c.sensitivity = sensitivity }
}

// WithZoomSensitivity sets the degrees of field of view per scroll step
func WithZoomSensitivity(sensitivity float32) Option {
	return func(c *Camera) { c.zoomSensitivity = sensitivity }
}

// WithYawPitch sets the initial orientation in degrees
func WithYawPitch(yaw, pitch float32) Option {
	return func(c *Camera) {
		c.yaw = yaw
		c.pitch = clampPitch(pitch)
	}
}

// WithClipPlanes sets the near and far plane distances
func WithClipPlanes(near, far float32) Option {
	return func(c *Camera) {
		c.near = near
		c.far = far
	}
}

// WithAspect sets the initial viewport size used for the aspect ratio
func WithAspect(width, height int) Option {
	return func(c *Camera) { c.SetAspect(width, height) }
}

// WithNormalizedDiagonal makes combined movement keys move at the same
// speed as a single key.
func WithNormalizedDiagonal(normalize bool) Option {
	return func(c *Camera) { c.normalizeDiagonal = normalize }
}

// New creates a camera at position with the given field of view in degrees
func New(position mgl32.Vec3, fov float32, opts ...Option) *Camera {
	c := &Camera{
		position:        position,
		worldUp:         mgl32.Vec3{0, 1, 0}, // Y-up coordinate system
		yaw:             DefaultYaw,
		pitch:           DefaultPitch,
		fov:             clampFOV(fov),
		moveSpeed:       DefaultMoveSpeed,
		sensitivity:     DefaultSensitivity,
		zoomSensitivity: DefaultZoomSensitivity,
		aspect:          DefaultAspect,
		near:            DefaultNear,
		far:             DefaultFar,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.updateCameraVectors()
	c.UpdateViewMat()
	c.UpdateProjMat()

	return c
}

// updateCameraVectors recalculates front and right from the Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
}

// ProcessInput advances the camera by one frame of input
func (c *Camera) ProcessInput(in *input.State, deltaTime float32) {
	c.move(in, deltaTime)
	c.rotate(in.MouseDX, in.MouseDY)
	c.zoom(in.ScrollDelta)
}

func (c *Camera) move(in *input.State, deltaTime float32) {
	var dir mgl32.Vec3
	if in.MoveForward {
		dir = dir.Add(c.front)
	}
	if in.MoveBackward {
		dir = dir.Sub(c.front)
	}
	if in.MoveLeft {
		dir = dir.Sub(c.right)
	}
	if in.MoveRight {
		dir = dir.Add(c.right)
	}

	// Without normalization two keys add up to a longer step
	if c.normalizeDiagonal && dir.Len() > 0 {
		dir = dir.Normalize()
	}

	c.position = c.position.Add(dir.Mul(c.moveSpeed * deltaTime))
}

func (c *Camera) rotate(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}

	c.yaw += dx * c.sensitivity
	c.pitch = clampPitch(c.pitch + dy*c.sensitivity)

	c.updateCameraVectors()
}

func (c *Camera) zoom(scroll float32) {
	c.fov = clampFOV(c.fov - scroll*c.zoomSensitivity)
}

// UpdateViewMat recalculates the view matrix from position and orientation
func (c *Camera) UpdateViewMat() {
	c.viewMat = mgl32.LookAtV(c.position, c.position.Add(c.front), c.worldUp)
}

// UpdateProjMat recalculates the perspective projection matrix
func (c *Camera) UpdateProjMat() {
	c.projMat = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

// SetAspect sets the aspect ratio from a viewport size. Empty sizes, as
// reported for minimized windows, keep the previous ratio.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// ViewMat returns the view matrix computed by the last UpdateViewMat
func (c *Camera) ViewMat() mgl32.Mat4 {
	return c.viewMat
}

// ProjMat returns the projection matrix computed by the last UpdateProjMat
func (c *Camera) ProjMat() mgl32.Mat4 {
	return c.projMat
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.right
}

// Orientation returns yaw and pitch in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

func (c *Camera) FOV() float32 {
	return c.fov
}

func (c *Camera) Aspect() float32 {
	return c.aspect
}

func clampPitch(pitch float32) float32 {
	limit := math.Nextafter32(PitchLimit, 0)
	return mgl32.Clamp(pitch, -limit, limit)
}

func clampFOV(fov float32) float32 {
	return mgl32.Clamp(fov, MinFOV, MaxFOV)
}
