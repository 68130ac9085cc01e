package camera

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed       = 2.5
	DefaultSensitivity     = 0.1
	DefaultZoomSensitivity = 1.0

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0

	// Pitch stays strictly inside (-PitchLimit, PitchLimit)
	PitchLimit = 89.0

	// Clip planes
	DefaultNear = 0.1
	DefaultFar  = 100.0

	DefaultAspect = 800.0 / 600.0
)
