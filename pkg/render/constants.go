package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-cubes/pkg/input"
)

// Key constants for keyboard input
const (
	KeyForward   = glfw.KeyW
	KeyBackward  = glfw.KeyS
	KeyLeft      = glfw.KeyA
	KeyRight     = glfw.KeyD
	KeyEscape    = glfw.KeyEscape
	KeyWireframe = glfw.KeyF8
	KeyCapture   = glfw.KeyC
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Texture sampler uniforms, bound to units 0, 1, ... in order
var textureUniforms = []string{"texture1", "texture2"}

var keyMap = map[glfw.Key]input.Key{
	KeyForward:   input.KeyW,
	KeyBackward:  input.KeyS,
	KeyLeft:      input.KeyA,
	KeyRight:     input.KeyD,
	KeyEscape:    input.KeyEscape,
	KeyWireframe: input.KeyF8,
	KeyCapture:   input.KeyC,
}

func translateKey(key glfw.Key) input.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return input.KeyUnknown
}

func translateAction(action glfw.Action) input.Action {
	switch action {
	case Press:
		return input.Press
	case Repeat:
		return input.Repeat
	default:
		return input.Release
	}
}
