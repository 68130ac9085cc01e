package render

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/internal/log"
	"github.com/leterax/go-cubes/internal/openglhelper"
	"github.com/leterax/go-cubes/pkg/config"
	"github.com/leterax/go-cubes/pkg/frame"
	"github.com/leterax/go-cubes/pkg/input"
)

// Renderer owns the window and the GPU resources of the cube scene
type Renderer struct {
	window *openglhelper.Window

	shader   *openglhelper.Shader
	textures []*openglhelper.Texture
	cube     *openglhelper.Mesh

	clearColor mgl32.Vec4
	sink       input.EventSink
}

var (
	_ frame.Platform = (*Renderer)(nil)
	_ frame.Backend  = (*Renderer)(nil)
	_ frame.Surface  = (*Renderer)(nil)
)

// NewRenderer creates the window and loads the shader, textures and cube
// mesh. Errors from window creation wrap openglhelper.ErrWindowCreation or
// openglhelper.ErrGLLoad.
func NewRenderer(cfg config.Config) (*Renderer, error) {
	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		GLMajor: cfg.Window.GLMajor,
		GLMinor: cfg.Window.GLMinor,
		VSync:   cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log.Info("OpenGL version: %s", openglhelper.GLVersion())

	r := &Renderer{
		window:     window,
		clearColor: mgl32.Vec4(cfg.Window.ClearColor),
	}

	if err := r.loadResources(cfg.Assets); err != nil {
		r.Cleanup()
		return nil, err
	}

	r.registerCallbacks()
	window.SetMouseCaptured(true)

	return r, nil
}

func (r *Renderer) loadResources(assets config.AssetsConfig) error {
	shader, err := openglhelper.LoadShaderFromFiles(assets.VertexShader, assets.FragmentShader)
	if err != nil {
		return fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	if len(assets.Textures) > len(textureUniforms) {
		return fmt.Errorf("%d textures configured, the shader samples at most %d", len(assets.Textures), len(textureUniforms))
	}
	for _, path := range assets.Textures {
		tex, err := openglhelper.LoadTexture(path)
		if err != nil {
			return fmt.Errorf("failed to load texture: %w", err)
		}
		log.Debug("loaded texture %s (%dx%d)", path, tex.Width, tex.Height)
		r.textures = append(r.textures, tex)
	}

	// Samplers must be assigned while the program is in use
	r.shader.Use()
	for unit := range r.textures {
		r.shader.SetInt(textureUniforms[unit], int32(unit))
	}

	cube, err := openglhelper.NewCube()
	if err != nil {
		return fmt.Errorf("failed to create cube mesh: %w", err)
	}
	r.cube = cube

	return nil
}

// registerCallbacks forwards window events to the current sink. The
// closures run on this thread from inside PollEvents.
func (r *Renderer) registerCallbacks() {
	w := r.window.GLFWWindow()

	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if r.sink != nil {
			r.sink.FramebufferResized(width, height)
		}
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if r.sink != nil {
			r.sink.KeyChanged(translateKey(key), translateAction(action))
		}
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if r.sink != nil {
			r.sink.Scrolled(xoff, yoff)
		}
	})
}

// Bind sets the sink that receives window events
func (r *Renderer) Bind(sink input.EventSink) {
	r.sink = sink
}

// FramebufferSize returns the current framebuffer dimensions
func (r *Renderer) FramebufferSize() (width, height int) {
	return r.window.Size()
}

// CursorCaptured reports the cursor mode the window currently uses
func (r *Renderer) CursorCaptured() bool {
	return r.window.IsMouseCaptured()
}

// Time returns seconds since GLFW was initialized
func (r *Renderer) Time() float64 {
	return glfw.GetTime()
}

func (r *Renderer) PollEvents() {
	r.window.PollEvents()
}

// Sample reads the held movement keys and the cursor position
func (r *Renderer) Sample() input.Sample {
	x, y := r.window.CursorPos()
	return input.Sample{
		Forward:  r.window.GetKeyState(KeyForward) == Press,
		Backward: r.window.GetKeyState(KeyBackward) == Press,
		Left:     r.window.GetKeyState(KeyLeft) == Press,
		Right:    r.window.GetKeyState(KeyRight) == Press,
		CursorX:  x,
		CursorY:  y,
	}
}

func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

func (r *Renderer) SwapBuffers() {
	r.window.SwapBuffers()
}

func (r *Renderer) Clear() {
	r.window.Clear(r.clearColor)
}

// BeginScene binds the cube, shader and textures and uploads the camera
func (r *Renderer) BeginScene(view, projection mgl32.Mat4) {
	r.cube.Bind()
	r.shader.Use()

	for unit, tex := range r.textures {
		tex.Bind(uint32(unit))
	}

	r.shader.SetMat4("view", view)
	r.shader.SetMat4("projection", projection)
}

// Draw renders one cube instance
func (r *Renderer) Draw(model mgl32.Mat4) {
	r.shader.SetMat4("model", model)
	r.cube.Draw()
}

func (r *Renderer) SetViewport(width, height int) {
	r.window.OnResize(width, height)
}

func (r *Renderer) SetWireframe(enabled bool) {
	r.window.SetWireframe(enabled)
}

func (r *Renderer) SetCursorCaptured(captured bool) {
	r.window.SetMouseCaptured(captured)
}

func (r *Renderer) RequestClose() {
	r.window.SetShouldClose(true)
}

// Cleanup frees all resources and closes the window
func (r *Renderer) Cleanup() {
	if r.cube != nil {
		r.cube.Delete()
	}
	for _, tex := range r.textures {
		tex.Delete()
	}
	if r.shader != nil {
		r.shader.Delete()
	}

	r.window.Close()
}
