package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/internal/log"
	"github.com/leterax/go-cubes/internal/openglhelper"
	"github.com/leterax/go-cubes/pkg/camera"
	"github.com/leterax/go-cubes/pkg/config"
	"github.com/leterax/go-cubes/pkg/frame"
	"github.com/leterax/go-cubes/pkg/input"
	"github.com/leterax/go-cubes/pkg/render"
)

// exitStartupFailure is the status for a window or OpenGL loader failure
const exitStartupFailure = -1

func init() {
	// This is needed to ensure that the OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Default()
	if err != nil {
		log.Error("%v", err)
		return exitStartupFailure
	}
	log.SetDebug(cfg.Log.Debug)

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		switch {
		case errors.Is(err, openglhelper.ErrWindowCreation):
			log.Error("failed to create window: %v", err)
		case errors.Is(err, openglhelper.ErrGLLoad):
			log.Error("failed to load OpenGL functions: %v", err)
		default:
			log.Error("failed to initialize renderer: %v", err)
		}
		return exitStartupFailure
	}
	defer renderer.Cleanup()

	width, height := renderer.FramebufferSize()
	cam := camera.New(mgl32.Vec3(cfg.Camera.Position), cfg.Camera.FOV,
		camera.WithYawPitch(cfg.Camera.Yaw, cfg.Camera.Pitch),
		camera.WithMoveSpeed(cfg.Camera.MoveSpeed),
		camera.WithSensitivity(cfg.Camera.Sensitivity),
		camera.WithZoomSensitivity(cfg.Camera.ZoomSensitivity),
		camera.WithClipPlanes(cfg.Camera.Near, cfg.Camera.Far),
		camera.WithAspect(width, height),
		camera.WithNormalizedDiagonal(cfg.Camera.NormalizeDiagonal),
	)

	handler := frame.NewHandler(&input.State{}, renderer, cam, renderer.CursorCaptured())
	renderer.Bind(handler)

	scene := frame.NewScene(cfg.Scene.Instances, cfg.Scene.RotationAxis, cfg.Scene.RotationStep)
	loop := frame.New(renderer, renderer, handler, cam, scene)

	frames := loop.Run()
	log.Info("closing after %d frames", frames)

	return 0
}
