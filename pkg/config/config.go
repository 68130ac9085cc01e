// Package config holds the window, camera and scene settings. The defaults
// ship embedded in the binary.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the complete application setup
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Scene  SceneConfig  `yaml:"scene"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	GLMajor    int        `yaml:"gl_major"`
	GLMinor    int        `yaml:"gl_minor"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

type CameraConfig struct {
	Position          [3]float32 `yaml:"position"`
	FOV               float32    `yaml:"fov"`
	Yaw               float32    `yaml:"yaw"`
	Pitch             float32    `yaml:"pitch"`
	MoveSpeed         float32    `yaml:"move_speed"`
	Sensitivity       float32    `yaml:"sensitivity"`
	ZoomSensitivity   float32    `yaml:"zoom_sensitivity"`
	Near              float32    `yaml:"near"`
	Far               float32    `yaml:"far"`
	NormalizeDiagonal bool       `yaml:"normalize_diagonal"`
}

type SceneConfig struct {
	RotationAxis [3]float32   `yaml:"rotation_axis"`
	RotationStep float32      `yaml:"rotation_step"` // degrees per instance index
	Instances    [][3]float32 `yaml:"instances"`
}

type AssetsConfig struct {
	VertexShader   string   `yaml:"vertex_shader"`
	FragmentShader string   `yaml:"fragment_shader"`
	Textures       []string `yaml:"textures"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"` // frame rate reports and per-event traces
}

// Default returns the embedded configuration
func Default() (Config, error) {
	return Parse(defaultYAML)
}

// Parse decodes and validates a YAML document
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration can produce a working window
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is below the required 3.3", c.Window.GLMajor, c.Window.GLMinor))
	}
	if c.Camera.FOV < 1 || c.Camera.FOV > 45 {
		errs = append(errs, fmt.Errorf("camera fov %v outside [1, 45]", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if len(c.Scene.Instances) == 0 {
		errs = append(errs, errors.New("scene has no instances"))
	}
	if c.Scene.RotationAxis == [3]float32{} {
		errs = append(errs, errors.New("scene rotation axis is zero"))
	}
	if c.Assets.VertexShader == "" || c.Assets.FragmentShader == "" {
		errs = append(errs, errors.New("shader paths are required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
