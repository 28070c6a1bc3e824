// Package config holds the demo's tunables and loads them from YAML or TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// DefaultPath is where the demo looks for its config, relative to the
// working directory. FPSDEMO_CONFIG overrides it.
const DefaultPath = "configs/fpsdemo.yaml"

type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Scene   SceneConfig   `yaml:"scene" toml:"scene"`
	Lights  LightsConfig  `yaml:"lights" toml:"lights"`
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Physics PhysicsConfig `yaml:"physics" toml:"physics"`
	Keys    KeysConfig    `yaml:"keys" toml:"keys"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width" toml:"width"`
	Height    int32  `yaml:"height" toml:"height"`
	Title     string `yaml:"title" toml:"title"`
	TargetFPS int32  `yaml:"target_fps" toml:"target_fps"`
	VSync     bool   `yaml:"vsync" toml:"vsync"`
	MSAA      bool   `yaml:"msaa" toml:"msaa"`
}

type SceneConfig struct {
	Model          string     `yaml:"model" toml:"model"`
	Scale          float32    `yaml:"scale" toml:"scale"`
	Tint           [4]float32 `yaml:"tint" toml:"tint"`
	Background     [4]float32 `yaml:"background" toml:"background"`
	VertexShader   string     `yaml:"vertex_shader" toml:"vertex_shader"`
	FragmentShader string     `yaml:"fragment_shader" toml:"fragment_shader"`
}

type LightsConfig struct {
	Ambient          [4]float32 `yaml:"ambient" toml:"ambient"`
	DirectionalColor [4]float32 `yaml:"directional_color" toml:"directional_color"`
	Direction        [3]float32 `yaml:"direction" toml:"direction"`
}

type PlayerConfig struct {
	Radius       float32    `yaml:"radius" toml:"radius"`
	Height       float32    `yaml:"height" toml:"height"`
	Mass         float32    `yaml:"mass" toml:"mass"`
	Spawn        [3]float32 `yaml:"spawn" toml:"spawn"`
	EyeHeight    float32    `yaml:"eye_height" toml:"eye_height"`
	ForwardSpeed float32    `yaml:"forward_speed" toml:"forward_speed"`
	StrafeSpeed  float32    `yaml:"strafe_speed" toml:"strafe_speed"`
	JumpForce    float32    `yaml:"jump_force" toml:"jump_force"`
	LookSpeed    float32    `yaml:"look_speed" toml:"look_speed"`
	FOV          float32    `yaml:"fov" toml:"fov"`
}

type PhysicsConfig struct {
	Gravity    [3]float32 `yaml:"gravity" toml:"gravity"`
	MaxSubstep float32    `yaml:"max_substep" toml:"max_substep"`
	MaxSlope   float32    `yaml:"max_slope" toml:"max_slope"` // degrees
}

type KeysConfig struct {
	Left  string `yaml:"left" toml:"left"`
	Right string `yaml:"right" toml:"right"`
	Up    string `yaml:"up" toml:"up"`
	Down  string `yaml:"down" toml:"down"`
	Jump  string `yaml:"jump" toml:"jump"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the stock demo: a capsule of radius 1.5 and height 6 with
// mass 80, spawned one unit up with eyes five units above its feet, walking at
// 12 forward and 9 sideways.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "fpsdemo",
			TargetFPS: 120,
			VSync:     true,
			MSAA:      true,
		},
		Scene: SceneConfig{
			Model:          "assets/scenes/world.obj",
			Scale:          1,
			Tint:           [4]float32{0.85, 0.82, 0.75, 1},
			Background:     [4]float32{0.7, 0.8, 1, 1},
			VertexShader:   "assets/shaders/lighting.vs",
			FragmentShader: "assets/shaders/lighting.fs",
		},
		Lights: LightsConfig{
			Ambient:          [4]float32{0.5, 0.5, 0.5, 1},
			DirectionalColor: [4]float32{1, 1, 1, 1},
			Direction:        [3]float32{2.8, -2.8, -2.8},
		},
		Player: PlayerConfig{
			Radius:       1.5,
			Height:       6,
			Mass:         80,
			Spawn:        [3]float32{0, 1, 0},
			EyeHeight:    5,
			ForwardSpeed: 12,
			StrafeSpeed:  9,
			JumpForce:    400,
			LookSpeed:    0.1,
			FOV:          45,
		},
		Physics: PhysicsConfig{
			Gravity:    [3]float32{0, -9.81, 0},
			MaxSubstep: 1.0 / 60.0,
			MaxSlope:   50,
		},
		Keys: KeysConfig{
			Left:  "A",
			Right: "D",
			Up:    "W",
			Down:  "S",
			Jump:  "SPACE",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns FPSDEMO_CONFIG when set, DefaultPath otherwise.
func Path() string {
	if p := os.Getenv("FPSDEMO_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load decodes the file at path on top of Default and validates the result.
// The format is chosen by extension: .toml is TOML, anything else YAML.
// A missing file returns an error satisfying os.IsNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Decode(&cfg, data, filepath.Ext(path)); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays data onto cfg. ext selects the format (".toml" or YAML).
func Decode(cfg *Config, data []byte, ext string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Scene.Model == "":
		return fmt.Errorf("%w: scene.model is empty", ErrInvalid)
	case c.Scene.Scale <= 0:
		return fmt.Errorf("%w: scene.scale must be positive", ErrInvalid)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player.radius must be positive", ErrInvalid)
	case c.Player.Height < 2*c.Player.Radius:
		return fmt.Errorf("%w: player.height %.2f is shorter than the capsule caps (%.2f)", ErrInvalid, c.Player.Height, 2*c.Player.Radius)
	case c.Player.Mass <= 0:
		return fmt.Errorf("%w: player.mass must be positive", ErrInvalid)
	case c.Player.ForwardSpeed < 0 || c.Player.StrafeSpeed < 0:
		return fmt.Errorf("%w: player speeds must not be negative", ErrInvalid)
	case c.Player.JumpForce < 0:
		return fmt.Errorf("%w: player.jump_force must not be negative", ErrInvalid)
	case c.Physics.MaxSubstep <= 0:
		return fmt.Errorf("%w: physics.max_substep must be positive", ErrInvalid)
	case c.Physics.MaxSlope <= 0 || c.Physics.MaxSlope >= 90:
		return fmt.Errorf("%w: physics.max_slope must be in (0, 90)", ErrInvalid)
	}
	for action, key := range map[string]string{
		"left": c.Keys.Left, "right": c.Keys.Right, "up": c.Keys.Up, "down": c.Keys.Down, "jump": c.Keys.Jump,
	} {
		if key == "" {
			return fmt.Errorf("%w: keys.%s is empty", ErrInvalid, action)
		}
	}
	return nil
}
