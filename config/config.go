// Package config loads the YAML description of the demo: screen, scene, input, audio and logging.
package config

import (
	"io"
	"os"
	"time"

	"github.com/akmonengine/boxcollide/internal/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	ShapeBox    = "box"
	ShapeSphere = "sphere"
)

var (
	ErrInvalidScreen   = errors.New("terminal cell aspect must be positive")
	ErrInvalidFPS      = errors.New("target fps must be positive")
	ErrInvalidSize     = errors.New("box size must be positive on every axis")
	ErrInvalidRadius   = errors.New("sphere radius must be positive")
	ErrInvalidStep     = errors.New("player step must be positive")
	ErrUnknownShape    = errors.New("unknown obstacle shape")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Vec3 is written as a [x, y, z] sequence
type Vec3 [3]float64

func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

func (v Vec3) positive() bool {
	return v[0] > 0 && v[1] > 0 && v[2] > 0
}

type Config struct {
	Screen Screen `yaml:"screen"`
	Scene  Scene  `yaml:"scene"`
	Input  Input  `yaml:"input"`
	Audio  Audio  `yaml:"audio"`
	Log    Log    `yaml:"log"`
}

type Screen struct {
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	// CellAspect is the height/width ratio of a terminal cell
	CellAspect float64 `yaml:"cell_aspect"`
}

type Camera struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	Up       Vec3    `yaml:"up"`
	Fovy     float64 `yaml:"fovy"`
}

type Player struct {
	Position Vec3 `yaml:"position"`
	Size     Vec3 `yaml:"size"`
	// Step is the distance covered per frame while a direction key is held
	Step float64 `yaml:"step"`
}

type Obstacle struct {
	Name     string  `yaml:"name"`
	Shape    string  `yaml:"shape"`
	Position Vec3    `yaml:"position"`
	Size     Vec3    `yaml:"size,omitempty"`
	Radius   float64 `yaml:"radius,omitempty"`
	// Yaw in degrees, boxes only
	Yaw     float64 `yaml:"yaw,omitempty"`
	Trigger bool    `yaml:"trigger,omitempty"`
}

type Scene struct {
	Camera    Camera     `yaml:"camera"`
	Player    Player     `yaml:"player"`
	Obstacles []Obstacle `yaml:"obstacles"`
	Workers   int        `yaml:"workers"`
	CellSize  float64    `yaml:"cell_size"`
}

type Input struct {
	// HoldWindow is how long a key stays down after its last press event
	HoldWindow time.Duration `yaml:"hold_window"`
}

type Audio struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sample_rate"`
	Frequency  float64       `yaml:"frequency"`
	Duration   time.Duration `yaml:"duration"`
}

type Log struct {
	Level    string `yaml:"level"`
	Output   string `yaml:"output"`
	Encoding string `yaml:"encoding"`
}

// Default mirrors the classic box collision demo layout
func Default() Config {
	return Config{
		Screen: Screen{
			Title:      "raylib [models] example - box collisions",
			TargetFPS:  60,
			CellAspect: 2,
		},
		Scene: Scene{
			Camera: Camera{
				Position: Vec3{0, 5, 10},
				Target:   Vec3{0, 0, 0},
				Up:       Vec3{0, 1, 0},
				Fovy:     45,
			},
			Player: Player{
				Position: Vec3{0, 1, 2},
				Size:     Vec3{1, 2, 1},
				Step:     0.2,
			},
			Obstacles: []Obstacle{
				{Name: "enemy-box", Shape: ShapeBox, Position: Vec3{-4, 1, 0}, Size: Vec3{2, 2, 2}},
				{Name: "enemy-sphere", Shape: ShapeSphere, Position: Vec3{4, 0, 0}, Radius: 1.5},
			},
			Workers:  1,
			CellSize: 2,
		},
		Input: Input{
			HoldWindow: 150 * time.Millisecond,
		},
		Audio: Audio{
			Enabled:    false,
			SampleRate: 44100,
			Frequency:  880,
			Duration:   50 * time.Millisecond,
		},
		Log: Log{
			Level:    "info",
			Output:   "boxcollide.log",
			Encoding: "json",
		},
	}
}

// Load reads and validates the config file at path
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults, then validates.
// Fields absent from the document keep their default value; a present obstacles list replaces the default one.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode yaml")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Screen.TargetFPS <= 0 {
		return errors.Wrapf(ErrInvalidFPS, "%d", c.Screen.TargetFPS)
	}
	if c.Screen.CellAspect <= 0 {
		return errors.Wrapf(ErrInvalidScreen, "cell aspect %v", c.Screen.CellAspect)
	}

	if !c.Scene.Player.Size.positive() {
		return errors.Wrapf(ErrInvalidSize, "player %v", c.Scene.Player.Size)
	}
	if c.Scene.Player.Step <= 0 {
		return errors.Wrapf(ErrInvalidStep, "%v", c.Scene.Player.Step)
	}

	for i, o := range c.Scene.Obstacles {
		if err := o.validate(); err != nil {
			return errors.Wrapf(err, "obstacle %d (%s)", i, o.Name)
		}
	}

	if c.Input.HoldWindow <= 0 {
		return errors.Wrap(ErrInvalidDuration, "input hold window")
	}
	if c.Audio.Enabled && (c.Audio.Duration <= 0 || c.Audio.SampleRate <= 0) {
		return errors.Wrap(ErrInvalidDuration, "audio tone")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

func (o Obstacle) validate() error {
	switch o.Shape {
	case ShapeBox:
		if !o.Size.positive() {
			return errors.Wrapf(ErrInvalidSize, "%v", o.Size)
		}
	case ShapeSphere:
		if o.Radius <= 0 {
			return errors.Wrapf(ErrInvalidRadius, "%v", o.Radius)
		}
	default:
		return errors.Wrapf(ErrUnknownShape, "%q", o.Shape)
	}
	return nil
}
