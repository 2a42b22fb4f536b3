// Package config loads paintbox settings from TOML and watches them for
// changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"paintbox/scene"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Log    LogConfig          `toml:"log"`
	Window WindowConfig       `toml:"window"`
	Canvas CanvasConfig       `toml:"canvas"`
	Flower scene.FlowerParams `toml:"flower"`
	Car    scene.CarParams    `toml:"car"`
	Robot  scene.RobotParams  `toml:"robot"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	Timestamps bool   `toml:"timestamps"`
}

type WindowConfig struct {
	Title string `toml:"title"`
	// Scale multiplies the canvas size on screen.
	Scale int `toml:"scale"`
	// Hz is the frame rate of headless and terminal runs.
	Hz       int  `toml:"hz"`
	Captions bool `toml:"captions"`
}

type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Supersample renders exports at this multiple and scales them down.
	Supersample int `toml:"supersample"`
}

// Default returns the settings the illustrations were designed with.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Timestamps: true},
		Window: WindowConfig{
			Title:    "paintbox",
			Scale:    2,
			Hz:       60,
			Captions: true,
		},
		Canvas: CanvasConfig{Width: 300, Height: 300, Supersample: 1},
		Flower: scene.DefaultFlowerParams(),
		Car:    scene.DefaultCarParams(),
		Robot:  scene.DefaultRobotParams(),
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML on top of Default and validates the result. Unknown
// keys are rejected so typos do not pass silently.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("parsing config at %d:%d: %w", row, col, err)
		}
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Write encodes c as TOML.
func Write(w io.Writer, c Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas is %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Supersample < 1 {
		return fmt.Errorf("%w: canvas.supersample must be at least 1", ErrInvalid)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window.scale must be positive", ErrInvalid)
	}
	if c.Window.Hz <= 0 {
		return fmt.Errorf("%w: window.hz must be positive", ErrInvalid)
	}
	steps := []struct {
		key string
		v   float64
	}{
		{"car.bounce_step", c.Car.BounceStep},
		{"car.road_step", c.Car.RoadStep},
		{"robot.bounce_step", c.Robot.BounceStep},
		{"robot.arm_step", c.Robot.ArmStep},
		{"robot.wall_step", c.Robot.WallStep},
	}
	for _, st := range steps {
		// Wave and wrap steps carry no direction; a negative one escapes its range.
		if st.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, st.key, st.v)
		}
	}
	if c.Car.BounceMax <= 0 || c.Car.RoadLimit <= 0 {
		return fmt.Errorf("%w: car bounds must be positive", ErrInvalid)
	}
	if c.Robot.FramesPerStep <= 0 {
		return fmt.Errorf("%w: robot.frames_per_step must be positive", ErrInvalid)
	}
	if c.Robot.ShoulderMin >= c.Robot.ShoulderMax {
		return fmt.Errorf("%w: robot shoulder range [%v, %v] is empty", ErrInvalid, c.Robot.ShoulderMin, c.Robot.ShoulderMax)
	}
	if c.Robot.BounceMax <= 0 || c.Robot.WallLimit <= 0 {
		return fmt.Errorf("%w: robot bounds must be positive", ErrInvalid)
	}
	return nil
}
