// Package config holds the demo settings: defaults, TOML loading and validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalid = errors.New("config: invalid value")

type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	X         int    `toml:"x"`
	Y         int    `toml:"y"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

type Timing struct {
	FPS            int `toml:"fps"`
	InitialDelayMs int `toml:"initial_delay_ms"`
}

// FrameIntervalMs is the timer period, truncated like the classic 1000/60 timer.
func (t Timing) FrameIntervalMs() int {
	if t.FPS <= 0 {
		return 0
	}
	return 1000 / t.FPS
}

type Camera struct {
	Eye  [3]float64 `toml:"eye"`
	Step float64    `toml:"step"`
}

type Board struct {
	Cells    int     `toml:"cells"`
	CellSize float64 `toml:"cell_size"`
}

type Balls struct {
	Count    int     `toml:"count"`
	Radius   float64 `toml:"radius"`
	Step     float64 `toml:"step"`
	Floor    float64 `toml:"floor"`
	Ceiling  float64 `toml:"ceiling"`
	SpawnMin int     `toml:"spawn_min"`
	SpawnMax int     `toml:"spawn_max"`
	Seed     uint64  `toml:"seed"`
	Slices   int     `toml:"slices"`
	Stacks   int     `toml:"stacks"`
}

type Render struct {
	FovY      float64 `toml:"fov_y"`
	Near      float64 `toml:"near"`
	Far       float64 `toml:"far"`
	Shininess float64 `toml:"shininess"`
}

type HUD struct {
	Enabled bool `toml:"enabled"`
}

// Config is the full set of settings.
type Config struct {
	Window Window `toml:"window"`
	Timing Timing `toml:"timing"`
	Camera Camera `toml:"camera"`
	Board  Board  `toml:"board"`
	Balls  Balls  `toml:"balls"`
	Render Render `toml:"render"`
	HUD    HUD    `toml:"hud"`
}

// Default returns the classic demo settings.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, X: 80, Y: 80, Title: "Bouncing Balls"},
		Timing: Timing{FPS: 60, InitialDelayMs: 100},
		Camera: Camera{Eye: [3]float64{0, 5, 10}, Step: 0.2},
		Board:  Board{Cells: 8, CellSize: 1},
		Balls: Balls{
			Count:    7,
			Radius:   0.5,
			Step:     0.05,
			Floor:    0.5,
			Ceiling:  2,
			SpawnMin: 1,
			SpawnMax: 7,
			Seed:     1,
			Slices:   16,
			Stacks:   16,
		},
		Render: Render{FovY: 40, Near: 1, Far: 150, Shininess: 30},
		HUD:    HUD{Enabled: true},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	check := func(ok bool, format string, args ...any) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}
	for _, err := range []error{
		check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height),
		check(c.Timing.FPS > 0 && c.Timing.FPS <= 1000, "fps %d", c.Timing.FPS),
		check(c.Timing.InitialDelayMs >= 0, "initial delay %dms", c.Timing.InitialDelayMs),
		check(c.Camera.Step > 0, "camera step %g", c.Camera.Step),
		check(c.Board.Cells > 0, "board cells %d", c.Board.Cells),
		check(c.Board.CellSize > 0, "board cell size %g", c.Board.CellSize),
		check(c.Balls.Count > 0, "ball count %d", c.Balls.Count),
		check(c.Balls.Radius > 0, "ball radius %g", c.Balls.Radius),
		check(c.Balls.Step > 0, "ball step %g", c.Balls.Step),
		check(c.Balls.Floor < c.Balls.Ceiling, "bounce bounds [%g, %g]", c.Balls.Floor, c.Balls.Ceiling),
		check(c.Balls.Floor >= c.Balls.Radius, "floor %g below ball radius %g", c.Balls.Floor, c.Balls.Radius),
		check(c.Balls.SpawnMin <= c.Balls.SpawnMax, "spawn range [%d, %d]", c.Balls.SpawnMin, c.Balls.SpawnMax),
		check(c.Balls.Slices >= 3 && c.Balls.Stacks >= 2, "sphere detail %dx%d", c.Balls.Slices, c.Balls.Stacks),
		check(c.Render.FovY > 0 && c.Render.FovY < 180, "fov %g", c.Render.FovY),
		check(c.Render.Near > 0 && c.Render.Near < c.Render.Far, "clip range [%g, %g]", c.Render.Near, c.Render.Far),
		check(c.Render.Shininess >= 0 && c.Render.Shininess <= 128, "shininess %g", c.Render.Shininess),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
