package config

import (
	"fmt"
)

// Spawn policies for duplicated balls.
const (
	SpawnAtBall  = "ball"
	SpawnAtStart = "start"
)

// Config is the full game configuration. It is loaded once at startup
// and treated as immutable while a match is running; edits picked up
// by the watcher only apply on the next reset.
type Config struct {
	Arena   Arena    `yaml:"arena"`
	Ball    Ball     `yaml:"ball"`
	Walls   []Wall   `yaml:"walls"`
	Players []Player `yaml:"players"`
	Bricks  Bricks   `yaml:"bricks"`
	Colors  Colors   `yaml:"colors"`
	Audio   Audio    `yaml:"audio"`
}

// Arena is the playfield interior in arena units, center origin,
// Y up.
type Arena struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

func (a Arena) Width() float64  { return a.Right - a.Left }
func (a Arena) Height() float64 { return a.Top - a.Bottom }

type Ball struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	DirectionX      float64 `yaml:"direction_x"`
	DirectionY      float64 `yaml:"direction_y"`
	Speed           float64 `yaml:"speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Growth          float64 `yaml:"growth"`
	HalfWidth       float64 `yaml:"half_width"`
	HalfHeight      float64 `yaml:"half_height"`
	DuplicateChance float64 `yaml:"duplicate_chance"`
	DuplicateSpawn  string  `yaml:"duplicate_spawn"`
	ClampPadding    float64 `yaml:"clamp_padding"`
}

// Wall is a straight axis-aligned segment from (X1,Y1) to (X2,Y2),
// thickened by HalfThickness on each side. ScoresFor is the player
// index credited when a ball hits the wall; nil walls score nobody.
type Wall struct {
	X1            float64 `yaml:"x1"`
	Y1            float64 `yaml:"y1"`
	X2            float64 `yaml:"x2"`
	Y2            float64 `yaml:"y2"`
	HalfThickness float64 `yaml:"half_thickness"`
	ScoresFor     *int    `yaml:"scores_for,omitempty"`
}

// Center returns the wall's center point.
func (w Wall) Center() (float64, float64) {
	return (w.X1 + w.X2) / 2, (w.Y1 + w.Y2) / 2
}

// HalfExtents returns the wall's bounding half extents: segment length
// plus thickness on both ends.
func (w Wall) HalfExtents() (float64, float64) {
	hw := abs(w.X2-w.X1)/2 + w.HalfThickness
	hh := abs(w.Y2-w.Y1)/2 + w.HalfThickness
	return hw, hh
}

type Player struct {
	Name     string    `yaml:"name"`
	Controls []Control `yaml:"controls"`
	Paddle   Paddle    `yaml:"paddle"`
}

// Control binds a key name to a movement direction. Key names follow
// ebiten's key naming ("W", "ArrowUp", ...).
type Control struct {
	Key  string     `yaml:"key"`
	Move [2]float64 `yaml:"move"`
}

type Paddle struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Speed      float64 `yaml:"speed"`
	Bounds     Bounds  `yaml:"bounds"`
}

// Bounds is an inclusive min/max box for a paddle's center.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Bricks describes the destructible brick fields. Two rectangular
// fields are generated, one between each paddle's movement bound and
// the nearest vertical wall.
type Bricks struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Gap        float64 `yaml:"gap"`
	WallGapX   float64 `yaml:"wall_gap_x"`
	WallGapY   float64 `yaml:"wall_gap_y"`
	PaddleGap  float64 `yaml:"paddle_gap"`
}

// Colors control presentation only.
type Colors struct {
	Background Color `yaml:"background"`
	Ball       Color `yaml:"ball"`
	Paddle     Color `yaml:"paddle"`
	Wall       Color `yaml:"wall"`
	Brick      Color `yaml:"brick"`
	Text       Color `yaml:"text"`
	Score      Color `yaml:"score"`
}

type Audio struct {
	Volume float64 `yaml:"volume"`
}

// Validate checks the configuration invariants that must hold before a
// match can start. Violations are fatal at setup, never at tick time.
func (c *Config) Validate() error {
	if c.Arena.Width() <= 0 || c.Arena.Height() <= 0 {
		return fmt.Errorf("config: arena must have positive extent, got %gx%g", c.Arena.Width(), c.Arena.Height())
	}
	if len(c.Players) == 0 {
		return fmt.Errorf("config: at least one player required")
	}
	if c.Ball.Speed <= 0 {
		return fmt.Errorf("config: ball speed must be positive, got %g", c.Ball.Speed)
	}
	if c.Ball.MaxSpeed < c.Ball.Speed {
		return fmt.Errorf("config: ball max_speed %g below starting speed %g", c.Ball.MaxSpeed, c.Ball.Speed)
	}
	if c.Ball.Growth < 1 {
		return fmt.Errorf("config: ball growth must be >= 1, got %g", c.Ball.Growth)
	}
	if c.Ball.HalfWidth <= 0 || c.Ball.HalfHeight <= 0 {
		return fmt.Errorf("config: ball half extents must be positive")
	}
	if c.Ball.DirectionX == 0 && c.Ball.DirectionY == 0 {
		return fmt.Errorf("config: ball direction must be non-zero")
	}
	if c.Ball.DuplicateChance < 0 || c.Ball.DuplicateChance > 1 {
		return fmt.Errorf("config: duplicate_chance must be in [0,1], got %g", c.Ball.DuplicateChance)
	}
	switch c.Ball.DuplicateSpawn {
	case "", SpawnAtBall, SpawnAtStart:
	default:
		return fmt.Errorf("config: duplicate_spawn must be %q or %q, got %q", SpawnAtBall, SpawnAtStart, c.Ball.DuplicateSpawn)
	}
	for i, p := range c.Players {
		if p.Paddle.HalfWidth <= 0 || p.Paddle.HalfHeight <= 0 {
			return fmt.Errorf("config: player %d paddle half extents must be positive", i)
		}
		if p.Paddle.Speed < 0 {
			return fmt.Errorf("config: player %d paddle speed must be non-negative", i)
		}
		b := p.Paddle.Bounds
		if b.MinX > b.MaxX || b.MinY > b.MaxY {
			return fmt.Errorf("config: player %d paddle bounds inverted", i)
		}
	}
	for i, w := range c.Walls {
		if w.HalfThickness <= 0 {
			return fmt.Errorf("config: wall %d half_thickness must be positive", i)
		}
		if w.ScoresFor != nil && (*w.ScoresFor < 0 || *w.ScoresFor >= len(c.Players)) {
			return fmt.Errorf("config: wall %d scores_for %d out of range [0,%d)", i, *w.ScoresFor, len(c.Players))
		}
	}
	if c.Bricks.HalfWidth <= 0 || c.Bricks.HalfHeight <= 0 {
		return fmt.Errorf("config: brick half extents must be positive")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume must be in [0,1], got %g", c.Audio.Volume)
	}
	return nil
}

// SpawnPolicy returns the effective duplicate spawn policy.
func (c *Config) SpawnPolicy() string {
	if c.Ball.DuplicateSpawn == "" {
		return SpawnAtBall
	}
	return c.Ball.DuplicateSpawn
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
