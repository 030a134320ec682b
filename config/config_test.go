package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := Default()
	if err != nil {
		t.Fatalf("embedded defaults must be valid: %v", err)
	}
	return cfg
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := validConfig(t)

	if len(cfg.Players) != 2 {
		t.Fatalf("expected 2 default players, got %d", len(cfg.Players))
	}
	if len(cfg.Walls) != 4 {
		t.Fatalf("expected 4 default walls, got %d", len(cfg.Walls))
	}
	if cfg.SpawnPolicy() != SpawnAtBall {
		t.Fatalf("expected default spawn policy %q, got %q", SpawnAtBall, cfg.SpawnPolicy())
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "inverted_arena",
			mutate:  func(c *Config) { c.Arena.Left, c.Arena.Right = c.Arena.Right, c.Arena.Left },
			wantErr: "arena",
		},
		{
			name:    "no_players",
			mutate:  func(c *Config) { c.Players = nil },
			wantErr: "player",
		},
		{
			name:    "zero_ball_speed",
			mutate:  func(c *Config) { c.Ball.Speed = 0 },
			wantErr: "speed",
		},
		{
			name:    "max_below_start",
			mutate:  func(c *Config) { c.Ball.MaxSpeed = c.Ball.Speed - 1 },
			wantErr: "max_speed",
		},
		{
			name:    "shrinking_growth",
			mutate:  func(c *Config) { c.Ball.Growth = 0.5 },
			wantErr: "growth",
		},
		{
			name:    "zero_ball_direction",
			mutate:  func(c *Config) { c.Ball.DirectionX, c.Ball.DirectionY = 0, 0 },
			wantErr: "direction",
		},
		{
			name:    "chance_above_one",
			mutate:  func(c *Config) { c.Ball.DuplicateChance = 1.5 },
			wantErr: "duplicate_chance",
		},
		{
			name:    "unknown_spawn_policy",
			mutate:  func(c *Config) { c.Ball.DuplicateSpawn = "paddle" },
			wantErr: "duplicate_spawn",
		},
		{
			name:    "inverted_paddle_bounds",
			mutate:  func(c *Config) { c.Players[0].Paddle.Bounds.MinY = c.Players[0].Paddle.Bounds.MaxY + 1 },
			wantErr: "bounds",
		},
		{
			name:    "flat_wall",
			mutate:  func(c *Config) { c.Walls[0].HalfThickness = 0 },
			wantErr: "half_thickness",
		},
		{
			name: "scores_for_out_of_range",
			mutate: func(c *Config) {
				i := 5
				c.Walls[0].ScoresFor = &i
			},
			wantErr: "scores_for",
		},
		{
			name:    "volume_out_of_range",
			mutate:  func(c *Config) { c.Audio.Volume = 2 },
			wantErr: "volume",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := validConfig(t)
			c.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brickpong.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Ball.Speed <= 0 {
		t.Fatalf("expected defaults loaded, got ball speed %g", cfg.Ball.Speed)
	}

	// the defaults landed on disk for the player to edit
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		body string
	}{
		{"not_yaml", "{{{"},
		{"invalid_values", "ball:\n  speed: -4\nplayers:\n  - name: p\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error for %s", c.name)
			}
		})
	}
}

func TestWallGeometry(t *testing.T) {
	cases := []struct {
		name           string
		wall           Wall
		wantCX, wantCY float64
		wantHW, wantHH float64
	}{
		{
			name:   "vertical_segment",
			wall:   Wall{X1: 600, Y1: -300, X2: 600, Y2: 300, HalfThickness: 5},
			wantCX: 600, wantCY: 0,
			wantHW: 5, wantHH: 305,
		},
		{
			name:   "horizontal_segment",
			wall:   Wall{X1: -600, Y1: 300, X2: 600, Y2: 300, HalfThickness: 5},
			wantCX: 0, wantCY: 300,
			wantHW: 605, wantHH: 5,
		},
		{
			name:   "reversed_endpoints",
			wall:   Wall{X1: 600, Y1: 300, X2: -600, Y2: 300, HalfThickness: 5},
			wantCX: 0, wantCY: 300,
			wantHW: 605, wantHH: 5,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cx, cy := c.wall.Center()
			hw, hh := c.wall.HalfExtents()
			if cx != c.wantCX || cy != c.wantCY {
				t.Fatalf("center = (%g, %g), want (%g, %g)", cx, cy, c.wantCX, c.wantCY)
			}
			if hw != c.wantHW || hh != c.wantHH {
				t.Fatalf("half extents = (%g, %g), want (%g, %g)", hw, hh, c.wantHW, c.wantHH)
			}
		})
	}
}

func TestColorUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#1a2b3c"`, color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, false},
		{"rgba", `"#1a2b3c80"`, color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0x80}, false},
		{"no_hash", `"ffffff"`, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"too_short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got Color
			err := yaml.Unmarshal([]byte(c.input), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.NRGBA != c.want {
				t.Fatalf("color = %+v, want %+v", got.NRGBA, c.want)
			}
		})
	}
}
