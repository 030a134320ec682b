package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/brickpong/assets"
	"github.com/milk9111/brickpong/common"
	"github.com/milk9111/brickpong/config"
	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
	"github.com/milk9111/brickpong/ecs/system"
)

// buildWorld spawns the level from config: the singleton match entity,
// the audio entity, walls, one paddle per player, the starting ball,
// and the brick fields. Everything else about the match (duplicated
// balls, destroyed bricks) is the collision system's business.
func buildWorld(cfg *config.Config, muted bool) *ecs.World {
	w := ecs.NewWorld()

	match := w.CreateEntity()
	mustAdd(w, match, component.MatchComponent, component.Match{
		Scores:    make([]int, len(cfg.Players)),
		BallSpeed: cfg.Ball.Speed,
	})

	if !muted {
		mustAdd(w, w.CreateEntity(), component.AudioComponent, component.Audio{
			Names:   []string{system.CollisionClip},
			Players: []*audio.Player{assets.NewCollisionPlayer()},
			Volume:  []float64{cfg.Audio.Volume},
			Play:    []bool{false},
		})
	}

	for _, wallCfg := range cfg.Walls {
		spawnWall(w, cfg, wallCfg)
	}
	for i, p := range cfg.Players {
		spawnPaddle(w, cfg, i, p.Paddle)
	}
	spawnBall(w, cfg)
	spawnBrickFields(w, cfg)

	return w
}

func spawnWall(w *ecs.World, cfg *config.Config, wallCfg config.Wall) ecs.Entity {
	e := w.CreateEntity()
	cx, cy := wallCfg.Center()
	hw, hh := wallCfg.HalfExtents()
	scoresFor := component.NoScorer
	if wallCfg.ScoresFor != nil {
		scoresFor = *wallCfg.ScoresFor
	}
	mustAdd(w, e, component.TransformComponent, component.Transform{X: cx, Y: cy})
	mustAdd(w, e, component.SizeComponent, component.Size{HalfW: hw, HalfH: hh})
	mustAdd(w, e, component.ObstacleComponent, component.Obstacle{})
	mustAdd(w, e, component.RoleComponent, component.WallRole(scoresFor))
	mustAdd(w, e, component.SpriteComponent, component.Sprite{Color: cfg.Colors.Wall.NRGBA})
	return e
}

func spawnPaddle(w *ecs.World, cfg *config.Config, owner int, p config.Paddle) ecs.Entity {
	e := w.CreateEntity()
	mustAdd(w, e, component.TransformComponent, component.Transform{X: p.X, Y: p.Y})
	mustAdd(w, e, component.SizeComponent, component.Size{HalfW: p.HalfWidth, HalfH: p.HalfHeight})
	mustAdd(w, e, component.ObstacleComponent, component.Obstacle{})
	mustAdd(w, e, component.RoleComponent, component.PaddleRole(owner))
	mustAdd(w, e, component.PaddleComponent, component.Paddle{
		Speed: p.Speed,
		MinX:  p.Bounds.MinX,
		MinY:  p.Bounds.MinY,
		MaxX:  p.Bounds.MaxX,
		MaxY:  p.Bounds.MaxY,
	})
	mustAdd(w, e, component.InputComponent, component.Input{})
	mustAdd(w, e, component.SpriteComponent, component.Sprite{Color: cfg.Colors.Paddle.NRGBA})
	return e
}

func spawnBall(w *ecs.World, cfg *config.Config) ecs.Entity {
	e := w.CreateEntity()
	dx, dy := common.Normalize(cfg.Ball.DirectionX, cfg.Ball.DirectionY)
	mustAdd(w, e, component.TransformComponent, component.Transform{X: cfg.Ball.StartX, Y: cfg.Ball.StartY})
	mustAdd(w, e, component.SizeComponent, component.Size{HalfW: cfg.Ball.HalfWidth, HalfH: cfg.Ball.HalfHeight})
	mustAdd(w, e, component.VelocityComponent, component.Velocity{X: dx * cfg.Ball.Speed, Y: dy * cfg.Ball.Speed})
	mustAdd(w, e, component.RoleComponent, component.BallRole())
	mustAdd(w, e, component.SpriteComponent, component.Sprite{Color: cfg.Colors.Ball.NRGBA, Round: true})
	return e
}

// spawnBrickFields lays a centered grid of bricks between each
// paddle's movement range and the vertical wall behind it, leaving the
// configured gaps. Row and column counts come from the available
// space, like the original arena generator.
func spawnBrickFields(w *ecs.World, cfg *config.Config) {
	minY := cfg.Arena.Bottom + cfg.Bricks.WallGapY
	maxY := cfg.Arena.Top - cfg.Bricks.WallGapY

	for _, p := range cfg.Players {
		var minX, maxX float64
		if p.Paddle.X < 0 {
			minX = cfg.Arena.Left + cfg.Bricks.WallGapX
			maxX = p.Paddle.Bounds.MinX - p.Paddle.HalfWidth - cfg.Bricks.PaddleGap
		} else {
			minX = p.Paddle.Bounds.MaxX + p.Paddle.HalfWidth + cfg.Bricks.PaddleGap
			maxX = cfg.Arena.Right - cfg.Bricks.WallGapX
		}
		spawnBrickField(w, cfg, minX, maxX, minY, maxY)
	}
}

func spawnBrickField(w *ecs.World, cfg *config.Config, minX, maxX, minY, maxY float64) {
	brickW := cfg.Bricks.HalfWidth * 2
	brickH := cfg.Bricks.HalfHeight * 2
	gap := cfg.Bricks.Gap

	width := maxX - minX
	height := maxY - minY
	if width < brickW || height < brickH {
		return
	}

	columns := int(math.Floor((width + gap) / (brickW + gap)))
	rows := int(math.Floor((height + gap) / (brickH + gap)))

	// center the grid inside the field
	usedW := float64(columns)*brickW + float64(columns-1)*gap
	usedH := float64(rows)*brickH + float64(rows-1)*gap
	originX := minX + (width-usedW)/2 + cfg.Bricks.HalfWidth
	originY := minY + (height-usedH)/2 + cfg.Bricks.HalfHeight

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			e := w.CreateEntity()
			x := originX + float64(col)*(brickW+gap)
			y := originY + float64(row)*(brickH+gap)
			mustAdd(w, e, component.TransformComponent, component.Transform{X: x, Y: y})
			mustAdd(w, e, component.SizeComponent, component.Size{HalfW: cfg.Bricks.HalfWidth, HalfH: cfg.Bricks.HalfHeight})
			mustAdd(w, e, component.ObstacleComponent, component.Obstacle{})
			mustAdd(w, e, component.RoleComponent, component.BrickRole())
			mustAdd(w, e, component.SpriteComponent, component.Sprite{Color: cfg.Colors.Brick.NRGBA})
		}
	}
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], value T) {
	if err := ecs.Add(w, e, handle, value); err != nil {
		panic("level: add component: " + err.Error())
	}
}
