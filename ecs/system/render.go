package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// RenderSystem draws a read-only snapshot of the world: every entity
// with a transform, size, and sprite. It never mutates simulation
// state. Arena coordinates (center origin, Y up) are mapped to screen
// space with a uniform scale.
type RenderSystem struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

func NewRenderSystem(left, right, bottom, top float64) *RenderSystem {
	return &RenderSystem{Left: left, Right: right, Bottom: bottom, Top: top}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	arenaW := r.Right - r.Left
	arenaH := r.Top - r.Bottom
	scale := sw / arenaW
	if s := sh / arenaH; s < scale {
		scale = s
	}
	offX := (sw - arenaW*scale) / 2
	offY := (sh - arenaH*scale) / 2

	toScreen := func(x, y float64) (float32, float32) {
		return float32(offX + (x-r.Left)*scale), float32(offY + (r.Top-y)*scale)
	}

	entities := w.Query(
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		component.SpriteComponent.Kind(),
	)
	for _, e := range entities {
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		size, _ := ecs.Get(w, e, component.SizeComponent)
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)

		cx, cy := toScreen(tr.X, tr.Y)
		hw := float32(size.HalfW * scale)
		hh := float32(size.HalfH * scale)

		if sprite.Round {
			radius := hw
			if hh < radius {
				radius = hh
			}
			vector.DrawFilledCircle(screen, cx, cy, radius, sprite.Color, true)
			continue
		}
		vector.DrawFilledRect(screen, cx-hw, cy-hh, hw*2, hh*2, sprite.Color, false)
	}
}
