package system

import (
	"github.com/milk9111/brickpong/common"
	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// PaddleControllerSystem turns the per-tick resolved input into paddle
// displacement: the summed control direction is normalized, scaled by
// the paddle's speed and the fixed timestep, and the result is clamped
// component-wise to the paddle's movement bounds.
type PaddleControllerSystem struct {
	Dt float64
}

func NewPaddleControllerSystem(dt float64) *PaddleControllerSystem {
	return &PaddleControllerSystem{Dt: dt}
}

func (s *PaddleControllerSystem) Update(w *ecs.World) {
	entities := w.Query(
		component.PaddleComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		if input.MoveX == 0 && input.MoveY == 0 {
			continue
		}
		paddle, ok := ecs.Get(w, e, component.PaddleComponent)
		if !ok {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		dx, dy := common.Normalize(input.MoveX, input.MoveY)
		tr.X = common.Clamp(tr.X+dx*paddle.Speed*s.Dt, paddle.MinX, paddle.MaxX)
		tr.Y = common.Clamp(tr.Y+dy*paddle.Speed*s.Dt, paddle.MinY, paddle.MaxY)
	}
}
