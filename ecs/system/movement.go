package system

import (
	"github.com/milk9111/brickpong/common"
	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// MovementSystem integrates velocity into position at a fixed
// timestep. Balls are additionally clamped to the arena interior plus
// a padding; the clamp is a safety net against tunneling past a thin
// wall at high speed, not the collision response itself.
type MovementSystem struct {
	Dt      float64
	MinX    float64
	MinY    float64
	MaxX    float64
	MaxY    float64
	Padding float64
}

func NewMovementSystem(dt, minX, minY, maxX, maxY, padding float64) *MovementSystem {
	return &MovementSystem{Dt: dt, MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, Padding: padding}
}

func (s *MovementSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.VelocityComponent, func(e ecs.Entity, vel *component.Velocity) {
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			panic("movement: entity " + e.String() + " has velocity but no transform")
		}
		tr.X += vel.X * s.Dt
		tr.Y += vel.Y * s.Dt

		role, ok := ecs.Get(w, e, component.RoleComponent)
		if !ok || role.Kind != component.RoleBall {
			return
		}
		tr.X = common.Clamp(tr.X, s.MinX-s.Padding, s.MaxX+s.Padding)
		tr.Y = common.Clamp(tr.Y, s.MinY-s.Padding, s.MaxY+s.Padding)
	})
}
