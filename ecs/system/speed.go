package system

import (
	"math"

	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// SpeedSystem re-pins every ball's velocity magnitude to the shared
// target speed. It runs after the collision system so the direction
// chosen by reflection is preserved while the magnitude follows the
// ramp. A zero velocity is left alone rather than divided by zero.
type SpeedSystem struct{}

func NewSpeedSystem() *SpeedSystem {
	return &SpeedSystem{}
}

func (s *SpeedSystem) Update(w *ecs.World) {
	matchEnt, ok := w.First(component.MatchComponent.Kind())
	if !ok {
		panic("speed: world has no match entity")
	}
	match, _ := ecs.Get(w, matchEnt, component.MatchComponent)

	ecs.ForEach(w, component.VelocityComponent, func(_ ecs.Entity, vel *component.Velocity) {
		mag := math.Hypot(vel.X, vel.Y)
		if mag == 0 {
			return
		}
		scale := match.BallSpeed / mag
		vel.X *= scale
		vel.Y *= scale
	})
}
