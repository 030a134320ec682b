package system

import (
	"math/rand"

	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// contactSide names the side of the ball on which the contact
// happened: sideRight means the obstacle sits to the ball's right (the
// ball's right face struck it). sideInside is the degenerate case of a
// ball center fully contained in the obstacle, which registers for
// scoring and destruction but has no meaningful reflection axis.
type contactSide int

const (
	sideLeft contactSide = iota
	sideRight
	sideTop
	sideBottom
	sideInside
)

func (c contactSide) String() string {
	switch c {
	case sideLeft:
		return "left"
	case sideRight:
		return "right"
	case sideTop:
		return "top"
	case sideBottom:
		return "bottom"
	default:
		return "inside"
	}
}

// classifyContact tests the two center/half-extent boxes for overlap
// and, when they overlap, picks the primary contact side from the
// smaller axis penetration.
func classifyContact(ballPos component.Transform, ballSize component.Size, boxPos component.Transform, boxSize component.Size) (contactSide, bool) {
	aMinX, aMaxX := ballPos.X-ballSize.HalfW, ballPos.X+ballSize.HalfW
	aMinY, aMaxY := ballPos.Y-ballSize.HalfH, ballPos.Y+ballSize.HalfH
	bMinX, bMaxX := boxPos.X-boxSize.HalfW, boxPos.X+boxSize.HalfW
	bMinY, bMaxY := boxPos.Y-boxSize.HalfH, boxPos.Y+boxSize.HalfH

	if aMinX >= bMaxX || aMaxX <= bMinX || aMinY >= bMaxY || aMaxY <= bMinY {
		return sideInside, false
	}

	// Penetration depth per axis, when the ball overhangs exactly one
	// edge of the obstacle on that axis. A ball overhanging neither
	// edge is inside the obstacle along that axis.
	const noDepth = -1.0

	xSide, xDepth := sideInside, noDepth
	if aMinX < bMinX && aMaxX > bMinX && aMaxX <= bMaxX {
		xSide, xDepth = sideRight, aMaxX-bMinX
	} else if aMaxX > bMaxX && aMinX < bMaxX && aMinX >= bMinX {
		xSide, xDepth = sideLeft, bMaxX-aMinX
	}

	ySide, yDepth := sideInside, noDepth
	if aMinY < bMinY && aMaxY > bMinY && aMaxY <= bMaxY {
		ySide, yDepth = sideTop, aMaxY-bMinY
	} else if aMaxY > bMaxY && aMinY < bMaxY && aMinY >= bMinY {
		ySide, yDepth = sideBottom, bMaxY-aMinY
	}

	switch {
	case xDepth < 0 && yDepth < 0:
		return sideInside, true
	case xDepth < 0:
		return ySide, true
	case yDepth < 0:
		return xSide, true
	case yDepth < xDepth:
		return ySide, true
	default:
		return xSide, true
	}
}

// CollisionSystem is the core of the simulation: per tick it tests
// every ball against every obstacle, reflects velocities, credits
// scoring walls, destroys bricks, ramps the shared ball speed, and
// probabilistically duplicates balls on brick hits. Brick removal and
// ball spawning are deferred until the pass completes so the entity
// set is never mutated mid-iteration.
type CollisionSystem struct {
	Growth          float64
	MaxSpeed        float64
	DuplicateChance float64
	SpawnAtStart    bool
	StartX          float64
	StartY          float64

	rng *rand.Rand
}

func NewCollisionSystem(growth, maxSpeed, duplicateChance float64, rng *rand.Rand) *CollisionSystem {
	return &CollisionSystem{
		Growth:          growth,
		MaxSpeed:        maxSpeed,
		DuplicateChance: duplicateChance,
		rng:             rng,
	}
}

type ballSpawn struct {
	x, y   float64
	vx, vy float64
	size   component.Size
	sprite *component.Sprite
}

func (s *CollisionSystem) Update(w *ecs.World) {
	matchEnt, ok := w.First(component.MatchComponent.Kind())
	if !ok {
		panic("collision: world has no match entity")
	}
	match, _ := ecs.Get(w, matchEnt, component.MatchComponent)

	obstacles := w.Query(
		component.ObstacleComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		component.RoleComponent.Kind(),
	)

	destroyed := make(map[ecs.Entity]bool)
	var spawns []ballSpawn

	ecs.ForEach(w, component.VelocityComponent, func(ball ecs.Entity, vel *component.Velocity) {
		ballTr, ok := ecs.Get(w, ball, component.TransformComponent)
		if !ok {
			panic("collision: ball " + ball.String() + " missing transform")
		}
		ballSize, ok := ecs.Get(w, ball, component.SizeComponent)
		if !ok {
			panic("collision: ball " + ball.String() + " missing size")
		}

		for _, ob := range obstacles {
			// a brick destroyed earlier this tick cannot be hit again
			if destroyed[ob] {
				continue
			}
			obTr, _ := ecs.Get(w, ob, component.TransformComponent)
			obSize, _ := ecs.Get(w, ob, component.SizeComponent)
			role, _ := ecs.Get(w, ob, component.RoleComponent)

			side, hit := classifyContact(*ballTr, *ballSize, *obTr, *obSize)
			if !hit {
				continue
			}

			if match.BallSpeed < s.MaxSpeed {
				match.BallSpeed *= s.Growth
				if match.BallSpeed > s.MaxSpeed {
					match.BallSpeed = s.MaxSpeed
				}
			}

			// one marker per tick is enough, however many collisions
			match.Collided = true

			if role.Kind == component.RoleWall && role.ScoresFor != component.NoScorer {
				if role.ScoresFor >= 0 && role.ScoresFor < len(match.Scores) {
					match.Scores[role.ScoresFor]++
				}
			}

			if role.Kind == component.RoleBrick {
				destroyed[ob] = true
			}

			// Reflect only the axis matching the contact side, and
			// only if the ball is moving into the surface. A ball
			// still overlapping a surface it already bounced off must
			// not be reflected back again.
			switch side {
			case sideRight:
				if vel.X > 0 {
					vel.X = -vel.X
				}
			case sideLeft:
				if vel.X < 0 {
					vel.X = -vel.X
				}
			case sideTop:
				if vel.Y > 0 {
					vel.Y = -vel.Y
				}
			case sideBottom:
				if vel.Y < 0 {
					vel.Y = -vel.Y
				}
			case sideInside:
				// no reflection axis; scoring and destruction above
				// still count
			}

			if role.Kind == component.RoleBrick && s.rng.Float64() < s.DuplicateChance {
				sp := ballSpawn{
					x:    ballTr.X,
					y:    ballTr.Y,
					vx:   vel.X,
					vy:   vel.Y,
					size: *ballSize,
				}
				if s.SpawnAtStart {
					sp.x, sp.y = s.StartX, s.StartY
				}
				if sprite, ok := ecs.Get(w, ball, component.SpriteComponent); ok {
					c := *sprite
					sp.sprite = &c
				}
				spawns = append(spawns, sp)
			}
		}
	})

	for ob := range destroyed {
		w.DestroyEntity(ob)
	}
	for _, sp := range spawns {
		s.spawnBall(w, sp)
	}
}

func (s *CollisionSystem) spawnBall(w *ecs.World, sp ballSpawn) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: sp.x, Y: sp.y})
	_ = ecs.Add(w, e, component.SizeComponent, sp.size)
	_ = ecs.Add(w, e, component.VelocityComponent, component.Velocity{X: sp.vx, Y: sp.vy})
	_ = ecs.Add(w, e, component.RoleComponent, component.BallRole())
	if sp.sprite != nil {
		_ = ecs.Add(w, e, component.SpriteComponent, *sp.sprite)
	}
	return e
}
