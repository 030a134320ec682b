package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/brickpong/config"
	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// Binding maps a held key to a movement direction.
type Binding struct {
	Key   ebiten.Key
	MoveX float64
	MoveY float64
}

// InputSystem resolves every player's configured control set into
// Input components once per tick: all directions whose keys are held
// are summed. Normalization and speed happen later in the paddle
// controller.
type InputSystem struct {
	bindings [][]Binding // by player index
}

func NewInputSystem(players []config.Player) (*InputSystem, error) {
	bindings := make([][]Binding, len(players))
	for i, p := range players {
		for _, c := range p.Controls {
			key, ok := keyByName(c.Key)
			if !ok {
				return nil, fmt.Errorf("input: player %d: unknown key %q", i, c.Key)
			}
			bindings[i] = append(bindings[i], Binding{Key: key, MoveX: c.Move[0], MoveY: c.Move[1]})
		}
	}
	return &InputSystem{bindings: bindings}, nil
}

func (s *InputSystem) Update(w *ecs.World) {
	moveX := make([]float64, len(s.bindings))
	moveY := make([]float64, len(s.bindings))
	for player, bs := range s.bindings {
		for _, b := range bs {
			if ebiten.IsKeyPressed(b.Key) {
				moveX[player] += b.MoveX
				moveY[player] += b.MoveY
			}
		}
	}

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		role, ok := ecs.Get(w, e, component.RoleComponent)
		if !ok || role.Kind != component.RolePaddle {
			return
		}
		if role.Owner < 0 || role.Owner >= len(moveX) {
			return
		}
		input.MoveX = moveX[role.Owner]
		input.MoveY = moveY[role.Owner]
	})
}

// keyByName resolves an ebiten key from its String() name ("Q",
// "ArrowUp", ...).
func keyByName(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
