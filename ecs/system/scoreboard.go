package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// ScoreboardSystem draws each player's score from the match snapshot.
// Player 0 sits in the top-left corner, player 1 in the top-right;
// further players stack below them.
type ScoreboardSystem struct {
	Names      []string
	TextColor  color.NRGBA
	ScoreColor color.NRGBA

	face ebtext.Face
}

func NewScoreboardSystem(names []string, textColor, scoreColor color.NRGBA) *ScoreboardSystem {
	return &ScoreboardSystem{
		Names:      names,
		TextColor:  textColor,
		ScoreColor: scoreColor,
		face:       ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (s *ScoreboardSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	matchEnt, ok := w.First(component.MatchComponent.Kind())
	if !ok {
		return
	}
	match, ok := ecs.Get(w, matchEnt, component.MatchComponent)
	if !ok {
		return
	}

	const pad = 5.0
	lineH := s.face.Metrics().HAscent + s.face.Metrics().HDescent + 4

	for i, score := range match.Scores {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(s.Names) && s.Names[i] != "" {
			name = s.Names[i]
		}
		label := name + ": "
		value := fmt.Sprintf("%d", score)

		x := pad
		row := float64(i / 2)
		if i%2 == 1 {
			labelW, _ := ebtext.Measure(label, s.face, 0)
			valueW, _ := ebtext.Measure(value, s.face, 0)
			x = float64(screen.Bounds().Dx()) - pad - labelW - valueW
		}
		y := pad + row*lineH

		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(s.TextColor)
		ebtext.Draw(screen, label, s.face, op)

		labelW, _ := ebtext.Measure(label, s.face, 0)
		op = &ebtext.DrawOptions{}
		op.GeoM.Translate(x+labelW, y)
		op.ColorScale.ScaleWithColor(s.ScoreColor)
		ebtext.Draw(screen, value, s.face, op)
	}
}
