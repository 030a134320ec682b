package component

import "image/color"

// Sprite is presentation-only: a flat fill color. Round entities
// (balls) are drawn as circles, everything else as rectangles.
type Sprite struct {
	Color color.NRGBA
	Round bool
}

var SpriteComponent = NewComponent[Sprite]()
