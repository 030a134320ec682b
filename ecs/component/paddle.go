package component

// Paddle holds a paddle's movement parameters. Bounds are inclusive
// and apply to the paddle's center.
type Paddle struct {
	Speed float64
	MinX  float64
	MinY  float64
	MaxX  float64
	MaxY  float64
}

var PaddleComponent = NewComponent[Paddle]()
