package component

// Input is the per-tick resolved movement for a paddle: the sum of all
// active control directions for the owning player. Zero means no
// control is held. Refreshed by the input system every tick.
type Input struct {
	MoveX float64
	MoveY float64
}

var InputComponent = NewComponent[Input]()
