package component

// Transform is an entity's center position in arena units. The arena
// uses a center origin with Y growing upward; the render system maps
// it to screen space.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
