package component

// Size holds an entity's axis-aligned half extents. Constant after
// creation.
type Size struct {
	HalfW float64
	HalfH float64
}

var SizeComponent = NewComponent[Size]()
