package component

// Velocity in arena units per second. Only balls carry one.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
