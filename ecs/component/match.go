package component

// Match is the singleton simulation state: one entity carries it per
// world. Scores is indexed by player id and only ever grows. BallSpeed
// is the shared target speed for every ball, ramped by the collision
// system and consumed by the speed system. Collided marks that at
// least one collision happened this tick; the sound system consumes
// and clears it.
type Match struct {
	Scores    []int
	BallSpeed float64
	Collided  bool
}

var MatchComponent = NewComponent[Match]()
