package component

// Obstacle tags an entity as eligible for collision testing against
// balls. Walls, bricks, and paddles carry it; balls never do, so balls
// pass through each other.
type Obstacle struct{}

var ObstacleComponent = NewComponent[Obstacle]()
