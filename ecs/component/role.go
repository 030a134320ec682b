package component

// RoleKind is the closed set of collision-response policies.
type RoleKind uint8

const (
	RoleBall RoleKind = iota
	RolePaddle
	RoleWall
	RoleBrick
)

// NoScorer marks a wall that credits nobody when hit.
const NoScorer = -1

// Role determines how the collision engine responds when a ball hits
// the entity. Owner is the controlling player index for paddles.
// ScoresFor is the player index credited when a ball hits a wall, or
// NoScorer for a purely reflective wall. Both are meaningless for the
// other kinds.
type Role struct {
	Kind      RoleKind
	Owner     int
	ScoresFor int
}

func BallRole() Role {
	return Role{Kind: RoleBall, ScoresFor: NoScorer}
}

func PaddleRole(owner int) Role {
	return Role{Kind: RolePaddle, Owner: owner, ScoresFor: NoScorer}
}

func WallRole(scoresFor int) Role {
	return Role{Kind: RoleWall, ScoresFor: scoresFor}
}

func BrickRole() Role {
	return Role{Kind: RoleBrick, ScoresFor: NoScorer}
}

var RoleComponent = NewComponent[Role]()
