package user

// Role tags the two identity kinds the account service hands us.
type Role string

const (
	RoleFan    Role = "fan"
	RolePlayer Role = "player"
)

// Principal is the verified identity attached to every authorized request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) IsFan() bool {
	return p.Role == RoleFan
}

func (p Principal) IsPlayer() bool {
	return p.Role == RolePlayer
}
