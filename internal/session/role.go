package session

import "riftdraft/internal/engine"

// Role is assigned once, when a context joins. The coordinator (a
// context opened without a side parameter) may act for either side;
// side participants only on their own turns; spectators never mutate.
type Role string

const (
	RoleCoordinator Role = "coordinator"
	RoleBlue        Role = "blue"
	RoleRed         Role = "red"
	RoleSpectator   Role = "spectator"
)

// RoleFromParam maps the join-time side parameter onto a role. An empty
// parameter means the local/coordinator context.
func RoleFromParam(param string) (Role, bool) {
	switch param {
	case "":
		return RoleCoordinator, true
	case "blue":
		return RoleBlue, true
	case "red":
		return RoleRed, true
	case "spectate", "spectator":
		return RoleSpectator, true
	default:
		return "", false
	}
}

func (r Role) AllowsSide(side engine.Side) bool {
	switch r {
	case RoleCoordinator:
		return true
	case RoleBlue:
		return side == engine.SideBlue
	case RoleRed:
		return side == engine.SideRed
	default:
		return false
	}
}
