package entities

// Role is the closed set of back-office authorization roles. An identity
// without a role record has no elevated privileges.
type Role string

const (
	RoleSuper          Role = "super"
	RoleContentEditor  Role = "content-editor"
	RoleActivityEditor Role = "activity-editor"
)

// requestedRoleMapping is the static table translating client-supplied role
// names into internal roles. It is total over the accepted input set;
// anything else is rejected at the boundary.
var requestedRoleMapping = map[string]Role{
	"super_admin":    RoleSuper,
	"news_admin":     RoleContentEditor,
	"activity_admin": RoleActivityEditor,
}

// MapRequestedRole resolves a client-supplied role name to an internal role.
func MapRequestedRole(requested string) (Role, bool) {
	role, ok := requestedRoleMapping[requested]
	return role, ok
}

// IsValidRole reports whether role is a member of the closed internal set.
func IsValidRole(role Role) bool {
	switch role {
	case RoleSuper, RoleContentEditor, RoleActivityEditor:
		return true
	default:
		return false
	}
}

func RoleIn(role Role, required []Role) bool {
	for _, candidate := range required {
		if role == candidate {
			return true
		}
	}
	return false
}
