package models

type BoardRole string

const (
	RoleAdmin   BoardRole = "admin"
	RoleManager BoardRole = "manager"
	RoleUser    BoardRole = "user"
)

// IsValidRole reports whether role is one of the three board roles.
func IsValidRole(role BoardRole) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// Capability names a single entry of BoardPermissions, for callers
// that check permissions by name.
type Capability string

const (
	CapManageColumns       Capability = "manageColumns"
	CapManageCollaborators Capability = "manageCollaborators"
	CapManageSprints       Capability = "manageSprints"
	CapGiveManagerReviews  Capability = "giveManagerReviews"
	CapDeleteBoard         Capability = "deleteBoard"
	CapEditBoardSettings   Capability = "editBoardSettings"
)

type BoardPermissions struct {
	ManageColumns       bool `json:"manageColumns"`
	ManageCollaborators bool `json:"manageCollaborators"`
	ManageSprints       bool `json:"manageSprints"`
	GiveManagerReviews  bool `json:"giveManagerReviews"`
	DeleteBoard         bool `json:"deleteBoard"`
	EditBoardSettings   bool `json:"editBoardSettings"`
}

// Has reports whether the capability is granted. Unknown capability
// names are never granted.
func (p BoardPermissions) Has(c Capability) bool {
	switch c {
	case CapManageColumns:
		return p.ManageColumns
	case CapManageCollaborators:
		return p.ManageCollaborators
	case CapManageSprints:
		return p.ManageSprints
	case CapGiveManagerReviews:
		return p.GiveManagerReviews
	case CapDeleteBoard:
		return p.DeleteBoard
	case CapEditBoardSettings:
		return p.EditBoardSettings
	}
	return false
}

// rolePermissions is the static capability matrix. Exactly one
// permission set per role; there are no per-user overrides.
var rolePermissions = map[BoardRole]BoardPermissions{
	RoleAdmin: {
		ManageColumns:       true,
		ManageCollaborators: true,
		ManageSprints:       true,
		GiveManagerReviews:  true,
		DeleteBoard:         true,
		EditBoardSettings:   true,
	},
	RoleManager: {
		ManageColumns:      true,
		ManageSprints:      true,
		GiveManagerReviews: true,
	},
	RoleUser: {},
}

// PermissionsFor returns the permission set for a role. Roles outside
// the enum get the empty (all false) set.
func PermissionsFor(role BoardRole) BoardPermissions {
	return rolePermissions[role]
}
