package services

import (
	"ticket-tracker/models"
)

// Access evaluation over a board snapshot. The board document's
// embedded collaborator list is the only source of truth for roles;
// there is no separate access-record collection. All functions are
// pure: missing boards or unknown emails degrade to "no permission",
// they never error.

// RoleOf resolves the role of an email on a board. The creator is
// always admin, even when absent from the collaborator list;
// otherwise the collaborator with the exact same email decides.
func RoleOf(board *models.Board, email string) (models.BoardRole, bool) {
	if board == nil || email == "" {
		return "", false
	}
	if email == board.Creator.Email {
		return models.RoleAdmin, true
	}
	for _, c := range board.Collaborators {
		if c.Email == email {
			return c.Role, true
		}
	}
	return "", false
}

// PermissionsOf returns the permission set for an email on a board,
// or the all-false set when no role resolves.
func PermissionsOf(board *models.Board, email string) models.BoardPermissions {
	role, ok := RoleOf(board, email)
	if !ok {
		return models.BoardPermissions{}
	}
	return models.PermissionsFor(role)
}

// HasPermission reports whether the email holds the capability on the
// board.
func HasPermission(board *models.Board, email string, capability models.Capability) bool {
	return PermissionsOf(board, email).Has(capability)
}

// CanAssignRole reports whether the assigner may hand out targetRole
// on the board. Only admins assign roles, and they may assign any of
// the three. The creator's own role can never be reassigned; that
// invariant is enforced by the mutation path, not here.
func CanAssignRole(board *models.Board, assignerEmail string, targetRole models.BoardRole) bool {
	if !models.IsValidRole(targetRole) {
		return false
	}
	role, ok := RoleOf(board, assignerEmail)
	return ok && role == models.RoleAdmin
}
