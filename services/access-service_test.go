package services

import (
	"testing"

	"ticket-tracker/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testBoard() *models.Board {
	return &models.Board{
		ID:   primitive.NewObjectID(),
		Name: "Platform",
		Creator: models.Creator{
			UID:   "uid-1",
			Email: "owner@example.com",
			Name:  "Owner",
		},
		Collaborators: []models.Collaborator{
			{Email: "manager@example.com", Name: "Manager", Role: models.RoleManager},
			{Email: "user@example.com", Name: "User", Role: models.RoleUser},
			{Email: "admin@example.com", Name: "Admin", Role: models.RoleAdmin},
		},
	}
}

func TestPermissionsForIsTotalAndFixed(t *testing.T) {
	roles := []models.BoardRole{models.RoleAdmin, models.RoleManager, models.RoleUser}
	for _, role := range roles {
		first := models.PermissionsFor(role)
		second := models.PermissionsFor(role)
		if first != second {
			t.Fatalf("PermissionsFor(%s) is not deterministic: %+v vs %+v", role, first, second)
		}
	}

	admin := models.PermissionsFor(models.RoleAdmin)
	if admin != (models.BoardPermissions{
		ManageColumns:       true,
		ManageCollaborators: true,
		ManageSprints:       true,
		GiveManagerReviews:  true,
		DeleteBoard:         true,
		EditBoardSettings:   true,
	}) {
		t.Fatalf("admin permissions = %+v, want all capabilities", admin)
	}

	manager := models.PermissionsFor(models.RoleManager)
	if !manager.ManageSprints || manager.ManageCollaborators || manager.DeleteBoard {
		t.Fatalf("manager permissions = %+v", manager)
	}

	user := models.PermissionsFor(models.RoleUser)
	if user != (models.BoardPermissions{}) {
		t.Fatalf("user permissions = %+v, want none", user)
	}

	if unknown := models.PermissionsFor(models.BoardRole("owner")); unknown != (models.BoardPermissions{}) {
		t.Fatalf("unknown role permissions = %+v, want none", unknown)
	}
}

func TestRoleOfCreatorIsAlwaysAdmin(t *testing.T) {
	board := testBoard()

	role, ok := RoleOf(board, "owner@example.com")
	if !ok || role != models.RoleAdmin {
		t.Fatalf("RoleOf(creator) = %q, %v; want admin, true", role, ok)
	}

	// Even when the creator appears in the collaborator list with a
	// lesser role, the creator identity wins.
	board.Collaborators = append(board.Collaborators, models.Collaborator{Email: "owner@example.com", Role: models.RoleUser})
	role, ok = RoleOf(board, "owner@example.com")
	if !ok || role != models.RoleAdmin {
		t.Fatalf("RoleOf(creator with collaborator entry) = %q, %v; want admin, true", role, ok)
	}
}

func TestRoleOfResolvesCollaboratorsByExactEmail(t *testing.T) {
	board := testBoard()

	tests := []struct {
		email    string
		wantRole models.BoardRole
		wantOK   bool
	}{
		{"manager@example.com", models.RoleManager, true},
		{"user@example.com", models.RoleUser, true},
		{"admin@example.com", models.RoleAdmin, true},
		{"MANAGER@example.com", "", false},
		{"stranger@example.com", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		role, ok := RoleOf(board, tt.email)
		if role != tt.wantRole || ok != tt.wantOK {
			t.Errorf("RoleOf(%q) = %q, %v; want %q, %v", tt.email, role, ok, tt.wantRole, tt.wantOK)
		}
	}

	if _, ok := RoleOf(nil, "owner@example.com"); ok {
		t.Fatalf("RoleOf(nil board) resolved a role")
	}
}

func TestPermissionsOfUnknownUserIsAllFalse(t *testing.T) {
	board := testBoard()
	perms := PermissionsOf(board, "stranger@example.com")
	if perms != (models.BoardPermissions{}) {
		t.Fatalf("PermissionsOf(stranger) = %+v, want none", perms)
	}
	if HasPermission(board, "stranger@example.com", models.CapManageSprints) {
		t.Fatalf("stranger has manage sprints permission")
	}
}

func TestHasPermission(t *testing.T) {
	board := testBoard()

	if !HasPermission(board, "owner@example.com", models.CapDeleteBoard) {
		t.Errorf("creator should be able to delete the board")
	}
	if !HasPermission(board, "manager@example.com", models.CapManageSprints) {
		t.Errorf("manager should be able to manage sprints")
	}
	if HasPermission(board, "manager@example.com", models.CapManageCollaborators) {
		t.Errorf("manager should not manage collaborators")
	}
	if HasPermission(board, "user@example.com", models.CapManageColumns) {
		t.Errorf("user should not manage columns")
	}
	if HasPermission(board, "owner@example.com", models.Capability("bogus")) {
		t.Errorf("unknown capability should never be granted")
	}
}

func TestCanAssignRole(t *testing.T) {
	board := testBoard()

	for _, target := range []models.BoardRole{models.RoleAdmin, models.RoleManager, models.RoleUser} {
		if !CanAssignRole(board, "owner@example.com", target) {
			t.Errorf("creator admin cannot assign %s", target)
		}
		if !CanAssignRole(board, "admin@example.com", target) {
			t.Errorf("collaborator admin cannot assign %s", target)
		}
		if CanAssignRole(board, "manager@example.com", target) {
			t.Errorf("manager can assign %s", target)
		}
		if CanAssignRole(board, "user@example.com", target) {
			t.Errorf("user can assign %s", target)
		}
		if CanAssignRole(board, "stranger@example.com", target) {
			t.Errorf("stranger can assign %s", target)
		}
	}

	if CanAssignRole(board, "owner@example.com", models.BoardRole("owner")) {
		t.Fatalf("invalid target role was assignable")
	}
}
