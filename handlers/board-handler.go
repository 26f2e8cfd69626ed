package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"ticket-tracker/models"
	"ticket-tracker/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BoardHandler struct {
	Service *services.BoardService
}

func NewBoardHandler(service *services.BoardService) *BoardHandler {
	return &BoardHandler{Service: service}
}

func boardIDFromRequest(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(mux.Vars(r)["id"])
}

func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if payload.Name == "" {
		http.Error(w, "Board name is required", http.StatusBadRequest)
		return
	}

	creator := models.Creator{UID: user.UID, Email: user.Email, Name: user.Name}
	board, err := h.Service.CreateBoard(r.Context(), creator, payload.Name, payload.Description)
	if err != nil {
		if err.Error() == "board with the same name already exists" {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, board)
}

func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	boards, err := h.Service.ListBoards(r.Context(), user.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := boardIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	board, err := h.Service.GetBoardByID(r.Context(), user.Email, boardID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// GetBoardPermissions returns the caller's resolved role and
// permission set, for the UI to gate actions on.
func (h *BoardHandler) GetBoardPermissions(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := boardIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	board, err := h.Service.GetBoardByID(r.Context(), user.Email, boardID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	role, _ := services.RoleOf(board, user.Email)
	writeJSON(w, http.StatusOK, struct {
		Role        models.BoardRole        `json:"role"`
		Permissions models.BoardPermissions `json:"permissions"`
	}{
		Role:        role,
		Permissions: services.PermissionsOf(board, user.Email),
	})
}

func (h *BoardHandler) UpdateBoardSettings(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := boardIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	board, err := h.Service.UpdateBoardSettings(r.Context(), user.Email, boardID, payload.Name, payload.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := boardIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteBoard(r.Context(), user.Email, boardID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Board deleted successfully"}`))
}

func (h *BoardHandler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := boardIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	var collaborator models.Collaborator
	if err := json.NewDecoder(r.Body).Decode(&collaborator); err != nil {
		http.Error(w, "Invalid collaborator data", http.StatusBadRequest)
		return
	}

	board, err := h.Service.AddCollaborator(r.Context(), user.Email, boardID, collaborator)
	if err != nil {
		switch {
		case err.Error() == "collaborator email is required",
			err.Error() == "board creator is already an admin",
			strings.HasPrefix(err.Error(), "invalid role"):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case strings.Contains(err.Error(), "already on the board"):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			handleServiceError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *BoardHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	boardID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}
	email := vars["email"]
	if email == "" {
		http.Error(w, "Collaborator email is required", http.StatusBadRequest)
		return
	}

	board, err := h.Service.RemoveCollaborator(r.Context(), user.Email, boardID, email)
	if err != nil {
		if err.Error() == "board creator cannot be removed" {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *BoardHandler) SetCollaboratorRole(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	boardID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}
	email := vars["email"]

	var payload struct {
		Role models.BoardRole `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !models.IsValidRole(payload.Role) {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	board, err := h.Service.SetCollaboratorRole(r.Context(), user.Email, boardID, email, payload.Role)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}
