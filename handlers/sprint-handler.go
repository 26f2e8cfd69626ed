package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ticket-tracker/models"
	"ticket-tracker/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SprintHandler struct {
	Service *services.SprintService
}

func NewSprintHandler(service *services.SprintService) *SprintHandler {
	return &SprintHandler{Service: service}
}

func sprintIDFromRequest(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(mux.Vars(r)["id"])
}

func (h *SprintHandler) CreateSprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	var sprint models.Sprint
	if err := json.NewDecoder(r.Body).Decode(&sprint); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if sprint.BoardID.IsZero() {
		http.Error(w, "Board ID is required", http.StatusBadRequest)
		return
	}
	if sprint.Name == "" {
		http.Error(w, "Sprint name is required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateSprint(r.Context(), user.Email, &sprint)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *SprintHandler) GetSprintsByBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := primitive.ObjectIDFromHex(mux.Vars(r)["boardId"])
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	sprints, err := h.Service.GetSprintsByBoard(r.Context(), user.Email, boardID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sprints)
}

func (h *SprintHandler) GetActiveSprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := primitive.ObjectIDFromHex(mux.Vars(r)["boardId"])
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	sprint, err := h.Service.GetActiveSprint(r.Context(), user.Email, boardID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sprint)
}

func (h *SprintHandler) GetSprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := sprintIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	sprint, err := h.Service.GetSprintByID(r.Context(), user.Email, sprintID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sprint)
}

func (h *SprintHandler) UpdateSprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := sprintIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	var update services.SprintUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	sprint, err := h.Service.UpdateSprint(r.Context(), user.Email, sprintID, &update)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sprint)
}

func (h *SprintHandler) StartSprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := sprintIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	sprint, err := h.Service.StartSprint(r.Context(), user.Email, sprintID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sprint)
}

func (h *SprintHandler) CompleteSprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := sprintIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	sprint, err := h.Service.CompleteSprint(r.Context(), user.Email, sprintID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sprint)
}

func (h *SprintHandler) AssignTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := sprintIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		TaskIDs []primitive.ObjectID `json:"taskIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	sprint, err := h.Service.AssignTasks(r.Context(), user.Email, sprintID, payload.TaskIDs)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sprint)
}

func (h *SprintHandler) DeleteSprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := sprintIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteSprint(r.Context(), user.Email, sprintID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Sprint deleted successfully"}`))
}

// GetSprintCapacity serves the live capacity figures. The selected
// points come from the query string when present, otherwise from the
// sprint's currently assigned tasks.
func (h *SprintHandler) GetSprintCapacity(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := sprintIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	var selectedPoints *int
	if raw := r.URL.Query().Get("selectedPoints"); raw != "" {
		points, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid selectedPoints value", http.StatusBadRequest)
			return
		}
		selectedPoints = &points
	}

	capacity, err := h.Service.GetSprintCapacity(r.Context(), user.Email, sprintID, selectedPoints)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, capacity)
}
