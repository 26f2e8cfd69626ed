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

type TaskHandler struct {
	Service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if task.BoardID.IsZero() {
		http.Error(w, "Board ID is required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateTask(r.Context(), user.Email, &task)
	if err != nil {
		if err.Error() == "task title is required" {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TaskHandler) GetTasksByBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	boardID, err := primitive.ObjectIDFromHex(mux.Vars(r)["boardId"])
	if err != nil {
		http.Error(w, "Invalid board ID", http.StatusBadRequest)
		return
	}

	tasks, err := h.Service.GetTasksByBoard(r.Context(), user.Email, boardID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) GetTasksBySprint(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	sprintID, err := primitive.ObjectIDFromHex(mux.Vars(r)["sprintId"])
	if err != nil {
		http.Error(w, "Invalid sprint ID", http.StatusBadRequest)
		return
	}

	tasks, err := h.Service.GetTasksBySprint(r.Context(), user.Email, sprintID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) ChangeTaskStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	var payload struct {
		TaskID string            `json:"taskId"`
		Status models.TaskStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	taskID, err := primitive.ObjectIDFromHex(payload.TaskID)
	if err != nil {
		http.Error(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	task, err := h.Service.ChangeTaskStatus(r.Context(), user.Email, taskID, payload.Status)
	if err != nil {
		if strings.Contains(err.Error(), "unfinished dependency") {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
