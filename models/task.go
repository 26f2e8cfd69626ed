package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in progress"
	StatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// Story-point fallback per priority, used when a task has no explicit
// point estimate.
const (
	pointsHigh    = 8
	pointsMedium  = 5
	pointsDefault = 3
)

type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	BoardID     primitive.ObjectID  `bson:"boardId" json:"boardId"`
	SprintID    *primitive.ObjectID `bson:"sprintId,omitempty" json:"sprintId,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Points      *int                `bson:"points,omitempty" json:"points,omitempty"`
	Priority    TaskPriority        `bson:"priority" json:"priority"`
	Status      TaskStatus          `bson:"status" json:"status"`
	DependsOn   *primitive.ObjectID `bson:"dependsOn,omitempty" json:"dependsOn,omitempty"`
	Assignees   []string            `bson:"assignees" json:"assignees"`
}

// StoryPoints returns the explicit estimate when present, otherwise
// the priority-derived fallback (High=8, Medium=5, else 3).
func (t *Task) StoryPoints() int {
	if t.Points != nil {
		return *t.Points
	}
	switch {
	case strings.EqualFold(string(t.Priority), string(PriorityHigh)):
		return pointsHigh
	case strings.EqualFold(string(t.Priority), string(PriorityMedium)):
		return pointsMedium
	}
	return pointsDefault
}

// IsDone matches the "done" status case-insensitively.
func (t *Task) IsDone() bool {
	return strings.EqualFold(string(t.Status), string(StatusDone))
}
