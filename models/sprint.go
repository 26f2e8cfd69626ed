package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SprintStatus string

const (
	SprintPlanning  SprintStatus = "planning"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

type Sprint struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	BoardID          primitive.ObjectID   `bson:"boardId" json:"boardId"`
	SprintNumber     int                  `bson:"sprintNumber" json:"sprintNumber"`
	Name             string               `bson:"name" json:"name"`
	Status           SprintStatus         `bson:"status" json:"status"`
	DurationDays     int                  `bson:"durationDays" json:"durationDays"`
	WorkHoursPerWeek float64              `bson:"workHoursPerWeek" json:"workHoursPerWeek"`
	TeamSize         int                  `bson:"teamSize" json:"teamSize"`
	Goals            []string             `bson:"goals" json:"goals"`
	Features         []string             `bson:"features" json:"features"`
	Risks            []string             `bson:"risks" json:"risks"`
	Bottlenecks      []string             `bson:"bottlenecks" json:"bottlenecks"`
	Holidays         []time.Time          `bson:"holidays" json:"holidays"`
	TaskIDs          []primitive.ObjectID `bson:"taskIds" json:"taskIds"`
	StartDate        time.Time            `bson:"startDate" json:"startDate"`
	EndDate          time.Time            `bson:"endDate" json:"endDate"`
	TotalStoryPoints int                  `bson:"totalStoryPoints,omitempty" json:"totalStoryPoints,omitempty"`

	// Completion snapshot, written once by the completing transition.
	InitialStoryPoints   int        `bson:"initialStoryPoints,omitempty" json:"initialStoryPoints,omitempty"`
	CompletedStoryPoints int        `bson:"completedStoryPoints,omitempty" json:"completedStoryPoints,omitempty"`
	SpilloverStoryPoints int        `bson:"spilloverStoryPoints,omitempty" json:"spilloverStoryPoints,omitempty"`
	CompletionRate       float64    `bson:"completionRate,omitempty" json:"completionRate,omitempty"`
	ActualVelocity       int        `bson:"actualVelocity,omitempty" json:"actualVelocity,omitempty"`
	CompletedAt          *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
