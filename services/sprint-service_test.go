package services

import (
	"testing"
	"time"

	"ticket-tracker/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func TestComputeCompletionSnapshotSumsPoints(t *testing.T) {
	sprint := &models.Sprint{ID: primitive.NewObjectID()}
	tasks := []models.Task{
		{Status: models.StatusDone, Points: intPtr(5)},
		{Status: "Done", Priority: models.PriorityHigh},           // fallback 8, case-insensitive done
		{Status: models.StatusInProgress, Points: intPtr(13)},     // spillover
		{Status: models.StatusPending, Priority: models.PriorityMedium}, // fallback 5
		{Status: models.StatusPending, Priority: "Low"},           // fallback 3
	}
	now := time.Now()

	snapshot := computeCompletionSnapshot(sprint, tasks, now)

	if snapshot.CompletedStoryPoints != 13 {
		t.Fatalf("CompletedStoryPoints = %d, want 13", snapshot.CompletedStoryPoints)
	}
	if snapshot.SpilloverStoryPoints != 21 {
		t.Fatalf("SpilloverStoryPoints = %d, want 21", snapshot.SpilloverStoryPoints)
	}

	// Completed plus spillover always equals the point total of every
	// task in the sprint.
	total := 0
	for i := range tasks {
		total += tasks[i].StoryPoints()
	}
	if snapshot.CompletedStoryPoints+snapshot.SpilloverStoryPoints != total {
		t.Fatalf("completed+spillover = %d, want %d", snapshot.CompletedStoryPoints+snapshot.SpilloverStoryPoints, total)
	}

	if snapshot.ActualVelocity != snapshot.CompletedStoryPoints {
		t.Fatalf("ActualVelocity = %d, want %d", snapshot.ActualVelocity, snapshot.CompletedStoryPoints)
	}
	if snapshot.CompletionRate != 40.0 { // 2 of 5 tasks done
		t.Fatalf("CompletionRate = %v, want 40.0", snapshot.CompletionRate)
	}
	if !snapshot.CompletedAt.Equal(now) {
		t.Fatalf("CompletedAt = %v, want %v", snapshot.CompletedAt, now)
	}
}

func TestComputeCompletionSnapshotInitialPoints(t *testing.T) {
	tasks := []models.Task{
		{Status: models.StatusDone, Points: intPtr(8)},
		{Status: models.StatusPending, Points: intPtr(5)},
	}

	// Stored planning total wins when present.
	withTotal := &models.Sprint{TotalStoryPoints: 20}
	snapshot := computeCompletionSnapshot(withTotal, tasks, time.Now())
	if snapshot.InitialStoryPoints != 20 {
		t.Fatalf("InitialStoryPoints = %d, want stored 20", snapshot.InitialStoryPoints)
	}

	// Absent a stored total, initial falls back to completed+spillover.
	withoutTotal := &models.Sprint{}
	snapshot = computeCompletionSnapshot(withoutTotal, tasks, time.Now())
	if snapshot.InitialStoryPoints != 13 {
		t.Fatalf("InitialStoryPoints = %d, want 13", snapshot.InitialStoryPoints)
	}
}

func TestComputeCompletionSnapshotNoTasks(t *testing.T) {
	snapshot := computeCompletionSnapshot(&models.Sprint{}, nil, time.Now())
	if snapshot.CompletionRate != 0 {
		t.Fatalf("CompletionRate = %v, want 0 with no tasks", snapshot.CompletionRate)
	}
	if snapshot.CompletedStoryPoints != 0 || snapshot.SpilloverStoryPoints != 0 || snapshot.InitialStoryPoints != 0 {
		t.Fatalf("snapshot = %+v, want zero points", snapshot)
	}
}

func TestComputeCompletionSnapshotRateRounding(t *testing.T) {
	tasks := []models.Task{
		{Status: models.StatusDone, Points: intPtr(1)},
		{Status: models.StatusPending, Points: intPtr(1)},
		{Status: models.StatusPending, Points: intPtr(1)},
	}
	snapshot := computeCompletionSnapshot(&models.Sprint{}, tasks, time.Now())
	if snapshot.CompletionRate != 33.3 {
		t.Fatalf("CompletionRate = %v, want 33.3", snapshot.CompletionRate)
	}
}

func TestWithinStartWindow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"same instant", now, true},
		{"six days ahead", now.AddDate(0, 0, 6), true},
		{"seven days ahead", now.AddDate(0, 0, 7), true},
		{"eight days ahead", now.AddDate(0, 0, 8), false},
		{"six days past", now.AddDate(0, 0, -6), true},
		{"seven days past", now.AddDate(0, 0, -7), true},
		{"eight days past", now.AddDate(0, 0, -8), false},
	}
	for _, tt := range tests {
		if got := withinStartWindow(tt.start, now); got != tt.want {
			t.Errorf("%s: withinStartWindow = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSprintUpdateTouchesSchedule(t *testing.T) {
	name := "renamed"
	goals := []string{"ship"}
	duration := 14
	start := time.Now()

	planningOnly := &SprintUpdate{Name: &name, Goals: &goals, TotalStoryPoints: intPtr(30)}
	if planningOnly.touchesSchedule() {
		t.Fatalf("name/goals/points update should not touch the schedule")
	}

	if !(&SprintUpdate{DurationDays: &duration}).touchesSchedule() {
		t.Fatalf("duration update must touch the schedule")
	}
	if !(&SprintUpdate{StartDate: &start}).touchesSchedule() {
		t.Fatalf("start date update must touch the schedule")
	}
	if !(&SprintUpdate{Holidays: &[]time.Time{start}}).touchesSchedule() {
		t.Fatalf("holidays update must touch the schedule")
	}
}
