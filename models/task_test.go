package models

import "testing"

func TestStoryPointsFallback(t *testing.T) {
	five := 5
	zero := 0

	tests := []struct {
		name string
		task Task
		want int
	}{
		{"explicit points win", Task{Points: &five, Priority: PriorityHigh}, 5},
		{"explicit zero points win", Task{Points: &zero, Priority: PriorityHigh}, 0},
		{"high priority", Task{Priority: PriorityHigh}, 8},
		{"high priority lowercase", Task{Priority: "high"}, 8},
		{"medium priority", Task{Priority: PriorityMedium}, 5},
		{"low priority", Task{Priority: PriorityLow}, 3},
		{"unknown priority", Task{Priority: "urgent"}, 3},
		{"empty priority", Task{}, 3},
	}
	for _, tt := range tests {
		if got := tt.task.StoryPoints(); got != tt.want {
			t.Errorf("%s: StoryPoints() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestIsDoneCaseInsensitive(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   bool
	}{
		{StatusDone, true},
		{"Done", true},
		{"DONE", true},
		{StatusPending, false},
		{StatusInProgress, false},
		{"", false},
	}
	for _, tt := range tests {
		task := Task{Status: tt.status}
		if got := task.IsDone(); got != tt.want {
			t.Errorf("IsDone(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
