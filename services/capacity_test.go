package services

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateCapacityNoHolidays(t *testing.T) {
	start := day(2025, time.March, 3)
	end := day(2025, time.March, 17)

	report := CalculateCapacity(14, 40, 5, nil, start, end)

	if report.EstimatedCapacity != 400 {
		t.Fatalf("EstimatedCapacity = %v, want 400", report.EstimatedCapacity)
	}
	if report.FinalizedCapacity != 400 {
		t.Fatalf("FinalizedCapacity = %v, want 400", report.FinalizedCapacity)
	}
	if report.HolidayHours != 0 {
		t.Fatalf("HolidayHours = %v, want 0", report.HolidayHours)
	}
	if report.TotalWorkingDays != 10 {
		t.Fatalf("TotalWorkingDays = %v, want 10", report.TotalWorkingDays)
	}
	if report.HolidaysInRange != 0 {
		t.Fatalf("HolidaysInRange = %d, want 0", report.HolidaysInRange)
	}
}

func TestCalculateCapacityWithHolidayInRange(t *testing.T) {
	start := day(2025, time.March, 3)
	end := day(2025, time.March, 17)
	holidays := []time.Time{
		day(2025, time.March, 10), // inside the sprint
		day(2025, time.April, 1),  // outside, ignored
	}

	report := CalculateCapacity(14, 40, 5, holidays, start, end)

	if report.HolidaysInRange != 1 {
		t.Fatalf("HolidaysInRange = %d, want 1", report.HolidaysInRange)
	}
	if report.HolidayHours != 40 {
		t.Fatalf("HolidayHours = %v, want 40", report.HolidayHours)
	}
	if report.FinalizedCapacity != 360 {
		t.Fatalf("FinalizedCapacity = %v, want 360", report.FinalizedCapacity)
	}
}

func TestCalculateCapacityRangeIsInclusive(t *testing.T) {
	start := day(2025, time.March, 3)
	end := day(2025, time.March, 17)
	holidays := []time.Time{start, end}

	report := CalculateCapacity(14, 40, 5, holidays, start, end)
	if report.HolidaysInRange != 2 {
		t.Fatalf("HolidaysInRange = %d, want 2 (boundary dates count)", report.HolidaysInRange)
	}
}

func TestCalculateCapacityZeroDurationGuard(t *testing.T) {
	start := day(2025, time.March, 3)
	report := CalculateCapacity(0, 40, 5, []time.Time{start}, start, start)

	if report.TotalWorkingDays != 0 {
		t.Fatalf("TotalWorkingDays = %v, want 0", report.TotalWorkingDays)
	}
	if report.HolidayHours != 0 {
		t.Fatalf("HolidayHours = %v, want 0 with zero working days", report.HolidayHours)
	}
	if report.FinalizedCapacity != 0 {
		t.Fatalf("FinalizedCapacity = %v, want 0", report.FinalizedCapacity)
	}
}

func TestCapacityUtilization(t *testing.T) {
	tests := []struct {
		points   int
		capacity float64
		want     float64
	}{
		{20, 360, 33.3}, // 20*6/360*100
		{10, 400, 15},
		{100, 400, 150},
		{0, 400, 0},
		{20, 0, 0}, // no capacity, no utilization
		{20, -10, 0},
	}
	for _, tt := range tests {
		if got := CapacityUtilization(tt.points, tt.capacity); got != tt.want {
			t.Errorf("CapacityUtilization(%d, %v) = %v, want %v", tt.points, tt.capacity, got, tt.want)
		}
	}
}
