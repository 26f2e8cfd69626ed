package services

import (
	"math"
	"time"
)

// HoursPerStoryPoint converts committed story points into work hours
// for utilization figures.
const HoursPerStoryPoint = 6

// workDaysPerWeek reflects the five-day work week assumption behind
// the capacity formulas.
const workDaysPerWeek = 5

// CapacityReport holds the derived capacity figures for a sprint.
// These are always recomputed from the sprint's planning fields,
// never treated as an independent source of truth.
type CapacityReport struct {
	TotalWorkingDays  float64 `json:"totalWorkingDays"`
	HolidaysInRange   int     `json:"holidaysInRange"`
	EstimatedCapacity float64 `json:"estimatedCapacity"`
	HolidayHours      float64 `json:"holidayHours"`
	FinalizedCapacity float64 `json:"finalizedCapacity"`
}

// CalculateCapacity derives working days, estimated capacity, holiday
// deduction and finalized capacity from the sprint's planning fields.
// Holidays count when their calendar date falls within
// [startDate, endDate] inclusive.
func CalculateCapacity(durationDays int, workHoursPerWeek float64, teamSize int, holidays []time.Time, startDate, endDate time.Time) CapacityReport {
	weeks := float64(durationDays) / 7

	report := CapacityReport{
		TotalWorkingDays:  weeks * workDaysPerWeek,
		EstimatedCapacity: weeks * workHoursPerWeek * float64(teamSize),
	}

	start := dateOnly(startDate)
	end := dateOnly(endDate)
	for _, h := range holidays {
		d := dateOnly(h)
		if !d.Before(start) && !d.After(end) {
			report.HolidaysInRange++
		}
	}

	// Guard against a zero-length sprint: no working days means no
	// hours to deduct.
	if report.TotalWorkingDays > 0 {
		report.HolidayHours = float64(report.HolidaysInRange) / report.TotalWorkingDays * report.EstimatedCapacity
	}

	report.FinalizedCapacity = report.EstimatedCapacity - report.HolidayHours
	if report.FinalizedCapacity < 0 {
		report.FinalizedCapacity = 0
	}

	return report
}

// CapacityUtilization returns the committed share of finalized
// capacity as a percentage rounded to one decimal, 0 when there is no
// capacity to commit against.
func CapacityUtilization(selectedPoints int, finalizedCapacity float64) float64 {
	if finalizedCapacity <= 0 {
		return 0
	}
	return roundToOneDecimal(float64(selectedPoints) * HoursPerStoryPoint / finalizedCapacity * 100)
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
