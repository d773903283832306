package service

import "math"

const (
	MaxPropertyPrice    = 100_000_000.0 // ceiling for any price input
	MaxInterestRate     = 20.0          // % p.a.
	MaxTenureYears      = 35
	MaxHoldingYears     = 50
	MaxProjectionMonths = 1200 // safety cap for simulation loops

	// The production timeline arithmetic approximates months and years as
	// fixed day counts. Kept for reproducibility; calendar-accurate month
	// stepping would shift every projection output.
	avgDaysPerMonth = 30.44
	daysPerYear     = 365.25

	hoursPerDay = 24.0
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
