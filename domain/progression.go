package domain

import "cloud.google.com/go/civil"

type ProgressionInput struct {
	Price          float64    `json:"price"`
	OptionDate     civil.Date `json:"option_date"`
	CompletionDate civil.Date `json:"completion_date"`
}

type MilestoneStage struct {
	Label            string     `json:"label"`
	PercentOfPrice   float64    `json:"percent_of_price"`
	ScheduledDate    civil.Date `json:"scheduled_date"`
	Amount           float64    `json:"amount"`
	CumulativeAmount float64    `json:"cumulative_amount"`
}

type ProgressionResult struct {
	Stages []MilestoneStage `json:"stages"`
}
