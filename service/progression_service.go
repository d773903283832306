package service

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
)

// spSigningOffsetDays is the standard gap between exercising the option and
// signing the sale & purchase agreement.
const spSigningOffsetDays = 56

type milestoneTemplate struct {
	label   string
	percent float64
	// fractional position within the S&P-to-completion interval; only used
	// for the interpolated construction stages.
	point float64
}

// The standard 10-stage BUC payment schedule. Percentages sum to 100.
var bucMilestones = []milestoneTemplate{
	{label: "Booking (Option Fee)", percent: 5},
	{label: "S&P Signed + Stamp Duty", percent: 15},
	{label: "Foundation Work", percent: 10, point: 0.15},
	{label: "Reinforced Concrete", percent: 10, point: 0.35},
	{label: "Partition Walls", percent: 5, point: 0.55},
	{label: "Roofing / Ceiling", percent: 5, point: 0.70},
	{label: "Door/Window/Wiring", percent: 5, point: 0.85},
	{label: "Carpark / Roads", percent: 5, point: 0.95},
	{label: "TOP (Temp Occupation)", percent: 25},
	{label: "CSC (Completion)", percent: 15},
}

type ProgressionService struct {
	logger *zap.Logger
}

func NewProgressionService(logger *zap.Logger) *ProgressionService {
	return &ProgressionService{logger: logger}
}

// BuildMilestoneSchedule maps the fixed BUC milestone template onto the
// option-to-completion timeline. Stage 1 falls on the option date, stage 2
// fifty-six days later, the construction stages at fixed fractions of the
// S&P-to-completion interval, stage 9 on the completion date and stage 10 a
// year after it.
func (s *ProgressionService) BuildMilestoneSchedule(input domain.ProgressionInput) (domain.ProgressionResult, error) {
	if input.Price <= 0 {
		return domain.ProgressionResult{}, domain.ErrInvalidPrice
	}
	if input.Price > MaxPropertyPrice {
		return domain.ProgressionResult{}, fmt.Errorf("price exceeds the maximum of $%.2f", MaxPropertyPrice)
	}
	if !input.OptionDate.IsValid() || !input.CompletionDate.IsValid() {
		return domain.ProgressionResult{}, fmt.Errorf("option and completion dates are required")
	}

	option := input.OptionDate.In(time.UTC)
	completion := input.CompletionDate.In(time.UTC)
	if !completion.After(option) {
		return domain.ProgressionResult{}, domain.ErrInvalidTimeline
	}

	spSigning := option.AddDate(0, 0, spSigningOffsetDays)
	constructionSpan := completion.Sub(spSigning)
	certDate := completion.AddDate(1, 0, 0)

	dateFor := func(i int, tpl milestoneTemplate) time.Time {
		switch i {
		case 0:
			return option
		case 1:
			return spSigning
		case len(bucMilestones) - 2:
			return completion
		case len(bucMilestones) - 1:
			return certDate
		default:
			return spSigning.Add(time.Duration(float64(constructionSpan) * tpl.point))
		}
	}

	stages := make([]domain.MilestoneStage, 0, len(bucMilestones))
	cumulative := 0.0
	for i, tpl := range bucMilestones {
		amount := input.Price * tpl.percent / 100
		if i == len(bucMilestones)-1 {
			// The last stage closes the schedule at exactly the full price.
			amount = input.Price - cumulative
		}
		cumulative += amount

		stages = append(stages, domain.MilestoneStage{
			Label:            tpl.label,
			PercentOfPrice:   tpl.percent,
			ScheduledDate:    civil.DateOf(dateFor(i, tpl)),
			Amount:           roundTo2Decimals(amount),
			CumulativeAmount: roundTo2Decimals(cumulative),
		})
	}

	return domain.ProgressionResult{Stages: stages}, nil
}
