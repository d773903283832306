package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
)

func scheduleFixture(t *testing.T) domain.ProgressionResult {
	t.Helper()

	s := NewProgressionService(zap.NewNop())
	result, err := s.BuildMilestoneSchedule(domain.ProgressionInput{
		Price:          2_000_000,
		OptionDate:     civil.Date{Year: 2025, Month: time.March, Day: 1},
		CompletionDate: civil.Date{Year: 2028, Month: time.September, Day: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestBuildMilestoneSchedule_StageCountAndTotal(t *testing.T) {
	result := scheduleFixture(t)

	if len(result.Stages) != 10 {
		t.Fatalf("expected 10 stages, got %d", len(result.Stages))
	}

	sum := 0.0
	for _, stage := range result.Stages {
		sum += stage.Amount
	}
	if math.Abs(sum-2_000_000) > 0.01 {
		t.Errorf("stage amounts sum to %.2f, want 2000000", sum)
	}

	last := result.Stages[len(result.Stages)-1]
	if math.Abs(last.CumulativeAmount-2_000_000) > 0.01 {
		t.Errorf("final cumulative = %.2f, want exactly the price", last.CumulativeAmount)
	}
}

func TestBuildMilestoneSchedule_CumulativeMonotone(t *testing.T) {
	result := scheduleFixture(t)

	prev := 0.0
	for i, stage := range result.Stages {
		if stage.CumulativeAmount <= prev {
			t.Errorf("stage %d: cumulative %.2f not above previous %.2f", i, stage.CumulativeAmount, prev)
		}
		prev = stage.CumulativeAmount
	}
}

func TestBuildMilestoneSchedule_AnchorDates(t *testing.T) {
	result := scheduleFixture(t)

	option := civil.Date{Year: 2025, Month: time.March, Day: 1}
	completion := civil.Date{Year: 2028, Month: time.September, Day: 1}

	if got := result.Stages[0].ScheduledDate; got != option {
		t.Errorf("stage 1 date = %v, want option date %v", got, option)
	}
	spSigning := option.AddDays(spSigningOffsetDays)
	if got := result.Stages[1].ScheduledDate; got != spSigning {
		t.Errorf("stage 2 date = %v, want option + 56 days %v", got, spSigning)
	}
	if got := result.Stages[8].ScheduledDate; got != completion {
		t.Errorf("stage 9 date = %v, want completion date %v", got, completion)
	}
	cert := civil.Date{Year: 2029, Month: time.September, Day: 1}
	if got := result.Stages[9].ScheduledDate; got != cert {
		t.Errorf("stage 10 date = %v, want completion + 1 year %v", got, cert)
	}
}

func TestBuildMilestoneSchedule_ConstructionStagesOrdered(t *testing.T) {
	result := scheduleFixture(t)

	// Stages 3–8 interpolate across the S&P-to-completion interval and must
	// land strictly between stage 2 and stage 9.
	for i := 2; i <= 7; i++ {
		d := result.Stages[i].ScheduledDate
		if !result.Stages[1].ScheduledDate.Before(d) {
			t.Errorf("stage %d date %v not after S&P signing", i+1, d)
		}
		if !d.Before(result.Stages[8].ScheduledDate) {
			t.Errorf("stage %d date %v not before completion", i+1, d)
		}
		if i > 2 && !result.Stages[i-1].ScheduledDate.Before(d) {
			t.Errorf("stage %d date %v not after stage %d", i+1, d, i)
		}
	}
}

func TestBuildMilestoneSchedule_InvalidInput(t *testing.T) {
	s := NewProgressionService(zap.NewNop())

	option := civil.Date{Year: 2025, Month: time.March, Day: 1}

	_, err := s.BuildMilestoneSchedule(domain.ProgressionInput{
		Price:          0,
		OptionDate:     option,
		CompletionDate: option.AddDays(1000),
	})
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	_, err = s.BuildMilestoneSchedule(domain.ProgressionInput{
		Price:          1_000_000,
		OptionDate:     option,
		CompletionDate: option,
	})
	if !errors.Is(err, domain.ErrInvalidTimeline) {
		t.Errorf("expected ErrInvalidTimeline for completion == option, got %v", err)
	}

	_, err = s.BuildMilestoneSchedule(domain.ProgressionInput{
		Price:      1_000_000,
		OptionDate: option,
	})
	if err == nil {
		t.Error("expected error for missing completion date")
	}
}
