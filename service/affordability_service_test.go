package service

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
)

func newAffordabilityService() *AffordabilityService {
	logger := zap.NewNop()
	mortgage := NewMortgageService(logger)
	stampDuty := NewStampDutyService(DefaultRates(), logger)
	return NewAffordabilityService(mortgage, stampDuty, DefaultRates(), logger)
}

func TestMaxLoanForMSR(t *testing.T) {
	s := newAffordabilityService()

	// $12k income at 30% MSR gives a $3,600 payment; discounted at the 4%
	// floor over 30 years that is roughly a $754k loan.
	maxLoan, err := s.MaxLoanForMSR(12_000, 30, 4.0, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if maxLoan < 740_000 || maxLoan > 770_000 {
		t.Errorf("max loan = %.2f, want around 754000", maxLoan)
	}
}

func TestMaxLoanForMSR_ZeroRate(t *testing.T) {
	s := newAffordabilityService()

	maxLoan, err := s.MaxLoanForMSR(10_000, 30, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3,000/month for 120 months, undiscounted.
	if maxLoan != 360_000 {
		t.Errorf("max loan = %.2f, want 360000", maxLoan)
	}
}

func TestMaxLoanForMSR_InvalidInput(t *testing.T) {
	s := newAffordabilityService()

	if _, err := s.MaxLoanForMSR(0, 30, 4, 30); err == nil {
		t.Errorf("expected error for zero income")
	}
	if _, err := s.MaxLoanForMSR(10_000, 0, 4, 30); err == nil {
		t.Errorf("expected error for zero msr limit")
	}
	if _, err := s.MaxLoanForMSR(10_000, 30, 4, 0); err == nil {
		t.Errorf("expected error for zero tenure")
	}
}

func TestComputeMaxLoan_LtvCap(t *testing.T) {
	s := newAffordabilityService()

	// High income: MSR allows far more than 75% of a $500k price.
	result, err := s.ComputeMaxLoan(domain.MaxLoanInput{
		MonthlyIncome: 30_000,
		Price:         500_000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MaxLoan != 375_000 {
		t.Errorf("max loan = %.2f, want LTV cap 375000", result.MaxLoan)
	}
	if result.MsrLoan <= result.MaxLoan {
		t.Errorf("expected msr loan %.2f to exceed the ltv cap", result.MsrLoan)
	}
}

func TestRequiredIncome(t *testing.T) {
	s := newAffordabilityService()

	result, err := s.RequiredIncome(domain.RequiredIncomeInput{
		Price:              2_000_000,
		DownpaymentPercent: 25,
		InterestRate:       4.0,
		TenureYears:        30,
		OtherMonthlyDebt:   0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// $1.5M loan at 4% over 30y is about $7,161/month; at 55% TDSR the
	// household needs about $13k.
	if result.RequiredMonthlyIncome < 12_500 || result.RequiredMonthlyIncome > 13_500 {
		t.Errorf("required income = %.2f, want around 13000", result.RequiredMonthlyIncome)
	}

	withDebt, err := s.RequiredIncome(domain.RequiredIncomeInput{
		Price:              2_000_000,
		DownpaymentPercent: 25,
		InterestRate:       4.0,
		TenureYears:        30,
		OtherMonthlyDebt:   1100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withDebt.RequiredMonthlyIncome <= result.RequiredMonthlyIncome {
		t.Errorf("other debt should raise the required income")
	}
}

func TestCheckEcEligibility_AllPass(t *testing.T) {
	s := newAffordabilityService()

	result := s.CheckEcEligibility(domain.EcProfile{
		HouseholdType:          domain.HouseholdCitizenCitizen,
		MonthlyHouseholdIncome: 12_000,
		OwnsPrivateProperty:    false,
	})

	if !result.Eligible {
		t.Errorf("expected eligible, got reasons %v", result.Reasons)
	}
	if len(result.Reasons) != 0 {
		t.Errorf("expected no reasons, got %v", result.Reasons)
	}
}

func TestCheckEcEligibility_SingleViolations(t *testing.T) {
	s := newAffordabilityService()

	tests := []struct {
		name     string
		profile  domain.EcProfile
		fragment string
	}{
		{
			name: "household type",
			profile: domain.EcProfile{
				HouseholdType:          domain.HouseholdCitizenForeign,
				MonthlyHouseholdIncome: 12_000,
			},
			fragment: "Singaporean household",
		},
		{
			name: "income ceiling",
			profile: domain.EcProfile{
				HouseholdType:          domain.HouseholdCitizenCitizen,
				MonthlyHouseholdIncome: 17_000,
			},
			fragment: "ceiling",
		},
		{
			name: "private property",
			profile: domain.EcProfile{
				HouseholdType:          domain.HouseholdCitizenCitizen,
				MonthlyHouseholdIncome: 12_000,
				OwnsPrivateProperty:    true,
			},
			fragment: "wait-out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.CheckEcEligibility(tt.profile)
			if result.Eligible {
				t.Fatalf("expected ineligible")
			}
			if len(result.Reasons) != 1 {
				t.Fatalf("expected exactly one reason, got %v", result.Reasons)
			}
			if !strings.Contains(result.Reasons[0], tt.fragment) {
				t.Errorf("reason %q does not mention %q", result.Reasons[0], tt.fragment)
			}
		})
	}
}

func TestCheckEcEligibility_CombinedViolations(t *testing.T) {
	s := newAffordabilityService()

	result := s.CheckEcEligibility(domain.EcProfile{
		HouseholdType:          domain.HouseholdOther,
		MonthlyHouseholdIncome: 20_000,
		OwnsPrivateProperty:    true,
	})

	if result.Eligible {
		t.Fatalf("expected ineligible")
	}
	if len(result.Reasons) != 3 {
		t.Errorf("expected all three reasons, got %v", result.Reasons)
	}
}

func TestAssessEcViability(t *testing.T) {
	s := newAffordabilityService()

	result, err := s.AssessEcViability(domain.EcViabilityInput{
		Price: 1_500_000,
		Profile: domain.EcProfile{
			HouseholdType:          domain.HouseholdCitizenCitizen,
			MonthlyHouseholdIncome: 12_000,
		},
		CashAvailable: 100_000,
		CpfAvailable:  300_000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Eligibility.Eligible {
		t.Errorf("expected eligible household")
	}
	if result.MaxMonthlyRepayment != 3600 {
		t.Errorf("max monthly repayment = %.2f, want 3600", result.MaxMonthlyRepayment)
	}
	// MSR loan (~754k) is below the 75% LTV cap (1.125M).
	if result.MaxLoan < 740_000 || result.MaxLoan > 770_000 {
		t.Errorf("max loan = %.2f, want around 754000", result.MaxLoan)
	}
	if result.CashOutlay.MinimumCash != 75_000 {
		t.Errorf("minimum cash = %.2f, want 75000", result.CashOutlay.MinimumCash)
	}
	if result.CashOutlay.BalanceDownpayment != 300_000 {
		t.Errorf("balance downpayment = %.2f, want 300000", result.CashOutlay.BalanceDownpayment)
	}
	if result.FundingShortfall <= 0 {
		t.Errorf("expected a funding shortfall for this scenario, got %.2f", result.FundingShortfall)
	}
	if result.CashShortfall != 0 {
		t.Errorf("cash shortfall = %.2f, want 0", result.CashShortfall)
	}
}

func TestAssessEcViability_InvalidInput(t *testing.T) {
	s := newAffordabilityService()

	_, err := s.AssessEcViability(domain.EcViabilityInput{Price: -1})
	if err == nil {
		t.Errorf("expected error for negative price")
	}
}
