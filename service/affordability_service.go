package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
)

type AffordabilityService struct {
	mortgage  *MortgageService
	stampDuty *StampDutyService
	rates     Rates
	logger    *zap.Logger
}

func NewAffordabilityService(
	mortgage *MortgageService,
	stampDuty *StampDutyService,
	rates Rates,
	logger *zap.Logger,
) *AffordabilityService {
	return &AffordabilityService{
		mortgage:  mortgage,
		stampDuty: stampDuty,
		rates:     rates,
		logger:    logger,
	}
}

// MaxLoanForMSR returns the largest loan whose monthly payment stays within
// msrLimitPercent of the monthly income, i.e. the present value of an
// annuity paying income*limit at the given rate.
func (s *AffordabilityService) MaxLoanForMSR(monthlyIncome, msrLimitPercent, annualRatePercent float64, tenureYears int) (float64, error) {
	if monthlyIncome <= 0 {
		return 0, domain.ErrInvalidIncome
	}
	if msrLimitPercent <= 0 || msrLimitPercent > 100 {
		return 0, fmt.Errorf("msr limit percent must be between 0 and 100")
	}
	if annualRatePercent < 0 {
		return 0, domain.ErrInvalidRate
	}
	if tenureYears <= 0 {
		return 0, domain.ErrInvalidTenure
	}

	pmt := monthlyIncome * msrLimitPercent / 100
	n := float64(tenureYears * 12)
	if annualRatePercent == 0 {
		return pmt * n, nil
	}

	r := annualRatePercent / 100 / 12
	return pmt * (1 - math.Pow(1+r, -n)) / r, nil
}

// ComputeMaxLoan combines the MSR ceiling with the LTV cap on the purchase
// price, using the regulatory floor rate and tenure for EC purchases.
func (s *AffordabilityService) ComputeMaxLoan(input domain.MaxLoanInput) (domain.MaxLoanResult, error) {
	rate := input.InterestRate
	if rate == 0 {
		rate = s.rates.MsrFloorRatePercent
	}
	tenure := input.TenureYears
	if tenure == 0 {
		tenure = s.rates.EcTenureYears
	}

	msrLoan, err := s.MaxLoanForMSR(input.MonthlyIncome, s.rates.MsrLimitPercent, rate, tenure)
	if err != nil {
		return domain.MaxLoanResult{}, err
	}

	maxLoan := msrLoan
	ltvCap := 0.0
	if input.Price > 0 {
		ltvCap = input.Price * s.rates.EcLtvLimitPercent / 100
		maxLoan = math.Min(msrLoan, ltvCap)
	}

	return domain.MaxLoanResult{
		MaxMonthlyRepayment: roundTo2Decimals(input.MonthlyIncome * s.rates.MsrLimitPercent / 100),
		MsrLoan:             roundTo2Decimals(msrLoan),
		LtvCap:              roundTo2Decimals(ltvCap),
		MaxLoan:             roundTo2Decimals(maxLoan),
	}, nil
}

// RequiredIncome derives the monthly household income needed to keep the
// mortgage plus other debt within the TDSR limit.
func (s *AffordabilityService) RequiredIncome(input domain.RequiredIncomeInput) (domain.RequiredIncomeResult, error) {
	if input.OtherMonthlyDebt < 0 {
		return domain.RequiredIncomeResult{}, fmt.Errorf("other monthly debt cannot be negative")
	}

	mortgage, err := s.mortgage.EstimateMortgage(domain.MortgageInput{
		Price:              input.Price,
		DownpaymentPercent: input.DownpaymentPercent,
		InterestRate:       input.InterestRate,
		TenureYears:        input.TenureYears,
	})
	if err != nil {
		return domain.RequiredIncomeResult{}, err
	}

	income := (mortgage.MonthlyRepayment + input.OtherMonthlyDebt) / (s.rates.TdsrLimitPercent / 100)

	return domain.RequiredIncomeResult{
		MonthlyMortgage:       mortgage.MonthlyRepayment,
		RequiredMonthlyIncome: roundTo2Decimals(income),
		TdsrLimitPercent:      s.rates.TdsrLimitPercent,
	}, nil
}

// CheckEcEligibility evaluates every eligibility rule and unions the
// failures, so a household sees all blockers at once.
func (s *AffordabilityService) CheckEcEligibility(profile domain.EcProfile) domain.EcEligibility {
	reasons := []string{}

	if profile.HouseholdType != domain.HouseholdCitizenCitizen &&
		profile.HouseholdType != domain.HouseholdCitizenPR {
		reasons = append(reasons, "Must be a Singaporean household (SC+SC or SC+SPR).")
	}
	if profile.MonthlyHouseholdIncome > s.rates.EcIncomeCeiling {
		reasons = append(reasons, fmt.Sprintf("Household income exceeds the $%.0f ceiling.", s.rates.EcIncomeCeiling))
	}
	if profile.OwnsPrivateProperty {
		reasons = append(reasons, "Must satisfy 30-month wait-out period after disposing private property.")
	}

	return domain.EcEligibility{
		Eligible: len(reasons) == 0,
		Reasons:  reasons,
	}
}

// AssessEcViability combines the eligibility rules with the financing
// picture: max loan under MSR at the floor rate, capped by LTV, plus the
// upfront cash outlay and any funding shortfall.
func (s *AffordabilityService) AssessEcViability(input domain.EcViabilityInput) (domain.EcViabilityResult, error) {
	if input.Price <= 0 {
		return domain.EcViabilityResult{}, domain.ErrInvalidPrice
	}
	if input.Price > MaxPropertyPrice {
		return domain.EcViabilityResult{}, fmt.Errorf("price exceeds the maximum of $%.2f", MaxPropertyPrice)
	}
	if input.CashAvailable < 0 || input.CpfAvailable < 0 {
		return domain.EcViabilityResult{}, fmt.Errorf("available funds cannot be negative")
	}

	eligibility := s.CheckEcEligibility(input.Profile)

	maxMonthly := input.Profile.MonthlyHouseholdIncome * s.rates.MsrLimitPercent / 100

	var msrLoan float64
	if input.Profile.MonthlyHouseholdIncome > 0 {
		var err error
		msrLoan, err = s.MaxLoanForMSR(
			input.Profile.MonthlyHouseholdIncome,
			s.rates.MsrLimitPercent,
			s.rates.MsrFloorRatePercent,
			s.rates.EcTenureYears,
		)
		if err != nil {
			return domain.EcViabilityResult{}, err
		}
	}

	ltvCap := input.Price * s.rates.EcLtvLimitPercent / 100
	maxLoan := math.Min(msrLoan, ltvCap)

	bsd := s.stampDuty.BuyerStampDuty(input.Price)
	minCash := input.Price * s.rates.MinCashPercent / 100
	balanceDown := input.Price * s.rates.BalanceDownpaymentPercent / 100

	outlay := domain.EcCashOutlay{
		MinimumCash:        roundTo2Decimals(minCash),
		BalanceDownpayment: roundTo2Decimals(balanceDown),
		BuyerStampDuty:     roundTo2Decimals(bsd),
		LegalFee:           s.rates.LegalFee,
		TotalInitial:       roundTo2Decimals(minCash + balanceDown + bsd + s.rates.LegalFee),
	}

	totalCost := input.Price + bsd + s.rates.LegalFee
	totalResources := maxLoan + input.CashAvailable + input.CpfAvailable
	shortfall := math.Max(0, totalCost-totalResources)
	cashShortfall := math.Max(0, minCash-input.CashAvailable)

	return domain.EcViabilityResult{
		Eligibility:         eligibility,
		MaxLoan:             roundTo2Decimals(maxLoan),
		MaxMonthlyRepayment: roundTo2Decimals(maxMonthly),
		CashOutlay:          outlay,
		FundingShortfall:    roundTo2Decimals(shortfall),
		CashShortfall:       roundTo2Decimals(cashShortfall),
	}, nil
}
