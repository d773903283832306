package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
)

type MortgageService struct {
	logger *zap.Logger
}

func NewMortgageService(logger *zap.Logger) *MortgageService {
	return &MortgageService{logger: logger}
}

// MonthlyInstallment computes the fixed monthly payment using the standard
// annuity formula. A zero rate degrades to straight-line repayment.
func (s *MortgageService) MonthlyInstallment(principal, annualRatePercent float64, tenureYears int) (float64, error) {
	if tenureYears <= 0 {
		return 0, domain.ErrInvalidTenure
	}
	if annualRatePercent < 0 {
		return 0, domain.ErrInvalidRate
	}
	if principal <= 0 {
		return 0, nil
	}

	n := float64(tenureYears * 12)
	if annualRatePercent == 0 {
		return principal / n, nil
	}

	r := annualRatePercent / 100 / 12
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1), nil
}

// OutstandingBalance reduces the principal month by month for monthsElapsed
// periods. The result floors at zero once the loan is fully amortized.
func (s *MortgageService) OutstandingBalance(principal, annualRatePercent float64, tenureYears, monthsElapsed int) (float64, error) {
	if monthsElapsed < 0 {
		return 0, fmt.Errorf("months elapsed cannot be negative")
	}

	installment, err := s.MonthlyInstallment(principal, annualRatePercent, tenureYears)
	if err != nil {
		return 0, err
	}

	r := annualRatePercent / 100 / 12
	balance := principal
	for i := 0; i < monthsElapsed; i++ {
		interest := balance * r
		balance -= installment - interest
		if balance <= 0 {
			return 0, nil
		}
	}
	return balance, nil
}

// EstimateMortgage computes the monthly repayment for a purchase given its
// downpayment split.
func (s *MortgageService) EstimateMortgage(input domain.MortgageInput) (domain.MortgageResult, error) {
	if input.Price <= 0 {
		return domain.MortgageResult{}, domain.ErrInvalidPrice
	}
	if input.Price > MaxPropertyPrice {
		return domain.MortgageResult{}, fmt.Errorf("price exceeds the maximum of $%.2f", MaxPropertyPrice)
	}
	if input.DownpaymentPercent < 0 || input.DownpaymentPercent > 100 {
		return domain.MortgageResult{}, domain.ErrInvalidDownpayment
	}
	if input.InterestRate > MaxInterestRate {
		return domain.MortgageResult{}, fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TenureYears > MaxTenureYears {
		return domain.MortgageResult{}, fmt.Errorf("tenure exceeds the maximum of %d years", MaxTenureYears)
	}

	loanAmount := input.Price * (1 - input.DownpaymentPercent/100)
	installment, err := s.MonthlyInstallment(loanAmount, input.InterestRate, input.TenureYears)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	total := installment * float64(input.TenureYears*12)

	return domain.MortgageResult{
		LoanAmount:       roundTo2Decimals(loanAmount),
		MonthlyRepayment: roundTo2Decimals(installment),
		TotalPayment:     roundTo2Decimals(total),
		TotalInterest:    roundTo2Decimals(total - loanAmount),
	}, nil
}
