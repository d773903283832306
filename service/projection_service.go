package service

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/repository"
)

const projectionCacheTTL = time.Hour

// ProjectionService runs the multi-month cash-flow simulations behind the
// two ROI calculators. Results are cached cache-aside and logged to the
// calculation audit repository; both are non-critical.
type ProjectionService struct {
	mortgage  *MortgageService
	stampDuty *StampDutyService
	rates     Rates
	calcs     repository.CalculationRepository
	cache     repository.CacheRepository
	logger    *zap.Logger
}

func NewProjectionService(
	mortgage *MortgageService,
	stampDuty *StampDutyService,
	rates Rates,
	calcs repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *ProjectionService {
	return &ProjectionService{
		mortgage:  mortgage,
		stampDuty: stampDuty,
		rates:     rates,
		calcs:     calcs,
		cache:     cache,
		logger:    logger,
	}
}

// SimulateNewLaunchRoi projects a building-under-construction purchase:
// interest-only servicing on a progressively disbursed loan until the
// completion month, then full amortization plus maintenance fees until sale.
func (s *ProjectionService) SimulateNewLaunchRoi(input domain.NewLaunchProjectionInput) (domain.ProjectionResult, error) {
	if err := s.validateNewLaunch(input); err != nil {
		return domain.ProjectionResult{}, err
	}

	key := cacheKey("roi:new-launch", input)
	if cached, ok := s.cachedResult(key); ok {
		return cached, nil
	}

	purchase := input.PurchaseDate.In(time.UTC)
	completion := input.CompletionDate.In(time.UTC)
	sale := purchase.AddDate(input.HoldingPeriodYears, 0, 0)

	monthsToTop := math.Max(1, completion.Sub(purchase).Hours()/(hoursPerDay*avgDaysPerMonth))
	monthsTopToSale := math.Max(0, sale.Sub(completion).Hours()/(hoursPerDay*avgDaysPerMonth))
	if monthsToTop+monthsTopToSale > MaxProjectionMonths {
		return domain.ProjectionResult{}, fmt.Errorf("projection exceeds the maximum of %d months", MaxProjectionMonths)
	}

	downpayment := input.Price * input.DownpaymentPercent / 100
	loanAmount := input.Price - downpayment
	bsd := s.stampDuty.BuyerStampDuty(input.Price)
	initialOutlay := downpayment + bsd + input.LegalFee

	monthlyRate := input.InterestRate / 100 / 12
	installment, err := s.mortgage.MonthlyInstallment(loanAmount, input.InterestRate, input.TenureYears)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	// Pre-completion: interest only, on a stepped share of the loan keyed to
	// how far construction has progressed.
	totalMonthlyOutflow := 0.0
	for i := 1; i <= int(monthsToTop); i++ {
		progress := float64(i) / monthsToTop
		totalMonthlyOutflow += loanAmount * disbursementRatio(progress) * monthlyRate
	}

	// Post-completion: full installment plus maintenance, amortizing from
	// the full loan amount.
	outstanding := loanAmount
	for i := 1; i <= int(monthsTopToSale); i++ {
		totalMonthlyOutflow += installment + input.MonthlyMcstFee
		interest := outstanding * monthlyRate
		outstanding -= installment - interest
		if outstanding < 0 {
			outstanding = 0
		}
	}

	totalCashInvested := initialOutlay + totalMonthlyOutflow

	valueAtTop := input.Price * math.Pow(1+input.AppreciationPreTop/100, monthsToTop/12)
	salePrice := valueAtTop * math.Pow(1+input.AppreciationPostTop/100, monthsTopToSale/12)

	holdingYears := sale.Sub(purchase).Hours() / (hoursPerDay * daysPerYear)
	ssd := s.stampDuty.SellerStampDuty(salePrice, holdingYears)
	agentFee := salePrice * input.AgentCommissionPercent / 100

	result := s.finishProjection(totalCashInvested, outstanding, salePrice, ssd, agentFee, holdingYears)

	s.storeResult(key, "roi:new-launch", input, result)
	return result, nil
}

// SimulateResaleRoi projects a completed-property purchase held for rental.
// The loan is fully disbursed at purchase. Months where rental does not
// cover the installment and maintenance add to invested capital; surplus
// months do not reduce it (cash-on-cash convention, the denominator is the
// maximum capital employed).
func (s *ProjectionService) SimulateResaleRoi(input domain.ResaleProjectionInput) (domain.ProjectionResult, error) {
	if err := s.validateResale(input); err != nil {
		return domain.ProjectionResult{}, err
	}

	key := cacheKey("roi:resale", input)
	if cached, ok := s.cachedResult(key); ok {
		return cached, nil
	}

	downpayment := input.Price * input.DownpaymentPercent / 100
	loanAmount := input.Price - downpayment
	bsd := s.stampDuty.BuyerStampDuty(input.Price)
	initialOutlay := downpayment + bsd + input.LegalFee + input.RenovationCost

	monthlyRate := input.InterestRate / 100 / 12
	installment, err := s.mortgage.MonthlyInstallment(loanAmount, input.InterestRate, input.TenureYears)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	totalMonths := input.HoldingPeriodYears * 12
	monthlyNet := input.MonthlyRentalIncome - (installment + input.MonthlyMcstFee)
	cumulativeNet := monthlyNet * float64(totalMonths)

	totalCashInvested := initialOutlay
	if monthlyNet < 0 {
		totalCashInvested += math.Abs(monthlyNet) * float64(totalMonths)
	}

	outstanding := loanAmount
	for i := 1; i <= totalMonths; i++ {
		interest := outstanding * monthlyRate
		outstanding -= installment - interest
		if outstanding < 0 {
			outstanding = 0
		}
	}

	holdingYears := float64(input.HoldingPeriodYears)
	salePrice := input.Price * math.Pow(1+input.AppreciationRate/100, holdingYears)
	ssd := s.stampDuty.SellerStampDuty(salePrice, holdingYears)
	agentFee := salePrice * input.AgentCommissionPercent / 100

	result := s.finishProjection(totalCashInvested, outstanding, salePrice, ssd, agentFee, holdingYears)

	// The resale profit counts rental surplus months as well, so recompute
	// it from the cash flows rather than the shared sale-proceeds path.
	netCashFromSale := salePrice - outstanding - ssd - agentFee
	profit := netCashFromSale + cumulativeNet - initialOutlay
	result.NetProfit = roundTo2Decimals(profit)
	result.RoiPercent = roundTo2Decimals(profit / totalCashInvested * 100)
	result.AnnualizedRoiPercent = roundTo2Decimals(annualize(profit/totalCashInvested*100, holdingYears))

	s.storeResult(key, "roi:resale", input, result)
	return result, nil
}

func (s *ProjectionService) finishProjection(
	invested, outstanding, salePrice, ssd, agentFee, holdingYears float64,
) domain.ProjectionResult {
	netProceeds := salePrice - outstanding - ssd - agentFee
	profit := netProceeds - invested
	roi := profit / invested * 100

	return domain.ProjectionResult{
		TotalCashInvested:     roundTo2Decimals(invested),
		OutstandingLoanAtSale: roundTo2Decimals(outstanding),
		ProjectedSalePrice:    roundTo2Decimals(salePrice),
		SellerStampDuty:       roundTo2Decimals(ssd),
		AgentFee:              roundTo2Decimals(agentFee),
		NetSaleProceeds:       roundTo2Decimals(netProceeds),
		NetProfit:             roundTo2Decimals(profit),
		RoiPercent:            roundTo2Decimals(roi),
		AnnualizedRoiPercent:  roundTo2Decimals(annualize(roi, holdingYears)),
	}
}

// annualize converts a total ROI percent into a compound annual rate. A loss
// beyond the invested capital caps at -100% rather than going undefined.
func annualize(roiPercent, years float64) float64 {
	if years <= 0 {
		return 0
	}
	base := 1 + roiPercent/100
	if base <= 0 {
		return -100
	}
	return (math.Pow(base, 1/years) - 1) * 100
}

// disbursementRatio maps the elapsed construction-time fraction onto the
// stepped share of the loan drawn down at that point.
func disbursementRatio(progress float64) float64 {
	switch {
	case progress < 0.2:
		return 0.10
	case progress < 0.5:
		return 0.30
	case progress < 0.8:
		return 0.65
	default:
		return 0.85
	}
}

func (s *ProjectionService) validateNewLaunch(input domain.NewLaunchProjectionInput) error {
	if err := validateProjectionCommon(
		input.Price, input.DownpaymentPercent, input.InterestRate,
		input.TenureYears, input.HoldingPeriodYears,
	); err != nil {
		return err
	}
	if !input.PurchaseDate.IsValid() {
		return fmt.Errorf("purchase date is required")
	}
	if !input.CompletionDate.IsValid() {
		return fmt.Errorf("completion date is required")
	}
	return nil
}

func (s *ProjectionService) validateResale(input domain.ResaleProjectionInput) error {
	if err := validateProjectionCommon(
		input.Price, input.DownpaymentPercent, input.InterestRate,
		input.TenureYears, input.HoldingPeriodYears,
	); err != nil {
		return err
	}
	if input.MonthlyRentalIncome < 0 {
		return fmt.Errorf("rental income cannot be negative")
	}
	if input.RenovationCost < 0 {
		return fmt.Errorf("renovation cost cannot be negative")
	}
	return nil
}

func validateProjectionCommon(price, downpaymentPercent, rate float64, tenureYears, holdingYears int) error {
	if price <= 0 {
		return domain.ErrInvalidPrice
	}
	if price > MaxPropertyPrice {
		return fmt.Errorf("price exceeds the maximum of $%.2f", MaxPropertyPrice)
	}
	if downpaymentPercent < 0 || downpaymentPercent > 100 {
		return domain.ErrInvalidDownpayment
	}
	if rate < 0 {
		return domain.ErrInvalidRate
	}
	if rate > MaxInterestRate {
		return fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if tenureYears <= 0 {
		return domain.ErrInvalidTenure
	}
	if tenureYears > MaxTenureYears {
		return fmt.Errorf("tenure exceeds the maximum of %d years", MaxTenureYears)
	}
	if holdingYears <= 0 {
		return domain.ErrInvalidHoldingPeriod
	}
	if holdingYears > MaxHoldingYears {
		return fmt.Errorf("holding period exceeds the maximum of %d years", MaxHoldingYears)
	}
	return nil
}

func cacheKey(prefix string, input any) string {
	b, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(b))
}

func (s *ProjectionService) cachedResult(key string) (domain.ProjectionResult, bool) {
	if s.cache == nil || key == "" {
		return domain.ProjectionResult{}, false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.ProjectionResult{}, false
	}
	var result domain.ProjectionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("discarding malformed cached projection", zap.String("key", key), zap.Error(err))
		return domain.ProjectionResult{}, false
	}
	return result, true
}

func (s *ProjectionService) storeResult(key, kind string, input any, result domain.ProjectionResult) {
	if s.cache != nil && key != "" {
		if b, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(b), projectionCacheTTL); err != nil {
				s.logger.Warn("failed to cache projection", zap.String("key", key), zap.Error(err))
			}
		}
	}
	if s.calcs != nil {
		if err := s.calcs.Save(kind, input, result); err != nil {
			s.logger.Warn("failed to record calculation", zap.String("kind", kind), zap.Error(err))
		}
	}
}
