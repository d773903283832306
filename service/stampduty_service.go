package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
)

type StampDutyService struct {
	rates  Rates
	logger *zap.Logger
}

func NewStampDutyService(rates Rates, logger *zap.Logger) *StampDutyService {
	return &StampDutyService{rates: rates, logger: logger}
}

// BuyerStampDuty walks the progressive tier schedule low to high, consuming
// the price band by band. A zero or negative price yields zero tax.
func (s *StampDutyService) BuyerStampDuty(price float64) float64 {
	if price <= 0 {
		return 0
	}

	tax := 0.0
	remaining := price
	for _, tier := range s.rates.BsdTiers {
		if remaining <= 0 {
			break
		}
		taxed := remaining
		if tier.Threshold > 0 && taxed > tier.Threshold {
			taxed = tier.Threshold
		}
		tax += taxed * tier.RatePercent / 100
		remaining -= taxed
	}
	return tax
}

// AdditionalBuyerStampDuty looks up the ABSD rate for the buyer profile.
// FTA-eligible foreigners are treated as citizens. Entities pay a flat rate
// regardless of property count.
func (s *StampDutyService) AdditionalBuyerStampDuty(price float64, profile domain.BuyerProfile) float64 {
	if price <= 0 {
		return 0
	}

	residency := profile.Residency
	if residency == domain.ResidencyForeigner && profile.FtaEligible {
		residency = domain.ResidencyCitizen
	}

	var rate float64
	switch residency {
	case domain.ResidencyCitizen:
		rate = absdByCount(s.rates.AbsdCitizen, profile.PropertyCount)
	case domain.ResidencyPermanentResident:
		rate = absdByCount(s.rates.AbsdPermanentResident, profile.PropertyCount)
	case domain.ResidencyForeigner:
		rate = s.rates.AbsdForeignerPercent
	case domain.ResidencyEntity:
		rate = s.rates.AbsdEntityPercent
	}

	return price * rate / 100
}

func absdByCount(rates AbsdRates, count int) float64 {
	switch {
	case count <= 0:
		return rates.First
	case count == 1:
		return rates.Second
	default:
		return rates.Subsequent
	}
}

// SellerStampDuty applies the holding-period bands with strict less-than
// comparisons: a holding period of exactly 4.0 years pays 0%.
func (s *StampDutyService) SellerStampDuty(salePrice, holdingYears float64) float64 {
	if salePrice <= 0 {
		return 0
	}

	for _, band := range s.rates.SsdBands {
		if holdingYears < band.MaxYears {
			return salePrice * band.RatePercent / 100
		}
	}
	return 0
}

// CalculateStampDuty computes BSD and ABSD for a purchase.
func (s *StampDutyService) CalculateStampDuty(input domain.StampDutyInput) (domain.StampDutyResult, error) {
	if input.Price <= 0 {
		return domain.StampDutyResult{}, domain.ErrInvalidPrice
	}
	if input.Price > MaxPropertyPrice {
		return domain.StampDutyResult{}, fmt.Errorf("price exceeds the maximum of $%.2f", MaxPropertyPrice)
	}
	if input.Profile.PropertyCount < 0 {
		return domain.StampDutyResult{}, fmt.Errorf("property count cannot be negative")
	}
	switch input.Profile.Residency {
	case domain.ResidencyCitizen, domain.ResidencyPermanentResident,
		domain.ResidencyForeigner, domain.ResidencyEntity:
	default:
		return domain.StampDutyResult{}, fmt.Errorf("unknown residency status %q", input.Profile.Residency)
	}

	bsd := s.BuyerStampDuty(input.Price)
	absd := s.AdditionalBuyerStampDuty(input.Price, input.Profile)

	return domain.StampDutyResult{
		BuyerStampDuty:           roundTo2Decimals(bsd),
		AdditionalBuyerStampDuty: roundTo2Decimals(absd),
		TotalTax:                 roundTo2Decimals(bsd + absd),
	}, nil
}
