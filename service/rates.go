package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StampDutyTier is one band of the progressive buyer's stamp duty schedule.
// Threshold is the amount of price the band consumes; a zero Threshold marks
// the final, unbounded band.
type StampDutyTier struct {
	Threshold   float64 `yaml:"threshold"`
	RatePercent float64 `yaml:"rate_percent"`
}

// AbsdRates holds ABSD rates in percent by count of properties already owned.
type AbsdRates struct {
	First      float64 `yaml:"first"`
	Second     float64 `yaml:"second"`
	Subsequent float64 `yaml:"subsequent"`
}

// SsdBand applies RatePercent when the holding period is strictly less than
// MaxYears.
type SsdBand struct {
	MaxYears    float64 `yaml:"max_years"`
	RatePercent float64 `yaml:"rate_percent"`
}

type Rates struct {
	BsdTiers []StampDutyTier `yaml:"bsd_tiers"`

	AbsdCitizen           AbsdRates `yaml:"absd_citizen"`
	AbsdPermanentResident AbsdRates `yaml:"absd_permanent_resident"`
	AbsdForeignerPercent  float64   `yaml:"absd_foreigner_percent"`
	AbsdEntityPercent     float64   `yaml:"absd_entity_percent"`

	SsdBands []SsdBand `yaml:"ssd_bands"`

	TdsrLimitPercent    float64 `yaml:"tdsr_limit_percent"`
	MsrLimitPercent     float64 `yaml:"msr_limit_percent"`
	MsrFloorRatePercent float64 `yaml:"msr_floor_rate_percent"`
	EcLtvLimitPercent   float64 `yaml:"ec_ltv_limit_percent"`
	EcTenureYears       int     `yaml:"ec_tenure_years"`
	EcIncomeCeiling     float64 `yaml:"ec_income_ceiling"`

	MinCashPercent            float64 `yaml:"min_cash_percent"`
	BalanceDownpaymentPercent float64 `yaml:"balance_downpayment_percent"`
	LegalFee                  float64 `yaml:"legal_fee"`
}

// DefaultRates returns the 2025/2026 residential baseline.
func DefaultRates() Rates {
	return Rates{
		BsdTiers: []StampDutyTier{
			{Threshold: 180_000, RatePercent: 1},
			{Threshold: 180_000, RatePercent: 2},
			{Threshold: 640_000, RatePercent: 3},
			{Threshold: 500_000, RatePercent: 4},
			{Threshold: 1_500_000, RatePercent: 5},
			{Threshold: 0, RatePercent: 6},
		},
		AbsdCitizen:           AbsdRates{First: 0, Second: 20, Subsequent: 30},
		AbsdPermanentResident: AbsdRates{First: 5, Second: 30, Subsequent: 35},
		AbsdForeignerPercent:  60,
		AbsdEntityPercent:     65,
		SsdBands: []SsdBand{
			{MaxYears: 1, RatePercent: 16},
			{MaxYears: 2, RatePercent: 12},
			{MaxYears: 3, RatePercent: 8},
			{MaxYears: 4, RatePercent: 4},
		},
		TdsrLimitPercent:          55,
		MsrLimitPercent:           30,
		MsrFloorRatePercent:       4.0,
		EcLtvLimitPercent:         75,
		EcTenureYears:             30,
		EcIncomeCeiling:           16_000,
		MinCashPercent:            5,
		BalanceDownpaymentPercent: 20,
		LegalFee:                  3000,
	}
}

// LoadRatesFromFile reads a YAML rates file. Callers fall back to
// DefaultRates when the file is missing or invalid.
func LoadRatesFromFile(path string) (Rates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rates{}, err
	}

	var r Rates
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rates{}, fmt.Errorf("parse rates file: %w", err)
	}
	if err := r.validate(); err != nil {
		return Rates{}, err
	}
	return r, nil
}

func (r Rates) validate() error {
	if len(r.BsdTiers) == 0 {
		return fmt.Errorf("rates file has no bsd_tiers")
	}
	for i, tier := range r.BsdTiers {
		if tier.RatePercent < 0 {
			return fmt.Errorf("bsd tier %d has negative rate", i)
		}
		if tier.Threshold == 0 && i != len(r.BsdTiers)-1 {
			return fmt.Errorf("bsd tier %d is unbounded but not last", i)
		}
	}
	if r.TdsrLimitPercent <= 0 || r.MsrLimitPercent <= 0 {
		return fmt.Errorf("tdsr and msr limits must be positive")
	}
	if r.EcTenureYears <= 0 {
		return fmt.Errorf("ec tenure must be positive")
	}
	return nil
}
