package domain

import "cloud.google.com/go/civil"

// NewLaunchProjectionInput describes a building-under-construction purchase:
// the loan is disbursed progressively until the completion (TOP) month, then
// amortizes normally until sale.
type NewLaunchProjectionInput struct {
	Price                  float64    `json:"price"`
	DownpaymentPercent     float64    `json:"downpayment_percent"`
	InterestRate           float64    `json:"interest_rate"`
	TenureYears            int        `json:"tenure_years"`
	PurchaseDate           civil.Date `json:"purchase_date"`
	CompletionDate         civil.Date `json:"completion_date"`
	HoldingPeriodYears     int        `json:"holding_period_years"`
	AgentCommissionPercent float64    `json:"agent_commission_percent"`
	MonthlyMcstFee         float64    `json:"monthly_mcst_fee"`
	LegalFee               float64    `json:"legal_fee"`
	AppreciationPreTop     float64    `json:"appreciation_pre_top"`
	AppreciationPostTop    float64    `json:"appreciation_post_top"`
}

// ResaleProjectionInput describes a completed-property purchase with rental
// income over the holding period. The loan is fully disbursed at purchase.
type ResaleProjectionInput struct {
	Price                  float64 `json:"price"`
	DownpaymentPercent     float64 `json:"downpayment_percent"`
	InterestRate           float64 `json:"interest_rate"`
	TenureYears            int     `json:"tenure_years"`
	HoldingPeriodYears     int     `json:"holding_period_years"`
	AgentCommissionPercent float64 `json:"agent_commission_percent"`
	MonthlyMcstFee         float64 `json:"monthly_mcst_fee"`
	LegalFee               float64 `json:"legal_fee"`
	RenovationCost         float64 `json:"renovation_cost"`
	AppreciationRate       float64 `json:"appreciation_rate"`
	MonthlyRentalIncome    float64 `json:"monthly_rental_income"`
}

type ProjectionResult struct {
	TotalCashInvested     float64 `json:"total_cash_invested"`
	OutstandingLoanAtSale float64 `json:"outstanding_loan_at_sale"`
	ProjectedSalePrice    float64 `json:"projected_sale_price"`
	SellerStampDuty       float64 `json:"seller_stamp_duty"`
	AgentFee              float64 `json:"agent_fee"`
	NetSaleProceeds       float64 `json:"net_sale_proceeds"`
	NetProfit             float64 `json:"net_profit"`
	RoiPercent            float64 `json:"roi_percent"`
	AnnualizedRoiPercent  float64 `json:"annualized_roi_percent"`
}
