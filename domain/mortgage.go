package domain

type MortgageInput struct {
	Price              float64 `json:"price"`
	DownpaymentPercent float64 `json:"downpayment_percent"`
	InterestRate       float64 `json:"interest_rate"`
	TenureYears        int     `json:"tenure_years"`
}

type MortgageResult struct {
	LoanAmount       float64 `json:"loan_amount"`
	MonthlyRepayment float64 `json:"monthly_repayment"`
	TotalPayment     float64 `json:"total_payment"`
	TotalInterest    float64 `json:"total_interest"`
}
