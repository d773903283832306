package domain

type RequiredIncomeInput struct {
	Price              float64 `json:"price"`
	DownpaymentPercent float64 `json:"downpayment_percent"`
	InterestRate       float64 `json:"interest_rate"`
	TenureYears        int     `json:"tenure_years"`
	OtherMonthlyDebt   float64 `json:"other_monthly_debt"`
}

type RequiredIncomeResult struct {
	MonthlyMortgage       float64 `json:"monthly_mortgage"`
	RequiredMonthlyIncome float64 `json:"required_monthly_income"`
	TdsrLimitPercent      float64 `json:"tdsr_limit_percent"`
}

type MaxLoanInput struct {
	MonthlyIncome float64 `json:"monthly_income"`
	InterestRate  float64 `json:"interest_rate"`
	TenureYears   int     `json:"tenure_years"`
	Price         float64 `json:"price"`
}

type MaxLoanResult struct {
	MaxMonthlyRepayment float64 `json:"max_monthly_repayment"`
	MsrLoan             float64 `json:"msr_loan"`
	LtvCap              float64 `json:"ltv_cap"`
	MaxLoan             float64 `json:"max_loan"`
}

// HouseholdType values mirror the registration form options.
const (
	HouseholdCitizenCitizen  = "SC+SC"
	HouseholdCitizenPR       = "SC+SPR"
	HouseholdCitizenForeign  = "SC+FR"
	HouseholdOther           = "Others"
)

type EcProfile struct {
	HouseholdType          string  `json:"household_type"`
	MonthlyHouseholdIncome float64 `json:"monthly_household_income"`
	OwnsPrivateProperty    bool    `json:"owns_private_property"`
}

type EcEligibility struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons"`
}

type EcViabilityInput struct {
	Price         float64   `json:"price"`
	Profile       EcProfile `json:"profile"`
	CashAvailable float64   `json:"cash_available"`
	CpfAvailable  float64   `json:"cpf_available"`
}

type EcCashOutlay struct {
	MinimumCash        float64 `json:"minimum_cash"`
	BalanceDownpayment float64 `json:"balance_downpayment"`
	BuyerStampDuty     float64 `json:"buyer_stamp_duty"`
	LegalFee           float64 `json:"legal_fee"`
	TotalInitial       float64 `json:"total_initial"`
}

type EcViabilityResult struct {
	Eligibility         EcEligibility `json:"eligibility"`
	MaxLoan             float64       `json:"max_loan"`
	MaxMonthlyRepayment float64       `json:"max_monthly_repayment"`
	CashOutlay          EcCashOutlay  `json:"cash_outlay"`
	FundingShortfall    float64       `json:"funding_shortfall"`
	CashShortfall       float64       `json:"cash_shortfall"`
}
