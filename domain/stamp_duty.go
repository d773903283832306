package domain

type Residency string

const (
	ResidencyCitizen           Residency = "SC"
	ResidencyPermanentResident Residency = "PR"
	ResidencyForeigner         Residency = "FR"
	ResidencyEntity            Residency = "ENTITY"
)

// BuyerProfile drives the ABSD rate lookup. PropertyCount is the number of
// residential properties the buyer already owns at the time of purchase.
type BuyerProfile struct {
	Residency     Residency `json:"residency"`
	PropertyCount int       `json:"property_count"`
	FtaEligible   bool      `json:"fta_eligible"`
}

type StampDutyInput struct {
	Price   float64      `json:"price"`
	Profile BuyerProfile `json:"profile"`
}

type StampDutyResult struct {
	BuyerStampDuty           float64 `json:"buyer_stamp_duty"`
	AdditionalBuyerStampDuty float64 `json:"additional_buyer_stamp_duty"`
	TotalTax                 float64 `json:"total_tax"`
}
