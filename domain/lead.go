package domain

import "time"

type LeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Consent      bool   `json:"consent"`
	Source       string `json:"source"`
	CaptchaToken string `json:"captcha_token"`
}

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectInfo is the summary served for each co-hosted launch page.
type ProjectInfo struct {
	Name        string `json:"name"`
	Developer   string `json:"developer"`
	District    string `json:"district"`
	TotalUnits  int    `json:"total_units"`
	ExpectedTop string `json:"expected_top"`
	Tagline     string `json:"tagline"`
}
