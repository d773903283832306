package domain

import "errors"

var (
	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrInvalidRate          = errors.New("interest rate cannot be negative")
	ErrInvalidTenure        = errors.New("loan tenure must be greater than zero")
	ErrInvalidDownpayment   = errors.New("downpayment percent must be between 0 and 100")
	ErrInvalidHoldingPeriod = errors.New("sale date must be after purchase date")
	ErrInvalidTimeline      = errors.New("completion date must be after option date")
	ErrInvalidIncome        = errors.New("income must be greater than zero")
)
