package repository

import "github.com/danielkoh/property-launches/domain"

type LeadRepository interface {
	Save(lead domain.Lead) error
}
