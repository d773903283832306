package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/repository"
)

var (
	ErrMissingFields      = errors.New("please fill in all required fields")
	ErrConsentRequired    = errors.New("you must consent to receive updates")
	ErrVerificationFailed = errors.New("verification failed, please try again")
	ErrLeadStorage        = errors.New("failed to submit, please try again later")
)

type TokenVerifier interface {
	Verify(token string) (bool, error)
}

type Notifier interface {
	NotifyLead(lead domain.Lead) error
}

type LeadService struct {
	repo     repository.LeadRepository
	verifier TokenVerifier
	notifier Notifier
	logger   *zap.Logger
}

func NewLeadService(
	repo repository.LeadRepository,
	verifier TokenVerifier,
	notifier Notifier,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		repo:     repo,
		verifier: verifier,
		notifier: notifier,
		logger:   logger,
	}
}

// SubmitLead validates the registration, gates it on captcha verification
// and persists it. Notification is fire-and-forget; a failed email never
// fails the submission.
func (s *LeadService) SubmitLead(input domain.LeadInput) (domain.Lead, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return domain.Lead{}, ErrMissingFields
	}
	if !input.Consent {
		return domain.Lead{}, ErrConsentRequired
	}

	ok, err := s.verifier.Verify(input.CaptchaToken)
	if err != nil {
		s.logger.Warn("captcha verification errored", zap.Error(err))
		return domain.Lead{}, ErrVerificationFailed
	}
	if !ok {
		return domain.Lead{}, ErrVerificationFailed
	}

	lead := domain.Lead{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Source:    input.Source,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(lead); err != nil {
		s.logger.Error("failed to save lead", zap.Error(err))
		return domain.Lead{}, ErrLeadStorage
	}

	go func() {
		if err := s.notifier.NotifyLead(lead); err != nil {
			s.logger.Warn("failed to send lead notification",
				zap.String("lead_id", lead.ID), zap.Error(err))
		}
	}()

	return lead, nil
}
