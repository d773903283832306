package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
	"github.com/danielkoh/property-launches/repository"
)

type stubVerifier struct {
	ok  bool
	err error
}

func (v *stubVerifier) Verify(string) (bool, error) {
	return v.ok, v.err
}

type stubNotifier struct {
	notified chan domain.Lead
	err      error
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{notified: make(chan domain.Lead, 1)}
}

func (n *stubNotifier) NotifyLead(lead domain.Lead) error {
	n.notified <- lead
	return n.err
}

type failingLeadRepo struct{}

func (failingLeadRepo) Save(domain.Lead) error {
	return errors.New("disk full")
}

func validLeadInput() domain.LeadInput {
	return domain.LeadInput{
		Name:         "Jane Tan",
		Email:        "jane@example.com",
		Phone:        "+65 9123 4567",
		Consent:      true,
		Source:       "showflat",
		CaptchaToken: "token",
	}
}

func TestSubmitLead_Success(t *testing.T) {
	repo := repository.NewLeadRepositoryMemory()
	notifier := newStubNotifier()
	s := NewLeadService(repo, &stubVerifier{ok: true}, notifier, zap.NewNop())

	lead, err := s.SubmitLead(validLeadInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.ID == "" {
		t.Error("expected a generated lead ID")
	}
	if lead.CreatedAt.IsZero() {
		t.Error("expected a submission timestamp")
	}
	if got := len(repo.All()); got != 1 {
		t.Errorf("expected 1 stored lead, got %d", got)
	}

	select {
	case notified := <-notifier.notified:
		if notified.ID != lead.ID {
			t.Errorf("notified lead ID = %q, want %q", notified.ID, lead.ID)
		}
	case <-time.After(time.Second):
		t.Error("notification was never sent")
	}
}

func TestSubmitLead_MissingFields(t *testing.T) {
	s := NewLeadService(repository.NewLeadRepositoryMemory(), &stubVerifier{ok: true}, newStubNotifier(), zap.NewNop())

	cases := []func(*domain.LeadInput){
		func(in *domain.LeadInput) { in.Name = "" },
		func(in *domain.LeadInput) { in.Email = "" },
		func(in *domain.LeadInput) { in.Phone = "" },
	}
	for i, mutate := range cases {
		input := validLeadInput()
		mutate(&input)
		if _, err := s.SubmitLead(input); !errors.Is(err, ErrMissingFields) {
			t.Errorf("case %d: expected ErrMissingFields, got %v", i, err)
		}
	}
}

func TestSubmitLead_ConsentRequired(t *testing.T) {
	s := NewLeadService(repository.NewLeadRepositoryMemory(), &stubVerifier{ok: true}, newStubNotifier(), zap.NewNop())

	input := validLeadInput()
	input.Consent = false
	if _, err := s.SubmitLead(input); !errors.Is(err, ErrConsentRequired) {
		t.Errorf("expected ErrConsentRequired, got %v", err)
	}
}

func TestSubmitLead_VerificationRejects(t *testing.T) {
	repo := repository.NewLeadRepositoryMemory()
	s := NewLeadService(repo, &stubVerifier{ok: false}, newStubNotifier(), zap.NewNop())

	if _, err := s.SubmitLead(validLeadInput()); !errors.Is(err, ErrVerificationFailed) {
		t.Errorf("expected ErrVerificationFailed, got %v", err)
	}
	if got := len(repo.All()); got != 0 {
		t.Errorf("rejected lead was stored, got %d entries", got)
	}
}

func TestSubmitLead_VerificationErrorFailsClosed(t *testing.T) {
	repo := repository.NewLeadRepositoryMemory()
	verifier := &stubVerifier{ok: true, err: errors.New("siteverify unreachable")}
	s := NewLeadService(repo, verifier, newStubNotifier(), zap.NewNop())

	if _, err := s.SubmitLead(validLeadInput()); !errors.Is(err, ErrVerificationFailed) {
		t.Errorf("expected ErrVerificationFailed, got %v", err)
	}
	if got := len(repo.All()); got != 0 {
		t.Errorf("unverified lead was stored, got %d entries", got)
	}
}

func TestSubmitLead_StorageFailure(t *testing.T) {
	s := NewLeadService(failingLeadRepo{}, &stubVerifier{ok: true}, newStubNotifier(), zap.NewNop())

	if _, err := s.SubmitLead(validLeadInput()); !errors.Is(err, ErrLeadStorage) {
		t.Errorf("expected ErrLeadStorage, got %v", err)
	}
}

func TestSubmitLead_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	notifier := newStubNotifier()
	notifier.err = errors.New("resend rejected the request")
	s := NewLeadService(repository.NewLeadRepositoryMemory(), &stubVerifier{ok: true}, notifier, zap.NewNop())

	if _, err := s.SubmitLead(validLeadInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-notifier.notified:
	case <-time.After(time.Second):
		t.Error("notifier was never invoked")
	}
}
