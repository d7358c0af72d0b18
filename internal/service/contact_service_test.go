package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/ratelimit"
	"github.com/acesite/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockSubmissionRepo struct {
	createFunc func(ctx context.Context, sub *model.ContactSubmission) error
	updateFunc func(ctx context.Context, id string, upd model.SubmissionUpdate) error
	deleteFunc func(ctx context.Context, id string) error
	listFunc   func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)
	countFunc  func(ctx context.Context, filter model.SubmissionFilter) (int, error)

	created []*model.ContactSubmission
}

func (m *mockSubmissionRepo) Create(ctx context.Context, sub *model.ContactSubmission) error {
	if m.createFunc != nil {
		if err := m.createFunc(ctx, sub); err != nil {
			return err
		}
	}
	sub.ID = "sub-1"
	sub.CreatedAt = time.Now().UTC()
	m.created = append(m.created, sub)
	return nil
}

func (m *mockSubmissionRepo) Update(ctx context.Context, id string, upd model.SubmissionUpdate) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, upd)
	}
	return nil
}

func (m *mockSubmissionRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSubmissionRepo) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockSubmissionRepo) Count(ctx context.Context, filter model.SubmissionFilter) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, filter)
	}
	return 0, nil
}

// mockLimiter is a scriptable rate-limit store.
type mockLimiter struct {
	allowFunc func(ctx context.Context, identifier string, window time.Duration, max int) (bool, error)
	calls     []string
}

func (m *mockLimiter) Allow(ctx context.Context, identifier string, window time.Duration, max int) (bool, error) {
	m.calls = append(m.calls, identifier)
	if m.allowFunc != nil {
		return m.allowFunc(ctx, identifier, window, max)
	}
	return true, nil
}

func validInput() ContactInput {
	return ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Please call me about a quote for basement work.",
	}
}

// ---------------------------------------------------------------------------
// Submit: admitted
// ---------------------------------------------------------------------------

func TestContactService_Submit_Admitted(t *testing.T) {
	repo := &mockSubmissionRepo{}
	limiter := &mockLimiter{}
	svc := NewContactService(repo, limiter)

	res := svc.Submit(context.Background(), validInput(), "203.0.113.7")

	if res.Status != SubmitAdmitted {
		t.Fatalf("expected SubmitAdmitted, got %v (message %q)", res.Status, res.Message)
	}
	if res.Submission == nil || res.Submission.ID == "" {
		t.Fatal("expected a persisted submission with an id")
	}
	if res.Submission.Handled {
		t.Error("expected handled=false on a fresh submission")
	}
	if res.Submission.Notes != nil {
		t.Error("expected notes=nil on a fresh submission")
	}
	if res.Message != MsgSubmitted {
		t.Errorf("expected success message, got %q", res.Message)
	}
}

func TestContactService_Submit_UsesContactBucketIdentifier(t *testing.T) {
	repo := &mockSubmissionRepo{}
	limiter := &mockLimiter{}
	svc := NewContactService(repo, limiter)

	svc.Submit(context.Background(), validInput(), "203.0.113.7")

	if len(limiter.calls) != 1 || limiter.calls[0] != "contact-203.0.113.7" {
		t.Errorf("expected one rate check for contact-203.0.113.7, got %v", limiter.calls)
	}
}

func TestContactService_Submit_OptionalFieldsBecomeNull(t *testing.T) {
	repo := &mockSubmissionRepo{}
	svc := NewContactService(repo, &mockLimiter{})

	res := svc.Submit(context.Background(), validInput(), "203.0.113.7")
	if res.Submission.Phone != nil || res.Submission.Subject != nil {
		t.Errorf("expected absent optionals to persist as nil, got phone=%v subject=%v",
			res.Submission.Phone, res.Submission.Subject)
	}

	in := validInput()
	in.Phone = "(267) 640-5958"
	in.Subject = "Quote request"
	res = svc.Submit(context.Background(), in, "203.0.113.7")
	if res.Submission.Phone == nil || *res.Submission.Phone != "(267) 640-5958" {
		t.Errorf("expected phone preserved, got %v", res.Submission.Phone)
	}
	if res.Submission.Subject == nil || *res.Submission.Subject != "Quote request" {
		t.Errorf("expected subject preserved, got %v", res.Submission.Subject)
	}
}

// ---------------------------------------------------------------------------
// Submit: rate limiting
// ---------------------------------------------------------------------------

func TestContactService_Submit_RateLimitedSkipsValidationAndPersistence(t *testing.T) {
	repo := &mockSubmissionRepo{}
	limiter := &mockLimiter{
		allowFunc: func(context.Context, string, time.Duration, int) (bool, error) {
			return false, nil
		},
	}
	svc := NewContactService(repo, limiter)

	// Even an otherwise-valid submission must come back RateLimited.
	res := svc.Submit(context.Background(), validInput(), "203.0.113.7")

	if res.Status != SubmitRateLimited {
		t.Fatalf("expected SubmitRateLimited, got %v", res.Status)
	}
	if res.Message != MsgRateLimited {
		t.Errorf("expected %q, got %q", MsgRateLimited, res.Message)
	}
	if res.FieldErrors != nil {
		t.Error("rate-limited responses must not carry field errors")
	}
	if len(repo.created) != 0 {
		t.Error("no submission record may be created when rate-limited")
	}
}

func TestContactService_Submit_StoreErrorIsInternalNotAdmission(t *testing.T) {
	repo := &mockSubmissionRepo{}
	limiter := &mockLimiter{
		allowFunc: func(context.Context, string, time.Duration, int) (bool, error) {
			return false, errors.New("store unreachable")
		},
	}
	svc := NewContactService(repo, limiter)

	res := svc.Submit(context.Background(), validInput(), "203.0.113.7")

	if res.Status != SubmitInternalError {
		t.Fatalf("expected SubmitInternalError, got %v", res.Status)
	}
	if res.Message != MsgInternal {
		t.Errorf("expected generic message, got %q", res.Message)
	}
	if len(repo.created) != 0 {
		t.Error("nothing may be persisted when the rate-limit store fails")
	}
}

func TestContactService_Submit_InvalidPayloadsExhaustQuota(t *testing.T) {
	// Drive the pipeline against a real in-memory store: five invalid
	// submissions consume the window, so a sixth valid one is rejected.
	repo := &mockSubmissionRepo{}
	svc := NewContactService(repo, ratelimit.NewMemoryStore())
	ctx := context.Background()

	bad := validInput()
	bad.Email = "not-an-email"

	for i := 0; i < 5; i++ {
		res := svc.Submit(ctx, bad, "198.51.100.9")
		if res.Status != SubmitValidationFailed {
			t.Fatalf("expected SubmitValidationFailed on attempt %d, got %v", i+1, res.Status)
		}
	}

	res := svc.Submit(ctx, validInput(), "198.51.100.9")
	if res.Status != SubmitRateLimited {
		t.Fatalf("expected SubmitRateLimited after five failed attempts, got %v", res.Status)
	}
	if len(repo.created) != 0 {
		t.Error("no submission may be created across the whole sequence")
	}
}

// ---------------------------------------------------------------------------
// Submit: validation
// ---------------------------------------------------------------------------

func TestContactService_Submit_ValidationFailedReturnsFieldErrors(t *testing.T) {
	repo := &mockSubmissionRepo{}
	svc := NewContactService(repo, &mockLimiter{})

	in := validInput()
	in.Email = "not-an-email"
	in.Message = "too short"
	res := svc.Submit(context.Background(), in, "203.0.113.7")

	if res.Status != SubmitValidationFailed {
		t.Fatalf("expected SubmitValidationFailed, got %v", res.Status)
	}
	if res.FieldErrors["email"] != "Please enter a valid email address" {
		t.Errorf("expected email field error, got %v", res.FieldErrors)
	}
	if res.FieldErrors["message"] == "" {
		t.Errorf("expected message field error, got %v", res.FieldErrors)
	}
	if len(repo.created) != 0 {
		t.Error("invalid submissions must not be persisted")
	}
}

// ---------------------------------------------------------------------------
// Submit: persistence failure
// ---------------------------------------------------------------------------

func TestContactService_Submit_PersistFailureIsInternal(t *testing.T) {
	repo := &mockSubmissionRepo{
		createFunc: func(context.Context, *model.ContactSubmission) error {
			return errors.New("db write failed")
		},
	}
	svc := NewContactService(repo, &mockLimiter{})

	res := svc.Submit(context.Background(), validInput(), "203.0.113.7")

	if res.Status != SubmitInternalError {
		t.Fatalf("expected SubmitInternalError, got %v", res.Status)
	}
	if res.Message != MsgInternal {
		t.Errorf("internal failures must use the generic message, got %q", res.Message)
	}
}

// ---------------------------------------------------------------------------
// Admin operations
// ---------------------------------------------------------------------------

func TestContactService_Update_Forwards(t *testing.T) {
	var gotID string
	var gotUpd model.SubmissionUpdate
	repo := &mockSubmissionRepo{
		updateFunc: func(_ context.Context, id string, upd model.SubmissionUpdate) error {
			gotID, gotUpd = id, upd
			return nil
		},
	}
	svc := NewContactService(repo, &mockLimiter{})

	handled := true
	if err := svc.Update(context.Background(), "sub-1", model.SubmissionUpdate{Handled: &handled}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "sub-1" || gotUpd.Handled == nil || !*gotUpd.Handled {
		t.Errorf("expected update forwarded, got id=%q upd=%+v", gotID, gotUpd)
	}
}

func TestContactService_Delete_PropagatesNotFound(t *testing.T) {
	repo := &mockSubmissionRepo{
		deleteFunc: func(context.Context, string) error { return repository.ErrNotFound },
	}
	svc := NewContactService(repo, &mockLimiter{})

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
