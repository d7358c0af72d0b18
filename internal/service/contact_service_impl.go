package service

import (
	"context"
	"log/slog"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/ratelimit"
	"github.com/acesite/backend/internal/repository"
	"github.com/acesite/backend/internal/validate"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo    repository.SubmissionRepository
	limiter ratelimit.Store
}

// NewContactService creates a ContactService backed by the given repository
// and rate-limit store.
func NewContactService(repo repository.SubmissionRepository, limiter ratelimit.Store) ContactService {
	return &contactServiceImpl{repo: repo, limiter: limiter}
}

// Submit implements the submission pipeline. Step order matters:
//   - The rate check runs before validation, so abusive traffic never reaches
//     the validator and a rejected request does no further work.
//   - A validation failure does not refund the consumed slot; probing the
//     validator costs quota like any other submission.
func (s *contactServiceImpl) Submit(ctx context.Context, input ContactInput, clientAddr string) SubmitResult {
	identifier := ratelimit.Identifier(ratelimit.ContactBucket, clientAddr)

	admitted, err := s.limiter.Allow(ctx, identifier, ratelimit.Window, ratelimit.MaxPerWindow)
	if err != nil {
		// An unreachable store rejects the request; admitting without a
		// counter would let an outage disable the limit.
		slog.Error("contact rate-limit check failed", "error", err, "identifier", identifier)
		return SubmitResult{Status: SubmitInternalError, Message: MsgInternal}
	}
	if !admitted {
		return SubmitResult{Status: SubmitRateLimited, Message: MsgRateLimited}
	}

	form := validate.ContactForm{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if fieldErrors := validate.ContactFormErrors(form); fieldErrors != nil {
		return SubmitResult{Status: SubmitValidationFailed, FieldErrors: fieldErrors, Message: MsgInvalid}
	}

	sub := &model.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   nilIfEmpty(form.Phone),
		Subject: nilIfEmpty(form.Subject),
		Message: form.Message,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		slog.Error("contact submission persist failed", "error", err)
		return SubmitResult{Status: SubmitInternalError, Message: MsgInternal}
	}

	return SubmitResult{Status: SubmitAdmitted, Submission: sub, Message: MsgSubmitted}
}

// List returns submissions newest first.
func (s *contactServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}

// Count returns the number of submissions matching the filter.
func (s *contactServiceImpl) Count(ctx context.Context, filter model.SubmissionFilter) (int, error) {
	return s.repo.Count(ctx, filter)
}

// Update applies a partial admin mutation.
func (s *contactServiceImpl) Update(ctx context.Context, id string, upd model.SubmissionUpdate) error {
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a submission.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// nilIfEmpty maps an absent optional field to NULL rather than "".
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
