package service

import (
	"context"

	"github.com/acesite/backend/internal/model"
)

// User-facing messages. Everything except validation errors is deliberately
// vague: no remaining quota, no reset time, no storage detail.
const (
	MsgSubmitted   = "Your message has been sent successfully!"
	MsgRateLimited = "Too many submissions. Please try again later."
	MsgInvalid     = "Please fix the validation errors."
	MsgInternal    = "An error occurred. Please try again later."
)

// SubmitStatus discriminates the outcome of a contact-form submission.
type SubmitStatus int

const (
	SubmitAdmitted SubmitStatus = iota
	SubmitRateLimited
	SubmitValidationFailed
	SubmitInternalError
)

// ContactInput is the raw, untrusted field set of a contact-form post.
// Unknown fields were already dropped by the transport layer.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitResult is the discriminated outcome of the submission pipeline.
// Submission is set only for SubmitAdmitted; FieldErrors only for
// SubmitValidationFailed.
type SubmitResult struct {
	Status      SubmitStatus
	Submission  *model.ContactSubmission
	FieldErrors map[string]string
	Message     string
}

// ContactService runs the contact-form submission pipeline and exposes the
// admin operations on the submissions inbox.
type ContactService interface {
	// Submit runs normalize → rate-check → validate → persist for one
	// inbound form post. All failures are converted into the result; Submit
	// never returns an error to the transport layer.
	Submit(ctx context.Context, input ContactInput, clientAddr string) SubmitResult

	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)
	Count(ctx context.Context, filter model.SubmissionFilter) (int, error)
	// Update applies a partial admin mutation (handled, notes).
	Update(ctx context.Context, id string, upd model.SubmissionUpdate) error
	// Delete removes a submission; repository.ErrNotFound surfaces unchanged.
	Delete(ctx context.Context, id string) error
}
