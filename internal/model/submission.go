package model

import "time"

// ContactSubmission is a validated contact-form record stored in the inbox.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Handled   bool      `json:"handled"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmissionUpdate carries a partial update for a submission.
// Only non-nil fields are applied.
type SubmissionUpdate struct {
	Handled *bool
	Notes   *string
}

// SubmissionListOptions carries filter and pagination parameters for listing
// contact submissions.
type SubmissionListOptions struct {
	// Handled filters by handled state. nil returns all submissions.
	Handled *bool
	Limit   int
	Offset  int
}

// SubmissionFilter narrows Count queries.
type SubmissionFilter struct {
	Handled *bool
}
