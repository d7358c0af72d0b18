package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/acesite/backend/internal/ratelimit"
	"github.com/acesite/backend/internal/service"
)

// ContactHandler handles the public contact-form endpoint.
type ContactHandler struct {
	contact service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contact service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit handles POST /api/contact. The body may be JSON or form-encoded;
// unknown fields are ignored either way. The response envelope is
// {success, message?, errors?} with 201/400/429/500.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	input, ok := parseContactInput(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Invalid request body"})
		return
	}

	result := h.contact.Submit(r.Context(), input, ratelimit.ClientAddress(r))

	switch result.Status {
	case service.SubmitAdmitted:
		writeJSON(w, http.StatusCreated, actionResponse{Success: true, Message: result.Message})
	case service.SubmitRateLimited:
		writeJSON(w, http.StatusTooManyRequests, actionResponse{Success: false, Message: result.Message})
	case service.SubmitValidationFailed:
		writeJSON(w, http.StatusBadRequest, actionResponse{
			Success: false,
			Message: result.Message,
			Errors:  result.FieldErrors,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: result.Message})
	}
}

func parseContactInput(r *http.Request) (service.ContactInput, bool) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var input service.ContactInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return service.ContactInput{}, false
		}
		return input, true
	}

	if err := r.ParseForm(); err != nil {
		return service.ContactInput{}, false
	}
	return service.ContactInput{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}, true
}
