package validate

// ContactForm is the sanitized shape of a contact-form submission. Unknown
// fields in the raw input are ignored by the caller; absent optional fields
// stay empty strings.
type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone_chars"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

var contactMessages = map[string]string{
	"name.required":  "Name must be at least 2 characters",
	"name.min":       "Name must be at least 2 characters",
	"name.max":       "Name must be less than 100 characters",
	"email":          "Please enter a valid email address",
	"phone":          "Please enter a valid phone number",
	"subject.max":    "Subject must be less than 200 characters",
	"message.required": "Message must be at least 10 characters",
	"message.min":    "Message must be at least 10 characters",
	"message.max":    "Message must be less than 5000 characters",
}

// ContactFormErrors validates a contact submission. It returns nil when the
// form is valid, otherwise one human-readable message per offending field.
func ContactFormErrors(form ContactForm) map[string]string {
	return check(form, contactMessages)
}
