package validate

// ServiceForm is the editable shape of a services-catalog entry.
type ServiceForm struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"required,min=2,max=100,slug"`
	Description string `json:"description" validate:"required,min=10,max=2000"`
	Icon        string `json:"icon" validate:"omitempty,max=50"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order" validate:"min=0"`
}

var serviceMessages = map[string]string{
	"name.required":        "Name must be at least 2 characters",
	"name.min":             "Name must be at least 2 characters",
	"name.max":             "Name must be less than 100 characters",
	"slug.required":        "Slug must be at least 2 characters",
	"slug.min":             "Slug must be at least 2 characters",
	"slug.max":             "Slug must be less than 100 characters",
	"slug.slug":            "Slug must contain only lowercase letters, numbers, and hyphens",
	"description.required": "Description must be at least 10 characters",
	"description.min":      "Description must be at least 10 characters",
	"description.max":      "Description must be less than 2000 characters",
	"icon.max":             "Icon must be less than 50 characters",
	"image_url":            "Image URL must be a valid URL",
	"order":                "Order must be zero or greater",
}

// ServiceFormErrors validates a service form. Nil means valid.
func ServiceFormErrors(form ServiceForm) map[string]string {
	return check(form, serviceMessages)
}
