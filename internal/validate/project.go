package validate

// ProjectForm is the editable shape of a portfolio project.
type ProjectForm struct {
	Title            string   `json:"title" validate:"required,min=2,max=200"`
	Slug             string   `json:"slug" validate:"required,min=2,max=200,slug"`
	ShortDescription string   `json:"short_description" validate:"required,min=10,max=500"`
	FullDescription  string   `json:"full_description" validate:"omitempty,max=10000"`
	Category         string   `json:"category" validate:"required"`
	Location         string   `json:"location" validate:"omitempty,max=200"`
	ProjectDate      string   `json:"project_date" validate:"omitempty,datetime=2006-01-02"`
	Featured         bool     `json:"featured"`
	Published        bool     `json:"published"`
	Tags             []string `json:"tags"`
	ImageURLs        []string `json:"image_urls" validate:"dive,url"`
}

var projectMessages = map[string]string{
	"title.required":             "Title must be at least 2 characters",
	"title.min":                  "Title must be at least 2 characters",
	"title.max":                  "Title must be less than 200 characters",
	"slug.required":              "Slug must be at least 2 characters",
	"slug.min":                   "Slug must be at least 2 characters",
	"slug.max":                   "Slug must be less than 200 characters",
	"slug.slug":                  "Slug must contain only lowercase letters, numbers, and hyphens",
	"short_description.required": "Short description must be at least 10 characters",
	"short_description.min":      "Short description must be at least 10 characters",
	"short_description.max":      "Short description must be less than 500 characters",
	"full_description.max":       "Full description must be less than 10000 characters",
	"category":                   "Category is required",
	"location.max":               "Location must be less than 200 characters",
	"project_date":               "Please enter a valid date (YYYY-MM-DD)",
	"image_urls":                 "Image URLs must be valid URLs",
}

// ProjectFormErrors validates a project form. Nil means valid.
func ProjectFormErrors(form ProjectForm) map[string]string {
	return check(form, projectMessages)
}
