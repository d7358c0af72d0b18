package validate

// SettingsForm is the editable shape of the site-wide settings row.
// Empty optional URLs are normalized to NULL by the service before saving.
type SettingsForm struct {
	BusinessName    string `json:"business_name" validate:"required,max=200"`
	Tagline         string `json:"tagline" validate:"omitempty,max=500"`
	IntroText       string `json:"intro_text" validate:"omitempty,max=2000"`
	Phone           string `json:"phone" validate:"required,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Hours           string `json:"hours" validate:"omitempty,max=200"`
	ServiceArea     string `json:"service_area" validate:"omitempty,max=500"`
	Address         string `json:"address" validate:"omitempty,max=500"`
	FacebookURL     string `json:"facebook_url" validate:"omitempty,url"`
	InstagramURL    string `json:"instagram_url" validate:"omitempty,url"`
	TwitterURL      string `json:"twitter_url" validate:"omitempty,url"`
	LinkedinURL     string `json:"linkedin_url" validate:"omitempty,url"`
	YoutubeURL      string `json:"youtube_url" validate:"omitempty,url"`
	HeroHeadline    string `json:"hero_headline" validate:"required,max=200"`
	HeroSubheadline string `json:"hero_subheadline" validate:"omitempty,max=500"`
	HeroCta1Text    string `json:"hero_cta1_text" validate:"omitempty,max=50"`
	HeroCta1Link    string `json:"hero_cta1_link" validate:"omitempty,max=200"`
	HeroCta2Text    string `json:"hero_cta2_text" validate:"omitempty,max=50"`
	HeroCta2Link    string `json:"hero_cta2_link" validate:"omitempty,max=200"`
	HeroImageURL    string `json:"hero_image_url" validate:"omitempty,url"`
	AboutHeadline   string `json:"about_headline" validate:"omitempty,max=200"`
	AboutContent    string `json:"about_content" validate:"omitempty,max=10000"`
	AboutImageURL   string `json:"about_image_url" validate:"omitempty,url"`
}

var settingsMessages = map[string]string{
	"business_name.required": "Business name is required",
	"business_name.max":      "Business name must be less than 200 characters",
	"phone.required":         "Phone is required",
	"phone.max":              "Phone must be less than 50 characters",
	"email":                  "Please enter a valid email",
	"hero_headline.required": "Hero headline is required",
	"hero_headline.max":      "Hero headline must be less than 200 characters",
	"facebook_url":           "Please enter a valid URL",
	"instagram_url":          "Please enter a valid URL",
	"twitter_url":            "Please enter a valid URL",
	"linkedin_url":           "Please enter a valid URL",
	"youtube_url":            "Please enter a valid URL",
	"hero_image_url":         "Please enter a valid URL",
	"about_image_url":        "Please enter a valid URL",
}

// SettingsFormErrors validates the settings form. Nil means valid.
func SettingsFormErrors(form SettingsForm) map[string]string {
	return check(form, settingsMessages)
}
