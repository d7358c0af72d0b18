package model

import "time"

// SettingsID is the primary key of the single site_settings row.
const SettingsID = "default"

// SiteSettings holds the editable site-wide content. There is exactly one
// logical row (id = SettingsID); reads fall back to DefaultSiteSettings when
// the row has never been saved.
type SiteSettings struct {
	ID              string    `json:"id"`
	BusinessName    string    `json:"business_name"`
	Tagline         *string   `json:"tagline,omitempty"`
	IntroText       *string   `json:"intro_text,omitempty"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Hours           *string   `json:"hours,omitempty"`
	ServiceArea     *string   `json:"service_area,omitempty"`
	Address         *string   `json:"address,omitempty"`
	FacebookURL     *string   `json:"facebook_url,omitempty"`
	InstagramURL    *string   `json:"instagram_url,omitempty"`
	TwitterURL      *string   `json:"twitter_url,omitempty"`
	LinkedinURL     *string   `json:"linkedin_url,omitempty"`
	YoutubeURL      *string   `json:"youtube_url,omitempty"`
	HeroHeadline    string    `json:"hero_headline"`
	HeroSubheadline *string   `json:"hero_subheadline,omitempty"`
	HeroCta1Text    *string   `json:"hero_cta1_text,omitempty"`
	HeroCta1Link    *string   `json:"hero_cta1_link,omitempty"`
	HeroCta2Text    *string   `json:"hero_cta2_text,omitempty"`
	HeroCta2Link    *string   `json:"hero_cta2_link,omitempty"`
	HeroImageURL    *string   `json:"hero_image_url,omitempty"`
	AboutHeadline   *string   `json:"about_headline,omitempty"`
	AboutContent    *string   `json:"about_content,omitempty"`
	AboutImageURL   *string   `json:"about_image_url,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func strptr(s string) *string { return &s }

// DefaultSiteSettings returns the content served before an admin has ever
// saved settings.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:              SettingsID,
		BusinessName:    "Ace Service Group LLC",
		Tagline:         strptr("At Ace Service Group, we turn problems into solutions."),
		Phone:           "(267) 640-5958",
		Email:           "aceservicegroupllc@gmail.com",
		Hours:           strptr("Always open"),
		ServiceArea:     strptr("Lansdale, PA and surrounding areas"),
		HeroHeadline:    "Quality Construction & Home Services",
		HeroSubheadline: strptr("From simple plumbing calls to full scale renovations - we turn problems into solutions."),
		HeroCta1Text:    strptr("Call Now"),
		HeroCta1Link:    strptr("tel:+12676405958"),
		HeroCta2Text:    strptr("Request a Quote"),
		HeroCta2Link:    strptr("/contact"),
		AboutHeadline:   strptr("About Ace Service Group"),
		UpdatedAt:       time.Now().UTC(),
	}
}
