package models

import "time"

// SettingsID is the id of the single admin_settings document.
const SettingsID = "global"

type Branding struct {
	LogoURL      string `bson:"logo_url" json:"logo_url"`
	FaviconURL   string `bson:"favicon_url" json:"favicon_url"`
	PrimaryColor string `bson:"primary_color" json:"primary_color" binding:"omitempty,hexcolor"`
}

type SEOSettings struct {
	MetaTitle       string   `bson:"meta_title" json:"meta_title"`
	MetaDescription string   `bson:"meta_description" json:"meta_description"`
	MetaKeywords    []string `bson:"meta_keywords" json:"meta_keywords"`
	OGImageURL      string   `bson:"og_image_url" json:"og_image_url"`
}

type ContactSettings struct {
	Email   string `bson:"email" json:"email" binding:"omitempty,email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
	LineID  string `bson:"line_id" json:"line_id"`
}

type SocialLinks struct {
	Facebook  string `bson:"facebook" json:"facebook" binding:"omitempty,url"`
	Instagram string `bson:"instagram" json:"instagram" binding:"omitempty,url"`
	Twitter   string `bson:"twitter" json:"twitter" binding:"omitempty,url"`
	TikTok    string `bson:"tiktok" json:"tiktok" binding:"omitempty,url"`
	YouTube   string `bson:"youtube" json:"youtube" binding:"omitempty,url"`
	Line      string `bson:"line" json:"line" binding:"omitempty,url"`
}

type FooterSettings struct {
	ShowContact bool   `bson:"show_contact" json:"show_contact"`
	ShowSocial  bool   `bson:"show_social" json:"show_social"`
	Copyright   string `bson:"copyright" json:"copyright"`
}

// AdminSettings is the single-row site configuration.
type AdminSettings struct {
	ID              string          `bson:"id" json:"id"`
	SiteTitle       string          `bson:"site_title" json:"site_title"`
	SiteDescription string          `bson:"site_description" json:"site_description"`
	Branding        Branding        `bson:"branding" json:"branding"`
	SEO             SEOSettings     `bson:"seo" json:"seo"`
	Contact         ContactSettings `bson:"contact" json:"contact"`
	SocialLinks     SocialLinks     `bson:"social_links" json:"social_links"`
	Footer          FooterSettings  `bson:"footer" json:"footer"`
	MaintenanceMode bool            `bson:"maintenance_mode" json:"maintenance_mode"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updated_at"`
	UpdatedBy       string          `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// DefaultSettings is served when no row has been written yet.
func DefaultSettings() AdminSettings {
	return AdminSettings{
		ID:              SettingsID,
		SiteTitle:       "HireLoop",
		SiteDescription: "Find trusted assistants and companions.",
		SEO:             SEOSettings{MetaKeywords: []string{}},
		Footer:          FooterSettings{ShowContact: true, ShowSocial: true},
	}
}

// Clone returns a copy that shares no mutable state with s.
func (s AdminSettings) Clone() AdminSettings {
	out := s
	if s.SEO.MetaKeywords != nil {
		out.SEO.MetaKeywords = append([]string(nil), s.SEO.MetaKeywords...)
	}
	return out
}

// SettingsPatch carries the top-level keys present in a PATCH body. Nested
// objects replace their stored counterpart as a whole.
type SettingsPatch struct {
	SiteTitle       *string          `json:"site_title" binding:"omitempty,max=120"`
	SiteDescription *string          `json:"site_description" binding:"omitempty,max=500"`
	Branding        *Branding        `json:"branding"`
	SEO             *SEOSettings     `json:"seo"`
	Contact         *ContactSettings `json:"contact"`
	SocialLinks     *SocialLinks     `json:"social_links"`
	Footer          *FooterSettings  `json:"footer"`
	MaintenanceMode *bool            `json:"maintenance_mode"`
}

// Fields returns the stored keys the patch sets.
func (p SettingsPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.SiteTitle != nil {
		out["site_title"] = *p.SiteTitle
	}
	if p.SiteDescription != nil {
		out["site_description"] = *p.SiteDescription
	}
	if p.Branding != nil {
		out["branding"] = *p.Branding
	}
	if p.SEO != nil {
		seo := *p.SEO
		if seo.MetaKeywords == nil {
			seo.MetaKeywords = []string{}
		}
		out["seo"] = seo
	}
	if p.Contact != nil {
		out["contact"] = *p.Contact
	}
	if p.SocialLinks != nil {
		out["social_links"] = *p.SocialLinks
	}
	if p.Footer != nil {
		out["footer"] = *p.Footer
	}
	if p.MaintenanceMode != nil {
		out["maintenance_mode"] = *p.MaintenanceMode
	}
	return out
}
