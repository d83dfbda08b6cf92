package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/content"
)

// SiteConfig holds the site-wide settings every template needs.
type SiteConfig struct {
	Name        string // FOLIO_NAME (defaults to the profile name)
	URL         string // FOLIO_URL  (default "http://localhost:3000")
	Description string // FOLIO_DESCRIPTION
	Author      string
}

// PageMeta carries OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
	Image       string // og:image
}

// Visibility maps a section id to whether it has been revealed for the
// current page view. Missing sections are hidden.
type Visibility map[string]bool

// FormView is everything the contact form partial needs to render.
type FormView struct {
	Values     contact.FormState
	Problems   *contact.ValidationError
	Notice     *contact.Notice
	Error      string
	Submitting bool
	CSRFToken  string
}

// FieldError returns the message for field, or "".
func (f FormView) FieldError(field contact.Field) string {
	if f.Problems == nil {
		return ""
	}
	return f.Problems.Message(field)
}

// PageData is the input to Page.
type PageData struct {
	Site     SiteConfig
	Meta     PageMeta
	Registry *content.Registry
	ViewID   string
	Visible  Visibility
	Form     FormView

	// Prerendered holds sections rendered ahead of time, keyed by id.
	// Page falls back to Section for the rest.
	Prerendered map[string]templ.Component
}
