package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

// Page renders the whole document: navigation, the five sections in fixed
// order, then the footer.
func Page(d PageData) templ.Component {
	return component(func(hw *writer) {
		hw.raw(`<!DOCTYPE html><html lang="en">`)
		head(hw, d.Site, d.Meta, d.Registry)
		hw.raw(`<body`)
		hw.attr("data-view", d.ViewID)
		hw.raw(`>`)
		hw.child(Navigation(d.Registry.Profile.Name))
		hw.raw(`<main>`)
		for _, id := range SectionOrder {
			if c, ok := d.Prerendered[id]; ok {
				hw.child(c)
				continue
			}
			hw.child(Section(id, d))
		}
		hw.raw(`</main>`)
		hw.child(Footer(d.Registry.Profile))
		hw.raw(`<script src="/public/folio.js" defer></script></body></html>`)
	})
}

// Section renders one page section by id. Unknown ids render nothing.
func Section(id string, d PageData) templ.Component {
	reg := d.Registry
	visible := d.Visible[id]
	switch id {
	case SectionHome:
		return Hero(reg.Profile, reg.Social, visible)
	case SectionAbout:
		return About(reg.Profile, reg.Stats, reg.Highlights, visible)
	case SectionSkills:
		return TechStack(reg.TechStack, reg.Projects, visible)
	case SectionExperience:
		return Experience(reg.Experience, reg.ExperienceSummary, visible)
	case SectionContact:
		return Contact(reg.Profile, reg.Contact, reg.Social, d.Form, visible)
	}
	return templ.NopComponent
}

// KnownSection reports whether id names a page section.
func KnownSection(id string) bool {
	for _, s := range SectionOrder {
		if s == id {
			return true
		}
	}
	return false
}

func head(hw *writer, site SiteConfig, meta PageMeta, reg *content.Registry) {
	hw.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	hw.raw(`<title>`)
	hw.text(meta.Title)
	hw.raw(`</title>`)
	metaTag(hw, "name", "description", meta.Description)
	hw.raw(`<link rel="canonical"`)
	hw.attr("href", meta.URL)
	hw.raw(`>`)
	metaTag(hw, "property", "og:type", meta.OGType)
	metaTag(hw, "property", "og:title", meta.Title)
	metaTag(hw, "property", "og:description", meta.Description)
	metaTag(hw, "property", "og:url", meta.URL)
	metaTag(hw, "property", "og:site_name", site.Name)
	if meta.Image != "" {
		metaTag(hw, "property", "og:image", meta.Image)
		metaTag(hw, "name", "twitter:card", "summary_large_image")
	}
	hw.raw(`<link rel="alternate" type="application/rss+xml" title="Featured projects" href="/feed.xml">`)
	hw.raw(`<link rel="stylesheet" href="/public/folio.css">`)
	hw.raw(`<script type="application/ld+json">`, WebsiteJsonLD(site), `</script>`)
	if reg != nil {
		hw.raw(`<script type="application/ld+json">`, PersonJsonLD(site, reg), `</script>`)
	}
	hw.raw(`</head>`)
}

func metaTag(hw *writer, key, name, value string) {
	if value == "" {
		return
	}
	hw.raw(`<meta`)
	hw.attr(key, name)
	hw.attr("content", value)
	hw.raw(`>`)
}

// NotFound renders the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return errorPage(site, "404", "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(site SiteConfig) templ.Component {
	return errorPage(site, "500", "Something went wrong", "Please try again in a moment.")
}

func errorPage(site SiteConfig, code, title, body string) templ.Component {
	return component(func(hw *writer) {
		hw.raw(`<!DOCTYPE html><html lang="en">`)
		head(hw, site, PageMeta{Title: title + " | " + site.Name, OGType: "website", URL: SiteURL(site.URL, "")}, nil)
		hw.raw(`<body><main class="error-page"><p class="error-code">`)
		hw.text(code)
		hw.raw(`</p><h1>`)
		hw.text(title)
		hw.raw(`</h1><p class="muted">`)
		hw.text(body)
		hw.raw(`</p><a class="button button-primary" href="/">Back home</a></main></body></html>`)
	})
}
