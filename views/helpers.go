package views

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/eringen/folio/content"
)

// SiteURL resolves ref against the site's canonical base URL. The base is
// treated as a directory: "https://x.dev/me" and "og.png" give
// "https://x.dev/me/og.png". An empty ref yields the base itself.
func SiteURL(base, ref string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + ref
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	r, err := url.Parse(ref)
	if err != nil {
		return u.String()
	}
	return u.ResolveReference(r).String()
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      SiteURL(cfg.URL, ""),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// PersonJsonLD produces a Schema.org Person block for the site owner. Only
// external social links are listed under sameAs.
func PersonJsonLD(cfg SiteConfig, reg *content.Registry) string {
	p := reg.Profile
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"url":      SiteURL(cfg.URL, ""),
	}
	if len(p.Roles) > 0 {
		data["jobTitle"] = p.Roles[0]
	}
	if p.Intro != "" {
		data["description"] = p.Intro
	}
	if p.Location != "" {
		data["address"] = map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": p.Location,
		}
	}
	if p.Education.Institution != "" {
		data["alumniOf"] = map[string]string{
			"@type": "CollegeOrUniversity",
			"name":  p.Education.Institution,
		}
	}
	for _, c := range reg.Contact {
		if strings.HasPrefix(c.Link, "mailto:") {
			data["email"] = strings.TrimPrefix(c.Link, "mailto:")
		}
	}
	var sameAs []string
	for _, s := range reg.Social {
		if s.External() {
			sameAs = append(sameAs, s.Link)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	var skills []string
	for _, cat := range reg.TechStack {
		for _, t := range cat.Technologies {
			skills = append(skills, t.Name)
		}
	}
	if len(skills) > 0 {
		data["knowsAbout"] = skills
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
