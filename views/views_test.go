package views

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/content"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

// assertOrder fails unless every needle appears in html, in order.
func assertOrder(t *testing.T, html string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		i := strings.Index(html[pos:], n)
		if i < 0 {
			t.Fatalf("%q not found after offset %d", n, pos)
		}
		pos += i + len(n)
	}
}

func pageData() PageData {
	return PageData{
		Site:     SiteConfig{Name: "Folio", URL: "http://localhost:3000"},
		Meta:     PageMeta{Title: "Folio", URL: "http://localhost:3000/", OGType: "profile"},
		Registry: content.Default(),
		ViewID:   "view-1",
		Visible:  Visibility{SectionHome: true},
	}
}

func TestSkillWidth(t *testing.T) {
	for level := 0; level <= 100; level++ {
		want := fmt.Sprintf("%d%%", level)
		if got := SkillWidth(level); got != want {
			t.Fatalf("SkillWidth(%d) = %q, want %q", level, got, want)
		}
	}
	if got := SkillWidth(85); got != "85%" {
		t.Errorf("SkillWidth(85) = %q, want 85%%", got)
	}
	if got := SkillWidth(-5); got != "0%" {
		t.Errorf("SkillWidth(-5) = %q, want 0%%", got)
	}
	if got := SkillWidth(140); got != "100%" {
		t.Errorf("SkillWidth(140) = %q, want 100%%", got)
	}
}

func TestPageComposesSectionsInFixedOrder(t *testing.T) {
	html := render(t, Page(pageData()))
	assertOrder(t, html,
		`<nav class="nav"`,
		`id="home"`,
		`id="about"`,
		`id="skills"`,
		`id="experience"`,
		`id="contact"`,
		`<footer`,
	)
	for _, anchor := range []string{"#home", "#about", "#skills", "#experience", "#contact"} {
		if !strings.Contains(html, `href="`+anchor+`"`) {
			t.Errorf("navigation missing %s", anchor)
		}
	}
	if !strings.Contains(html, `data-view="view-1"`) {
		t.Error("page should carry the view id")
	}
}

func TestPageVisibilityFlags(t *testing.T) {
	html := render(t, Page(pageData()))
	if !strings.Contains(html, `data-reveal="home" data-visible="true"`) {
		t.Error("hero should be visible on load")
	}
	for _, id := range []string{SectionAbout, SectionSkills, SectionExperience, SectionContact} {
		if !strings.Contains(html, `data-reveal="`+id+`" data-visible="false"`) {
			t.Errorf("section %s should start hidden", id)
		}
	}

	d := pageData()
	d.Visible[SectionSkills] = true
	html = render(t, Section(SectionSkills, d))
	if !strings.Contains(html, `data-visible="true"`) {
		t.Error("revealed section should render visible")
	}
}

func TestRenderOrderMatchesDeclarationOrder(t *testing.T) {
	reg := content.Default()

	html := render(t, Experience(reg.Experience, reg.ExperienceSummary, false))
	var titles []string
	for _, e := range reg.Experience {
		titles = append(titles, "<h3>"+templ.EscapeString(e.Title)+"</h3>")
	}
	assertOrder(t, html, titles...)

	html = render(t, TechStack(reg.TechStack, reg.Projects, false))
	var needles []string
	for _, cat := range reg.TechStack {
		needles = append(needles, templ.EscapeString(cat.Category))
		for _, tech := range cat.Technologies {
			needles = append(needles, `aria-label="`+templ.EscapeString(tech.Name)+`"`)
		}
	}
	for _, p := range reg.Projects {
		needles = append(needles, "<h4>"+templ.EscapeString(p.Title)+"</h4>")
	}
	assertOrder(t, html, needles...)

	html = render(t, About(reg.Profile, reg.Stats, reg.Highlights, false))
	needles = needles[:0]
	for _, h := range reg.Highlights {
		needles = append(needles, templ.EscapeString(h.Title))
	}
	for _, s := range reg.Stats {
		needles = append(needles, templ.EscapeString(s.Label))
	}
	assertOrder(t, html, needles...)
}

func TestSkillBarWidth(t *testing.T) {
	cats := []content.TechCategory{{
		Category:     "Frontend",
		Technologies: []content.Technology{{Name: "React.js", Level: 85, Color: "#61dafb"}},
	}}
	html := render(t, TechStack(cats, nil, true))
	if !strings.Contains(html, `style="--level:85%;--color:#61dafb"`) {
		t.Errorf("skill bar should be 85%% wide: %s", html)
	}
	if !strings.Contains(html, `aria-valuenow="85"`) {
		t.Error("skill bar should expose its level")
	}
}

func TestExperienceStatusBadge(t *testing.T) {
	entries := []content.ExperienceEntry{
		{Title: "Now", Status: content.StatusCurrent},
		{Title: "Then", Status: content.StatusCompleted},
	}
	html := render(t, Experience(entries, nil, true))
	assertOrder(t, html, `data-status="current"`, "Current", "<h3>Now</h3>", `data-status="completed"`, "Completed", "<h3>Then</h3>")
	if strings.Contains(html, "Experience Summary") {
		t.Error("summary should be omitted when empty")
	}
}

func TestOutboundLinks(t *testing.T) {
	reg := content.Default()
	html := render(t, Contact(reg.Profile, reg.Contact, reg.Social, FormView{}, true))
	if !strings.Contains(html, `href="mailto:malahimaamir@gmail.com" class="contact-item">`) {
		t.Error("mailto link should not open a new tab")
	}
	if !strings.Contains(html, `href="tel:+923453694452" class="contact-item">`) {
		t.Error("tel link should not open a new tab")
	}
	if !strings.Contains(html, `href="https://github.com/malahimaamir" class="social-link" aria-label="GitHub" style="--brand:#333" target="_blank" rel="noopener noreferrer"`) {
		t.Error("external social link should open in a new tab")
	}
}

func TestContactFormPartial(t *testing.T) {
	f := FormView{
		Values: contact.FormState{Name: "A", Email: "bad", Subject: "", Message: "<b>hi</b>"},
		Problems: &contact.ValidationError{Problems: []contact.FieldProblem{
			{Field: contact.FieldEmail, Message: "Please enter a valid email address."},
			{Field: contact.FieldSubject, Message: "This field is required."},
		}},
		Error:     "Please fix the highlighted fields and try again.",
		CSRFToken: "tok",
	}
	html := render(t, ContactForm(f))
	for _, want := range []string{
		`name="_csrf" value="tok"`,
		`name="name" type="text" placeholder="Your full name" value="A"`,
		`Please enter a valid email address.`,
		`This field is required.`,
		`&lt;b&gt;hi&lt;/b&gt;</textarea>`,
		`role="alert"`,
		`Send Message`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("form missing %q", want)
		}
	}
	if strings.Contains(html, `class="toast"`) {
		t.Error("no toast without a notice")
	}
	if strings.Count(html, "field-invalid") != 2 {
		t.Errorf("expected 2 invalid fields, got %d", strings.Count(html, "field-invalid"))
	}
}

func TestContactFormSuccessShowsOneToast(t *testing.T) {
	n := contact.SuccessNotice
	html := render(t, ContactForm(FormView{Notice: &n}))
	if strings.Count(html, `class="toast"`) != 1 {
		t.Fatalf("expected exactly one toast: %s", html)
	}
	if !strings.Contains(html, "Message Sent Successfully!") {
		t.Error("toast missing title")
	}
	if !strings.Contains(html, `name="email" type="email" placeholder="your.email@example.com" value=""`) {
		t.Error("fields should render empty after success")
	}
}

func TestContactFormSubmitting(t *testing.T) {
	html := render(t, ContactForm(FormView{Submitting: true}))
	if !strings.Contains(html, "disabled") || !strings.Contains(html, "Sending...") {
		t.Errorf("submitting form should disable the button: %s", html)
	}
}

func TestPersonJsonLD(t *testing.T) {
	reg := content.Default()
	raw := PersonJsonLD(SiteConfig{URL: "https://example.com"}, reg)
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if data["@type"] != "Person" || data["name"] != reg.Profile.Name {
		t.Errorf("unexpected person block: %v", data)
	}
	if data["email"] != "malahimaamir@gmail.com" {
		t.Errorf("email = %v", data["email"])
	}
	if sameAs, ok := data["sameAs"].([]interface{}); !ok || len(sameAs) != len(reg.Social) {
		t.Errorf("sameAs = %v", data["sameAs"])
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	raw := WebsiteJsonLD(SiteConfig{Name: "Folio", URL: "https://example.com", Author: "A"})
	for _, want := range []string{`"@type":"WebSite"`, `"url":"https://example.com/"`, `"author":{"@type":"Person","name":"A"}`} {
		if !strings.Contains(raw, want) {
			t.Errorf("WebsiteJsonLD missing %s: %s", want, raw)
		}
	}
}

func TestSectionUnknown(t *testing.T) {
	if html := render(t, Section("nope", pageData())); html != "" {
		t.Errorf("unknown section rendered %q", html)
	}
	if KnownSection("nope") || !KnownSection(SectionContact) {
		t.Error("KnownSection mismatch")
	}
}

func TestSiteURL(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://folio.example", "", "https://folio.example/"},
		{"https://folio.example/", "sitemap.xml", "https://folio.example/sitemap.xml"},
		{"https://folio.example/me", "og.png", "https://folio.example/me/og.png"},
		{"https://folio.example", "#project-a", "https://folio.example/#project-a"},
	}
	for _, tt := range tests {
		if got := SiteURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("SiteURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

func TestProjectAnchors(t *testing.T) {
	reg := content.Default()
	html := render(t, TechStack(reg.TechStack, reg.Projects, true))
	for _, p := range reg.Projects {
		if !strings.Contains(html, `id="`+p.Anchor()+`"`) {
			t.Errorf("project %q has no anchor", p.Title)
		}
	}
}
