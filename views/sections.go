package views

import (
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
)

// Section ids, in page order. They double as the #anchors.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionContact    = "contact"
)

// SectionOrder is the fixed composition order of the page.
var SectionOrder = []string{SectionHome, SectionAbout, SectionSkills, SectionExperience, SectionContact}

var navItems = []struct{ Label, Href string }{
	{"Home", "#home"},
	{"About", "#about"},
	{"Skills", "#skills"},
	{"Experience", "#experience"},
	{"Contact", "#contact"},
}

// SkillWidth returns the CSS width of a skill bar for level, clamped to
// 0..100.
func SkillWidth(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return strconv.Itoa(level) + "%"
}

// Navigation renders the fixed top bar with one anchor per section.
func Navigation(name string) templ.Component {
	return component(func(hw *writer) {
		hw.raw(`<nav class="nav" aria-label="Primary"><div class="container nav-inner">`)
		hw.raw(`<a href="#home" class="brand">`)
		hw.text(name)
		hw.raw(`</a><ul class="nav-links">`)
		for _, item := range navItems {
			hw.raw("<li>")
			hw.link(item.Href, "nav-link", false, func() { hw.text(item.Label) })
			hw.raw("</li>")
		}
		hw.raw(`</ul></div></nav>`)
	})
}

// Hero renders the landing section. It animates on load, so visible is
// normally true.
func Hero(p content.Profile, social []content.SocialLink, visible bool) templ.Component {
	return component(func(hw *writer) {
		hw.openSection(SectionHome, "hero hero-gradient", visible)
		hw.raw(`<div class="container hero-inner"><h1 class="hero-title">Hi, I&#39;m <span class="text-gradient">`)
		hw.text(p.Name)
		hw.raw(`</span></h1>`)

		first := ""
		if len(p.Roles) > 0 {
			first = p.Roles[0]
		}
		roles, err := json.Marshal(p.Roles)
		if err != nil {
			roles = []byte("[]")
		}
		hw.raw(`<p class="hero-roles"><span class="typewriter"`)
		hw.attr("data-roles", string(roles))
		hw.raw(">")
		hw.text(first)
		hw.raw(`</span></p>`)

		hw.raw(`<p class="hero-intro">`)
		hw.text(p.Intro)
		hw.raw(`</p><div class="hero-actions">`)
		if p.CVLink != "" {
			hw.raw(`<a class="button button-primary" download`)
			hw.attr("href", p.CVLink)
			hw.raw(">")
			hw.icon("download")
			hw.raw(` Download CV</a>`)
		}
		hw.raw(`<a class="button button-outline" href="#skills">View Projects</a></div>`)
		socialLinks(hw, social)
		hw.raw(`</div></section>`)
	})
}

func socialLinks(hw *writer, social []content.SocialLink) {
	hw.raw(`<ul class="social">`)
	for _, s := range social {
		hw.raw("<li>")
		hw.raw("<a")
		hw.attr("href", s.Link)
		hw.attr("class", "social-link")
		hw.attr("aria-label", s.Name)
		hw.attr("style", "--brand:"+s.Color)
		if s.External() {
			hw.raw(` target="_blank" rel="noopener noreferrer"`)
		}
		hw.raw(">")
		hw.icon(s.Icon)
		hw.raw("</a></li>")
	}
	hw.raw("</ul>")
}

// About renders the biography, education, highlights, stats and fun facts.
func About(p content.Profile, stats []content.StatEntry, highlights []content.HighlightEntry, visible bool) templ.Component {
	return component(func(hw *writer) {
		hw.openSection(SectionAbout, "section", visible)
		hw.raw(`<div class="container"><header class="section-header"><h2>About <span class="text-gradient">Me</span></h2><p class="lead">`)
		hw.text(p.Tagline)
		hw.raw(`</p></header><div class="grid two">`)

		hw.raw(`<div class="card"><h3 class="text-gradient">My Journey</h3>`)
		hw.child(markdown.Copy("bio", p.Bio...))
		hw.raw(`</div>`)

		hw.raw(`<div class="stack"><div class="card education"><h4 class="text-gradient">Education</h4><p class="strong">`)
		hw.text(p.Education.Degree)
		hw.raw(`</p><p class="muted">`)
		hw.text(p.Education.Institution)
		hw.raw(`</p><p class="muted small">`)
		hw.text(p.Education.Period)
		hw.raw(`</p></div>`)
		for _, h := range highlights {
			hw.raw(`<div class="card highlight">`)
			hw.icon(h.Icon)
			hw.raw(`<h4>`)
			hw.text(h.Title)
			hw.raw(`</h4><p class="muted small">`)
			hw.text(h.Description)
			hw.raw(`</p></div>`)
		}
		hw.raw(`</div></div>`)

		statGrid(hw, "stats", stats)

		if len(p.FunFacts) > 0 {
			hw.raw(`<div class="card fun-facts"><h3 class="text-gradient">Fun Facts</h3><ul>`)
			for _, f := range p.FunFacts {
				hw.raw("<li>")
				hw.text(f)
				hw.raw("</li>")
			}
			hw.raw(`</ul></div>`)
		}
		hw.raw(`</div></section>`)
	})
}

func statGrid(hw *writer, class string, stats []content.StatEntry) {
	hw.raw(`<dl class="stat-grid `, templ.EscapeString(class), `">`)
	for _, s := range stats {
		hw.raw(`<div class="stat">`)
		if s.Icon != "" {
			hw.icon(s.Icon)
		}
		hw.raw(`<dt class="stat-number">`)
		hw.text(s.Number)
		hw.raw(`</dt><dd class="stat-label">`)
		hw.text(s.Label)
		hw.raw(`</dd></div>`)
	}
	hw.raw(`</dl>`)
}

// TechStack renders the skill categories with proficiency bars followed by
// the featured projects.
func TechStack(categories []content.TechCategory, projects []content.FeaturedProject, visible bool) templ.Component {
	return component(func(hw *writer) {
		hw.openSection(SectionSkills, "section section-alt", visible)
		hw.raw(`<div class="container"><header class="section-header"><h2><span class="text-gradient">Tech Stack</span> &amp; Expertise</h2>`)
		hw.raw(`<p class="lead">Proficient in modern web technologies with a focus on creating scalable, performant, and user-friendly applications.</p></header>`)

		hw.raw(`<div class="grid three">`)
		for _, cat := range categories {
			hw.raw(`<div class="card category"><h3 class="text-gradient">`)
			hw.text(cat.Category)
			hw.raw(`</h3><ul class="skills">`)
			for _, t := range cat.Technologies {
				skillBar(hw, t)
			}
			hw.raw(`</ul></div>`)
		}
		hw.raw(`</div>`)

		hw.raw(`<header class="section-header sub"><h3>Featured Projects</h3><p class="muted">Showcase of recent work demonstrating technical expertise</p></header><div class="grid four">`)
		for _, p := range projects {
			hw.raw(`<article class="card project"`)
			hw.attr("id", p.Anchor())
			hw.raw(`><div class="project-emoji" aria-hidden="true">`)
			hw.text(p.Emoji)
			hw.raw(`</div><h4>`)
			hw.text(p.Title)
			hw.raw(`</h4><p class="muted small">`)
			hw.text(p.Description)
			hw.raw(`</p>`)
			tagList(hw, p.Technologies)
			hw.raw(`<p class="muted tiny">`)
			hw.text(p.Period)
			hw.raw(`</p></article>`)
		}
		hw.raw(`</div></div></section>`)
	})
}

func skillBar(hw *writer, t content.Technology) {
	width := SkillWidth(t.Level)
	hw.raw(`<li class="skill"><div class="skill-head"><span class="skill-name">`)
	hw.text(t.Icon)
	hw.raw(" ")
	hw.text(t.Name)
	hw.raw(`</span><span class="skill-level">`)
	hw.text(width)
	hw.raw(`</span></div><div class="skill-track" role="progressbar" aria-valuemin="0" aria-valuemax="100"`)
	hw.attr("aria-valuenow", strconv.Itoa(t.Level))
	hw.attr("aria-label", t.Name)
	hw.raw(`><div class="skill-fill"`)
	hw.attr("style", "--level:"+width+";--color:"+t.Color)
	hw.raw(`></div></div></li>`)
}

func tagList(hw *writer, tags []string) {
	if len(tags) == 0 {
		return
	}
	hw.raw(`<ul class="tags">`)
	for _, tag := range tags {
		hw.raw(`<li class="tag">`)
		hw.text(tag)
		hw.raw(`</li>`)
	}
	hw.raw(`</ul>`)
}

// Experience renders the work timeline, newest entry first as declared,
// followed by the experience summary figures.
func Experience(entries []content.ExperienceEntry, summary []content.StatEntry, visible bool) templ.Component {
	return component(func(hw *writer) {
		hw.openSection(SectionExperience, "section", visible)
		hw.raw(`<div class="container"><header class="section-header"><h2>Professional <span class="text-gradient">Experience</span></h2>`)
		hw.raw(`<p class="lead">3+ years of delivering exceptional web solutions as a freelance front-end developer, working with clients worldwide to bring their visions to life.</p></header>`)

		hw.raw(`<ol class="timeline">`)
		for _, e := range entries {
			status := "Completed"
			if e.Current() {
				status = "Current"
			}
			hw.raw(`<li class="timeline-item"`)
			hw.attr("data-status", string(e.Status))
			hw.raw(`><span class="timeline-dot" aria-hidden="true"></span><article class="card"><div class="entry-head"><span class="badge">`)
			hw.text(status)
			hw.raw(`</span><span class="muted small">`)
			hw.icon("calendar")
			hw.raw(" ")
			hw.text(e.Period)
			hw.raw(`</span></div><h3>`)
			hw.text(e.Title)
			hw.raw(`</h3><p class="entry-meta">`)
			hw.icon("briefcase")
			hw.raw(" ")
			hw.text(e.Company)
			hw.raw(` · `)
			hw.text(e.Location)
			hw.raw(` · `)
			hw.text(e.Type)
			hw.raw(`</p><p class="muted small">`)
			hw.text(e.Description)
			hw.raw(`</p>`)
			tagList(hw, e.Technologies)
			if len(e.Achievements) > 0 {
				hw.raw(`<ul class="achievements">`)
				for _, a := range e.Achievements {
					hw.raw("<li>")
					hw.text(a)
					hw.raw("</li>")
				}
				hw.raw(`</ul>`)
			}
			hw.raw(`</article></li>`)
		}
		hw.raw(`</ol>`)

		if len(summary) > 0 {
			hw.raw(`<div class="card summary"><h3 class="text-gradient">Experience Summary</h3>`)
			statGrid(hw, "summary-stats", summary)
			hw.raw(`</div>`)
		}
		hw.raw(`</div></section>`)
	})
}

// Contact renders the contact details, social links and the form.
func Contact(p content.Profile, info []content.ContactInfo, social []content.SocialLink, form FormView, visible bool) templ.Component {
	return component(func(hw *writer) {
		hw.openSection(SectionContact, "section section-alt", visible)
		hw.raw(`<div class="container"><header class="section-header"><h2>Let&#39;s Work <span class="text-gradient">Together</span></h2>`)
		hw.raw(`<p class="lead">Ready to bring your ideas to life? I&#39;m here to help you create amazing web experiences. Let&#39;s discuss your project and turn your vision into reality!</p></header>`)

		hw.raw(`<div class="grid two"><div class="stack"><div class="card"><h3 class="text-gradient">Get In Touch</h3><ul class="contact-info">`)
		for _, c := range info {
			hw.raw(`<li>`)
			hw.link(c.Link, "contact-item", c.External(), func() {
				hw.icon(c.Icon)
				hw.raw(`<span><span class="strong">`)
				hw.text(c.Label)
				hw.raw(`</span><span class="muted small">`)
				hw.text(c.Value)
				hw.raw(`</span></span>`)
			})
			hw.raw(`</li>`)
		}
		hw.raw(`</ul></div><div class="card"><h3 class="text-gradient">Connect With Me</h3>`)
		socialLinks(hw, social)
		hw.raw(`</div>`)
		if p.Availability != "" {
			hw.raw(`<div class="card availability"><span class="pulse" aria-hidden="true"></span><div><h4>Available for Freelance</h4><p class="muted small">`)
			hw.text(p.Availability)
			hw.raw(`</p></div></div>`)
		}
		hw.raw(`</div><div class="card"><h3 class="text-gradient">Send a Message</h3>`)
		hw.child(ContactForm(form))
		hw.raw(`</div></div>`)

		hw.raw(`<div class="card cta"><h3 class="text-gradient">Ready to Build Something Amazing?</h3><p class="muted">Whether you need a stunning website, web application, or want to discuss potential collaboration opportunities, I&#39;m here to help bring your ideas to life.</p>`)
		hw.raw(`<div class="cta-actions">`)
		if len(info) > 0 {
			hw.link(info[0].Link, "button button-primary", info[0].External(), func() {
				hw.icon("mail")
				hw.raw(` Start a Project`)
			})
		}
		if p.CVLink != "" {
			hw.raw(`<a class="button button-outline" download`)
			hw.attr("href", p.CVLink)
			hw.raw(`>Download Resume</a>`)
		}
		hw.raw(`</div></div></div></section>`)
	})
}

// Footer renders the copyright line.
func Footer(p content.Profile) templ.Component {
	return component(func(hw *writer) {
		hw.raw(`<footer class="footer"><div class="container"><p>`)
		hw.text(p.Copyright)
		hw.raw(`</p><p class="small muted">Built with ❤️ using Go, Echo and templ</p></div></footer>`)
	})
}
