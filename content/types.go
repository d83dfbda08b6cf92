package content

import (
	"strings"
	"unicode"
)

// Status marks whether an experience entry is ongoing.
type Status string

const (
	StatusCurrent   Status = "current"
	StatusCompleted Status = "completed"
)

// Profile is the owner of the site: hero copy, bio and footer text.
type Profile struct {
	Name         string    `yaml:"name"`
	Roles        []string  `yaml:"roles"`
	Tagline      string    `yaml:"tagline"`
	Intro        string    `yaml:"intro"`
	Location     string    `yaml:"location"`
	Bio          []string  `yaml:"bio"`
	Education    Education `yaml:"education"`
	FunFacts     []string  `yaml:"fun_facts"`
	CVLink       string    `yaml:"cv_link"`
	Availability string    `yaml:"availability"`
	Copyright    string    `yaml:"copyright"`
}

type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
}

// StatEntry is a headline figure such as "50+ Projects Completed".
type StatEntry struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
	Icon   string `yaml:"icon"`
}

type HighlightEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// ContactInfo is one way of reaching the owner (email, phone, location).
type ContactInfo struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Link  string `yaml:"link"`
	Icon  string `yaml:"icon"`
}

// External reports whether the link leaves the site and should open in a new tab.
func (c ContactInfo) External() bool {
	return isExternal(c.Link)
}

type SocialLink struct {
	Name  string `yaml:"name"`
	Link  string `yaml:"link"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

// External reports whether the link leaves the site.
func (s SocialLink) External() bool {
	return isExternal(s.Link)
}

// ExperienceEntry is one engagement on the timeline. Technologies and
// Achievements are presentation copy and carried as opaque strings.
type ExperienceEntry struct {
	Period       string   `yaml:"period"`
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Type         string   `yaml:"type"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Achievements []string `yaml:"achievements"`
	Status       Status   `yaml:"status"`
}

// Current reports whether the engagement is ongoing.
func (e ExperienceEntry) Current() bool {
	return e.Status == StatusCurrent
}

// Technology is a skill with a presentational proficiency percentage.
type Technology struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

type TechCategory struct {
	Category     string       `yaml:"category"`
	Technologies []Technology `yaml:"technologies"`
}

type FeaturedProject struct {
	Title        string   `yaml:"title"`
	Technologies []string `yaml:"technologies"`
	Description  string   `yaml:"description"`
	Period       string   `yaml:"period"`
	Emoji        string   `yaml:"emoji"`
}

// Anchor is the fragment id of the project's card, e.g.
// "project-travel-booking-website".
func (p FeaturedProject) Anchor() string {
	words := strings.FieldsFunc(strings.ToLower(p.Title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return "project-" + strings.Join(words, "-")
}

// Registry is the full set of records that drive the page. It is built
// once by Load and never mutated afterwards.
type Registry struct {
	Profile           Profile           `yaml:"profile"`
	Stats             []StatEntry       `yaml:"stats"`
	Highlights        []HighlightEntry  `yaml:"highlights"`
	Contact           []ContactInfo     `yaml:"contact"`
	Social            []SocialLink      `yaml:"social"`
	Experience        []ExperienceEntry `yaml:"experience"`
	ExperienceSummary []StatEntry       `yaml:"experience_summary"`
	TechStack         []TechCategory    `yaml:"tech_stack"`
	Projects          []FeaturedProject `yaml:"projects"`
}

func isExternal(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}
