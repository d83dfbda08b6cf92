package folio

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/content"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (defaults to the profile name)
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags and the feed
	Author      string // Author name for JSON-LD (defaults to the profile name)

	Addr        string // Listen address (default ":3000")
	ContentPath string // Optional YAML file replacing the embedded content

	StatsDisabled  bool          // Turn off reveal statistics
	DatabasePath   string        // Reveal statistics SQLite path (default "data/reveals.db")
	StatsRetention int           // Days of statistics to keep (default 365)
	ViewTTL        time.Duration // Idle page views are forgotten after this (default 30m)

	ContactWebhook string        // Form backend URL; empty simulates delivery
	ContactTimeout time.Duration // Per-submit deadline (default 10s)
	SimulatedDelay time.Duration // Delay of the simulated backend (default 2s)
	SubmitLimit    int           // Submissions per IP per SubmitWindow (default 5)
	SubmitWindow   time.Duration // (default 1m)

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	SectionCacheTTL time.Duration // Rendered section cache TTL (default 1h)
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/reveals.db"
	}
	if c.StatsRetention <= 0 {
		c.StatsRetention = 365
	}
	if c.ViewTTL <= 0 {
		c.ViewTTL = 30 * time.Minute
	}
	if c.ContactTimeout <= 0 {
		c.ContactTimeout = contact.DefaultTimeout
	}
	if c.SimulatedDelay <= 0 {
		c.SimulatedDelay = 2 * time.Second
	}
	if c.SubmitLimit <= 0 {
		c.SubmitLimit = 5
	}
	if c.SubmitWindow <= 0 {
		c.SubmitWindow = time.Minute
	}
	if c.SectionCacheTTL <= 0 {
		c.SectionCacheTTL = time.Hour
	}
}

// fillFromProfile names the site after its owner when nothing else is set.
func (c *SiteConfig) fillFromProfile(p content.Profile) {
	if c.Name == "" {
		c.Name = p.Name
	}
	if c.Author == "" {
		c.Author = p.Name
	}
	if c.Description == "" {
		c.Description = p.Intro
	}
}

// LoadConfig reads a SiteConfig from v. Keys are the snake_case field
// names; with env binding enabled FOLIO_CONTACT_WEBHOOK sets
// contact_webhook, and so on.
func LoadConfig(v *viper.Viper) SiteConfig {
	return SiteConfig{
		Name:            v.GetString("name"),
		URL:             v.GetString("url"),
		Description:     v.GetString("description"),
		Author:          v.GetString("author"),
		Addr:            v.GetString("addr"),
		ContentPath:     v.GetString("content_path"),
		StatsDisabled:   v.GetBool("stats_disabled"),
		DatabasePath:    v.GetString("database_path"),
		StatsRetention:  v.GetInt("stats_retention"),
		ViewTTL:         v.GetDuration("view_ttl"),
		ContactWebhook:  v.GetString("contact_webhook"),
		ContactTimeout:  v.GetDuration("contact_timeout"),
		SimulatedDelay:  v.GetDuration("simulated_delay"),
		SubmitLimit:     v.GetInt("submit_limit"),
		SubmitWindow:    v.GetDuration("submit_window"),
		SessionSecret:   v.GetString("session_secret"),
		CookieSecure:    v.GetBool("cookie_secure"),
		SectionCacheTTL: v.GetDuration("section_cache_ttl"),
	}
}

// BindEnv makes v read FOLIO_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for site-owned static assets such as
// the CV (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithStaticExport renders pages without a page view, for writing the site
// out as static files where the reveal endpoints are not served.
func WithStaticExport() Option {
	return func(a *App) {
		a.staticExport = true
	}
}

// WithRegistry replaces the content the site renders.
func WithRegistry(reg *content.Registry) Option {
	return func(a *App) {
		a.Registry = reg
	}
}

// WithSender replaces the form backend.
func WithSender(s contact.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}
