// Package folio is a server-rendered single-page portfolio built with Go,
// Echo and templ. The page is composed from an immutable content registry;
// sections reveal as they scroll into view and a contact form delivers
// messages to a pluggable form backend.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/reveal"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the content
// registry, reveal tracking, the contact desk, middleware and handlers.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Registry *content.Registry
	Sections *SectionCache
	Views    *reveal.Views
	Stats    *reveal.Store
	Desk     *contact.Desk

	submitLimiter *SubmitLimiter
	sender        contact.Sender
	customRoutes  []func(*App)
	staticDir     string
	staticExport  bool
	stopCleanup   func()
	og            ogCard
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init loads content, opens the statistics store and sets up middleware
// and routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	if a.Registry == nil {
		reg, err := a.loadRegistry()
		if err != nil {
			return fmt.Errorf("folio: load content: %w", err)
		}
		a.Registry = reg
	}
	a.Config.fillFromProfile(a.Registry.Profile)

	onReveal := func(string) {}
	if !a.Config.StatsDisabled {
		store, err := reveal.NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("folio: init stats: %w", err)
		}
		a.Stats = store
		a.stopCleanup = store.StartCleanupScheduler(a.Config.StatsRetention, 24*time.Hour)
		onReveal = a.recordReveal
	}
	a.Views = reveal.NewViews(a.Config.ViewTTL, onReveal)

	if a.sender == nil {
		a.sender = a.defaultSender()
	}
	a.Desk = contact.NewDesk(a.sender, a.Config.ContactTimeout, a.Config.ViewTTL)
	a.submitLimiter = NewSubmitLimiter(a.Config.SubmitLimit, a.Config.SubmitWindow)
	a.Sections = NewSectionCache(a.Config.SectionCacheTTL)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and starts the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("folio: serving %s on %s", a.Config.Name, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) loadRegistry() (*content.Registry, error) {
	if a.Config.ContentPath == "" {
		return content.Default(), nil
	}
	return content.LoadFile(a.Config.ContentPath)
}

func (a *App) defaultSender() contact.Sender {
	if a.Config.ContactWebhook != "" {
		return contact.NewWebhookSender(a.Config.ContactWebhook, a.Config.ContactTimeout)
	}
	return contact.SimulatedSender{Delay: a.Config.SimulatedDelay}
}

func (a *App) recordReveal(section string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Stats.RecordReveal(ctx, section, time.Now()); err != nil {
		a.Echo.Logger.Errorf("reveal: record %s: %v", section, err)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded page assets, then the site's own static files.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/folio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/folio.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/og.png", a.handleOGImage)
	e.GET("/healthz", a.handleHealth)

	e.GET("/", a.handleHome)
	e.GET("/cv/", a.handleCV)
	e.GET("/contact/", a.handleContactForm)
	e.POST("/contact/", a.handleContactSubmit)

	reveal.NewHandler(a.Views).RegisterRoutes(e)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopCleanup != nil {
		a.stopCleanup()
		a.stopCleanup = nil
	}
	if a.Views != nil {
		a.Views.Close()
	}
	if a.Desk != nil {
		a.Desk.Close()
	}
	if a.submitLimiter != nil {
		a.submitLimiter.Close()
	}
	if a.Stats != nil {
		return a.Stats.Close()
	}
	return nil
}

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}
