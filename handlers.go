package folio

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/reveal"
	"github.com/eringen/folio/views"
)

// isPartial reports whether the request wants a fragment rather than the
// whole page.
func isPartial(c echo.Context) bool {
	h := c.Request().Header
	return h.Get("HX-Request") == "true" || h.Get("X-Folio-Partial") == "true"
}

func visibility(t *reveal.Tracker) views.Visibility {
	vis := views.Visibility{views.SectionHome: true}
	if t == nil {
		return vis
	}
	for _, s := range t.State() {
		vis[s.Section] = s.Visible
	}
	return vis
}

func (a *App) pageMeta() views.PageMeta {
	p := a.Registry.Profile
	title := a.Config.Name
	if len(p.Roles) > 0 {
		title += " | " + p.Roles[0]
	}
	return views.PageMeta{
		Title:       title,
		Description: a.Config.Description,
		URL:         views.SiteURL(a.Config.URL, ""),
		OGType:      "profile",
		Image:       views.SiteURL(a.Config.URL, "og.png"),
	}
}

func (a *App) pageData(t *reveal.Tracker, form views.FormView) views.PageData {
	d := views.PageData{
		Site:     a.siteConfig(),
		Meta:     a.pageMeta(),
		Registry: a.Registry,
		Visible:  visibility(t),
		Form:     form,
	}
	if t != nil {
		d.ViewID = t.ID
	}
	d.Prerendered = make(map[string]templ.Component, len(views.SectionOrder))
	for _, id := range views.SectionOrder {
		if id == views.SectionContact {
			continue
		}
		id, visible := id, d.Visible[id]
		d.Prerendered[id] = a.Sections.Component(id, visible, func() templ.Component {
			return views.Section(id, d)
		})
	}
	return d
}

// formView returns the visitor's current form for rendering.
func (a *App) formView(c echo.Context) (views.FormView, error) {
	id, err := VisitorID(c)
	if err != nil {
		return views.FormView{}, err
	}
	ctl := a.Desk.Controller(id)
	return views.FormView{
		Values:     ctl.Form(),
		Submitting: ctl.State() == contact.Submitting,
		CSRFToken:  CsrfToken(c),
	}, nil
}

func (a *App) handleHome(c echo.Context) error {
	if partial := c.QueryParam("partial"); partial != "" && isPartial(c) {
		return a.handleSection(c, partial)
	}
	form, err := a.formView(c)
	if err != nil {
		return err
	}
	return Render(c, views.Page(a.pageData(a.openView(c), form)))
}

// openView starts tracking a page view. Static exports have none: the
// page script then reveals sections without reporting them.
func (a *App) openView(c echo.Context) *reveal.Tracker {
	if a.staticExport {
		return nil
	}
	return a.Views.Open(!DoNotTrack(c))
}

// handleSection renders one section. The page view id, when given, picks
// the section's current visibility.
func (a *App) handleSection(c echo.Context, id string) error {
	if !views.KnownSection(id) {
		return echo.ErrNotFound
	}
	var t *reveal.Tracker
	if view := c.QueryParam("view"); view != "" {
		t, _ = a.Views.Get(view)
	}
	var form views.FormView
	if id == views.SectionContact {
		var err error
		if form, err = a.formView(c); err != nil {
			return err
		}
	}
	d := a.pageData(t, form)
	if id == views.SectionContact {
		return Render(c, views.Section(id, d))
	}
	html, err := a.Sections.Get(c.Request().Context(), id, d.Visible[id], func() templ.Component {
		return views.Section(id, d)
	})
	if err != nil {
		return err
	}
	return RenderHTML(c, http.StatusOK, html)
}

func (a *App) handleContactForm(c echo.Context) error {
	form, err := a.formView(c)
	if err != nil {
		return err
	}
	return Render(c, views.ContactForm(form))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		form, err := a.formView(c)
		if err != nil {
			return err
		}
		form.Error = "Too many messages. Please wait a minute and try again."
		return a.renderContact(c, http.StatusTooManyRequests, form)
	}

	id, err := VisitorID(c)
	if err != nil {
		return err
	}
	ctl := a.Desk.Controller(id)
	out := ctl.SubmitForm(c.Request().Context(), contact.FormState{
		Name:    c.FormValue(string(contact.FieldName)),
		Email:   c.FormValue(string(contact.FieldEmail)),
		Subject: c.FormValue(string(contact.FieldSubject)),
		Message: c.FormValue(string(contact.FieldMessage)),
	})

	form := views.FormView{
		Values:    out.Form,
		Notice:    out.Notice,
		Error:     contact.VisitorMessage(out.Err),
		CSRFToken: CsrfToken(c),
	}
	code := http.StatusOK
	var verr *contact.ValidationError
	switch {
	case out.OK():
	case errors.As(out.Err, &verr):
		form.Problems = verr
		code = http.StatusUnprocessableEntity
	case errors.Is(out.Err, contact.ErrBusy):
		form.Submitting = true
		code = http.StatusConflict
	case errors.Is(out.Err, contact.ErrTimeout):
		c.Logger().Warnf("contact: %v", out.Err)
		code = http.StatusGatewayTimeout
	default:
		c.Logger().Errorf("contact: %v", out.Err)
		code = http.StatusBadGateway
	}
	return a.renderContact(c, code, form)
}

// renderContact answers a submit with the form partial for script-driven
// posts, and with the whole page for plain form posts.
func (a *App) renderContact(c echo.Context, code int, form views.FormView) error {
	if isPartial(c) {
		return RenderStatus(c, code, views.ContactForm(form))
	}
	t := a.openView(c)
	if t != nil {
		// The visitor just used the form, so it is on screen.
		t.Observe(views.SectionContact, 1)
	}
	return RenderStatus(c, code, views.Page(a.pageData(t, form)))
}

func (a *App) handleCV(c echo.Context) error {
	link := a.Registry.Profile.CVLink
	if link == "" {
		return echo.ErrNotFound
	}
	return c.Redirect(http.StatusFound, link)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: "+
		views.SiteURL(a.Config.URL, "sitemap.xml")+"\n")
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"views":  a.Views.Len(),
		"forms":  a.Desk.Len(),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.siteConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
