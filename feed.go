package folio

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        rssGUID  `xml:"guid"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// periodEnd parses the closing month of a period such as
// "Apr 2023 – May 2023". Open periods ("2022 - Present") have no end.
func periodEnd(period string) (time.Time, bool) {
	parts := strings.FieldsFunc(period, func(r rune) bool { return r == '–' || r == '-' })
	if len(parts) == 0 {
		return time.Time{}, false
	}
	t, err := time.Parse("Jan 2006", strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func buildFeed(cfg SiteConfig, projects []content.FeaturedProject) rssXML {
	items := make([]rssItem, 0, len(projects))
	for _, p := range projects {
		pubDate := ""
		if t, ok := periodEnd(p.Period); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        views.SiteURL(cfg.URL, "#skills"),
			Description: p.Description,
			Categories:  p.Technologies,
			PubDate:     pubDate,
			GUID:        rssGUID{Value: views.SiteURL(cfg.URL, "#"+p.Anchor())},
		})
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name + " | Featured Projects",
			Link:        views.SiteURL(cfg.URL, ""),
			Description: cfg.Description,
			Items:       items,
		},
	}
}

func (a *App) handleFeed(c echo.Context) error {
	feed := buildFeed(a.Config, a.Registry.Projects)
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
