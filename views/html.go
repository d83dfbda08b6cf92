package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// writer streams markup to w and remembers the first write error so the
// section renderers can be written without an error check per element.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (hw *writer) raw(parts ...string) {
	for _, p := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, p)
	}
}

func (hw *writer) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *writer) attr(name, value string) {
	hw.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (hw *writer) child(c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

// openSection writes a <section> with the reveal attributes shared by every
// page section.
func (hw *writer) openSection(id, class string, visible bool) {
	hw.raw("<section")
	hw.attr("id", id)
	hw.attr("class", class)
	hw.attr("data-reveal", id)
	hw.attr("data-visible", strconv.FormatBool(visible))
	hw.raw(">")
}

// link writes an anchor. External links open in a new tab.
func (hw *writer) link(href, class string, external bool, body func()) {
	hw.raw("<a")
	hw.attr("href", href)
	if class != "" {
		hw.attr("class", class)
	}
	if external {
		hw.raw(` target="_blank" rel="noopener noreferrer"`)
	}
	hw.raw(">")
	body()
	hw.raw("</a>")
}

func (hw *writer) icon(name string) {
	hw.raw(`<span class="icon"`)
	hw.attr("data-icon", name)
	hw.raw(` aria-hidden="true">`, iconGlyph(name), "</span>")
}

func component(fn func(hw *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &writer{ctx: ctx, w: w}
		fn(hw)
		return hw.err
	})
}

var glyphs = map[string]string{
	"mail":          "✉",
	"phone":         "☎",
	"map-pin":       "📍",
	"github":        "⌥",
	"linkedin":      "in",
	"external-link": "↗",
	"award":         "🏆",
	"rocket":        "🚀",
	"users":         "👥",
	"globe":         "🌐",
	"code":          "⟨/⟩",
	"palette":       "🎨",
	"briefcase":     "💼",
	"calendar":      "📅",
	"download":      "⬇",
}

func iconGlyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "•"
}
