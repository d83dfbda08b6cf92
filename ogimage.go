package folio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ogWidth  = 1200
	ogHeight = 630
	// Text is laid out at 1/ogScale resolution and scaled up, since the
	// built-in face is 7x13 pixels.
	ogScale = 5
)

var (
	ogFrom = color.RGBA{R: 0x1e, G: 0x1b, B: 0x4b, A: 0xff}
	ogTo   = color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}
)

// ogCard renders the OpenGraph image once and serves the cached bytes.
type ogCard struct {
	once sync.Once
	png  []byte
	err  error
}

func (o *ogCard) bytes(title, subtitle string) ([]byte, error) {
	o.once.Do(func() {
		o.png, o.err = renderOGImage(title, subtitle)
	})
	return o.png, o.err
}

// renderOGImage draws a gradient card with the owner's name and first role.
func renderOGImage(title, subtitle string) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	for y := 0; y < ogHeight; y++ {
		c := lerp(ogFrom, ogTo, float64(y)/float64(ogHeight-1))
		draw.Draw(canvas, image.Rect(0, y, ogWidth, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}

	small := image.NewRGBA(image.Rect(0, 0, ogWidth/ogScale, ogHeight/ogScale))
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: small, Src: image.NewUniform(color.White), Face: face}
	lineHeight := face.Metrics().Height.Ceil()

	lines := wrapText(title, (ogWidth/ogScale-16)/face.Advance)
	y := small.Bounds().Dy()/2 - lineHeight*len(lines)/2
	for _, line := range lines {
		y += lineHeight
		d.Dot = fixed.P(8, y)
		d.DrawString(line)
	}
	if subtitle != "" {
		d.Src = image.NewUniform(color.RGBA{R: 0xc7, G: 0xd2, B: 0xfe, A: 0xff})
		d.Dot = fixed.P(8, y+lineHeight+4)
		d.DrawString(subtitle)
	}

	draw.NearestNeighbor.Scale(canvas, canvas.Bounds(), small, small.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode og image: %w", err)
	}
	return buf.Bytes(), nil
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

// wrapText breaks s into lines of at most width characters, splitting on
// spaces where possible.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur string
	for _, field := range strings.Fields(s) {
		word := []rune(field)
		for len(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, string(word[:width]))
			word = word[width:]
		}
		switch {
		case cur == "":
			cur = string(word)
		case utf8.RuneCountInString(cur)+1+len(word) <= width:
			cur += " " + string(word)
		default:
			lines = append(lines, cur)
			cur = string(word)
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func (a *App) handleOGImage(c echo.Context) error {
	p := a.Registry.Profile
	subtitle := ""
	if len(p.Roles) > 0 {
		subtitle = p.Roles[0]
	}
	data, err := a.og.bytes(p.Name, subtitle)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", data)
}
