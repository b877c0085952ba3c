// Package textmeasure computes the box occupied by a block of text.
//
// Widths come from HarfBuzz shaping via go-text/typesetting, so kerning and
// ligatures are accounted for. Line heights come from the font's vertical
// metrics as reported by golang.org/x/image.
package textmeasure

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// ErrEmptyFontData is returned when New receives no font bytes.
var ErrEmptyFontData = errors.New("textmeasure: empty font data")

// Metrics is the measured box of a text block.
type Metrics struct {
	// Width is the advance of the widest line.
	Width float64
	// Height is LineHeight times Lines.
	Height float64
	// LineHeight is the distance between consecutive baselines.
	LineHeight float64
	// Lines is the number of lines, at least 1.
	Lines int
}

// Measurer measures text set in a single font.
//
// Measurer is safe for concurrent use. The parsed fonts are read-only;
// go-text faces and shapers, which are not, are created or pooled per call.
type Measurer struct {
	shaperPool sync.Pool

	shapingFont *font.Font
	metricsFont *opentype.Font
}

// New parses data, a TrueType or OpenType font, and returns a Measurer
// for it.
func New(data []byte) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font for shaping: %w", err)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font metrics: %w", err)
	}
	return &Measurer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		shapingFont: face.Font,
		metricsFont: otf,
	}, nil
}

var defaultMeasurer = sync.OnceValues(func() (*Measurer, error) {
	return New(goregular.TTF)
})

// Default returns a shared Measurer for the Go Regular font.
func Default() (*Measurer, error) {
	return defaultMeasurer()
}

// Measure returns the box of text set at size pixels per em. Lines are
// separated by '\n'.
func (m *Measurer) Measure(text string, size float64) (Metrics, error) {
	if size <= 0 {
		return Metrics{}, fmt.Errorf("textmeasure: invalid font size %g", size)
	}
	lineHeight, err := m.LineHeight(size)
	if err != nil {
		return Metrics{}, err
	}

	lines := strings.Split(text, "\n")
	var width float64
	for _, line := range lines {
		width = max(width, m.lineWidth(line, size))
	}
	return Metrics{
		Width:      width,
		Height:     lineHeight * float64(len(lines)),
		LineHeight: lineHeight,
		Lines:      len(lines),
	}, nil
}

// LineHeight returns the recommended baseline-to-baseline distance at
// size pixels per em.
func (m *Measurer) LineHeight(size float64) (float64, error) {
	var buf sfnt.Buffer
	metrics, err := m.metricsFont.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("textmeasure: font metrics: %w", err)
	}
	h := fixedToFloat(metrics.Height)
	if h <= 0 {
		h = fixedToFloat(metrics.Ascent + metrics.Descent)
	}
	return h, nil
}

func (m *Measurer) lineWidth(line string, size float64) float64 {
	runes := []rune(strings.TrimSuffix(line, "\r"))
	if len(runes) == 0 {
		return 0
	}

	// font.Face is not safe for concurrent use.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: direction(string(runes)),
		Face:      font.NewFace(m.shapingFont),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	if adv < 0 {
		adv = -adv
	}
	return fixedToFloat(adv)
}

// direction returns the direction of the first bidi run of s.
func direction(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
