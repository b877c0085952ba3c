package canvas

import (
	"github.com/gogpu/canvas/event"
	"github.com/gogpu/canvas/internal/textmeasure"
)

// DefaultFontSize is the font size of texts created without one.
const DefaultFontSize = 16

// Text is a block of text whose size follows its content. Lines are
// separated by '\n'.
type Text struct {
	Object

	text     string
	fontSize float64
	measurer *textmeasure.Measurer
}

// NewText creates a text set in the built-in Go Regular font at fontSize.
// A non-positive fontSize selects [DefaultFontSize]. Options apply after
// the text is measured, so an explicit WithSize wins.
func NewText(s string, fontSize float64, opts ...Option) (*Text, error) {
	m, err := textmeasure.Default()
	if err != nil {
		return nil, err
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	t := &Text{text: s, fontSize: fontSize, measurer: m}
	if err := t.measure(); err != nil {
		return nil, err
	}
	t.init(t, opts)
	return t, nil
}

// Text returns the content.
func (t *Text) Text() string { return t.text }

// FontSize returns the font size in pixels per em.
func (t *Text) FontSize() float64 { return t.fontSize }

// SetText replaces the content, resizes the box and fires [event.Changed],
// which relayouts the parent group as an in-progress modification.
func (t *Text) SetText(s string) error {
	prev := t.text
	t.text = s
	if err := t.measure(); err != nil {
		t.text = prev
		return err
	}
	t.SetCoords()
	t.Fire(event.Changed, &event.Event{Target: t, Data: prev})
	return nil
}

func (t *Text) measure() error {
	m, err := t.measurer.Measure(t.text, t.fontSize)
	if err != nil {
		return err
	}
	t.width, t.height = m.Width, m.Height
	t.dirty = true
	return nil
}
