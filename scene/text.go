package scene

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/bidi"

	"github.com/ByLCY/vellum/layout"
)

// Typesetter 负责文本测量与换行，所有尺寸均为 px。
// maxWidth <= 0 表示不限制宽度，仅按显式换行拆分。
type Typesetter interface {
	LayoutLines(content string, maxWidth float64, font FontSpec) ([]TextLine, error)
}

// TextLine 是排版后的一行文本。
type TextLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Text is control content made of a single run of text in one font.
type Text struct {
	content string
	font    FontSpec
	color   string
	wrap    bool

	typesetter Typesetter
	log        logrus.FieldLogger
}

var (
	_ layout.Content = (*Text)(nil)
	_ layout.Texter  = (*Text)(nil)
)

// Text returns the interpolated content.
func (t *Text) Text() string { return t.content }

// Font returns the font the text is measured with.
func (t *Text) Font() FontSpec { return t.font }

// Color returns the text color as #rrggbb.
func (t *Text) Color() string { return t.color }

// HeightDependsOnWidth is true for wrapping text.
func (t *Text) HeightDependsOnWidth() bool { return t.wrap }

// PreferredSize measures the text. A positive constraint width wraps the
// text to it.
func (t *Text) PreferredSize(constraint layout.Vector2) layout.Vector2 {
	maxWidth := 0.0
	if t.wrap && constraint.X() > 0 {
		maxWidth = constraint.X()
	}
	lines := t.Lines(maxWidth)
	var size layout.Vector2
	for _, ln := range lines {
		size[layout.AxisX] = max(size[layout.AxisX], ln.Width)
		size[layout.AxisY] += ln.Height
	}
	return size
}

// Lines lays the text out for the given width.
func (t *Text) Lines(maxWidth float64) []TextLine {
	if !t.wrap {
		maxWidth = 0
	}
	lines, err := t.typesetter.LayoutLines(t.content, maxWidth, t.font)
	if err != nil {
		t.log.WithError(err).WithField("font", t.font.Name).Warn("文本排版失败")
		return nil
	}
	return lines
}

// DetectDirection returns the direction of the first strong character of s.
func DetectDirection(s string) layout.Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return layout.DirectionLTR
		case bidi.R, bidi.AL:
			return layout.DirectionRTL
		}
	}
	return layout.DirectionNeutral
}
