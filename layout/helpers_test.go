package layout

import (
	"io"

	"github.com/sirupsen/logrus"
)

// box creates a control with a preset size and no size policy.
func box(name string, w, h float64) *Control {
	c := NewControl(name)
	c.Rect = NewRect(0, 0, w, h)
	return c
}

func withPolicy(c *Control, x, y AxisPolicy) *Control {
	c.Hints.Size = &SizePolicy{Horizontal: x, Vertical: y}
	return c
}

func flowBox(name string, w, h float64, flow FlowLayout) *Control {
	c := box(name, w, h)
	flow.Enabled = true
	c.Hints.Flow = &flow
	return c
}

func linearBox(name string, w, h float64, linear LinearLayout) *Control {
	c := box(name, w, h)
	linear.Enabled = true
	c.Hints.Linear = &linear
	return c
}

func quietSystem(rtl bool) *System {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSystem(Options{RTL: rtl, Logger: log})
}

func xs(cs ...*Control) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = c.Rect.Position.X()
	}
	return out
}

func ys(cs ...*Control) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = c.Rect.Position.Y()
	}
	return out
}

// stubContent is text-like content whose height shrinks as width grows.
type stubContent struct {
	width float64
	area  float64
}

func (s stubContent) PreferredSize(constraint Vector2) Vector2 {
	if constraint.X() > 0 {
		return Vec2(s.width, s.area/constraint.X())
	}
	return Vec2(s.width, s.area/s.width)
}

func (s stubContent) HeightDependsOnWidth() bool { return true }
