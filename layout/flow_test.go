package layout

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_WrapsIntoLines(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{HorizontalPadding: 5, HorizontalSpacing: 10})
	a, b, c := box("a", 40, 20), box("b", 40, 20), box("c", 40, 20)
	root.AddChild(a, b, c)

	quietSystem(false).Apply(root, false)

	// hint-less children are neutral, so each line is laid out reversed
	assert.Equal(t, []float64{55, 5, 5}, xs(a, b, c))
	assert.Equal(t, []float64{0, 0, 20}, ys(a, b, c))
}

func TestFlow_ForcedBreaks(t *testing.T) {
	for _, name := range []string{"before", "after"} {
		t.Run(name, func(t *testing.T) {
			root := flowBox("root", 100, 100, FlowLayout{HorizontalPadding: 5, HorizontalSpacing: 10, VerticalSpacing: 4})
			a, b, c := box("a", 20, 20), box("b", 20, 20), box("c", 20, 20)
			if name == "before" {
				b.Hints.FlowItem = &FlowHint{NewLineBefore: true}
			} else {
				a.Hints.FlowItem = &FlowHint{NewLineAfter: true}
			}
			root.AddChild(a, b, c)

			quietSystem(false).Apply(root, false)

			assert.Equal(t, []float64{5, 35, 5}, xs(a, b, c))
			assert.Equal(t, []float64{0, 24, 24}, ys(a, b, c))
		})
	}
}

func TestFlow_OversizedChildGetsOwnLine(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{HorizontalPadding: 5, HorizontalSpacing: 10})
	wide, small := box("wide", 150, 30), box("small", 40, 20)
	root.AddChild(wide, small)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, []float64{5, 5}, xs(wide, small))
	assert.Equal(t, []float64{0, 30}, ys(wide, small))
}

func TestFlow_SkipsInvisibleAndIgnored(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{HorizontalSpacing: 10, SkipInvisible: true})
	a, b := box("a", 40, 20), box("b", 40, 20)
	hidden := box("hidden", 40, 20)
	hidden.Rect.Position = Vec2(3, 3)
	hidden.Visible = false
	free := box("free", 10, 10)
	free.Hints.IgnoreLayout = true
	free.Hints.Anchor = &AnchorHint{Left: At(7), Bottom: At(0)}
	root.AddChild(hidden, a, free, b)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, []float64{50, 0}, xs(a, b))
	assert.Equal(t, Vec2(3, 3), hidden.Rect.Position)
	assert.Equal(t, Vec2(7, 90), free.Rect.Position)
}

func TestFlow_InverseWhenRTL(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{HorizontalPadding: 5, HorizontalSpacing: 10, UseRTL: true})
	a, b := box("a", 40, 20), box("b", 40, 20)
	root.AddChild(a, b)

	quietSystem(true).Apply(root, false)
	assert.Equal(t, []float64{5, 55}, xs(a, b))

	// inverse flips back under RTL
	root.Hints.Flow.Inverse = true
	quietSystem(true).Apply(root, false)
	assert.Equal(t, []float64{55, 5}, xs(a, b))
}

func TestFlow_DynamicHorizontalPadding(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{HorizontalSpacing: 10, DynamicHorizontalPadding: true})
	a, b := box("a", 20, 20), box("b", 20, 20)
	root.AddChild(a, b)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, []float64{55, 25}, xs(a, b))
}

func TestFlow_DynamicInLineSpacing(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{HorizontalPadding: 5, DynamicHorizontalSpacing: true})
	a, b, c := box("a", 20, 20), box("b", 20, 20), box("c", 20, 20)
	root.AddChild(a, b, c)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, []float64{75, 40, 5}, xs(a, b, c))
	assert.InDelta(t, 95.0, a.Rect.Position.X()+a.Rect.Size.X(), 1e-9)
}

func TestFlow_DynamicInLinePaddingAndSpacing(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{
		DynamicHorizontalInLinePadding: true,
		DynamicHorizontalSpacing:       true,
	})
	a, b := box("a", 20, 20), box("b", 20, 20)
	root.AddChild(a, b)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, []float64{60, 20}, xs(a, b))
}

func TestFlow_DynamicVertical(t *testing.T) {
	tests := map[string]struct {
		flow FlowLayout
		want []float64
	}{
		"padding": {FlowLayout{DynamicVerticalPadding: true}, []float64{30, 50}},
		"spacing": {FlowLayout{DynamicVerticalSpacing: true}, []float64{0, 80}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := flowBox("root", 100, 100, tt.flow)
			a, b := box("a", 20, 20), box("b", 20, 20)
			b.Hints.FlowItem = &FlowHint{NewLineBefore: true}
			root.AddChild(a, b)

			quietSystem(false).Apply(root, false)

			assert.Equal(t, tt.want, ys(a, b))
		})
	}
}

func TestFlow_LineBandAnchorsAndPercent(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{})
	tall := box("tall", 40, 40)
	mid := box("mid", 20, 20)
	mid.Hints.Anchor = &AnchorHint{VCenter: At(0)}
	low := box("low", 20, 20)
	low.Hints.Anchor = &AnchorHint{Bottom: At(0)}
	half := withPolicy(box("half", 20, 0), NewAxisPolicy(PolicyIgnore, 100), NewAxisPolicy(PolicyPercentOfParent, 50))
	root.AddChild(tall, mid, low, half)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, []float64{60, 40, 20, 0}, xs(tall, mid, low, half))
	assert.Equal(t, []float64{0, 10, 20, 0}, ys(tall, mid, low, half))
	assert.Equal(t, 20.0, half.Rect.Size.Y())
	assert.Equal(t, 20.0, low.Rect.Size.Y(), "restricted anchors never resize")
}

func TestFlow_PercentOfParentWidthInsidePadding(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{HorizontalPadding: 10})
	half := withPolicy(box("half", 0, 10), NewAxisPolicy(PolicyPercentOfParent, 50), NewAxisPolicy(PolicyIgnore, 100))
	root.AddChild(half)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, 40.0, half.Rect.Size.X())
	assert.Equal(t, 10.0, half.Rect.Position.X())
}

func TestFlow_BidiReorderKeepsLogicalLineEnd(t *testing.T) {
	root := flowBox("root", 100, 100, FlowLayout{})
	a, b, c, d := box("a", 20, 20), box("b", 20, 20), box("c", 20, 20), box("d", 20, 20)
	a.Hints.FlowItem = &FlowHint{ContentDirection: DirectionLTR}
	b.Hints.FlowItem = &FlowHint{ContentDirection: DirectionRTL}
	c.Hints.FlowItem = &FlowHint{ContentDirection: DirectionRTL}
	d.Hints.FlowItem = &FlowHint{NewLineBefore: true}
	root.AddChild(a, b, c, d)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, []float64{40, 20, 0, 0}, xs(a, b, c, d))
	assert.Equal(t, []float64{0, 0, 0, 20}, ys(a, b, c, d))
}

func TestFlow_MeasureChildrenSum(t *testing.T) {
	flow := FlowLayout{HorizontalPadding: 5, VerticalPadding: 5, HorizontalSpacing: 10, VerticalSpacing: 4}

	t.Run("vertical sums lines", func(t *testing.T) {
		root := withPolicy(flowBox("root", 0, 0, flow),
			NewAxisPolicy(PolicyFixed, 100), NewAxisPolicy(PolicyPercentOfChildrenSum, 100))
		a, b, c := box("a", 40, 20), box("b", 40, 30), box("c", 40, 10)
		root.AddChild(a, b, c)

		quietSystem(false).Apply(root, false)

		assert.Equal(t, 54.0, root.Rect.Size.Y())
		assert.Equal(t, []float64{5, 5, 39}, ys(a, b, c))
	})

	t.Run("horizontal sums children and spacing", func(t *testing.T) {
		root := withPolicy(flowBox("root", 0, 0, flow),
			NewAxisPolicy(PolicyPercentOfChildrenSum, 100), NewAxisPolicy(PolicyFixed, 50))
		a, b, c := box("a", 40, 20), box("b", 40, 20), box("c", 40, 20)
		root.AddChild(a, b, c)

		quietSystem(false).Apply(root, false)

		assert.Equal(t, 150.0, root.Rect.Size.X())
		assert.Equal(t, []float64{105, 55, 5}, xs(a, b, c))
		assert.Equal(t, []float64{5, 5, 5}, ys(a, b, c))
	})
}

// Every line with more than one child fits inside the container, and a line
// of neutral children runs against logical order.
func TestFlow_LinesFit(t *testing.T) {
	const (
		width   = 100.0
		padding = 5.0
		spacing = 10.0
	)
	r := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		root := flowBox("root", width, 1000, FlowLayout{HorizontalPadding: padding, HorizontalSpacing: spacing})
		var children []*Control
		for i := 0; i < 12; i++ {
			c := box("c", 5+r.Float64()*80, 10)
			children = append(children, c)
			root.AddChild(c)
		}

		quietSystem(false).Apply(root, false)

		lines := map[float64][]*Control{}
		for _, c := range children {
			y := c.Rect.Position.Y()
			lines[y] = append(lines[y], c)
		}
		var keys []float64
		for y := range lines {
			keys = append(keys, y)
		}
		sort.Float64s(keys)

		total := 0
		for _, y := range keys {
			ln := lines[y]
			total += len(ln)
			used := padding * 2
			for i, c := range ln {
				used += c.Rect.Size.X()
				if i > 0 {
					used += spacing
					require.Less(t, c.Rect.Position.X(), ln[i-1].Rect.Position.X())
				}
			}
			if len(ln) > 1 {
				assert.LessOrEqual(t, used, width+epsilon, "round %d line y=%g", round, y)
			}
		}
		assert.Equal(t, len(children), total)
	}
}
