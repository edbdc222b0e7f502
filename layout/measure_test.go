package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure_LinearChildrenSum(t *testing.T) {
	sum := NewAxisPolicy(PolicyPercentOfChildrenSum, 100)

	t.Run("padding and spacing added", func(t *testing.T) {
		root := withPolicy(linearBox("root", 0, 40, LinearLayout{Axis: AxisX, Padding: 5, Spacing: 10}),
			sum, NewAxisPolicy(PolicyIgnore, 100))
		root.AddChild(box("a", 20, 10), box("b", 30, 10))

		quietSystem(false).Apply(root, false)

		assert.Equal(t, 70.0, root.Rect.Size.X())
		assert.Equal(t, 40.0, root.Rect.Size.Y())
	})

	t.Run("clamp applies after padding", func(t *testing.T) {
		capped := sum
		capped.Max = 60
		root := withPolicy(linearBox("root", 0, 0, LinearLayout{Axis: AxisX, Padding: 5, Spacing: 10}),
			capped, NewAxisPolicy(PolicyIgnore, 100))
		root.AddChild(box("a", 20, 10), box("b", 30, 10))

		quietSystem(false).Apply(root, false)

		assert.Equal(t, 60.0, root.Rect.Size.X())
	})

	t.Run("empty container is only padding", func(t *testing.T) {
		root := withPolicy(linearBox("root", 0, 0, LinearLayout{Axis: AxisX, Padding: 5, Spacing: 10}),
			sum, NewAxisPolicy(PolicyIgnore, 100))

		quietSystem(false).Apply(root, false)

		assert.Equal(t, 10.0, root.Rect.Size.X())
	})

	t.Run("cross axis has no padding", func(t *testing.T) {
		root := withPolicy(linearBox("root", 0, 0, LinearLayout{Axis: AxisX, Padding: 5, Spacing: 10}),
			NewAxisPolicy(PolicyIgnore, 100), sum)
		root.AddChild(box("a", 20, 10), box("b", 30, 15))

		quietSystem(false).Apply(root, false)

		assert.Equal(t, 25.0, root.Rect.Size.Y())
	})
}

func TestMeasure_MaxChildPercent(t *testing.T) {
	root := withPolicy(box("root", 0, 0),
		NewAxisPolicy(PolicyPercentOfMaxChild, 50), NewAxisPolicy(PolicyPercentOfMaxChild, 200))
	root.AddChild(box("a", 20, 10), box("b", 30, 5))

	quietSystem(false).Apply(root, false)

	assert.Equal(t, Vec2(15, 20), root.Rect.Size)
}

func TestMeasure_FirstAndLastChildSkipInvisible(t *testing.T) {
	root := withPolicy(linearBox("root", 0, 0, LinearLayout{Axis: AxisX, SkipInvisible: true}),
		NewAxisPolicy(PolicyPercentOfFirstChild, 100), NewAxisPolicy(PolicyPercentOfLastChild, 100))
	head, tail := box("head", 99, 99), box("tail", 77, 77)
	head.Visible = false
	tail.Visible = false
	root.AddChild(head, box("a", 20, 5), box("b", 30, 7), tail)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, Vec2(20, 7), root.Rect.Size)
}

func TestMeasure_Content(t *testing.T) {
	t.Run("height follows resolved width", func(t *testing.T) {
		text := withPolicy(box("text", 0, 0),
			NewAxisPolicy(PolicyPercentOfContent, 50), NewAxisPolicy(PolicyPercentOfContent, 100))
		text.Content = stubContent{width: 60, area: 600}

		quietSystem(false).Apply(text, false)

		assert.Equal(t, Vec2(30, 20), text.Rect.Size)
	})

	t.Run("no content measures zero", func(t *testing.T) {
		empty := withPolicy(box("empty", 10, 10),
			NewAxisPolicy(PolicyPercentOfContent, 100), NewAxisPolicy(PolicyPercentOfContent, 100))

		quietSystem(false).Apply(empty, false)

		assert.Equal(t, Vec2(0, 0), empty.Rect.Size)
	})
}

func TestMeasure_ClampRange(t *testing.T) {
	fixed := NewAxisPolicy(PolicyFixed, 5)
	fixed.Min = 10
	maxChild := NewAxisPolicy(PolicyPercentOfMaxChild, 200)
	maxChild.Max = 50

	root := withPolicy(box("root", 0, 0), fixed, maxChild)
	root.AddChild(box("a", 40, 40))

	quietSystem(false).Apply(root, false)

	assert.Equal(t, Vec2(10, 50), root.Rect.Size)
}

func TestMeasure_IgnoreKeepsSize(t *testing.T) {
	root := withPolicy(box("root", 33, 44), NewAxisPolicy(PolicyIgnore, 100), NewAxisPolicy(PolicyIgnore, 100))

	quietSystem(false).Apply(root, false)

	assert.Equal(t, Vec2(33, 44), root.Rect.Size)
	assert.Zero(t, root.Commits)
}

func TestClamp_MaxWinsOverMin(t *testing.T) {
	assert.Equal(t, 3.0, clamp(10, 5, 3))
	assert.Equal(t, 3.0, clamp(0, 5, 3))
	assert.Equal(t, 5.0, clamp(0, 5, 8))
}
