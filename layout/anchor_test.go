package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchor_Combinations(t *testing.T) {
	type tc struct {
		hint  AnchorHint
		rtl   bool
		wantX float64
		wantW float64
	}

	tests := map[string]tc{
		"leading and trailing stretch": {
			hint:  AnchorHint{Left: At(10), Right: At(10)},
			wantX: 10, wantW: 80,
		},
		"leading and center": {
			hint:  AnchorHint{Left: At(10), HCenter: At(5)},
			wantX: 10, wantW: 45,
		},
		"center and trailing": {
			hint:  AnchorHint{HCenter: At(5), Right: At(10)},
			wantX: 55, wantW: 35,
		},
		"leading only keeps size": {
			hint:  AnchorHint{Left: At(7)},
			wantX: 7, wantW: 20,
		},
		"center only": {
			hint:  AnchorHint{HCenter: At(10)},
			wantX: 50, wantW: 20,
		},
		"trailing only": {
			hint:  AnchorHint{Right: At(5)},
			wantX: 75, wantW: 20,
		},
		"rtl swaps leading and trailing": {
			hint:  AnchorHint{Left: At(5), Right: At(15), UseRTL: true},
			rtl:   true,
			wantX: 15, wantW: 80,
		},
		"rtl negates center": {
			hint:  AnchorHint{HCenter: At(10), UseRTL: true},
			rtl:   true,
			wantX: 30, wantW: 20,
		},
		"rtl ignored without participation": {
			hint:  AnchorHint{Left: At(5), Right: At(15)},
			rtl:   true,
			wantX: 5, wantW: 80,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := box("root", 100, 100)
			child := box("child", 20, 20)
			hint := tt.hint
			child.Hints.Anchor = &hint
			root.AddChild(child)

			quietSystem(tt.rtl).Apply(root, false)

			assert.InDelta(t, tt.wantX, child.Rect.Position.X(), 1e-9)
			assert.InDelta(t, tt.wantW, child.Rect.Size.X(), 1e-9)
		})
	}
}

func TestAnchor_VerticalNeverUsesRTL(t *testing.T) {
	root := box("root", 100, 100)
	child := box("child", 20, 20)
	child.Hints.Anchor = &AnchorHint{Top: At(5), Bottom: At(15), UseRTL: true}
	root.AddChild(child)

	quietSystem(true).Apply(root, false)

	assert.Equal(t, 5.0, child.Rect.Position.Y())
	assert.Equal(t, 80.0, child.Rect.Size.Y())
}

func TestAnchor_PercentOfParentIsClamped(t *testing.T) {
	root := withPolicy(box("root", 0, 0), NewAxisPolicy(PolicyFixed, 200), NewAxisPolicy(PolicyFixed, 100))

	clamped := box("clamped", 0, 0)
	x := NewAxisPolicy(PolicyPercentOfParent, 50)
	x.Max = 80
	withPolicy(clamped, x, NewAxisPolicy(PolicyIgnore, 100))

	free := withPolicy(box("free", 0, 0), NewAxisPolicy(PolicyPercentOfParent, 50), NewAxisPolicy(PolicyPercentOfParent, 25))
	free.Hints.Anchor = &AnchorHint{Right: At(0)}

	root.AddChild(clamped, free)
	quietSystem(false).Apply(root, false)

	assert.Equal(t, 80.0, clamped.Rect.Size.X())
	assert.Equal(t, 100.0, free.Rect.Size.X())
	assert.Equal(t, 25.0, free.Rect.Size.Y())
	assert.Equal(t, 100.0, free.Rect.Position.X(), "trailing anchor uses the resolved size")
}

// Offsets wider than the parent leave a negative size; nothing clamps it.
func TestAnchor_OverlappingStretchGoesNegative(t *testing.T) {
	root := box("root", 100, 100)
	child := box("child", 20, 20)
	child.Hints.Anchor = &AnchorHint{Left: At(60), Right: At(60), Top: At(40), VCenter: At(0)}
	root.AddChild(child)

	quietSystem(false).Apply(root, false)

	assert.Equal(t, NewRect(60, 40, -20, 10), child.Rect)
}
