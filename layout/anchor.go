package layout

// anchorAlgorithm positions children from their anchor hints relative to
// the parent edges and center. It is the fallback for every container.
type anchorAlgorithm struct {
	nodes []nodeData
	rtl   bool
}

func newAnchorAlgorithm(nodes []nodeData, rtl bool) anchorAlgorithm {
	return anchorAlgorithm{nodes: nodes, rtl: rtl}
}

// apply resolves percent-of-parent sizes and anchors for the children of
// data. With onlyIgnored set, only children that opted out of the parent's
// layout strategy are touched.
func (a anchorAlgorithm) apply(data *nodeData, axis Axis, onlyIgnored bool) {
	parentSize := data.size[axis]
	for i := data.first; i <= data.last; i++ {
		child := &a.nodes[i]
		if onlyIgnored && !child.hasFlag(flagIgnored) {
			continue
		}

		if sp := child.hints.Size; sp != nil {
			if hint := sp.ByAxis(axis); hint.Policy == PolicyPercentOfParent {
				child.setSize(axis, hint.clamp(parentSize*hint.Value/100.0))
			}
		}

		a.applyAnchor(child, axis, 0, parentSize)
	}
}

// applyAnchor positions (and for two-anchor combinations sizes) the child
// inside the band [lo, hi] of its parent.
func (a anchorAlgorithm) applyAnchor(child *nodeData, axis Axis, lo, hi float64) {
	hint := child.hints.Anchor
	if hint == nil {
		return
	}
	leading, center, trailing := hint.byAxis(axis, a.rtl)
	if !leading.Enabled && !center.Enabled && !trailing.Enabled {
		return
	}

	parentSize := hi - lo
	size := child.size[axis]
	switch {
	case leading.Enabled && trailing.Enabled:
		child.setPosition(axis, lo+leading.Offset)
		child.setSize(axis, parentSize-(leading.Offset+trailing.Offset))
	case leading.Enabled && center.Enabled:
		child.setPosition(axis, lo+leading.Offset)
		child.setSize(axis, parentSize/2.0-(leading.Offset-center.Offset))
	case center.Enabled && trailing.Enabled:
		child.setPosition(axis, lo+parentSize/2.0+center.Offset)
		child.setSize(axis, parentSize/2.0-(center.Offset+trailing.Offset))
	case leading.Enabled:
		child.setPosition(axis, lo+leading.Offset)
	case center.Enabled:
		child.setPosition(axis, lo+(parentSize-size)/2.0+center.Offset)
	case trailing.Enabled:
		child.setPosition(axis, lo+parentSize-(size+trailing.Offset))
	}
}

// applyRestrictedAnchor positions the child inside [lo, hi] from a single
// anchor and never changes its size. Used inside flow lines, where the
// band height comes from the tallest child.
func (a anchorAlgorithm) applyRestrictedAnchor(child *nodeData, axis Axis, lo, hi float64) {
	hint := child.hints.Anchor
	if hint == nil {
		return
	}
	leading, center, trailing := hint.byAxis(axis, a.rtl)
	band := hi - lo
	size := child.size[axis]
	switch {
	case leading.Enabled:
		child.setPosition(axis, lo+leading.Offset)
	case center.Enabled:
		child.setPosition(axis, lo+(band-size)/2.0+center.Offset)
	case trailing.Enabled:
		child.setPosition(axis, lo+band-(size+trailing.Offset))
	}
}
