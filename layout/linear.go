package layout

// linearAlgorithm stacks children one after another along its axis.
type linearAlgorithm struct {
	nodes []nodeData
	rtl   bool

	axis          Axis
	inverse       bool
	skipInvisible bool

	padding        float64
	spacing        float64
	dynamicPadding bool
	dynamicSpacing bool

	childCount int
}

func newLinearAlgorithm(nodes []nodeData, rtl bool) *linearAlgorithm {
	return &linearAlgorithm{nodes: nodes, rtl: rtl}
}

func (l *linearAlgorithm) apply(data *nodeData, axis Axis) {
	layout := data.hints.Linear

	l.axis = axis
	l.inverse = layout.Inverse
	if axis == AxisX && l.rtl && layout.UseRTL {
		l.inverse = !l.inverse
	}
	l.skipInvisible = layout.SkipInvisible
	l.padding = layout.Padding
	l.spacing = layout.Spacing
	l.dynamicPadding = layout.DynamicPadding
	l.dynamicSpacing = layout.DynamicSpacing

	if data.hasChildren() {
		l.resolveParentDependentSizes(data)
		l.applyDynamicPaddingAndSpacing(data)
		l.placeChildren(data)
	}

	newAnchorAlgorithm(l.nodes, l.rtl).apply(data, axis, true)
}

// resolveParentDependentSizes gives percent-of-parent children their share
// of the space the other children leave free. Shares are normalised when
// the percents add up to more than 100.
func (l *linearAlgorithm) resolveParentDependentSizes(data *nodeData) {
	fixedSize := 0.0
	totalPercent := 0.0
	l.childCount = 0
	for i := data.first; i <= data.last; i++ {
		child := &l.nodes[i]
		if child.skip(l.skipInvisible) {
			continue
		}
		l.childCount++
		if hint, ok := parentPercent(child, l.axis); ok {
			totalPercent += hint.Value
		} else {
			fixedSize += child.size[l.axis]
		}
	}
	if totalPercent <= 0 {
		return
	}

	spaces := max(l.childCount-1, 0)
	restSize := data.size[l.axis] - l.padding*2.0 - l.spacing*float64(spaces) - fixedSize
	restSize = max(restSize, 0)
	scale := max(100.0, totalPercent)

	for i := data.first; i <= data.last; i++ {
		child := &l.nodes[i]
		if child.skip(l.skipInvisible) {
			continue
		}
		if hint, ok := parentPercent(child, l.axis); ok {
			child.setSize(l.axis, hint.clamp(restSize*hint.Value/scale))
		}
	}
}

func (l *linearAlgorithm) applyDynamicPaddingAndSpacing(data *nodeData) {
	if !l.dynamicPadding && !l.dynamicSpacing {
		return
	}
	used := 0.0
	for i := data.first; i <= data.last; i++ {
		child := &l.nodes[i]
		if child.skip(l.skipInvisible) {
			continue
		}
		used += child.size[l.axis]
	}
	l.padding, l.spacing = redistributeSlack(l.padding, l.spacing, l.dynamicPadding, l.dynamicSpacing,
		data.size[l.axis]-used, l.childCount)
}

func (l *linearAlgorithm) placeChildren(data *nodeData) {
	position := l.padding
	if l.inverse {
		position = data.size[l.axis] - l.padding
	}
	for i := data.first; i <= data.last; i++ {
		child := &l.nodes[i]
		if child.skip(l.skipInvisible) {
			continue
		}
		size := child.size[l.axis]
		if l.inverse {
			child.setPosition(l.axis, position-size)
			position -= size + l.spacing
		} else {
			child.setPosition(l.axis, position)
			position += size + l.spacing
		}
	}
}

func parentPercent(child *nodeData, axis Axis) (AxisPolicy, bool) {
	if child.hints.Size == nil {
		return AxisPolicy{}, false
	}
	hint := child.hints.Size.ByAxis(axis)
	return hint, hint.Policy == PolicyPercentOfParent
}
