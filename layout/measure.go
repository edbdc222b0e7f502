package layout

// measure resolves the node's size policy on the axis. Called children
// first, so every child size is final for this axis.
// Order: accumulate, add padding and spacing, clamp.
func (s *System) measure(index int, axis Axis) {
	data := &s.nodes[index]
	sizeHint := data.hints.Size
	if sizeHint == nil {
		return
	}

	var flow *FlowLayout
	var linear *LinearLayout
	skipInvisible := false
	if data.hints.flowEnabled() {
		flow = data.hints.Flow
		skipInvisible = flow.SkipInvisible
	} else if data.hints.linearEnabled() {
		linear = data.hints.Linear
		skipInvisible = linear.SkipInvisible
	}

	hint := sizeHint.ByAxis(axis)
	value := 0.0
	processed := 0

	switch hint.Policy {
	case PolicyIgnore, PolicyPercentOfParent:
		// resolved by the parent during arrange
		value = data.size[axis]

	case PolicyFixed:
		value = hint.Value

	case PolicyPercentOfChildrenSum:
		if flow != nil && axis == AxisY {
			value, processed = s.sumFlowLines(data, flow)
		} else {
			for i := data.first; i <= data.last; i++ {
				child := &s.nodes[i]
				if child.skip(skipInvisible) {
					continue
				}
				processed++
				value += child.size[axis]
			}
		}
		value = value * hint.Value / 100.0

	case PolicyPercentOfMaxChild:
		for i := data.first; i <= data.last; i++ {
			child := &s.nodes[i]
			if child.skip(skipInvisible) {
				continue
			}
			processed = 1
			value = max(value, child.size[axis])
		}
		value = value * hint.Value / 100.0

	case PolicyPercentOfFirstChild:
		for i := data.first; i <= data.last; i++ {
			if child := &s.nodes[i]; !child.skip(skipInvisible) {
				value = child.size[axis]
				processed = 1
				break
			}
		}
		value = value * hint.Value / 100.0

	case PolicyPercentOfLastChild:
		for i := data.last; i >= data.first; i-- {
			if child := &s.nodes[i]; !child.skip(skipInvisible) {
				value = child.size[axis]
				processed = 1
				break
			}
		}
		value = value * hint.Value / 100.0

	case PolicyPercentOfContent:
		value = contentSize(data, axis) * hint.Value / 100.0

	default:
		s.assert.assertf(false, "%s: unknown size policy %d", elementName(data.element), hint.Policy)
		return
	}

	if hint.DependsOnChildren() {
		switch {
		case flow != nil:
			if hint.Policy == PolicyPercentOfChildrenSum && axis == AxisX && processed > 0 {
				value += flow.HorizontalSpacing * float64(processed-1)
			}
			value += flow.PaddingByAxis(axis) * 2.0
		case linear != nil && linear.Axis == axis:
			if hint.Policy == PolicyPercentOfChildrenSum && processed > 0 {
				value += linear.Spacing * float64(processed-1)
			}
			value += linear.Padding * 2.0
		}
	}

	if hint.Policy != PolicyPercentOfParent && hint.Policy != PolicyIgnore {
		value = hint.clamp(value)
	}
	data.setSize(axis, value)
}

// sumFlowLines adds up the tallest child of every flow line plus the
// spacing between lines. Lines end at children flagged last-in-line by the
// X arrange pass. Returns the sum and the number of lines.
func (s *System) sumFlowLines(data *nodeData, flow *FlowLayout) (float64, int) {
	total := 0.0
	lineHeight := 0.0
	lines := 0
	open := false
	for i := data.first; i <= data.last; i++ {
		child := &s.nodes[i]
		if child.skip(flow.SkipInvisible) {
			continue
		}
		open = true
		lineHeight = max(lineHeight, child.height())
		if child.hasFlag(flagLastInLine) {
			if lines > 0 {
				total += flow.VerticalSpacing
			}
			total += lineHeight
			lines++
			lineHeight = 0
			open = false
		}
	}
	if open {
		if lines > 0 {
			total += flow.VerticalSpacing
		}
		total += lineHeight
		lines++
	}
	return total, lines
}

func contentSize(data *nodeData, axis Axis) float64 {
	m, ok := data.element.(ContentMeasurer)
	if !ok {
		return 0
	}
	constraint := Vector2{-1, -1}
	if axis == AxisY && m.IsHeightDependsOnWidth() {
		constraint[AxisX] = data.width()
	}
	return m.ContentPreferredSize(constraint)[axis]
}
