package layout

// line is a run of flow children placed side by side. It only lives
// during the X pass of one container.
type line struct {
	first int
	last  int
	count int
	used  float64
}

// flowAlgorithm wraps children into lines on X, then stacks the lines on Y.
type flowAlgorithm struct {
	nodes []nodeData
	rtl   bool

	inverse       bool
	skipInvisible bool

	horizontalPadding              float64
	horizontalSpacing              float64
	dynamicHorizontalPadding       bool
	dynamicHorizontalInLinePadding bool
	dynamicHorizontalSpacing       bool

	verticalPadding        float64
	verticalSpacing        float64
	dynamicVerticalPadding bool
	dynamicVerticalSpacing bool
}

func newFlowAlgorithm(nodes []nodeData, rtl bool) *flowAlgorithm {
	return &flowAlgorithm{nodes: nodes, rtl: rtl}
}

func (f *flowAlgorithm) apply(data *nodeData, axis Axis) {
	layout := data.hints.Flow

	f.inverse = layout.Inverse
	if f.rtl && layout.UseRTL {
		f.inverse = !f.inverse
	}
	f.skipInvisible = layout.SkipInvisible

	f.horizontalPadding = layout.HorizontalPadding
	f.horizontalSpacing = layout.HorizontalSpacing
	f.dynamicHorizontalPadding = layout.DynamicHorizontalPadding
	f.dynamicHorizontalInLinePadding = layout.DynamicHorizontalInLinePadding
	f.dynamicHorizontalSpacing = layout.DynamicHorizontalSpacing

	f.verticalPadding = layout.VerticalPadding
	f.verticalSpacing = layout.VerticalSpacing
	f.dynamicVerticalPadding = layout.DynamicVerticalPadding
	f.dynamicVerticalSpacing = layout.DynamicVerticalSpacing

	if data.hasChildren() {
		if axis == AxisX {
			f.processXAxis(data)
		} else {
			f.processYAxis(data)
		}
	}

	newAnchorAlgorithm(f.nodes, f.rtl).apply(data, axis, true)
}

func (f *flowAlgorithm) processXAxis(data *nodeData) {
	lines := f.collectLines(data)
	if f.dynamicHorizontalPadding {
		f.fixHorizontalPadding(data, lines)
	}
	for _, ln := range lines {
		f.layoutLine(data, ln)
	}
}

// collectLines breaks the children into lines. Percent-of-parent widths are
// resolved here against the width inside the padding.
func (f *flowAlgorithm) collectLines(data *nodeData) []line {
	var lines []line
	width := data.width()

	first := data.first
	count := 0
	used := 0.0
	newLineBeforeNext := false

	for index := data.first; index <= data.last; index++ {
		child := &f.nodes[index]
		if child.skip(f.skipInvisible) {
			if count == 0 && first == index {
				first = index + 1
			}
			continue
		}

		childSize := child.width()
		if hint, ok := parentPercent(child, AxisX); ok {
			childSize = hint.clamp(hint.Value * (width - f.horizontalPadding*2.0) / 100.0)
			child.setSize(AxisX, childSize)
		}

		newLineBeforeThis := newLineBeforeNext || child.hasFlag(flagNewLineBefore)
		newLineBeforeNext = child.hasFlag(flagNewLineAfter)

		if newLineBeforeThis && index > first {
			if count > 0 {
				lines = append(lines, line{first: first, last: index - 1, count: count, used: used})
			}
			first = index
			count = 0
			used = 0
		}

		rest := width - used - f.horizontalPadding*2.0 - f.horizontalSpacing*float64(count) - childSize
		if rest < -epsilon {
			if index > first {
				if count > 0 {
					lines = append(lines, line{first: first, last: index - 1, count: count, used: used})
				}
				first = index
				count = 1
				used = childSize
			} else {
				// a child wider than the container gets a line of its own
				lines = append(lines, line{first: index, last: index, count: 1, used: childSize})
				first = index + 1
				count = 0
				used = 0
			}
		} else {
			count++
			used += childSize
		}
	}

	if first <= data.last && count > 0 {
		lines = append(lines, line{first: first, last: data.last, count: count, used: used})
	}
	return lines
}

// fixHorizontalPadding centres the widest line by growing the padding of
// every line symmetrically.
func (f *flowAlgorithm) fixHorizontalPadding(data *nodeData, lines []line) {
	maxUsed := 0.0
	for _, ln := range lines {
		used := ln.used
		if ln.count > 1 {
			used += float64(ln.count-1) * f.horizontalSpacing
		}
		maxUsed = max(maxUsed, used)
	}
	rest := data.width() - maxUsed - f.horizontalPadding*2.0
	if rest > epsilon {
		f.horizontalPadding += rest / 2.0
	}
}

func (f *flowAlgorithm) layoutLine(data *nodeData, ln line) {
	padding, spacing := redistributeSlack(f.horizontalPadding, f.horizontalSpacing,
		f.dynamicHorizontalInLinePadding, f.dynamicHorizontalSpacing, data.width()-ln.used, ln.count)

	items := make([]lineItem, 0, ln.count)
	lastIndex := -1
	for i := ln.first; i <= ln.last; i++ {
		child := &f.nodes[i]
		if child.skip(f.skipInvisible) {
			continue
		}
		items = append(items, lineItem{index: i, dir: child.contentDirection()})
		lastIndex = i
	}
	if lastIndex < 0 {
		return
	}

	position := padding
	if f.inverse {
		position = data.width() - padding
	}
	for _, i := range reorderLine(items) {
		child := &f.nodes[i]
		size := child.width()
		if f.inverse {
			child.setPosition(AxisX, position-size)
			position -= size + spacing
		} else {
			child.setPosition(AxisX, position)
			position += size + spacing
		}
	}

	f.nodes[lastIndex].setFlag(flagLastInLine)
}

func (f *flowAlgorithm) processYAxis(data *nodeData) {
	f.dynamicVerticalPaddingAndSpacing(data)

	anchors := newAnchorAlgorithm(f.nodes, f.rtl)
	lineHeight := 0.0
	y := f.verticalPadding
	first := data.first
	for index := data.first; index <= data.last; index++ {
		child := &f.nodes[index]
		if child.skip(f.skipInvisible) {
			continue
		}
		lineHeight = max(lineHeight, child.height())
		if child.hasFlag(flagLastInLine) {
			f.layoutLineVertically(anchors, first, index, y, y+lineHeight)
			y += lineHeight + f.verticalSpacing
			lineHeight = 0
			first = index + 1
		}
	}
}

// dynamicVerticalPaddingAndSpacing runs a dry pass over the lines to find
// the vertical slack, then spreads it like the horizontal one.
func (f *flowAlgorithm) dynamicVerticalPaddingAndSpacing(data *nodeData) {
	if !f.dynamicVerticalPadding && !f.dynamicVerticalSpacing {
		return
	}
	lines := 0
	content := 0.0
	lineHeight := 0.0
	for index := data.first; index <= data.last; index++ {
		child := &f.nodes[index]
		if child.skip(f.skipInvisible) {
			continue
		}
		lineHeight = max(lineHeight, child.height())
		if child.hasFlag(flagLastInLine) {
			lines++
			content += lineHeight
			lineHeight = 0
		}
	}
	f.verticalPadding, f.verticalSpacing = redistributeSlack(f.verticalPadding, f.verticalSpacing,
		f.dynamicVerticalPadding, f.dynamicVerticalSpacing, data.height()-content, lines)
}

func (f *flowAlgorithm) layoutLineVertically(anchors anchorAlgorithm, first, last int, top, bottom float64) {
	for index := first; index <= last; index++ {
		child := &f.nodes[index]
		if child.skip(f.skipInvisible) {
			continue
		}
		if hint, ok := parentPercent(child, AxisY); ok {
			child.setSize(AxisY, hint.clamp((bottom-top)*hint.Value/100.0))
		}
		child.setPosition(AxisY, top)
		anchors.applyRestrictedAnchor(child, AxisY, top, bottom)
	}
}
