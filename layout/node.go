package layout

type nodeFlag uint16

const (
	flagLastInLine nodeFlag = 1 << iota
	flagNewLineBefore
	flagNewLineAfter
	flagIgnored
	flagInvisible
	flagPositionChanged
	flagSizeChanged
)

// nodeData is the flat per-node record. Children of a node occupy the
// contiguous index range [first, last]; last < first means no children.
type nodeData struct {
	element Element
	hints   Hints

	position Vector2
	size     Vector2

	first int
	last  int
	flags nodeFlag
}

func newNodeData(e Element) nodeData {
	r := e.LayoutRect()
	d := nodeData{
		element:  e,
		hints:    e.LayoutHints(),
		position: r.Position,
		size:     r.Size,
		first:    0,
		last:     -1,
	}
	if d.hints.IgnoreLayout {
		d.setFlag(flagIgnored)
	}
	if !e.IsVisible() {
		d.setFlag(flagInvisible)
	}
	if d.hints.FlowItem != nil {
		if d.hints.FlowItem.NewLineBefore {
			d.setFlag(flagNewLineBefore)
		}
		if d.hints.FlowItem.NewLineAfter {
			d.setFlag(flagNewLineAfter)
		}
	}
	return d
}

func (d *nodeData) hasChildren() bool { return d.last >= d.first }

func (d *nodeData) hasFlag(f nodeFlag) bool { return d.flags&f != 0 }
func (d *nodeData) setFlag(f nodeFlag)      { d.flags |= f }

// skip reports whether the node takes no part in its parent's layout.
func (d *nodeData) skip(skipInvisible bool) bool {
	return d.hasFlag(flagIgnored) || (skipInvisible && d.hasFlag(flagInvisible))
}

func (d *nodeData) width() float64  { return d.size[AxisX] }
func (d *nodeData) height() float64 { return d.size[AxisY] }

func (d *nodeData) setSize(axis Axis, v float64) {
	if d.size[axis] != v {
		d.size[axis] = v
		d.setFlag(flagSizeChanged)
	}
}

func (d *nodeData) setPosition(axis Axis, v float64) {
	if d.position[axis] != v {
		d.position[axis] = v
		d.setFlag(flagPositionChanged)
	}
}

func (d *nodeData) contentDirection() Direction {
	if d.hints.FlowItem == nil {
		return DirectionNeutral
	}
	return d.hints.FlowItem.ContentDirection
}

func (d *nodeData) rect() Rect {
	return Rect{Position: d.position, Size: d.size}
}
