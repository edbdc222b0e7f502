package layout

import (
	"github.com/sirupsen/logrus"
)

// System 是布局编排器：展平元素树，按 X、Y 两轴依次执行测量与排布，最后回写结果。
// System 不做内部加锁，调用方不得在重叠的子树上并发调用 Apply。
type System struct {
	rtl          bool
	autoUpdates  bool
	sizeProperty int
	log          logrus.FieldLogger
	assert       asserter

	nodes []nodeData
}

// NewSystem creates a layout system configured by opts.
func NewSystem(opts Options) *System {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &System{
		rtl:          opts.RTL,
		autoUpdates:  !opts.ManualUpdates,
		sizeProperty: opts.SizeProperty,
		log:          log,
		assert:       asserter{log: log, strict: opts.Strict},
	}
}

// IsRTL reports the global right-to-left flag.
func (s *System) IsRTL() bool { return s.rtl }

// SetRTL changes the global right-to-left flag for subsequent Apply calls.
func (s *System) SetRTL(rtl bool) { s.rtl = rtl }

// IsAutoUpdatesEnabled reports whether Update lays out.
func (s *System) IsAutoUpdatesEnabled() bool { return s.autoUpdates }

// SetAutoUpdatesEnabled turns automatic updates on or off.
func (s *System) SetAutoUpdatesEnabled(enabled bool) { s.autoUpdates = enabled }

// Update is Apply for callers reacting to a change (a resize, a direction
// toggle). It does nothing while auto updates are off and reports whether
// the subtree was laid out.
func (s *System) Update(root Element, considerDependenceOnChildren bool) bool {
	if !s.autoUpdates || root == nil {
		return false
	}
	s.Apply(root, considerDependenceOnChildren)
	return true
}

// Apply lays out the subtree rooted at root. When considerDependenceOnChildren
// is set, layout starts from the highest ancestor whose size depends on its
// children, so the change in root propagates upwards.
func (s *System) Apply(root Element, considerDependenceOnChildren bool) {
	if root == nil {
		return
	}
	container := root
	if considerDependenceOnChildren {
		container = climb(root)
	}

	s.collect(container)
	defer func() { s.nodes = nil }()

	s.log.WithFields(logrus.Fields{
		"nodes": len(s.nodes),
		"rtl":   s.rtl,
	}).Debug("layout: apply")

	for axis := AxisX; axis < axisCount; axis++ {
		for i := len(s.nodes) - 1; i >= 0; i-- {
			s.measure(i, axis)
		}
		for i := range s.nodes {
			s.arrange(i, axis)
		}
	}

	s.commit()
}

func climb(e Element) Element {
	for {
		parent := e.LayoutParent()
		if parent == nil {
			return e
		}
		sp := parent.LayoutHints().Size
		if sp == nil || !sp.DependsOnChildren() {
			return e
		}
		e = parent
	}
}

// collect flattens the subtree so every node's children are contiguous.
func (s *System) collect(root Element) {
	s.nodes = s.nodes[:0]
	s.nodes = append(s.nodes, newNodeData(root))
	s.collectChildren(root, 0)
}

func (s *System) collectChildren(e Element, parentIndex int) {
	children := e.LayoutChildren()
	index := len(s.nodes)
	s.nodes[parentIndex].first = index
	s.nodes[parentIndex].last = index + len(children) - 1

	for _, child := range children {
		s.nodes = append(s.nodes, newNodeData(child))
	}
	s.validate(parentIndex)

	for _, child := range children {
		s.collectChildren(child, index)
		index++
	}
}

// validate reports hint combinations the algorithms can only resolve by
// picking one side.
func (s *System) validate(index int) {
	data := &s.nodes[index]
	h := data.hints
	name := elementName(data.element)

	s.assert.assertf(!(h.flowEnabled() && h.linearEnabled()),
		"%s: flow and linear layouts both enabled, flow wins", name)

	if h.Size != nil {
		for axis := AxisX; axis < axisCount; axis++ {
			p := h.Size.ByAxis(axis)
			s.assert.assertf(p.Min <= p.Max, "%s: size %s min %g exceeds max %g", name, axis, p.Min, p.Max)
		}
	}
	if h.Anchor != nil {
		s.assert.assertf(!(h.Anchor.Left.Enabled && h.Anchor.HCenter.Enabled && h.Anchor.Right.Enabled),
			"%s: all horizontal anchors enabled, center ignored", name)
		s.assert.assertf(!(h.Anchor.Top.Enabled && h.Anchor.VCenter.Enabled && h.Anchor.Bottom.Enabled),
			"%s: all vertical anchors enabled, center ignored", name)
	}

	for i := data.first; i <= data.last; i++ {
		child := s.nodes[i].hints.Size
		if child == nil || h.Size == nil {
			continue
		}
		for axis := AxisX; axis < axisCount; axis++ {
			if child.ByAxis(axis).Policy == PolicyPercentOfParent && h.Size.ByAxis(axis).DependsOnChildren() {
				s.assert.assertf(false, "%s: child %s sized from parent while parent is sized from children on %s",
					name, elementName(s.nodes[i].element), axis)
			}
		}
	}
}

// arrange picks exactly one strategy for the container on this axis.
func (s *System) arrange(index int, axis Axis) {
	data := &s.nodes[index]
	switch {
	case data.hints.flowEnabled():
		s.traceStrategy(data, axis, "flow")
		newFlowAlgorithm(s.nodes, s.rtl).apply(data, axis)
	case data.hints.linearEnabled() && data.hints.Linear.Axis == axis:
		s.traceStrategy(data, axis, "linear")
		newLinearAlgorithm(s.nodes, s.rtl).apply(data, axis)
	default:
		if data.hasChildren() {
			s.traceStrategy(data, axis, "anchor")
		}
		newAnchorAlgorithm(s.nodes, s.rtl).apply(data, axis, false)
	}
}

func (s *System) traceStrategy(data *nodeData, axis Axis, strategy string) {
	s.log.WithFields(logrus.Fields{
		"element":  elementName(data.element),
		"axis":     axis.String(),
		"strategy": strategy,
	}).Trace("layout: arrange")
}

func (s *System) commit() {
	for i := range s.nodes {
		data := &s.nodes[i]
		if data.hasFlag(flagPositionChanged | flagSizeChanged) {
			data.element.SetLayoutRect(data.rect(), s.sizeProperty)
		}
	}
}

func elementName(e Element) string {
	if c, ok := e.(*Control); ok && c.Name != "" {
		return c.Name
	}
	return "<element>"
}
