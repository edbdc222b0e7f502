package layout

// Element is anything the layout system can position. The system only reads
// hints and children, and writes results back through SetLayoutRect.
type Element interface {
	// LayoutParent returns the parent element, or nil for a tree root.
	LayoutParent() Element

	// LayoutChildren returns the children in layout order.
	LayoutChildren() []Element

	// LayoutHints returns the optional layout components of the element.
	LayoutHints() Hints

	// IsVisible reports the visibility flag consulted by skip-invisible containers.
	IsVisible() bool

	// LayoutRect returns the current position (relative to the parent) and size.
	LayoutRect() Rect

	// SetLayoutRect stores the resolved rect. sizeProperty is an opaque
	// index the caller uses for dirty tracking.
	SetLayoutRect(r Rect, sizeProperty int)
}

// ContentMeasurer is implemented by elements with intrinsic content.
// A negative constraint component means "unconstrained".
type ContentMeasurer interface {
	ContentPreferredSize(constraint Vector2) Vector2
	IsHeightDependsOnWidth() bool
}

// Content 是 Control 可挂载的内容，例如文本。
type Content interface {
	PreferredSize(constraint Vector2) Vector2
	HeightDependsOnWidth() bool
}

// Control is the default Element implementation: a named node carrying
// hints, optional content and the last committed rect.
type Control struct {
	Name    string
	Hints   Hints
	Content Content
	Visible bool
	Rect    Rect

	// Commits counts SetLayoutRect calls; SizeProperty is the index
	// passed with the last one.
	Commits      int
	SizeProperty int

	children []*Control
	parent   *Control
}

var (
	_ Element         = (*Control)(nil)
	_ ContentMeasurer = (*Control)(nil)
)

// NewControl creates a visible control with the given name.
func NewControl(name string) *Control {
	return &Control{Name: name, Visible: true}
}

// AddChild appends children, detaching them from any previous parent.
func (c *Control) AddChild(children ...*Control) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = c
		c.children = append(c.children, child)
	}
}

// RemoveChild removes a child keeping the order of the others.
// Returns true if the child was found.
func (c *Control) RemoveChild(child *Control) bool {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the direct children.
func (c *Control) Children() []*Control { return c.children }

// Parent returns the parent control or nil.
func (c *Control) Parent() *Control { return c.parent }

// Find returns the first descendant (or c itself) with the given name.
func (c *Control) Find(name string) *Control {
	if c.Name == name {
		return c
	}
	for _, child := range c.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits c and its descendants in pre-order with their depth.
func (c *Control) Walk(fn func(ctrl *Control, depth int)) {
	c.walk(fn, 0)
}

func (c *Control) walk(fn func(*Control, int), depth int) {
	fn(c, depth)
	for _, child := range c.children {
		child.walk(fn, depth+1)
	}
}

// AbsoluteRect returns the rect translated into root coordinates.
func (c *Control) AbsoluteRect() Rect {
	r := c.Rect
	for p := c.parent; p != nil; p = p.parent {
		r.Position[AxisX] += p.Rect.Position[AxisX]
		r.Position[AxisY] += p.Rect.Position[AxisY]
	}
	return r
}

func (c *Control) LayoutParent() Element {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *Control) LayoutChildren() []Element {
	out := make([]Element, len(c.children))
	for i, child := range c.children {
		out[i] = child
	}
	return out
}

func (c *Control) LayoutHints() Hints { return c.Hints }
func (c *Control) IsVisible() bool    { return c.Visible }
func (c *Control) LayoutRect() Rect   { return c.Rect }

func (c *Control) SetLayoutRect(r Rect, sizeProperty int) {
	c.Rect = r
	c.SizeProperty = sizeProperty
	c.Commits++
}

// ContentPreferredSize delegates to the attached content; a control
// without content has no intrinsic size.
func (c *Control) ContentPreferredSize(constraint Vector2) Vector2 {
	if c.Content == nil {
		return Vector2{}
	}
	return c.Content.PreferredSize(constraint)
}

func (c *Control) IsHeightDependsOnWidth() bool {
	return c.Content != nil && c.Content.HeightDependsOnWidth()
}
