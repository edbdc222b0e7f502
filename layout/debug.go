package layout

import (
	"encoding/json"
	"os"
)

// Snapshot 是布局结果的只读快照，供调试 JSON、渲染器与终端预览共用。
type Snapshot struct {
	Name     string      `json:"name"`
	Visible  bool        `json:"visible"`
	Rect     Rect        `json:"rect"`
	Absolute Rect        `json:"absolute"`
	Hints    Hints       `json:"hints"`
	Text     string      `json:"text,omitempty"`
	Children []*Snapshot `json:"children,omitempty"`
}

// Texter is implemented by content that carries displayable text.
type Texter interface {
	Text() string
}

// TakeSnapshot copies the rects of the tree rooted at root.
func TakeSnapshot(root *Control) *Snapshot {
	if root == nil {
		return nil
	}
	return snapshotOf(root, Vector2{})
}

func snapshotOf(c *Control, origin Vector2) *Snapshot {
	abs := c.Rect
	abs.Position[AxisX] += origin[AxisX]
	abs.Position[AxisY] += origin[AxisY]

	s := &Snapshot{
		Name:     c.Name,
		Visible:  c.Visible,
		Rect:     c.Rect,
		Absolute: abs,
		Hints:    c.Hints,
	}
	if t, ok := c.Content.(Texter); ok {
		s.Text = t.Text()
	}
	for _, child := range c.children {
		s.Children = append(s.Children, snapshotOf(child, abs.Position))
	}
	return s
}

// Walk visits the snapshot tree in pre-order.
func (s *Snapshot) Walk(fn func(node *Snapshot, depth int)) {
	s.walk(fn, 0)
}

func (s *Snapshot) walk(fn func(*Snapshot, int), depth int) {
	fn(s, depth)
	for _, child := range s.Children {
		child.walk(fn, depth+1)
	}
}

// WriteDebugJSON 将布局快照输出为 JSON，便于调试或可视化。
func WriteDebugJSON(snap *Snapshot, path string) error {
	if snap == nil {
		return nil
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
