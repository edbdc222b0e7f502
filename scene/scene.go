package scene

import (
	"github.com/sirupsen/logrus"

	"github.com/ByLCY/vellum/layout"
)

// Meta 是 ui 文件的元信息。
type Meta struct {
	Title    string   `json:"title,omitempty"`
	Author   string   `json:"author,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// FontSpec 描述 resources 中声明的字体。Size 为 px，LineHeight 为字号倍数。
type FontSpec struct {
	Name       string  `json:"name"`
	Src        string  `json:"src"`
	Style      string  `json:"style,omitempty"`
	Size       float64 `json:"size"`
	LineHeight float64 `json:"lineHeight"`
}

// DefaultFont is used by text controls when no resource font applies.
var DefaultFont = FontSpec{Name: "default", Src: "builtin:go-regular", Size: 16, LineHeight: 1.2}

// Style 是控件的可视化属性，颜色均为 #rrggbb(aa)。
type Style struct {
	Background  string  `json:"background,omitempty"`
	Border      string  `json:"border,omitempty"`
	BorderWidth float64 `json:"borderWidth,omitempty"`
}

// Scene is a built control tree with its resources.
type Scene struct {
	Name    string
	Version string
	Meta    Meta

	Width  float64
	Height float64
	RTL    bool

	Root   *layout.Control
	Fonts  map[string]FontSpec
	Colors map[string]string
	Styles map[*layout.Control]Style
}

// Options configures Build.
type Options struct {
	// Typesetter 用于测量 text 控件，必填。
	Typesetter Typesetter
	// Data 是绑定到 ${path} 占位符的 JSON 数据。
	Data any
	// Logger 默认使用 logrus.StandardLogger()。
	Logger logrus.FieldLogger
}

// Layout resolves the rects of the scene. The scene's own rtl flag turns
// right-to-left on in addition to opts.RTL.
func (s *Scene) Layout(opts layout.Options) {
	opts.RTL = opts.RTL || s.RTL
	layout.NewSystem(opts).Apply(s.Root, false)
}

// StyleOf returns the style of c, or the zero style.
func (s *Scene) StyleOf(c *layout.Control) Style {
	return s.Styles[c]
}

// Count returns the number of controls in the tree.
func (s *Scene) Count() int {
	n := 0
	s.Root.Walk(func(*layout.Control, int) { n++ })
	return n
}
