package layout

// 该文件定义布局引擎消费的提示（hints）与基础几何类型。

// Axis 表示布局轴，始终先 X 后 Y。
type Axis int

const (
	AxisX Axis = iota
	AxisY
	axisCount
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Vector2 按轴索引保存一对数值。
type Vector2 [2]float64

// Vec2 builds a Vector2 from x and y.
func Vec2(x, y float64) Vector2 { return Vector2{x, y} }

func (v Vector2) X() float64 { return v[AxisX] }
func (v Vector2) Y() float64 { return v[AxisY] }

// Rect 是元素相对父元素的位置与尺寸。
type Rect struct {
	Position Vector2 `json:"position"`
	Size     Vector2 `json:"size"`
}

// NewRect creates a Rect from position and size components.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: Vector2{x, y}, Size: Vector2{w, h}}
}

// Policy 描述某一轴上尺寸的推导方式。
type Policy int

const (
	PolicyIgnore Policy = iota
	PolicyFixed
	PolicyPercentOfChildrenSum
	PolicyPercentOfMaxChild
	PolicyPercentOfFirstChild
	PolicyPercentOfLastChild
	PolicyPercentOfContent
	PolicyPercentOfParent
)

var policyNames = map[Policy]string{
	PolicyIgnore:               "ignore",
	PolicyFixed:                "fixed",
	PolicyPercentOfChildrenSum: "children-sum",
	PolicyPercentOfMaxChild:    "max-child",
	PolicyPercentOfFirstChild:  "first-child",
	PolicyPercentOfLastChild:   "last-child",
	PolicyPercentOfContent:     "content",
	PolicyPercentOfParent:      "parent",
}

// String returns the DSL keyword of the policy.
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return "unknown"
}

// ParsePolicy maps a DSL keyword to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	for p, name := range policyNames {
		if name == s {
			return p, true
		}
	}
	return PolicyIgnore, false
}

// DefaultMaxSize is the upper clamp used when none is configured.
const DefaultMaxSize = 99999.0

// AxisPolicy 为单个轴的尺寸策略及其 [Min, Max] 约束。
type AxisPolicy struct {
	Policy Policy  `json:"policy"`
	Value  float64 `json:"value"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// NewAxisPolicy returns a policy with the default clamp range.
func NewAxisPolicy(p Policy, value float64) AxisPolicy {
	return AxisPolicy{Policy: p, Value: value, Min: 0, Max: DefaultMaxSize}
}

// DependsOnChildren reports whether the size is derived from children.
func (p AxisPolicy) DependsOnChildren() bool {
	switch p.Policy {
	case PolicyPercentOfChildrenSum, PolicyPercentOfMaxChild, PolicyPercentOfFirstChild, PolicyPercentOfLastChild:
		return true
	default:
		return false
	}
}

func (p AxisPolicy) clamp(v float64) float64 {
	return clamp(v, p.Min, p.Max)
}

// SizePolicy 保存水平与垂直两个轴的策略。
type SizePolicy struct {
	Horizontal AxisPolicy `json:"horizontal"`
	Vertical   AxisPolicy `json:"vertical"`
}

// NewSizePolicy returns a SizePolicy that ignores both axes.
func NewSizePolicy() *SizePolicy {
	return &SizePolicy{
		Horizontal: NewAxisPolicy(PolicyIgnore, 100),
		Vertical:   NewAxisPolicy(PolicyIgnore, 100),
	}
}

// ByAxis returns the policy for the given axis.
func (s *SizePolicy) ByAxis(axis Axis) AxisPolicy {
	if axis == AxisY {
		return s.Vertical
	}
	return s.Horizontal
}

// SetByAxis replaces the policy for the given axis.
func (s *SizePolicy) SetByAxis(axis Axis, p AxisPolicy) {
	if axis == AxisY {
		s.Vertical = p
		return
	}
	s.Horizontal = p
}

// DependsOnChildren reports whether either axis is sized from children.
func (s *SizePolicy) DependsOnChildren() bool {
	return s.Horizontal.DependsOnChildren() || s.Vertical.DependsOnChildren()
}

// Anchor 是一个可独立开关的锚点偏移。
type Anchor struct {
	Enabled bool    `json:"enabled"`
	Offset  float64 `json:"offset"`
}

// At returns an enabled anchor with the given offset.
func At(offset float64) Anchor { return Anchor{Enabled: true, Offset: offset} }

// AnchorHint 描述每个轴上的 leading/center/trailing 三个锚点。
type AnchorHint struct {
	Left    Anchor `json:"left"`
	HCenter Anchor `json:"hCenter"`
	Right   Anchor `json:"right"`
	Top     Anchor `json:"top"`
	VCenter Anchor `json:"vCenter"`
	Bottom  Anchor `json:"bottom"`
	UseRTL  bool   `json:"useRtl"`
}

// byAxis returns leading, center and trailing anchors for the axis,
// swapped for right-to-left when rtl applies on the horizontal axis.
func (h *AnchorHint) byAxis(axis Axis, rtl bool) (leading, center, trailing Anchor) {
	if axis == AxisY {
		return h.Top, h.VCenter, h.Bottom
	}
	if rtl && h.UseRTL {
		center = h.HCenter
		center.Offset = -center.Offset
		return h.Right, center, h.Left
	}
	return h.Left, h.HCenter, h.Right
}

// Direction 是子元素内容方向标记，用于行内局部重排。
type Direction int

const (
	DirectionNeutral Direction = iota
	DirectionLTR
	DirectionRTL
)

// String returns the DSL keyword of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return "neutral"
	}
}

// FlowHint 为 flow 容器中的子元素提供换行与方向提示。
type FlowHint struct {
	NewLineBefore    bool      `json:"newLineBefore"`
	NewLineAfter     bool      `json:"newLineAfter"`
	ContentDirection Direction `json:"contentDirection"`
}

// FlowLayout 是 flow 容器的配置。
type FlowLayout struct {
	Enabled       bool `json:"enabled"`
	Inverse       bool `json:"inverse"`
	UseRTL        bool `json:"useRtl"`
	SkipInvisible bool `json:"skipInvisible"`

	HorizontalPadding              float64 `json:"horizontalPadding"`
	HorizontalSpacing              float64 `json:"horizontalSpacing"`
	DynamicHorizontalPadding       bool    `json:"dynamicHorizontalPadding"`
	DynamicHorizontalInLinePadding bool    `json:"dynamicHorizontalInLinePadding"`
	DynamicHorizontalSpacing       bool    `json:"dynamicHorizontalSpacing"`

	VerticalPadding        float64 `json:"verticalPadding"`
	VerticalSpacing        float64 `json:"verticalSpacing"`
	DynamicVerticalPadding bool    `json:"dynamicVerticalPadding"`
	DynamicVerticalSpacing bool    `json:"dynamicVerticalSpacing"`
}

// PaddingByAxis returns the configured padding for the axis.
func (f *FlowLayout) PaddingByAxis(axis Axis) float64 {
	if axis == AxisY {
		return f.VerticalPadding
	}
	return f.HorizontalPadding
}

// SpacingByAxis returns the configured spacing for the axis.
func (f *FlowLayout) SpacingByAxis(axis Axis) float64 {
	if axis == AxisY {
		return f.VerticalSpacing
	}
	return f.HorizontalSpacing
}

// LinearLayout 是线性容器的配置。
type LinearLayout struct {
	Enabled        bool    `json:"enabled"`
	Axis           Axis    `json:"axis"`
	Inverse        bool    `json:"inverse"`
	UseRTL         bool    `json:"useRtl"`
	SkipInvisible  bool    `json:"skipInvisible"`
	Padding        float64 `json:"padding"`
	Spacing        float64 `json:"spacing"`
	DynamicPadding bool    `json:"dynamicPadding"`
	DynamicSpacing bool    `json:"dynamicSpacing"`
}

// Hints 汇总元素上的可选布局组件；nil 表示对应行为关闭。
type Hints struct {
	Size         *SizePolicy   `json:"size,omitempty"`
	Anchor       *AnchorHint   `json:"anchor,omitempty"`
	Flow         *FlowLayout   `json:"flow,omitempty"`
	FlowItem     *FlowHint     `json:"flowItem,omitempty"`
	Linear       *LinearLayout `json:"linear,omitempty"`
	IgnoreLayout bool          `json:"ignoreLayout,omitempty"`
}

func (h Hints) flowEnabled() bool   { return h.Flow != nil && h.Flow.Enabled }
func (h Hints) linearEnabled() bool { return h.Linear != nil && h.Linear.Enabled }
