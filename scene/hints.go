package scene

import (
	"fmt"
	"strings"

	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/layout"
)

// fieldSet maps block keys to the fields they set.
type fieldSet struct {
	floats  map[string]*float64
	bools   map[string]*bool
	anchors map[string]*layout.Anchor
	// custom handles the remaining keys and reports whether it knew the key.
	custom func(key string, words []string) (bool, error)
}

func (b *builder) assign(block *dsl.Block, fields fieldSet) error {
	if block == nil {
		return nil
	}
	if cmds := block.Commands(); len(cmds) > 0 {
		return fmt.Errorf("第 %d 行: 此处不允许嵌套 %s", cmds[0].Pos.Line, cmds[0].Name)
	}
	for _, a := range block.Assignments() {
		words := b.words(a.Value)
		if err := fields.set(a.Key, words); err != nil {
			return fmt.Errorf("第 %d 行: %s: %w", a.Pos.Line, a.Key, err)
		}
	}
	return nil
}

func (f fieldSet) set(key string, words []string) error {
	if p, ok := f.floats[key]; ok {
		v, err := lengthPx(words)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
	if p, ok := f.bools[key]; ok {
		v, err := dsl.ParseBool(strings.Join(words, " "))
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
	if p, ok := f.anchors[key]; ok {
		v, err := lengthPx(words)
		if err != nil {
			return err
		}
		*p = layout.At(v)
		return nil
	}
	if f.custom != nil {
		known, err := f.custom(key, words)
		if known || err != nil {
			return err
		}
	}
	return fmt.Errorf("未知属性")
}

func (b *builder) flow(block *dsl.Block) (*layout.FlowLayout, error) {
	f := &layout.FlowLayout{Enabled: true}
	err := b.assign(block, fieldSet{
		floats: map[string]*float64{
			"padding-x": &f.HorizontalPadding,
			"spacing-x": &f.HorizontalSpacing,
			"padding-y": &f.VerticalPadding,
			"spacing-y": &f.VerticalSpacing,
		},
		bools: map[string]*bool{
			"enabled":                  &f.Enabled,
			"inverse":                  &f.Inverse,
			"use-rtl":                  &f.UseRTL,
			"skip-invisible":           &f.SkipInvisible,
			"dynamic-padding-x":        &f.DynamicHorizontalPadding,
			"dynamic-inline-padding-x": &f.DynamicHorizontalInLinePadding,
			"dynamic-spacing-x":        &f.DynamicHorizontalSpacing,
			"dynamic-padding-y":        &f.DynamicVerticalPadding,
			"dynamic-spacing-y":        &f.DynamicVerticalSpacing,
		},
	})
	return f, err
}

func (b *builder) linear(block *dsl.Block) (*layout.LinearLayout, error) {
	l := &layout.LinearLayout{Enabled: true, Axis: layout.AxisY}
	err := b.assign(block, fieldSet{
		floats: map[string]*float64{
			"padding": &l.Padding,
			"spacing": &l.Spacing,
		},
		bools: map[string]*bool{
			"enabled":         &l.Enabled,
			"inverse":         &l.Inverse,
			"use-rtl":         &l.UseRTL,
			"skip-invisible":  &l.SkipInvisible,
			"dynamic-padding": &l.DynamicPadding,
			"dynamic-spacing": &l.DynamicSpacing,
		},
		custom: func(key string, words []string) (bool, error) {
			if key != "axis" {
				return false, nil
			}
			switch strings.Join(words, " ") {
			case "x":
				l.Axis = layout.AxisX
			case "y":
				l.Axis = layout.AxisY
			default:
				return true, fmt.Errorf("axis 只能是 x 或 y")
			}
			return true, nil
		},
	})
	return l, err
}

func (b *builder) anchor(block *dsl.Block) (*layout.AnchorHint, error) {
	h := &layout.AnchorHint{}
	err := b.assign(block, fieldSet{
		anchors: map[string]*layout.Anchor{
			"left":     &h.Left,
			"center-x": &h.HCenter,
			"right":    &h.Right,
			"top":      &h.Top,
			"center-y": &h.VCenter,
			"bottom":   &h.Bottom,
		},
		bools: map[string]*bool{"use-rtl": &h.UseRTL},
	})
	return h, err
}

// flowHint also reports whether the direction is to be detected from the
// control's text.
func (b *builder) flowHint(block *dsl.Block) (*layout.FlowHint, bool, error) {
	h := &layout.FlowHint{}
	auto := false
	err := b.assign(block, fieldSet{
		bools: map[string]*bool{
			"new-line-before": &h.NewLineBefore,
			"new-line-after":  &h.NewLineAfter,
		},
		custom: func(key string, words []string) (bool, error) {
			if key != "direction" {
				return false, nil
			}
			switch strings.Join(words, " ") {
			case "ltr":
				h.ContentDirection = layout.DirectionLTR
			case "rtl":
				h.ContentDirection = layout.DirectionRTL
			case "neutral":
				h.ContentDirection = layout.DirectionNeutral
			case "auto":
				auto = true
			default:
				return true, fmt.Errorf("direction 只能是 ltr、rtl、neutral 或 auto")
			}
			return true, nil
		},
	})
	return h, auto, err
}

// parsePolicy parses `kind [value] [min V] [max V]`.
func parsePolicy(words []string) (layout.AxisPolicy, error) {
	if len(words) == 0 {
		return layout.AxisPolicy{}, fmt.Errorf("缺少尺寸策略")
	}
	kind, ok := layout.ParsePolicy(words[0])
	if !ok {
		return layout.AxisPolicy{}, fmt.Errorf("未知尺寸策略 %q", words[0])
	}
	p := layout.NewAxisPolicy(kind, 100)
	rest := words[1:]

	if len(rest) > 0 && rest[0] != "min" && rest[0] != "max" {
		if kind == layout.PolicyIgnore {
			return layout.AxisPolicy{}, fmt.Errorf("ignore 不接受数值")
		}
		l, err := dsl.ParseLength(rest[0])
		if err != nil {
			return layout.AxisPolicy{}, err
		}
		if kind == layout.PolicyFixed {
			p.Value = l.Px()
		} else {
			p.Value = l.Value
		}
		rest = rest[1:]
	} else if kind == layout.PolicyFixed {
		return layout.AxisPolicy{}, fmt.Errorf("fixed 需要数值")
	}

	for len(rest) > 0 {
		if len(rest) < 2 {
			return layout.AxisPolicy{}, fmt.Errorf("%s 缺少数值", rest[0])
		}
		v, err := lengthPx(rest[1:2])
		if err != nil {
			return layout.AxisPolicy{}, err
		}
		switch rest[0] {
		case "min":
			p.Min = v
		case "max":
			p.Max = v
		default:
			return layout.AxisPolicy{}, fmt.Errorf("无法识别 %q", rest[0])
		}
		rest = rest[2:]
	}
	return p, nil
}
