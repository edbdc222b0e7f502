package scene

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ByLCY/vellum/binding"
	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/layout"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

type builder struct {
	scene *Scene
	opts  Options
	log   logrus.FieldLogger

	names   map[string]bool
	counter int
}

// textProps collects the text-only properties of a control block.
type textProps struct {
	content []string
	font    string
	color   string
	wrap    bool
}

// Build 将 DSL 文档转换为控件树，并解析资源与数据绑定。
func Build(doc *dsl.Document, opts Options) (*Scene, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("缺少排版器 Typesetter")
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	b := &builder{
		scene: &Scene{
			Name:    doc.Name,
			Version: doc.Version,
			Fonts:   map[string]FontSpec{},
			Colors:  map[string]string{},
			Styles:  map[*layout.Control]Style{},
		},
		opts:  opts,
		log:   log.WithField("ui", doc.Name),
		names: map[string]bool{},
	}

	var screen *dsl.ScreenSection
	for _, sec := range doc.Sections {
		switch {
		case sec.Meta != nil:
			if err := b.meta(sec.Meta.Block); err != nil {
				return nil, fmt.Errorf("解析 meta 失败: %w", err)
			}
		case sec.Resources != nil:
			if err := b.resources(sec.Resources.Block); err != nil {
				return nil, fmt.Errorf("解析 resources 失败: %w", err)
			}
		case sec.Screen != nil:
			if screen != nil {
				return nil, fmt.Errorf("第 %d 行: 只允许一个 screen", sec.Screen.Pos.Line)
			}
			screen = sec.Screen
		}
	}
	if screen == nil {
		return nil, fmt.Errorf("缺少 screen 段")
	}
	if err := b.screen(screen); err != nil {
		return nil, fmt.Errorf("解析 screen 失败: %w", err)
	}

	b.log.WithField("controls", b.scene.Count()).Debug("scene: built")
	return b.scene, nil
}

func (b *builder) meta(block *dsl.Block) error {
	m := &b.scene.Meta
	for _, a := range block.Assignments() {
		switch a.Key {
		case "title":
			m.Title = b.text(a.Value)
		case "author":
			m.Author = b.text(a.Value)
		case "subject":
			m.Subject = b.text(a.Value)
		case "keywords":
			if a.Value.Array != nil {
				for _, v := range a.Value.Array.Values {
					m.Keywords = append(m.Keywords, b.text(v))
				}
			} else {
				m.Keywords = append(m.Keywords, b.text(a.Value))
			}
		default:
			b.log.WithField("key", a.Key).Warn("忽略未知的 meta 字段")
		}
	}
	return nil
}

func (b *builder) resources(block *dsl.Block) error {
	for _, cmd := range block.Commands() {
		args := cmd.ArgValues()
		if len(args) == 0 {
			return fmt.Errorf("第 %d 行: %s 缺少名称", cmd.Pos.Line, cmd.Name)
		}
		name := args[0]
		switch cmd.Name {
		case "font":
			font, err := b.font(name, cmd.Block)
			if err != nil {
				return fmt.Errorf("第 %d 行: 字体 %s: %w", cmd.Pos.Line, name, err)
			}
			b.scene.Fonts[name] = font
		case "color":
			rest := args[1:]
			if len(rest) > 0 && rest[0] == "=" {
				rest = rest[1:]
			}
			if len(rest) != 1 || !hexColor.MatchString(rest[0]) {
				return fmt.Errorf("第 %d 行: 颜色 %s 需要 #rrggbb 形式的值", cmd.Pos.Line, name)
			}
			b.scene.Colors[name] = rest[0]
		default:
			return fmt.Errorf("第 %d 行: 未知资源类型 %s", cmd.Pos.Line, cmd.Name)
		}
	}
	return nil
}

func (b *builder) font(name string, block *dsl.Block) (FontSpec, error) {
	font := DefaultFont
	font.Name = name
	err := b.assign(block, fieldSet{
		floats: map[string]*float64{"size": &font.Size, "line-height": &font.LineHeight},
		custom: func(key string, words []string) (bool, error) {
			switch key {
			case "src":
				font.Src = strings.Join(words, " ")
			case "style":
				font.Style = strings.Join(words, " ")
			default:
				return false, nil
			}
			return true, nil
		},
	})
	if err != nil {
		return FontSpec{}, err
	}
	if font.Size <= 0 {
		return FontSpec{}, fmt.Errorf("字号必须为正数")
	}
	return font, nil
}

func (b *builder) screen(sec *dsl.ScreenSection) error {
	var dims []float64
	for _, p := range sec.Params {
		switch strings.ToLower(p.Value) {
		case "rtl":
			b.scene.RTL = true
		case "ltr":
			b.scene.RTL = false
		default:
			l, err := dsl.ParseLength(b.interpolate(p.Value))
			if err != nil {
				return fmt.Errorf("第 %d 行: screen 参数: %w", sec.Pos.Line, err)
			}
			dims = append(dims, l.Px())
		}
	}
	if len(dims) != 2 || dims[0] <= 0 || dims[1] <= 0 {
		return fmt.Errorf("第 %d 行: screen 需要正的宽度和高度", sec.Pos.Line)
	}
	b.scene.Width, b.scene.Height = dims[0], dims[1]

	root := layout.NewControl("screen")
	root.Rect = layout.NewRect(0, 0, dims[0], dims[1])
	b.names[root.Name] = true
	b.scene.Root = root
	return b.block(root, sec.Block, false)
}

func (b *builder) control(cmd *dsl.Command, parent *layout.Control) error {
	b.counter++
	name := fmt.Sprintf("%s-%d", cmd.Name, b.counter)
	if args := cmd.ArgValues(); len(args) > 0 {
		name = args[0]
	}
	if b.names[name] {
		return fmt.Errorf("第 %d 行: 控件名重复: %s", cmd.Pos.Line, name)
	}
	b.names[name] = true

	c := layout.NewControl(name)
	parent.AddChild(c)
	if err := b.block(c, cmd.Block, cmd.Name == "text"); err != nil {
		return fmt.Errorf("控件 %s: %w", name, err)
	}
	return nil
}

// block applies the statements of a control body to c.
func (b *builder) block(c *layout.Control, block *dsl.Block, isText bool) error {
	if block == nil {
		if isText {
			return fmt.Errorf("text 控件缺少内容")
		}
		return nil
	}
	tp := textProps{wrap: true}
	autoDirection := false

	for _, st := range block.Statements {
		switch {
		case st.Assignment != nil:
			if err := b.property(c, st.Assignment, isText, &tp); err != nil {
				return err
			}
		case st.Text != nil:
			if !isText {
				return fmt.Errorf("只有 text 控件可以包含文本")
			}
			tp.content = append(tp.content, b.interpolate(string(st.Text.Value)))
		case st.Command != nil:
			cmd := st.Command
			var err error
			switch cmd.Name {
			case "control", "text":
				err = b.control(cmd, c)
			case "flow":
				c.Hints.Flow, err = b.flow(cmd.Block)
			case "linear":
				c.Hints.Linear, err = b.linear(cmd.Block)
			case "anchor":
				c.Hints.Anchor, err = b.anchor(cmd.Block)
			case "flow-hint":
				c.Hints.FlowItem, autoDirection, err = b.flowHint(cmd.Block)
			default:
				err = fmt.Errorf("未知指令 %s", cmd.Name)
			}
			if err != nil {
				return fmt.Errorf("第 %d 行: %w", cmd.Pos.Line, err)
			}
		}
	}

	if isText {
		if err := b.attachText(c, tp); err != nil {
			return err
		}
	}
	if autoDirection {
		content := ""
		if t, ok := c.Content.(*Text); ok {
			content = t.Text()
		}
		c.Hints.FlowItem.ContentDirection = DetectDirection(content)
	}
	return nil
}

func (b *builder) property(c *layout.Control, a *dsl.Assignment, isText bool, tp *textProps) error {
	wrapErr := func(err error) error {
		return fmt.Errorf("第 %d 行: %s: %w", a.Pos.Line, a.Key, err)
	}
	words := b.words(a.Value)

	switch a.Key {
	case "size-x", "size-y":
		policy, err := parsePolicy(words)
		if err != nil {
			return wrapErr(err)
		}
		if c.Hints.Size == nil {
			c.Hints.Size = layout.NewSizePolicy()
		}
		axis := layout.AxisX
		if a.Key == "size-y" {
			axis = layout.AxisY
		}
		c.Hints.Size.SetByAxis(axis, policy)
	case "visible":
		v, err := dsl.ParseBool(strings.Join(words, " "))
		if err != nil {
			return wrapErr(err)
		}
		c.Visible = v
	case "ignore-layout":
		v, err := dsl.ParseBool(strings.Join(words, " "))
		if err != nil {
			return wrapErr(err)
		}
		c.Hints.IgnoreLayout = v
	case "rect":
		r, err := b.floats(a.Value)
		if err != nil {
			return wrapErr(err)
		}
		switch len(r) {
		case 2:
			c.Rect = layout.NewRect(0, 0, r[0], r[1])
		case 4:
			c.Rect = layout.NewRect(r[0], r[1], r[2], r[3])
		default:
			return wrapErr(fmt.Errorf("需要 [w, h] 或 [x, y, w, h]"))
		}
	case "background", "border":
		col, err := b.color(words)
		if err != nil {
			return wrapErr(err)
		}
		style := b.scene.Styles[c]
		if a.Key == "background" {
			style.Background = col
		} else {
			style.Border = col
			if style.BorderWidth == 0 {
				style.BorderWidth = 1
			}
		}
		b.scene.Styles[c] = style
	case "border-width":
		w, err := lengthPx(words)
		if err != nil {
			return wrapErr(err)
		}
		style := b.scene.Styles[c]
		style.BorderWidth = w
		b.scene.Styles[c] = style
	default:
		if !isText {
			return wrapErr(fmt.Errorf("未知属性"))
		}
		return b.textProperty(a.Key, words, tp, wrapErr)
	}
	return nil
}

func (b *builder) textProperty(key string, words []string, tp *textProps, wrapErr func(error) error) error {
	switch key {
	case "content":
		tp.content = append(tp.content, strings.Join(words, " "))
	case "font":
		tp.font = strings.Join(words, " ")
	case "color":
		col, err := b.color(words)
		if err != nil {
			return wrapErr(err)
		}
		tp.color = col
	case "wrap":
		v, err := dsl.ParseBool(strings.Join(words, " "))
		if err != nil {
			return wrapErr(err)
		}
		tp.wrap = v
	default:
		return wrapErr(fmt.Errorf("未知属性"))
	}
	return nil
}

func (b *builder) attachText(c *layout.Control, tp textProps) error {
	font := DefaultFont
	switch {
	case tp.font != "":
		f, ok := b.scene.Fonts[tp.font]
		if !ok {
			return fmt.Errorf("未定义字体 %s", tp.font)
		}
		font = f
	default:
		if f, ok := b.scene.Fonts["Body"]; ok {
			font = f
		}
	}
	col := tp.color
	if col == "" {
		col = "#000000"
	}

	t := &Text{
		content:    strings.Join(tp.content, "\n"),
		font:       font,
		color:      col,
		wrap:       tp.wrap,
		typesetter: b.opts.Typesetter,
		log:        b.log.WithField("control", c.Name),
	}
	if _, err := b.opts.Typesetter.LayoutLines(t.content, 0, font); err != nil {
		return fmt.Errorf("文本排版失败: %w", err)
	}
	c.Content = t

	if c.Hints.Size == nil {
		c.Hints.Size = &layout.SizePolicy{
			Horizontal: layout.NewAxisPolicy(layout.PolicyPercentOfContent, 100),
			Vertical:   layout.NewAxisPolicy(layout.PolicyPercentOfContent, 100),
		}
	}
	return nil
}

func (b *builder) color(words []string) (string, error) {
	if len(words) != 1 {
		return "", fmt.Errorf("需要单个颜色值")
	}
	if col, ok := b.scene.Colors[words[0]]; ok {
		return col, nil
	}
	if hexColor.MatchString(words[0]) {
		return words[0], nil
	}
	return "", fmt.Errorf("未知颜色 %q", words[0])
}

// words returns the words of v with data placeholders resolved.
func (b *builder) words(v *dsl.Value) []string {
	words := v.Words()
	for i, w := range words {
		words[i] = b.interpolate(w)
	}
	return words
}

func (b *builder) text(v *dsl.Value) string {
	return strings.Join(b.words(v), " ")
}

func (b *builder) floats(v *dsl.Value) ([]float64, error) {
	if v.Array == nil {
		return nil, fmt.Errorf("需要数组")
	}
	out := make([]float64, 0, len(v.Array.Values))
	for i, item := range v.Array.Values {
		f, err := lengthPx(b.words(item))
		if err != nil {
			return nil, fmt.Errorf("数组第 %d 项: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func (b *builder) interpolate(s string) string {
	if !binding.HasPlaceholders(s) {
		return s
	}
	if missing := binding.Missing(s, b.opts.Data); len(missing) > 0 {
		b.log.WithField("paths", missing).Warn("数据绑定路径不存在")
	}
	return binding.Interpolate(s, b.opts.Data)
}

func lengthPx(words []string) (float64, error) {
	if len(words) != 1 {
		return 0, fmt.Errorf("需要单个数值，得到 %q", strings.Join(words, " "))
	}
	l, err := dsl.ParseLength(words[0])
	if err != nil {
		return 0, err
	}
	return l.Px(), nil
}
