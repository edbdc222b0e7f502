package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
	"github.com/ByLCY/vellum/scene"
)

const (
	// mmToPt 将毫米换算为点。
	mmToPt = 72.0 / 25.4

	outlineWidth = 0.2
	defaultText  = "#000000"
)

var transparent = color.RGBA{}

// Format 是输出文件格式。
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "pdf" and "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("不支持的输出格式 %q（可选: pdf, svg）", s)
}

// Renderer draws laid out scenes via github.com/tdewolff/canvas and
// measures text for the layout pass.
type Renderer struct {
	format  Format
	scale   float64
	outline bool
	log     logrus.FieldLogger
	fonts   *fontCache
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ scene.Typesetter  = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	// Format 默认为 pdf。
	Format Format
	// Scale 为每 px 对应的毫米数，默认 96 dpi。
	Scale float64
	// BaseDir 用于解析相对路径的字体文件。
	BaseDir string
	// Outline 为每个控件绘制细线边框，便于调试布局。
	Outline bool
	Logger  logrus.FieldLogger
}

// NewRenderer creates a PDF renderer rooted at baseDir for resolving fonts.
func NewRenderer(baseDir string) *Renderer { return NewRendererWithOptions(Options{BaseDir: baseDir}) }

// NewRendererWithOptions creates a renderer, filling unset options with defaults.
func NewRendererWithOptions(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatPDF
	}
	if opts.Scale <= 0 {
		opts.Scale = dsl.MmPerPx
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Renderer{
		format:  opts.Format,
		scale:   opts.Scale,
		outline: opts.Outline,
		log:     opts.Logger,
		fonts:   newFontCache(opts.BaseDir, opts.Logger),
	}
}

// Render draws the scene and encodes it in the configured format.
func (r *Renderer) Render(s *scene.Scene) ([]byte, error) {
	if s == nil || s.Root == nil {
		return nil, fmt.Errorf("渲染场景为空")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("场景尺寸无效: %gx%g", s.Width, s.Height)
	}

	width, height := r.mm(s.Width), r.mm(s.Height)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	if err := r.drawControl(ctx, s, s.Root, layout.Vector2{}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch r.format {
	case FormatSVG:
		writer := svg.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	default:
		writer := pdf.New(&buf, width, height, nil)
		applyMeta(writer, s.Meta)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta scene.Meta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, "vellum")
}

// LayoutLines 实现 scene.Typesetter 接口，使用贪心换行算法。
// 入参与返回值均为 px，与字体系统交互时换算为 mm 与 pt。
func (r *Renderer) LayoutLines(content string, maxWidth float64, font scene.FontSpec) ([]scene.TextLine, error) {
	face, err := r.fontFace(font, color.Black)
	if err != nil {
		return nil, err
	}
	measure := func(s string) float64 { return textWidth(face, s) / r.scale }
	lines := greedyWrap(content, maxWidth, measure)

	height := font.Size * font.LineHeight
	if height <= 0 {
		height = face.Metrics().LineHeight / r.scale
	}
	for i := range lines {
		lines[i].Height = height
	}
	return lines, nil
}

func (r *Renderer) drawControl(ctx *canvas.Context, s *scene.Scene, c *layout.Control, origin layout.Vector2) error {
	if !c.Visible {
		return nil
	}
	rect := c.Rect
	x, y := origin.X()+rect.Position.X(), origin.Y()+rect.Position.Y()

	style := s.StyleOf(c)
	if style.Background != "" || style.Border != "" {
		var fill color.Color = transparent
		if style.Background != "" {
			fill = canvas.Hex(style.Background)
		}
		ctx.SetFillColor(fill)
		if style.Border != "" {
			ctx.SetStrokeColor(canvas.Hex(style.Border))
			ctx.SetStrokeWidth(r.mm(style.BorderWidth))
		} else {
			ctx.SetStrokeColor(transparent)
		}
		ctx.DrawPath(r.mm(x), r.mm(y), canvas.Rectangle(r.mm(rect.Size.X()), r.mm(rect.Size.Y())))
	}
	if r.outline {
		ctx.SetFillColor(transparent)
		ctx.SetStrokeColor(canvas.Hex("#9e9e9e"))
		ctx.SetStrokeWidth(outlineWidth)
		ctx.DrawPath(r.mm(x), r.mm(y), canvas.Rectangle(r.mm(rect.Size.X()), r.mm(rect.Size.Y())))
	}

	if text, ok := c.Content.(*scene.Text); ok {
		if err := r.drawText(ctx, text, layout.NewRect(x, y, rect.Size.X(), rect.Size.Y())); err != nil {
			return fmt.Errorf("绘制控件 %s 失败: %w", c.Name, err)
		}
	}

	for _, child := range c.Children() {
		if err := r.drawControl(ctx, s, child, layout.Vec2(x, y)); err != nil {
			return err
		}
	}
	return nil
}

// drawText 在 px 坐标系的 box 内逐行绘制文本，右到左文本靠右对齐。
func (r *Renderer) drawText(ctx *canvas.Context, text *scene.Text, box layout.Rect) error {
	col := text.Color()
	if col == "" {
		col = defaultText
	}
	face, err := r.fontFace(text.Font(), canvas.Hex(col))
	if err != nil {
		return err
	}

	align, anchorX := canvas.Left, box.Position.X()
	if scene.DetectDirection(text.Text()) == layout.DirectionRTL {
		align, anchorX = canvas.Right, box.Position.X()+box.Size.X()
	}

	ascent := face.Metrics().Ascent
	cursorY := box.Position.Y()
	for _, line := range text.Lines(box.Size.X()) {
		if line.Content != "" {
			textLine := canvas.NewTextLine(face, line.Content, align)
			// 基线位置：行顶部加上字体上升部（mm）
			ctx.DrawText(r.mm(anchorX), r.mm(cursorY)+ascent, textLine)
		}
		cursorY += line.Height
	}
	return nil
}

// textWidth 返回单行文本的宽度（mm）。
// 按脚本与嵌入层级分段后逐段指定方向塑形，FontFace.TextWidth 不指定方向，
// 遇到右到左文本会在塑形时越界。
func textWidth(face *canvas.FontFace, s string) float64 {
	if s == "" {
		return 0
	}
	return canvas.NewTextLine(face, s, canvas.Left).Bounds().W()
}

// mm 将 px 换算为画布使用的毫米。
func (r *Renderer) mm(px float64) float64 { return px * r.scale }

// fontFace 按 px 字号创建字体面。
func (r *Renderer) fontFace(font scene.FontSpec, col color.Color) (*canvas.FontFace, error) {
	size := font.Size
	if size <= 0 {
		size = scene.DefaultFont.Size
	}
	return r.fonts.face(font, r.mm(size)*mmToPt, col)
}
