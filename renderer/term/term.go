// Package term draws laid out scenes as character cells with tcell.
package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
	"github.com/ByLCY/vellum/scene"
)

// Options configures the terminal renderer.
type Options struct {
	// CellWidth 和 CellHeight 为单个字符格对应的 px，默认 8x16。
	CellWidth  float64
	CellHeight float64
	Logger     logrus.FieldLogger
}

// Renderer maps control rects onto a grid of terminal cells.
type Renderer struct {
	cellW, cellH float64
	log          logrus.FieldLogger
}

var _ renderer.Renderer = (*Renderer)(nil)

// New creates a terminal renderer.
func New(opts Options) *Renderer {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Renderer{cellW: opts.CellWidth, cellH: opts.CellHeight, log: opts.Logger}
}

// GridSize returns the number of columns and rows the scene covers.
func (r *Renderer) GridSize(s *scene.Scene) (int, int) {
	return max(1, int(math.Ceil(s.Width/r.cellW))), max(1, int(math.Ceil(s.Height/r.cellH)))
}

// Render draws the scene onto an off-screen grid and returns it as text,
// one line per row with trailing blanks removed.
func (r *Renderer) Render(s *scene.Scene) ([]byte, error) {
	if s == nil || s.Root == nil {
		return nil, fmt.Errorf("渲染场景为空")
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("初始化终端失败: %w", err)
	}
	defer screen.Fini()

	cols, rows := r.GridSize(s)
	screen.SetSize(cols, rows)
	r.Draw(screen, s)
	return []byte(Snapshot(screen)), nil
}

// Snapshot returns the screen content as text.
func Snapshot(screen tcell.Screen) string {
	cols, rows := screen.Size()
	var b strings.Builder
	for y := range rows {
		var line strings.Builder
		for x := range cols {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch == 0 {
				ch = ' '
			}
			line.WriteRune(ch)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Draw clears the screen and paints every visible control.
func (r *Renderer) Draw(screen tcell.Screen, s *scene.Scene) {
	screen.Clear()
	r.drawControl(screen, s, s.Root, layout.Vector2{})
	screen.Show()
}

// cellRect is an inclusive range of cells.
type cellRect struct{ x0, y0, x1, y1 int }

func (r *Renderer) cells(x, y, w, h float64) cellRect {
	c := cellRect{
		x0: int(math.Round(x / r.cellW)),
		y0: int(math.Round(y / r.cellH)),
		x1: int(math.Round((x+w)/r.cellW)) - 1,
		y1: int(math.Round((y+h)/r.cellH)) - 1,
	}
	c.x1 = max(c.x1, c.x0)
	c.y1 = max(c.y1, c.y0)
	return c
}

func (r *Renderer) drawControl(screen tcell.Screen, s *scene.Scene, c *layout.Control, origin layout.Vector2) {
	if !c.Visible {
		return
	}
	x, y := origin.X()+c.Rect.Position.X(), origin.Y()+c.Rect.Position.Y()
	box := r.cells(x, y, c.Rect.Size.X(), c.Rect.Size.Y())
	style := s.StyleOf(c)

	if style.Background != "" {
		bg := tcell.StyleDefault.Background(tcell.GetColor(style.Background))
		for cy := box.y0; cy <= box.y1; cy++ {
			for cx := box.x0; cx <= box.x1; cx++ {
				screen.SetContent(cx, cy, ' ', nil, bg)
			}
		}
	}

	if text, ok := c.Content.(*scene.Text); ok {
		r.drawText(screen, text, box, c.Rect.Size.X())
	} else if c != s.Root {
		fg := tcell.StyleDefault
		if style.Border != "" {
			fg = fg.Foreground(tcell.GetColor(style.Border))
		}
		drawBox(screen, box, fg)
		drawLabel(screen, box, c.Name, fg)
	}

	for _, child := range c.Children() {
		r.drawControl(screen, s, child, layout.Vec2(x, y))
	}
}

func (r *Renderer) drawText(screen tcell.Screen, text *scene.Text, box cellRect, width float64) {
	st := tcell.StyleDefault
	if col := text.Color(); col != "" {
		st = st.Foreground(tcell.GetColor(col))
	}
	offset := 0.0
	for _, line := range text.Lines(width) {
		row := box.y0 + int(math.Round(offset/r.cellH))
		if row > box.y1 {
			break
		}
		putString(screen, box.x0, row, box.x1, line.Content, st)
		offset += line.Height
	}
}

func drawBox(screen tcell.Screen, b cellRect, st tcell.Style) {
	switch {
	case b.x0 == b.x1 && b.y0 == b.y1:
		screen.SetContent(b.x0, b.y0, '□', nil, st)
		return
	case b.y0 == b.y1:
		for x := b.x0; x <= b.x1; x++ {
			screen.SetContent(x, b.y0, '─', nil, st)
		}
		return
	case b.x0 == b.x1:
		for y := b.y0; y <= b.y1; y++ {
			screen.SetContent(b.x0, y, '│', nil, st)
		}
		return
	}
	for x := b.x0 + 1; x < b.x1; x++ {
		screen.SetContent(x, b.y0, '─', nil, st)
		screen.SetContent(x, b.y1, '─', nil, st)
	}
	for y := b.y0 + 1; y < b.y1; y++ {
		screen.SetContent(b.x0, y, '│', nil, st)
		screen.SetContent(b.x1, y, '│', nil, st)
	}
	screen.SetContent(b.x0, b.y0, '┌', nil, st)
	screen.SetContent(b.x1, b.y0, '┐', nil, st)
	screen.SetContent(b.x0, b.y1, '└', nil, st)
	screen.SetContent(b.x1, b.y1, '┘', nil, st)
}

// drawLabel writes the name into the top border when it fits.
func drawLabel(screen tcell.Screen, b cellRect, name string, st tcell.Style) {
	if b.x1-b.x0 < 2 || b.y0 == b.y1 {
		return
	}
	putString(screen, b.x0+1, b.y0, b.x1-1, name, st)
}

// putString writes s from column x and clips it at column limit.
func putString(screen tcell.Screen, x, y, limit int, s string, st tcell.Style) {
	for _, ch := range s {
		if x > limit {
			return
		}
		screen.SetContent(x, y, ch, nil, st)
		x++
	}
}
