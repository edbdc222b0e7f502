package term

import (
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/scene"
)

// fixedText reports a fixed size and renders one line.
type fixedText struct{}

func (fixedText) LayoutLines(content string, _ float64, font scene.FontSpec) ([]scene.TextLine, error) {
	return []scene.TextLine{{Content: content, Width: float64(len(content)) * 8, Height: 16}}, nil
}

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func box(name string, x, y, w, h float64) *layout.Control {
	c := layout.NewControl(name)
	c.Rect = layout.NewRect(x, y, w, h)
	return c
}

func sampleScene() *scene.Scene {
	root := box("screen", 0, 0, 80, 64)
	panel := box("panel", 8, 16, 48, 48)
	dot := box("dot", 64, 0, 8, 16)
	hidden := box("hidden", 0, 0, 80, 64)
	hidden.Visible = false
	root.AddChild(panel, dot, hidden)
	return &scene.Scene{Width: 80, Height: 64, Root: root, Styles: map[*layout.Control]scene.Style{}}
}

func TestRender_Boxes(t *testing.T) {
	r := New(Options{Logger: quiet()})
	out, err := r.Render(sampleScene())
	require.NoError(t, err)

	want := strings.Join([]string{
		"        □",
		" ┌pane┐",
		" │    │",
		" └────┘",
		"",
	}, "\n")
	assert.Equal(t, want, string(out))
}

func TestRender_Text(t *testing.T) {
	s := buildText(t, "hello")
	r := New(Options{Logger: quiet()})
	out, err := r.Render(s)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func buildText(t *testing.T, content string) *scene.Scene {
	t.Helper()
	doc, err := dsl.ParseString(`ui T v1 { screen 80 16 { text t { content: "` + content + `" } } }`)
	require.NoError(t, err)
	s, err := scene.Build(doc, scene.Options{Typesetter: fixedText{}, Logger: quiet()})
	require.NoError(t, err)
	s.Layout(layout.Options{Logger: quiet()})
	return s
}

func TestGridSize(t *testing.T) {
	r := New(Options{CellWidth: 10, CellHeight: 20})
	cols, rows := r.GridSize(&scene.Scene{Width: 95, Height: 41})
	assert.Equal(t, 10, cols)
	assert.Equal(t, 3, rows)
}

func TestRender_NilScene(t *testing.T) {
	_, err := New(Options{}).Render(nil)
	assert.Error(t, err)
}

func TestPreview_ToggleAndQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 10)

	type call struct{ rtl, force bool }
	var calls []call
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	New(Options{Logger: quiet()}).Preview(screen, sampleScene(), false, func(rtl, force bool) {
		calls = append(calls, call{rtl, force})
	})
	assert.Equal(t, []call{{true, false}, {true, true}, {false, false}}, calls)
}
