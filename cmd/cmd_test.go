package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/vellum/internal/config"
	"github.com/ByLCY/vellum/layout"
	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
)

const demoUI = `ui Demo v1 {
  meta { title: "Demo" }
  screen 200 100 {
    flow { padding-x: 5; spacing-x: 10 }
    control a { size-x: fixed 40; size-y: fixed 20; border: #000; flow-hint { direction: ltr } }
    text greet { content: "Hello ${user.name}" }
  }
}
`

// workspace 在临时目录中写入 demo.vui，并隔离配置文件的查找路径。
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "demo.vui")
	require.NoError(t, os.WriteFile(path, []byte(demoUI), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	path := workspace(t)

	out, err := execute(t, "layout", path, "--data", `{"user":{"name":"Ada"}}`)
	require.NoError(t, err)

	var snap struct {
		Name     string
		Children []struct {
			Name string
			Text string
			Rect struct{ Position, Size [2]float64 }
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "screen", snap.Name)
	require.Len(t, snap.Children, 2)
	assert.Equal(t, [2]float64{5, 0}, snap.Children[0].Rect.Position)
	assert.Equal(t, [2]float64{40, 20}, snap.Children[0].Rect.Size)
	assert.Equal(t, "Hello Ada", snap.Children[1].Text)
	assert.Equal(t, 55.0, snap.Children[1].Rect.Position[0])
}

func TestLayoutCommand_WritesFile(t *testing.T) {
	path := workspace(t)
	debug := filepath.Join(filepath.Dir(path), "debug.json")
	t.Cleanup(func() { layoutOut = "" })

	_, err := execute(t, "layout", path, "--data", "", "--out", debug)
	require.NoError(t, err)
	blob, err := os.ReadFile(debug)
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"name": "greet"`)
}

func TestRenderCommand(t *testing.T) {
	path := workspace(t)
	out := filepath.Join(filepath.Dir(path), "build", "demo.svg")
	t.Cleanup(func() { renderOut = "" })

	stdout, err := execute(t, "render", path, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "SVG")

	blob, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(blob), "<svg")
}

func TestInspectCommand(t *testing.T) {
	path := workspace(t)
	t.Cleanup(func() { rtlFlag = false })

	out, err := execute(t, "inspect", path, "--rtl")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo v1")
	assert.Contains(t, out, "flow")
	// 全局 rtl 只作用于声明 use-rtl 的组件，这里位置不变
	assert.Contains(t, out, "(5, 0) 40×20")
}

func TestPreviewCommand_Print(t *testing.T) {
	path := workspace(t)
	t.Cleanup(func() { previewPrint = false })

	out, err := execute(t, "preview", path, "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "Hello")
}

func TestPreviewRelayout_ManualUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "row.vui")
	require.NoError(t, os.WriteFile(path, []byte(`ui Row v1 {
  screen 100 50 {
    linear { axis: x; use-rtl: true }
    control a { rect: [20, 10] }
  }
}`), 0o644))

	cfg := config.Default()
	cfg.Layout.AutoUpdate = false
	s, err := loadScene(cfg, path, "", newCanvas(cfg, path, canvasrenderer.FormatPDF))
	require.NoError(t, err)
	a := s.Root.Find("a")
	require.Equal(t, 0.0, a.Rect.Position.X())

	sys := layout.NewSystem(layoutOptions(cfg))
	relayout := previewRelayout(sys, s)

	relayout(true, false)
	assert.True(t, s.RTL)
	assert.Equal(t, 0.0, a.Rect.Position.X(), "auto updates are off")

	relayout(true, true)
	assert.Equal(t, 80.0, a.Rect.Position.X())

	sys.SetAutoUpdatesEnabled(true)
	relayout(false, false)
	assert.Equal(t, 0.0, a.Rect.Position.X())
}

func TestLayoutCommand_Errors(t *testing.T) {
	path := workspace(t)
	t.Cleanup(func() { layoutData = "" })

	_, err := execute(t, "layout", filepath.Join(filepath.Dir(path), "nope.vui"))
	assert.ErrorContains(t, err, "无法打开")

	_, err = execute(t, "layout", path, "--data", "{bad")
	assert.ErrorContains(t, err, "data JSON")
}

func TestParseData(t *testing.T) {
	v, err := parseData("")
	require.NoError(t, err)
	assert.Nil(t, v)

	file := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"n": 1}`), 0o644))
	v, err = parseData("@" + file)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 1.0}, v)

	_, err = parseData("@" + file + ".missing")
	assert.Error(t, err)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		flag, out, fallback string
		want                canvasrenderer.Format
	}{
		{"svg", "x.pdf", "pdf", canvasrenderer.FormatSVG},
		{"", "x.SVG", "pdf", canvasrenderer.FormatSVG},
		{"", "", "svg", canvasrenderer.FormatSVG},
		{"", "out", "pdf", canvasrenderer.FormatPDF},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.flag, tt.out, tt.fallback)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	_, err := resolveFormat("", "x.png", "pdf")
	assert.Error(t, err)
}
