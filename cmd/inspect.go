package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ByLCY/vellum/layout"
	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
	"github.com/ByLCY/vellum/scene"
)

var (
	inspectData string

	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0F62FE"))
	hiddenStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	rectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#24A148"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8D8D8D"))
	textStyle   = lipgloss.NewStyle().Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file.vui>",
	Short: "Print the laid out control tree",
	Long: `Print the control tree with absolute rects, the layout kind of each
container and the text of text controls.

Examples:
  vellum inspect demo.vui
  vellum inspect demo.vui --rtl`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectData, "data", "d", "", "JSON data bound to ${path} placeholders (@file to read a file)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	s, err := loadScene(cfg, args[0], inspectData, newCanvas(cfg, args[0], canvasrenderer.FormatPDF))
	if err != nil {
		return err
	}
	writeTree(cmd.OutOrStdout(), s)
	return nil
}

func writeTree(w io.Writer, s *scene.Scene) {
	title := fmt.Sprintf("%s %s  %gx%g", s.Name, s.Version, s.Width, s.Height)
	if s.RTL {
		title += "  rtl"
	}
	fmt.Fprintln(w, headerStyle.Render(title))

	s.Root.Walk(func(c *layout.Control, depth int) {
		abs := c.AbsoluteRect()
		name := nameStyle.Render(c.Name)
		if !c.Visible {
			name = hiddenStyle.Render(c.Name)
		}
		parts := []string{
			strings.Repeat("  ", depth) + name,
			rectStyle.Render(fmt.Sprintf("(%g, %g) %g×%g", abs.Position.X(), abs.Position.Y(), abs.Size.X(), abs.Size.Y())),
		}
		if kind := layoutKind(c.Hints); kind != "" {
			parts = append(parts, kindStyle.Render(kind))
		}
		if t, ok := c.Content.(layout.Texter); ok {
			parts = append(parts, textStyle.Render(fmt.Sprintf("%q", t.Text())))
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	})
}

func layoutKind(h layout.Hints) string {
	var kinds []string
	if h.Flow != nil && h.Flow.Enabled {
		kinds = append(kinds, "flow")
	}
	if h.Linear != nil && h.Linear.Enabled {
		axis := "y"
		if h.Linear.Axis == layout.AxisX {
			axis = "x"
		}
		kinds = append(kinds, "linear-"+axis)
	}
	if h.Anchor != nil {
		kinds = append(kinds, "anchored")
	}
	if h.IgnoreLayout {
		kinds = append(kinds, "ignore-layout")
	}
	return strings.Join(kinds, ",")
}
