package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
)

var (
	renderData    string
	renderOut     string
	renderFormat  string
	renderOutline bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <file.vui>",
	Short: "Render a ui document to PDF or SVG",
	Long: `Render a ui document to PDF or SVG. The format follows --format,
then the output extension, then render.format from the config.

Examples:
  vellum render demo.vui -o demo.pdf
  vellum render demo.vui -o demo.svg --outline`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderData, "data", "d", "", "JSON data bound to ${path} placeholders (@file to read a file)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output path (default <file>.<format>)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "pdf or svg")
	renderCmd.Flags().BoolVar(&renderOutline, "outline", false, "outline every control")
}

// resolveFormat picks the output format by priority: flag > extension > config.
func resolveFormat(flag, out, fallback string) (canvasrenderer.Format, error) {
	if flag != "" {
		return canvasrenderer.ParseFormat(flag)
	}
	if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
		return canvasrenderer.ParseFormat(ext)
	}
	return canvasrenderer.ParseFormat(fallback)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cmd.Flags().Changed("outline") {
		cfg.Render.Outline = renderOutline
	}
	format, err := resolveFormat(renderFormat, renderOut, cfg.Render.Format)
	if err != nil {
		return err
	}
	out := renderOut
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + string(format)
	}

	r := newCanvas(cfg, args[0], format)
	s, err := loadScene(cfg, args[0], renderData, r)
	if err != nil {
		return err
	}
	data, err := r.Render(s)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	if err := writeOutput(out, data); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"out": out, "bytes": len(data)}).Info("渲染完成")
	fmt.Fprintf(cmd.OutOrStdout(), "已生成 %s：%s\n", strings.ToUpper(string(format)), out)
	return nil
}
