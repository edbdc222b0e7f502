package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/vellum/layout"
	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
)

var (
	layoutData string
	layoutOut  string
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout <file.vui>",
	Short: "Compute the layout and print it as JSON",
	Long: `Compute the layout of a ui document and dump every control's
relative and absolute rect together with its hints.

Examples:
  vellum layout demo.vui
  vellum layout demo.vui --data @data.json --out debug.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVarP(&layoutData, "data", "d", "", "JSON data bound to ${path} placeholders (@file to read a file)")
	layoutCmd.Flags().StringVarP(&layoutOut, "out", "o", "", "write JSON to this file instead of stdout")
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	r := newCanvas(cfg, args[0], canvasrenderer.FormatPDF)
	s, err := loadScene(cfg, args[0], layoutData, r)
	if err != nil {
		return err
	}

	snap := layout.TakeSnapshot(s.Root)
	if layoutOut != "" {
		if err := layout.WriteDebugJSON(snap, layoutOut); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
		return nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
