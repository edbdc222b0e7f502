package cmd

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ByLCY/vellum/layout"
	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
	"github.com/ByLCY/vellum/renderer/term"
	"github.com/ByLCY/vellum/scene"
)

var (
	previewData  string
	previewPrint bool
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <file.vui>",
	Short: "Preview the layout in the terminal",
	Long: `Draw the control boxes in the terminal. Press r to toggle
right-to-left, l to lay out again, q or Esc to quit. With
layout.auto_update = false, changes wait for l.

Examples:
  vellum preview demo.vui
  vellum preview demo.vui --print`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewData, "data", "d", "", "JSON data bound to ${path} placeholders (@file to read a file)")
	previewCmd.Flags().BoolVarP(&previewPrint, "print", "p", false, "print a single frame instead of opening the screen")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	s, err := loadScene(cfg, args[0], previewData, newCanvas(cfg, args[0], canvasrenderer.FormatPDF))
	if err != nil {
		return err
	}
	r := term.New(term.Options{
		CellWidth:  cfg.Preview.CellWidth,
		CellHeight: cfg.Preview.CellHeight,
		Logger:     logrus.StandardLogger(),
	})

	if previewPrint {
		frame, err := r.Render(s)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(frame)
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("打开终端失败: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("初始化终端失败: %w", err)
	}
	// 预览期间日志会破坏画面
	logrus.SetOutput(io.Discard)
	defer func() {
		screen.Fini()
		logrus.SetOutput(cmd.ErrOrStderr())
	}()

	opts := layoutOptions(cfg)
	opts.RTL = opts.RTL || s.RTL
	sys := layout.NewSystem(opts)
	r.Preview(screen, s, sys.IsRTL(), previewRelayout(sys, s))
	return nil
}

// previewRelayout 返回预览使用的重新布局回调。
// 关闭自动更新时只记录方向，等待 l 键强制布局。
func previewRelayout(sys *layout.System, s *scene.Scene) term.Relayout {
	return func(rtl, force bool) {
		sys.SetRTL(rtl)
		s.RTL = rtl
		if force {
			sys.Apply(s.Root, false)
			return
		}
		sys.Update(s.Root, false)
	}
}
