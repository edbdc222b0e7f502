package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/internal/config"
	"github.com/ByLCY/vellum/layout"
	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
	"github.com/ByLCY/vellum/scene"
)

// newCanvas 创建渲染器，字体相对路径默认相对于 ui 文件所在目录。
func newCanvas(cfg *config.Config, inputPath string, format canvasrenderer.Format) *canvasrenderer.Renderer {
	baseDir := cfg.Render.FontDir
	if baseDir == "" {
		baseDir = filepath.Dir(inputPath)
	}
	return canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Format:  format,
		Scale:   cfg.Render.Scale,
		BaseDir: baseDir,
		Outline: cfg.Render.Outline,
		Logger:  logrus.StandardLogger(),
	})
}

func layoutOptions(cfg *config.Config) layout.Options {
	return layout.Options{
		RTL:           cfg.Layout.RTL,
		Strict:        cfg.Layout.Strict,
		SizeProperty:  cfg.Layout.SizeProperty,
		ManualUpdates: !cfg.Layout.AutoUpdate,
		Logger:        logrus.StandardLogger(),
	}
}

// parseData 解析 --data 参数；以 @ 开头时从文件读取。
func parseData(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	blob := []byte(raw)
	if raw[0] == '@' {
		var err error
		if blob, err = os.ReadFile(raw[1:]); err != nil {
			return nil, fmt.Errorf("读取 data 文件失败: %w", err)
		}
	}
	var data any
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, fmt.Errorf("解析 data JSON 失败: %w", err)
	}
	return data, nil
}

// loadScene 串联解析、构建与布局。
func loadScene(cfg *config.Config, inputPath, rawData string, ts scene.Typesetter) (*scene.Scene, error) {
	data, err := parseData(rawData)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("无法打开 ui 文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(inputPath, file)
	if err != nil {
		return nil, fmt.Errorf("解析 DSL 失败: %w", err)
	}
	s, err := scene.Build(doc, scene.Options{Typesetter: ts, Data: data, Logger: logrus.StandardLogger()})
	if err != nil {
		return nil, fmt.Errorf("构建场景失败: %w", err)
	}
	s.Layout(layoutOptions(cfg))
	logrus.WithFields(logrus.Fields{
		"file":     inputPath,
		"controls": s.Count(),
		"rtl":      cfg.Layout.RTL || s.RTL,
	}).Debug("布局完成")
	return s, nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入文件 %s 失败: %w", path, err)
	}
	return nil
}
