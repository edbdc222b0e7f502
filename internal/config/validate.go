package config

import (
	"fmt"
	"strings"
)

// Validate validates the configuration and returns an error if invalid
func Validate(config *Config) error {
	if err := validateRenderConfig(&config.Render); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := validatePreviewConfig(&config.Preview); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func validateRenderConfig(config *RenderConfig) error {
	switch strings.ToLower(config.Format) {
	case "pdf", "svg":
	default:
		return fmt.Errorf("format 只能是 pdf 或 svg，当前为 %q", config.Format)
	}
	if config.Scale <= 0 {
		return fmt.Errorf("scale 必须为正数")
	}
	return nil
}

func validatePreviewConfig(config *PreviewConfig) error {
	if config.CellWidth <= 0 || config.CellHeight <= 0 {
		return fmt.Errorf("cell_width 与 cell_height 必须为正数")
	}
	return nil
}

func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(config.Level)] {
		return fmt.Errorf("无效的日志级别 %q", config.Level)
	}
	if config.Format != "text" && config.Format != "json" {
		return fmt.Errorf("无效的日志格式 %q（可选: text, json）", config.Format)
	}
	return nil
}
