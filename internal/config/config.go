package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration
type Config struct {
	Layout  LayoutConfig  `mapstructure:"layout"`
	Render  RenderConfig  `mapstructure:"render"`
	Preview PreviewConfig `mapstructure:"preview"`
	Log     LogConfig     `mapstructure:"log"`
}

// LayoutConfig 对应 layout.Options。
type LayoutConfig struct {
	RTL          bool `mapstructure:"rtl"`
	Strict       bool `mapstructure:"strict"`
	SizeProperty int  `mapstructure:"size_property"`
	// AutoUpdate 为 false 时预览中的改动需要按 l 手动重新布局。
	AutoUpdate bool `mapstructure:"auto_update"`
}

// RenderConfig holds canvas renderer settings
type RenderConfig struct {
	Format  string  `mapstructure:"format"`
	Scale   float64 `mapstructure:"scale"` // mm per px
	FontDir string  `mapstructure:"font_dir"`
	Outline bool    `mapstructure:"outline"`
}

// PreviewConfig holds terminal preview settings
type PreviewConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from multiple sources with priority:
// 1. Command line flags (applied by the caller)
// 2. Environment variables (VELLUM_LAYOUT_RTL, ...)
// 3. Configuration file
// 4. Defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("VELLUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("vellum")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vellum")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("layout.rtl", false)
	v.SetDefault("layout.strict", false)
	v.SetDefault("layout.size_property", 0)
	v.SetDefault("layout.auto_update", true)

	v.SetDefault("render.format", "pdf")
	v.SetDefault("render.scale", 25.4/96)
	v.SetDefault("render.font_dir", "")
	v.SetDefault("render.outline", false)

	v.SetDefault("preview.cell_width", 8)
	v.SetDefault("preview.cell_height", 16)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
