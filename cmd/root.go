package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ByLCY/vellum/internal/config"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	rtlFlag      bool
	strictFlag   bool
	globalConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vellum",
	Short: "Lay out and render ui documents",
	Long: `vellum 读取 ui 文档，计算控件布局（anchor、linear、flow），
并输出调试 JSON、PDF/SVG 或终端预览。

Example usage:
  vellum layout demo.vui --data '{"user":{"name":"Ada"}}'
  vellum render demo.vui -o demo.pdf
  vellum inspect demo.vui --rtl
  vellum preview demo.vui`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./vellum.toml or ~/.vellum/vellum.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
	rootCmd.PersistentFlags().BoolVar(&rtlFlag, "rtl", false, "lay out right-to-left")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "panic on contradictory hints")
}

// initConfig reads in config file and ENV variables, then applies flags.
func initConfig(cmd *cobra.Command) error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	if cmd.Flags().Changed("rtl") {
		globalConfig.Layout.RTL = rtlFlag
	}
	if cmd.Flags().Changed("strict") {
		globalConfig.Layout.Strict = strictFlag
	}
	setupLogging(cmd)
	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging(cmd *cobra.Command) {
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.SetOutput(cmd.ErrOrStderr())

	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	if globalConfig == nil {
		return config.Default()
	}
	return globalConfig
}
