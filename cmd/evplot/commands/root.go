package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/evplot/internal/config"
	"github.com/livp123/evplot/internal/utils/logger"
)

var (
	cfgPath   string
	globalCfg *config.GlobalConfig
)

var RootCmd = &cobra.Command{
	Use:   "evplot",
	Short: "Plot cumulative event counts from a timestamped event log",
	// Short: 从带时间戳的事件日志绘制累计事件计数
	Long: `evplot reads a CSV-like log of timestamped event labels
("<kind>, <timestamp>" per line), tallies cumulative counts per kind,
and renders the counters over time as a comparative line chart.
evplot 读取带时间戳的事件标签日志（每行 "<kind>, <timestamp>"），
按类别累计计数，并将计数随时间的变化渲染为对比折线图。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration to get logging settings
		// 加载配置以获取日志设置
		path := cfgPath
		if path == "" {
			path = config.DefaultConfigPath
		}

		cfg, err := config.LoadGlobalConfig(path)
		if err != nil {
			// If config fails to load, use default logging config (console only)
			// 如果加载配置失败，使用默认日志配置（仅控制台）
			logger.Init(logger.LoggingConfig{
				Enabled: false,
				Level:   "info",
			})
			logger.Get(nil).Warnf("⚠️  Failed to load config %s: %v", path, err)
			globalCfg = config.DefaultConfig()
		} else {
			logger.Init(cfg.Logging)
			globalCfg = cfg
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
}

// Config returns the configuration loaded by PersistentPreRun.
// Config 返回 PersistentPreRun 加载的配置。
func Config() *config.GlobalConfig {
	if globalCfg == nil {
		globalCfg = config.DefaultConfig()
	}
	return globalCfg
}

// inputPath resolves the event log path: positional argument first,
// config fallback second.
func inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if p := Config().Input.Path; p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no input file: pass one as an argument or set input.path")
}

func init() {
	// Config file path / 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	RootCmd.AddCommand(plotCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(watchCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(versionCmd)

	RootCmd.CompletionOptions.DisableDescriptions = true
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
