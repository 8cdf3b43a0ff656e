// Package config defines the evplot configuration file and its lifecycle.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/livp123/evplot/internal/render"
	"github.com/livp123/evplot/internal/series"
	"github.com/livp123/evplot/internal/utils/logger"
	"github.com/livp123/evplot/pkg/errors"
)

// DefaultConfigPath is used when --config is not given.
// DefaultConfigPath 在未指定 --config 时使用。
const DefaultConfigPath = "evplot.yaml"

// DefaultWatchInterval is the re-render interval in watch mode.
const DefaultWatchInterval = 10 * time.Second

// DefaultConfigTemplate defines the default configuration file with
// bilingual comments. It is written verbatim by `evplot init` so a fresh
// config documents itself.
// DefaultConfigTemplate 定义带双语注释的默认配置文件，由 `evplot init` 原样写出。
const DefaultConfigTemplate = `# evplot Configuration File / evplot 配置文件

# Input / 输入
input:
  # Path: Event log to read. One record per line: "<kind>, <timestamp>".
  # 要读取的事件日志，每行一条记录："<kind>, <timestamp>"。
  path: "data_out.csv"

  # From Start: In watch mode, read the file from the beginning instead of
  # only new lines.
  # 在 watch 模式下从文件开头读取，而不是只读新行。
  from_start: false

# Tracking / 跟踪
tracking:
  # Kinds: Allow-list of event kinds. Empty tracks every kind dynamically,
  # in first-seen order.
  # 事件类别白名单。为空时动态跟踪所有类别，按首次出现顺序。
  kinds:
    - "pipeline"
    - "audio_engine"

  # Policy: What to do with a record whose kind is not tracked.
  #   ignore - drop it silently (historical behaviour)
  #   reject - abort the run
  # 未跟踪类别的处理策略：ignore 静默丢弃（历史行为），reject 中止运行。
  policy: "ignore"

# Filter / 过滤
filter:
  # Expression: Optional expr predicate over Kind and Timestamp.
  # Example: 'Kind == "pipeline" && Timestamp < 1000'
  # 可选的 expr 谓词，作用于 Kind 和 Timestamp。
  expression: ""

# Chart / 图表
chart:
  # Output: Chart file path. "-" writes to stdout.
  # 图表文件路径，"-" 表示写入 stdout。
  output: "chart.png"

  # Format: png or svg. Empty infers from the output extension.
  # png 或 svg，为空时根据扩展名推断。
  format: ""

  title: ""
  x_label: "Time"
  y_label: "Count"
  width: 1024
  height: 768

# Watch / 跟随模式
watch:
  # Interval: How often to re-render the chart (e.g. "10s", "1m").
  # 重新渲染图表的间隔（例如 "10s"、"1m"）。
  interval: "10s"

  # Metrics: Prometheus endpoint served while watching.
  # watch 期间提供的 Prometheus 指标端点。
  metrics:
    enabled: false
    port: 11812

# Logging / 日志
logging:
  # Enabled: Write diagnostics to a rotating file instead of stderr.
  # 将诊断日志写入轮转文件而不是 stderr。
  enabled: false
  level: "info"
  path: ""
  max_size: 10
  max_backups: 3
  max_age: 7
  compress: false
`

// InputConfig selects the event log.
type InputConfig struct {
	Path      string `yaml:"path"`
	FromStart bool   `yaml:"from_start"`
}

// TrackingConfig selects which kinds are accumulated and the unknown-kind policy.
type TrackingConfig struct {
	Kinds  []string `yaml:"kinds"`
	Policy string   `yaml:"policy"`
}

// FilterConfig holds the optional event predicate.
type FilterConfig struct {
	Expression string `yaml:"expression"`
}

// ChartConfig holds chart output and appearance settings.
type ChartConfig struct {
	Output string `yaml:"output"`
	Format string `yaml:"format"`
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// MetricsConfig holds the Prometheus endpoint settings for watch mode.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// WatchConfig holds follow-mode settings.
type WatchConfig struct {
	Interval string        `yaml:"interval"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// GlobalConfig is the root of the configuration file.
type GlobalConfig struct {
	Input    InputConfig          `yaml:"input"`
	Tracking TrackingConfig       `yaml:"tracking"`
	Filter   FilterConfig         `yaml:"filter"`
	Chart    ChartConfig          `yaml:"chart"`
	Watch    WatchConfig          `yaml:"watch"`
	Logging  logger.LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the built-in defaults, parsed from the template so
// the template and the defaults cannot drift apart.
// DefaultConfig 返回内置默认值，从模板解析以避免两者漂移。
func DefaultConfig() *GlobalConfig {
	var cfg GlobalConfig
	// The template is a compile-time constant; it must parse.
	if err := yaml.Unmarshal([]byte(DefaultConfigTemplate), &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// LoadGlobalConfig loads the configuration from a YAML file.
// A missing file yields the defaults; a present file is merged over them.
// LoadGlobalConfig 从 YAML 文件加载配置；文件缺失时返回默认值。
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("yaml", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes the configuration back to disk.
// SaveGlobalConfig 将配置写回磁盘。
func SaveGlobalConfig(path string, cfg *GlobalConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// WriteDefaultConfig writes the commented default template to path.
// It refuses to overwrite an existing file unless force is set.
// WriteDefaultConfig 将带注释的默认模板写入 path，除非 force 否则拒绝覆盖。
func WriteDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.NewConfigError("path", path+" already exists (use --force)")
		}
	}
	return os.WriteFile(path, []byte(DefaultConfigTemplate), 0600)
}

// Validate checks cross-field constraints.
func (c *GlobalConfig) Validate() error {
	if _, err := series.ParsePolicy(c.Tracking.Policy); err != nil {
		return err
	}
	switch c.Chart.Format {
	case "", render.FormatPNG, render.FormatSVG:
	default:
		return errors.NewFormatError(c.Chart.Format)
	}
	if _, err := c.WatchInterval(); err != nil {
		return err
	}
	if c.Watch.Metrics.Enabled {
		if c.Watch.Metrics.Port <= 0 || c.Watch.Metrics.Port > 65535 {
			return errors.NewConfigError("watch.metrics.port", c.Watch.Metrics.Port)
		}
	}
	return nil
}

// WatchInterval parses the watch re-render interval.
func (c *GlobalConfig) WatchInterval() (time.Duration, error) {
	if c.Watch.Interval == "" {
		return DefaultWatchInterval, nil
	}
	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, errors.NewConfigError("watch.interval", c.Watch.Interval)
	}
	if d <= 0 {
		return 0, errors.NewConfigError("watch.interval", c.Watch.Interval)
	}
	return d, nil
}

// ChartOptions converts the chart section into render options, inferring
// the format from the output path when unset.
func (c *GlobalConfig) ChartOptions() render.Options {
	format := c.Chart.Format
	if format == "" {
		format = render.FormatFromPath(c.Chart.Output)
	}
	return render.Options{
		Format: format,
		Title:  c.Chart.Title,
		XLabel: c.Chart.XLabel,
		YLabel: c.Chart.YLabel,
		Width:  c.Chart.Width,
		Height: c.Chart.Height,
	}
}
