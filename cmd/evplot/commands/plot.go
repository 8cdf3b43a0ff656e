package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/evplot/internal/pipeline"
	"github.com/livp123/evplot/internal/render"
	"github.com/livp123/evplot/internal/utils/logger"
)

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Render a cumulative event-count chart from an event log",
	Long: `Read the event log, accumulate one cumulative counter per kind,
and render all counters over time as one line chart with a legend.
读取事件日志，按类别累计计数，并渲染为带图例的折线图。

Examples:
  evplot plot data_out.csv
  evplot plot data_out.csv -o events.svg
  evplot plot data_out.csv --kinds pipeline,audio_engine --strict
  evplot plot data_out.csv --filter 'Timestamp < 1000' -o - > chart.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlot,
}

func init() {
	registerPipelineFlags(plotCmd)
	plotCmd.Flags().StringP("out", "o", "", "Chart output path, '-' for stdout (overrides config)")
	plotCmd.Flags().String("format", "", "Chart format: png or svg (default: inferred from output path)")
	plotCmd.Flags().String("title", "", "Chart title (overrides config)")
	plotCmd.Flags().Int("width", 0, "Chart width in pixels (overrides config)")
	plotCmd.Flags().Int("height", 0, "Chart height in pixels (overrides config)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	path, err := inputPath(args)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(path, opts)
	if err != nil {
		return err
	}

	out, chartOpts := resolveChart(cmd)

	var w io.Writer
	if out == "-" {
		w = cmd.OutOrStdout()
	} else {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := render.Chart(res.Series, chartOpts, w); err != nil {
		return err
	}

	log := logger.Get(cmd.Context())
	log.Infof("📈 Chart written to %s (%d events, %d ignored, %d filtered)",
		out, res.Parsed-res.Ignored-res.Filtered, res.Ignored, res.Filtered)
	return nil
}

// resolveChart merges chart flags over the config chart section.
// resolveChart 将图表标志合并到配置的 chart 段之上。
func resolveChart(cmd *cobra.Command) (string, render.Options) {
	cfg := Config()

	out := cfg.Chart.Output
	if cmd.Flags().Changed("out") {
		out, _ = cmd.Flags().GetString("out")
	}
	if out == "" {
		out = "chart.png"
	}

	chartOpts := cfg.ChartOptions()
	if cmd.Flags().Changed("format") {
		chartOpts.Format, _ = cmd.Flags().GetString("format")
	} else if cfg.Chart.Format == "" {
		chartOpts.Format = render.FormatFromPath(out)
	}
	if cmd.Flags().Changed("title") {
		chartOpts.Title, _ = cmd.Flags().GetString("title")
	}
	if v, _ := cmd.Flags().GetInt("width"); v > 0 {
		chartOpts.Width = v
	}
	if v, _ := cmd.Flags().GetInt("height"); v > 0 {
		chartOpts.Height = v
	}
	return out, chartOpts
}
