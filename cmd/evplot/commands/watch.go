package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/livp123/evplot/internal/api"
	"github.com/livp123/evplot/internal/config"
	"github.com/livp123/evplot/internal/metrics"
	"github.com/livp123/evplot/internal/pipeline"
	"github.com/livp123/evplot/internal/render"
	"github.com/livp123/evplot/internal/series"
	"github.com/livp123/evplot/internal/utils/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Follow a growing event log and re-render the chart periodically",
	Long: `Tail the event log (rotation-safe), accumulate counters
continuously, and re-render the chart on a fixed interval. Optionally
serve Prometheus metrics while running. Stops on SIGINT/SIGTERM.
跟随事件日志（支持轮转），持续累计计数，按固定间隔重新渲染图表，
可选提供 Prometheus 指标端点。收到 SIGINT/SIGTERM 时停止。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	registerPipelineFlags(watchCmd)
	watchCmd.Flags().StringP("out", "o", "", "Chart output path (overrides config)")
	watchCmd.Flags().Duration("interval", 0, "Re-render interval (overrides config)")
	watchCmd.Flags().Bool("from-start", false, "Read the file from the beginning instead of only new lines")
	watchCmd.Flags().Int("metrics-port", 0, "Serve Prometheus metrics on this port (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := Config()
	log := logger.Get(cmd.Context())

	path, err := inputPath(args)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	interval, err := cfg.WatchInterval()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetDuration("interval"); v > 0 {
		interval = v
	}

	fromStart := cfg.Input.FromStart
	if v, _ := cmd.Flags().GetBool("from-start"); v {
		fromStart = true
	}

	out := cfg.Chart.Output
	if cmd.Flags().Changed("out") {
		out, _ = cmd.Flags().GetString("out")
	}
	if out == "" || out == "-" {
		// Re-rendering to stdout would interleave binary chunks
		out = "chart.png"
	}

	chartOpts := cfg.ChartOptions()
	if cfg.Chart.Format == "" {
		chartOpts.Format = render.FormatFromPath(out)
	}

	metricsCfg := cfg.Watch.Metrics
	if v, _ := cmd.Flags().GetInt("metrics-port"); v > 0 {
		metricsCfg = config.MetricsConfig{Enabled: true, Port: v}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w := pipeline.NewWatcher(path, fromStart, opts)
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	srv := api.NewMetricsServer(w.Accumulator(), &metricsCfg)
	if metricsCfg.Enabled {
		if err := srv.Start(ctx); err != nil {
			return err
		}
		defer func() {
			_ = srv.Stop()
		}()
	}

	log.Infof("🚀 Watching %s (interval: %v, output: %s)", path, interval, out)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			renderSnapshot(ctx, w.Snapshot(), out, chartOpts)
		case <-w.Done():
			return w.Err()
		case <-ctx.Done():
			// Final render on shutdown so the chart reflects everything seen
			// 退出前最后渲染一次，使图表包含所有已见事件
			renderSnapshot(context.Background(), w.Snapshot(), out, chartOpts)
			log.Infof("🛑 Watch stopped")
			return nil
		}
	}
}

func renderSnapshot(ctx context.Context, snap []series.Series, out string, chartOpts render.Options) {
	log := logger.Get(ctx)

	f, err := os.Create(out)
	if err != nil {
		metrics.RenderErrorsTotal.Inc()
		log.Errorf("❌ Failed to open %s: %v", out, err)
		return
	}
	defer f.Close()

	if err := render.Chart(snap, chartOpts, f); err != nil {
		metrics.RenderErrorsTotal.Inc()
		// No points yet is routine right after startup
		log.Debugf("Render skipped: %v", err)
		return
	}
	metrics.RendersTotal.Inc()
	log.Debugf("Chart refreshed at %s", out)
}
