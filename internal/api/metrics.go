package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/livp123/evplot/internal/config"
	"github.com/livp123/evplot/internal/metrics"
	"github.com/livp123/evplot/internal/series"
	"github.com/livp123/evplot/internal/utils/logger"
)

// MetricsServer serves the Prometheus endpoint while watch mode runs.
// MetricsServer 在 watch 模式运行期间提供 Prometheus 端点。
type MetricsServer struct {
	config  *config.MetricsConfig
	server  *http.Server
	acc     *series.Accumulator
	running bool
	mu      sync.RWMutex // Protects running field from concurrent access / 保护 running 字段免受并发访问
}

// NewMetricsServer creates a new metrics server instance.
// NewMetricsServer 创建一个新的指标服务器实例。
func NewMetricsServer(acc *series.Accumulator, cfg *config.MetricsConfig) *MetricsServer {
	return &MetricsServer{
		acc:    acc,
		config: cfg,
	}
}

// isRunning returns whether the server is running (thread-safe).
// isRunning 返回服务器是否正在运行（线程安全）。
func (m *MetricsServer) isRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

// setRunning sets the running state (thread-safe).
// setRunning 设置运行状态（线程安全）。
func (m *MetricsServer) setRunning(running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = running
}

// Start starts the metrics server.
// Start 启动指标服务器。
func (m *MetricsServer) Start(ctx context.Context) error {
	if !m.config.Enabled {
		logger.Get(ctx).Infof("📊 Metrics server is disabled via config.")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	m.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", m.config.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	m.setRunning(true)

	// Start HTTP Server
	go func() {
		logger.Get(ctx).Infof("📊 Metrics server starting on :%d", m.config.Port)
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get(ctx).Errorf("❌ Metrics server error: %v", err)
			m.setRunning(false)
		}
	}()

	// Start Metrics Collection Loop
	go m.collectStats(ctx)

	return nil
}

// Stop stops the metrics server.
// Stop 停止指标服务器。
func (m *MetricsServer) Stop() error {
	m.setRunning(false)
	if m.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return m.server.Shutdown(ctx)
	}
	return nil
}

// collectStats refreshes gauge metrics from the accumulator periodically.
// collectStats 定期从累加器刷新 gauge 指标。
func (m *MetricsServer) collectStats(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for m.isRunning() {
		select {
		case <-ticker.C:
			if m.acc != nil {
				metrics.TrackedKinds.Set(float64(len(m.acc.Kinds())))
			}
		case <-ctx.Done():
			return
		}
	}
}
