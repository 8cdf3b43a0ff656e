package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livp123/evplot/internal/config"
)

// executeCommand executes a cobra command and returns output.
// executeCommand 执行 cobra 命令并返回输出。
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func writeEvents(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleEvents = "pipeline, 10\naudio_engine, 12\npipeline, 15\nunknown_kind, 20\npipeline, 30\n"

// TestRootCommandHelp tests root command help output.
// TestRootCommandHelp 测试根命令帮助输出。
func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand("--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "evplot")
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "plot")
	assert.Contains(t, output, "watch")
}

// TestVersionCommand tests version output.
// TestVersionCommand 测试版本输出。
func TestVersionCommand(t *testing.T) {
	output, err := executeCommand("version")
	assert.NoError(t, err)
	assert.Contains(t, output, "evplot dev")
}

// TestPlotCommand tests the one-shot plot pipeline end to end.
// TestPlotCommand 端到端测试一次性绘图管道。
func TestPlotCommand(t *testing.T) {
	events := writeEvents(t, sampleEvents)
	out := filepath.Join(t.TempDir(), "chart.png")

	_, err := executeCommand("plot", events, "-o", out, "--kinds", "pipeline,audio_engine")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, len(data) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

// TestPlotCommand_SVG tests svg output inferred from the extension.
// TestPlotCommand_SVG 测试根据扩展名推断 SVG 输出。
func TestPlotCommand_SVG(t *testing.T) {
	events := writeEvents(t, sampleEvents)
	out := filepath.Join(t.TempDir(), "chart.svg")

	_, err := executeCommand("plot", events, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "pipeline")
}

// TestPlotCommand_MalformedInput tests that parse errors abort the run.
// TestPlotCommand_MalformedInput 测试解析错误中止运行。
func TestPlotCommand_MalformedInput(t *testing.T) {
	events := writeEvents(t, "pipeline, 10\nbroken\n")
	out := filepath.Join(t.TempDir(), "chart.png")

	_, err := executeCommand("plot", events, "-o", out)
	assert.Error(t, err)
}

// TestPlotCommand_Strict tests the strict (reject) policy flag.
// TestPlotCommand_Strict 测试 strict（reject）策略标志。
func TestPlotCommand_Strict(t *testing.T) {
	events := writeEvents(t, sampleEvents)
	out := filepath.Join(t.TempDir(), "chart.png")

	_, err := executeCommand("plot", events, "-o", out, "--kinds", "pipeline,audio_engine", "--strict")
	assert.Error(t, err)
}

// TestStatsCommand tests the summary table.
// TestStatsCommand 测试汇总表格。
func TestStatsCommand(t *testing.T) {
	events := writeEvents(t, sampleEvents)

	output, err := executeCommand("stats", events, "--kinds", "pipeline,audio_engine")
	require.NoError(t, err)

	assert.Contains(t, output, "pipeline")
	assert.Contains(t, output, "audio_engine")
	assert.Contains(t, output, "Total records: 5")
	assert.Contains(t, output, "ignored: 1")
}

// TestStatsCommand_Filter tests the filter flag.
// TestStatsCommand_Filter 测试过滤标志。
func TestStatsCommand_Filter(t *testing.T) {
	events := writeEvents(t, sampleEvents)

	output, err := executeCommand("stats", events, "--filter", "Timestamp < 14")
	require.NoError(t, err)
	assert.Contains(t, output, "filtered: 3")
}

// TestInitCommand tests default config generation.
// TestInitCommand 测试默认配置生成。
func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evplot.yaml")

	output, err := executeCommand("--config", path, "init")
	require.NoError(t, err)
	assert.Contains(t, output, "Config written")

	cfg, err := config.LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	// Second run without --force must fail
	// 第二次运行且未指定 --force 必须失败
	_, err = executeCommand("--config", path, "init")
	assert.Error(t, err)

	_, err = executeCommand("--config", path, "init", "--force")
	assert.NoError(t, err)
}

// TestInvalidCommand tests invalid command handling.
// TestInvalidCommand 测试无效命令处理。
func TestInvalidCommand(t *testing.T) {
	_, err := executeCommand("no-such-command")
	assert.Error(t, err)
}
