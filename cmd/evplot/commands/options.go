package commands

import (
	"github.com/spf13/cobra"

	"github.com/livp123/evplot/internal/filter"
	"github.com/livp123/evplot/internal/pipeline"
	"github.com/livp123/evplot/internal/series"
)

// registerPipelineFlags adds the flags shared by plot, stats and watch.
// registerPipelineFlags 添加 plot、stats 和 watch 共享的标志。
func registerPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("kinds", nil, "Tracked event kinds (overrides config; empty tracks all)")
	cmd.Flags().String("filter", "", "Filter expression over Kind and Timestamp (overrides config)")
	cmd.Flags().Bool("strict", false, "Reject records with an untracked kind instead of ignoring them")
}

// resolveOptions merges pipeline flags over the loaded configuration.
// resolveOptions 将命令行标志合并到已加载的配置之上。
func resolveOptions(cmd *cobra.Command) (pipeline.Options, error) {
	cfg := Config()

	kinds := cfg.Tracking.Kinds
	if cmd.Flags().Changed("kinds") {
		kinds, _ = cmd.Flags().GetStringSlice("kinds")
	}

	policy, err := series.ParsePolicy(cfg.Tracking.Policy)
	if err != nil {
		return pipeline.Options{}, err
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		policy = series.PolicyReject
	}

	expression := cfg.Filter.Expression
	if cmd.Flags().Changed("filter") {
		expression, _ = cmd.Flags().GetString("filter")
	}
	f, err := filter.Compile(expression)
	if err != nil {
		return pipeline.Options{}, err
	}

	return pipeline.Options{Kinds: kinds, Policy: policy, Filter: f}, nil
}
