package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/livp123/evplot/internal/pipeline"
	"github.com/livp123/evplot/internal/utils/fmtutil"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print per-kind event counts without rendering a chart",
	Long: `Run the same parse and accumulate steps as plot, but print a
per-kind summary table instead of rendering a chart.
执行与 plot 相同的解析与累计，但打印按类别汇总的表格，不渲染图表。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	registerPipelineFlags(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📊 Event Summary: %s\n", path)

	if len(res.Series) == 0 {
		fmt.Fprintln(out, " - No tracked events.")
	} else {
		fmt.Fprintf(out, "%-24s %-12s %-14s %-14s %-14s\n", "Kind", "Events", "First", "Last", "Span")
		fmt.Fprintln(out, strings.Repeat("-", 80))
		for _, s := range res.Series {
			if s.Total() == 0 {
				fmt.Fprintf(out, "%-24s %-12s %-14s %-14s %-14s\n", s.Kind, "0", "-", "-", "-")
				continue
			}
			fmt.Fprintf(out, "%-24s %-12s %-14d %-14d %-14s\n",
				s.Kind,
				fmtutil.FormatNumberWithComma(s.Total()),
				s.First(),
				s.Last(),
				fmtutil.FormatSpan(s.First(), s.Last()),
			)
		}
	}

	accumulated := res.Parsed - res.Ignored - res.Filtered
	fmt.Fprintf(out, "\nTotal records: %s", fmtutil.FormatNumberWithComma(res.Parsed))
	fmt.Fprintf(out, " (accumulated: %s", fmtutil.FormatNumberWithComma(accumulated))
	if res.Filtered > 0 {
		fmt.Fprintf(out, ", filtered: %s", fmtutil.FormatNumberWithComma(res.Filtered))
	}
	if res.Ignored > 0 {
		fmt.Fprintf(out, ", ignored: %s", fmtutil.FormatNumberWithComma(res.Ignored))
	}
	fmt.Fprintln(out, ")")
	return nil
}
