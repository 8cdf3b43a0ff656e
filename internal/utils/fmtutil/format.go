// Package fmtutil provides formatting utilities for human-readable output.
// Package fmtutil 提供用于人类可读输出的格式化工具。
package fmtutil

import (
	"fmt"
	"math"
)

// FormatNumber formats large numbers with K/M/G suffixes.
// FormatNumber 使用 K/M/G 后缀格式化大数字。
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.2fK", float64(n)/1000)
	}
	if n < 1000000000 {
		return fmt.Sprintf("%.2fM", float64(n)/1000000)
	}
	return fmt.Sprintf("%.2fG", float64(n)/1000000000)
}

// FormatNumberWithComma formats a number with thousand separators.
// FormatNumberWithComma 格式化数字，添加千位分隔符。
func FormatNumberWithComma(n uint64) string {
	s := fmt.Sprintf("%d", n)
	result := ""
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}

// FormatPercent formats a percentage value with proper precision.
// FormatPercent 格式化百分比值，使用适当的精度。
func FormatPercent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", value)
}

// FormatSpan formats a timestamp span (last - first) for the stats table.
// Event timestamps are opaque integers, so the span carries no unit.
// FormatSpan 格式化时间戳跨度（last - first），时间戳是无单位整数。
func FormatSpan(first, last int64) string {
	if last < first {
		return "-"
	}
	return FormatNumberWithComma(uint64(last - first))
}
