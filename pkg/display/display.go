// Package display 提供报告中使用的大小、时间等可读格式
package display

import (
	"fmt"
	"strings"
)

const (
	secsPerMinute = 60
	secsPerHour   = 60 * secsPerMinute
	secsPerDay    = 24 * secsPerHour
)

// FormatBytes 将字节数格式化为 "1.5 MB" 形式
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Pluralize count 为 1 时返回单数形式
func Pluralize(single, plural string, count int64) string {
	if count == 1 {
		return single
	}
	if plural == "s" || plural == "es" {
		return single + plural
	}
	return plural
}

// FormatAge 将秒数格式化为 "2 days 3h"、"5h 20m"、"45s" 等形式
// 较长的时间只保留最大的单位
func FormatAge(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds >= secsPerDay:
		days := seconds / secsPerDay
		hours := (seconds % secsPerDay) / secsPerHour
		if seconds < 3*secsPerDay && hours != 0 {
			return fmt.Sprintf("%d %s %dh", days, Pluralize("day", "s", days), hours)
		}
		return fmt.Sprintf("%d %s", days, Pluralize("day", "s", days))
	case seconds >= secsPerHour:
		hours := seconds / secsPerHour
		minutes := (seconds % secsPerHour) / secsPerMinute
		if seconds < 6*secsPerHour && minutes != 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	case seconds >= secsPerMinute:
		minutes := seconds / secsPerMinute
		secs := seconds % secsPerMinute
		if seconds < 5*secsPerMinute && secs != 0 {
			return fmt.Sprintf("%dm %ds", minutes, secs)
		}
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatDays 天数形式的 FormatAge
func FormatDays(days float64) string {
	return FormatAge(int64(days * secsPerDay))
}

// AgeRange 年龄区间描述
func AgeRange(minDays, maxDays float64) string {
	hasMin := minDays > 0
	hasMax := maxDays > minDays
	switch {
	case hasMin && hasMax:
		return fmt.Sprintf("between %s and %s old", FormatDays(minDays), FormatDays(maxDays))
	case hasMin:
		return fmt.Sprintf("older than %s", FormatDays(minDays))
	case hasMax:
		return fmt.Sprintf("newer than %s", FormatDays(maxDays))
	default:
		return "All ages"
	}
}

// ShortPattern 截断过长的多选正则，仅保留前两个分支
func ShortPattern(pattern string) string {
	if len(pattern) > 32 && strings.Contains(pattern, "|") && strings.Contains(pattern, "(") {
		parts := strings.Split(pattern, "|")
		return strings.Join(parts[:2], "|") + "|...)"
	}
	return pattern
}
