package resource

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/moyu-x/file-organiser/pkg/display"
)

// DetailLevel 报告详细程度
type DetailLevel struct {
	// ShowFiles 列出每个文件
	ShowFiles bool
	// ShowGroups 显示扩展名统计
	ShowGroups bool
	// ShowVoid 显示没有匹配文件的目录
	ShowVoid bool
}

const timeLayout = "2006-01-02 15:04:05"

// Render 输出深度小于 maxDepth 的目录，然后输出汇总
func (t *Tree) Render(w io.Writer, d DetailLevel, now time.Time) error {
	var b strings.Builder

	for _, set := range t.sets {
		if set.Depth() >= t.maxDepth {
			continue
		}
		if set.Count() == 0 && !d.ShowVoid {
			continue
		}
		if d.ShowFiles {
			for _, row := range set.Rows() {
				b.WriteString(t.rowLine(row, now))
				b.WriteByte('\n')
			}
		}
		fmt.Fprintf(&b, "%s %s\t%s\t%s\n",
			countStyle.Render(fmt.Sprint(set.Count())),
			display.Pluralize("file", "s", int64(set.Count())),
			sizeStyle.Render(display.FormatBytes(set.Size())),
			pathStyle.Render(t.setPath(set)),
		)
	}

	if d.ShowGroups {
		t.renderHistogram(&b)
	}

	subDirs := ""
	if n := t.NumSubDirs(); n > 0 {
		subDirs = fmt.Sprintf("%d %s", n, display.Pluralize("subdirectory", "subdirectories", int64(n)))
	}
	fmt.Fprintf(&b, "total: %s\tsize: %s\t%s\t%s\n",
		totalStyle.Render(fmt.Sprint(t.NumFiles())),
		sizeStyle.Render(display.FormatBytes(t.TotalSize())),
		pathStyle.Render(t.root),
		subDirs,
	)

	t.renderExtremes(&b, now)
	t.renderOutcomes(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// String 以默认详细程度输出报告
func (t *Tree) String() string {
	var b strings.Builder
	_ = t.Render(&b, DetailLevel{}, time.Now())
	return b.String()
}

func (t *Tree) setPath(set *Set) string {
	if set.RelPath() == "." {
		return set.Path()
	}
	return filepath.ToSlash(set.RelPath())
}

func (t *Tree) rowLine(row *Row, now time.Time) string {
	suffix := ""
	switch row.Outcome() {
	case OutcomeMoved:
		suffix = movedStyle.Render(" -> " + row.target)
	case OutcomeCopied:
		suffix = movedStyle.Render(" => " + row.target)
	case OutcomeDeleted:
		suffix = deletedStyle.Render(" (deleted)")
	case OutcomeFailed:
		suffix = failedStyle.Render(fmt.Sprintf(" (failed: %v)", row.Err()))
	}
	ext := row.Extension()
	if ext == "" {
		ext = "-"
	}
	return fmt.Sprintf("%9s\t%s\t%9s\t%s\t%d\t%s%s",
		display.FormatAge(row.SecondsOld(now)),
		dateStyle.Render(time.Unix(row.ModTime(), 0).Format(timeLayout)),
		sizeStyle.Render(display.FormatBytes(row.Size())),
		ext,
		row.Depth(),
		pathStyle.Render(filepath.ToSlash(row.RelPath())),
		suffix,
	)
}

func (t *Tree) renderHistogram(b *strings.Builder) {
	stats := t.ExtensionHistogram()
	if len(stats) == 0 {
		return
	}
	b.WriteString(hintStyle.Render("extension\tfiles\tsize"))
	b.WriteByte('\n')
	for _, s := range stats {
		ext := s.Extension
		if ext == "" {
			ext = "(none)"
		}
		fmt.Fprintf(b, "%s\t%s\t%s\n", ext, countStyle.Render(fmt.Sprint(s.Count)), sizeStyle.Render(display.FormatBytes(s.Size)))
	}
}

func (t *Tree) renderExtremes(b *strings.Builder, now time.Time) {
	if t.NumFiles() == 0 {
		return
	}
	oldest, newest := t.Oldest(), t.Newest()
	fmt.Fprintf(b, "oldest: %s (%s)\tnewest: %s (%s)\n",
		pathStyle.Render(filepath.ToSlash(oldest.RelPath())), display.FormatAge(oldest.SecondsOld(now)),
		pathStyle.Render(filepath.ToSlash(newest.RelPath())), display.FormatAge(newest.SecondsOld(now)),
	)
	smallest, largest := t.Smallest(), t.Largest()
	fmt.Fprintf(b, "smallest: %s (%s)\tlargest: %s (%s)\n",
		pathStyle.Render(filepath.ToSlash(smallest.RelPath())), display.FormatBytes(smallest.Size()),
		pathStyle.Render(filepath.ToSlash(largest.RelPath())), display.FormatBytes(largest.Size()),
	)
}

func (t *Tree) renderOutcomes(b *strings.Builder) {
	counts := t.Outcomes()
	if counts[OutcomePending] == t.NumFiles() {
		return
	}
	parts := make([]string, 0, 4)
	for _, o := range []Outcome{OutcomeMoved, OutcomeCopied, OutcomeDeleted, OutcomeFailed} {
		if n := counts[o]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", o, n))
		}
	}
	b.WriteString(strings.Join(parts, "\t"))
	b.WriteByte('\n')
}
