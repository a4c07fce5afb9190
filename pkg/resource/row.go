// Package resource 保存一次扫描匹配到的文件（Row）、目录（Set）及其汇总树（Tree）。
package resource

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moyu-x/file-organiser/pkg/criteria"
)

// Outcome 文件在操作阶段的结果，只会设置一次
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeMoved
	OutcomeCopied
	OutcomeDeleted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeCopied:
		return "copied"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Row 一个匹配的文件
type Row struct {
	path    string
	relPath string
	depth   int
	ext     string
	modTime int64
	size    int64
	kind    string

	outcome Outcome
	target  string
	err     error
}

// NewRow 根据遍历得到的文件信息创建 Row，root 为扫描根目录
func NewRow(path, root string, depth int, info os.FileInfo) *Row {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	row := &Row{
		path:    path,
		relPath: rel,
		depth:   depth,
		ext:     Extension(path),
	}
	if info != nil {
		row.modTime = info.ModTime().Unix()
		row.size = info.Size()
	}
	return row
}

// Extension 返回小写的扩展名，不含点；没有扩展名时返回空字符串
func Extension(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	// ".bashrc" 这类隐藏文件没有扩展名
	if ext == name {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func (r *Row) Path() string      { return r.path }
func (r *Row) Name() string      { return filepath.Base(r.path) }
func (r *Row) RelPath() string   { return r.relPath }
func (r *Row) Depth() int        { return r.depth }
func (r *Row) Extension() string { return r.ext }
func (r *Row) ModTime() int64    { return r.modTime }
func (r *Row) Size() int64       { return r.size }

// ParentDir 文件所在目录的路径
func (r *Row) ParentDir() string {
	return filepath.Dir(r.path)
}

// RelParentDir 相对根目录的父目录，位于根目录时为空字符串
func (r *Row) RelParentDir() string {
	dir := filepath.Dir(r.relPath)
	if dir == "." {
		return ""
	}
	return dir
}

// SecondsOld 距离最后修改时间的秒数
func (r *Row) SecondsOld(now time.Time) int64 {
	return now.Unix() - r.modTime
}

// DaysOld 距离最后修改时间的天数
func (r *Row) DaysOld(now time.Time) float64 {
	return float64(r.SecondsOld(now)) / 86400
}

// AgeInRange 未设置年龄区间时总是通过
func (r *Row) AgeInRange(age criteria.AgeRange, now time.Time) bool {
	if !age.IsBounded() {
		return true
	}
	return age.Contains(r.DaysOld(now))
}

func (r *Row) SizeInRange(sizes criteria.SizeRange) bool {
	if r.size < 0 {
		return sizes.Contains(0)
	}
	return sizes.Contains(uint64(r.size))
}

func (r *Row) ExtensionOK(c *criteria.Criteria) bool {
	return c.ExtensionAllowed(r.ext)
}

// NameOK 只对文件名匹配，不含目录
func (r *Row) NameOK(c *criteria.Criteria) bool {
	return c.NameMatches(r.Name())
}

// VisibleOK 不显示隐藏文件时，文件名和根目录以下的任何目录名都不能以 . 开头
func (r *Row) VisibleOK(showHidden bool) bool {
	if showHidden {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(r.relPath), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return false
		}
	}
	return true
}

// MatchesCriteria 五个条件同时满足
func (r *Row) MatchesCriteria(c *criteria.Criteria, now time.Time) bool {
	return r.VisibleOK(c.ShowHidden()) &&
		r.ExtensionOK(c) &&
		r.SizeInRange(c.Sizes()) &&
		r.AgeInRange(c.Age(), now) &&
		r.NameOK(c)
}

func (r *Row) Kind() string {
	return r.kind
}

func (r *Row) SetKind(kind string) {
	r.kind = kind
}

func (r *Row) Outcome() Outcome {
	return r.outcome
}

// MovedTo 移动或复制成功后的目标路径
func (r *Row) MovedTo() (string, bool) {
	if r.outcome == OutcomeMoved || r.outcome == OutcomeCopied {
		return r.target, true
	}
	return "", false
}

func (r *Row) Deleted() bool {
	return r.outcome == OutcomeDeleted
}

// Err 操作失败时的错误
func (r *Row) Err() error {
	return r.err
}

func (r *Row) settle(outcome Outcome, target string, err error) bool {
	if r.outcome != OutcomePending {
		return false
	}
	r.outcome = outcome
	r.target = target
	r.err = err
	return true
}

func (r *Row) MarkMoved(target string) bool {
	return r.settle(OutcomeMoved, target, nil)
}

func (r *Row) MarkCopied(target string) bool {
	return r.settle(OutcomeCopied, target, nil)
}

func (r *Row) MarkDeleted() bool {
	return r.settle(OutcomeDeleted, "", nil)
}

func (r *Row) MarkFailed(err error) bool {
	return r.settle(OutcomeFailed, "", err)
}
