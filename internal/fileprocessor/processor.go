package fileprocessor

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/moyu-x/file-organiser/internal/logger"
	"github.com/moyu-x/file-organiser/pkg/classifier"
	"github.com/moyu-x/file-organiser/pkg/criteria"
	"github.com/moyu-x/file-organiser/pkg/display"
	"github.com/moyu-x/file-organiser/pkg/prompt"
	"github.com/moyu-x/file-organiser/pkg/resource"
	"github.com/moyu-x/file-organiser/pkg/scanner"
	"github.com/spf13/afero"
)

// New 创建新的文件处理器
func New(fs afero.Fs, c *criteria.Criteria) *Processor {
	return &Processor{
		Fs:             fs,
		Criteria:       c,
		Now:            time.Now,
		FollowSymlinks: true,
		SameFileSystem: true,
		classifier:     classifier.NewClassifier(fs),
	}
}

// Scan 遍历 root 并构建汇总树，不修改文件系统
func (p *Processor) Scan(root string) (*resource.Tree, error) {
	c := p.Criteria
	if p.Now == nil {
		p.Now = time.Now
	}
	now := p.Now()
	tree := resource.NewTree(c.MaxDepth())

	walker := scanner.NewFileWalker(p.Fs, c.MaxDepth())
	walker.FollowSymlinks = p.FollowSymlinks
	walker.SameFileSystem = p.SameFileSystem

	logger.Debug().Str("root", root).Int("maxDepth", c.MaxDepth()).Msg("开始扫描")

	err := walker.Walk(root, func(e scanner.Entry) error {
		if e.IsDir() {
			return p.visitDir(tree, root, e)
		}
		p.Stats.Scanned++

		row := resource.NewRow(e.Path, root, e.Depth, e.Info)
		if !row.MatchesCriteria(c, now) {
			return nil
		}
		if c.FiltersByKind() {
			kind, err := p.determineKind(e.Path)
			if err != nil {
				logger.Debug().Err(err).Str("path", e.Path).Msg("检测文件类型失败")
				return nil
			}
			row.SetKind(kind)
			if !c.KindAllowed(kind) {
				return nil
			}
		}
		if tree.Attach(row) {
			p.Stats.Matched++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("扫描目录失败: %w", err)
	}

	p.Tree = tree
	logger.Debug().
		Int("dirs", p.Stats.Dirs).
		Int("scanned", p.Stats.Scanned).
		Int("matched", p.Stats.Matched).
		Msg("扫描完成")
	return tree, nil
}

// visitDir 根目录之外的排除目录和隐藏目录都不进入，也不建立 Set
func (p *Processor) visitDir(tree *resource.Tree, root string, e scanner.Entry) error {
	tree.AddRoot(root)

	parts := relParts(root, e.Path)
	if p.Criteria.ExcludesDir(parts) {
		p.Stats.Excluded++
		logger.Debug().Str("path", e.Path).Msg("跳过排除的目录")
		return scanner.SkipDir
	}
	if len(parts) > 0 && !p.Criteria.ShowHidden() && strings.HasPrefix(parts[len(parts)-1], ".") {
		logger.Debug().Str("path", e.Path).Msg("跳过隐藏目录")
		return scanner.SkipDir
	}

	tree.Push(resource.NewSet(e.Path, root, e.Depth, e.SubDirs))
	p.Stats.Dirs++
	return nil
}

// relParts 返回 path 相对 root 的路径段，root 本身为空
func relParts(root, path string) []string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return nil
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}

// Authorize 在扫描之后、任何修改之前决定是否授予操作许可，只生效一次。
// 目标目录无法确定时返回包装了 ErrUnresolvedTarget 的错误，此时只列出文件。
func (p *Processor) Authorize(confirmer prompt.Confirmer) (bool, error) {
	c := p.Criteria
	if c.PermissionApplied() {
		return c.Permission() != criteria.PermissionNone, nil
	}

	switch c.Action() {
	case criteria.ActionMove, criteria.ActionCopy:
		if err := p.ensureTargetDir(confirmer, c.Target()); err != nil {
			c.ApplyActionPermissions(false)
			return false, err
		}
		p.target = c.ApplyActionPermissions(true)
		logger.Info().Str("action", c.Action().String()).Str("target", p.target).Msg("已获得操作许可")
		return true, nil

	case criteria.ActionDelete:
		matched := p.matchedCount()
		if matched == 0 {
			c.ApplyActionPermissions(false)
			return false, nil
		}
		question := fmt.Sprintf("Are you sure you want to delete the %d %s above?",
			matched, display.Pluralize("file", "s", int64(matched)))
		granted, err := confirmer.Confirm(question)
		if err != nil {
			c.ApplyActionPermissions(false)
			return false, fmt.Errorf("读取确认失败: %w", err)
		}
		c.ApplyActionPermissions(granted)
		return granted, nil

	case criteria.ActionDirectDelete:
		c.ApplyActionPermissions(true)
		return true, nil

	default:
		c.ApplyActionPermissions(false)
		return false, nil
	}
}

func (p *Processor) matchedCount() int {
	if p.Tree == nil {
		return 0
	}
	return p.Tree.NumFiles()
}

// Apply 按树中的顺序对每个待处理文件执行已获许可的操作。
// 单个文件失败只记录在该文件上，不会中止其余文件；已处理过的文件不再重复执行。
func (p *Processor) Apply() error {
	permission := p.Criteria.Permission()
	if permission == criteria.PermissionNone || p.Tree == nil {
		return nil
	}

	rows := p.Tree.Rows()
	total := len(rows)
	done := 0
	for _, row := range rows {
		if row.Outcome() != resource.OutcomePending {
			continue
		}

		var err error
		switch permission {
		case criteria.PermissionMove:
			err = p.moveRow(row)
		case criteria.PermissionCopy:
			err = p.copyRow(row)
		case criteria.PermissionDelete:
			err = p.deleteRow(row)
		}
		if err != nil {
			p.Stats.Failed++
			row.MarkFailed(fmt.Errorf("%w: %v", ErrPrimitiveFailure, err))
			logger.Error().Err(err).Str("file", row.Path()).Msg("处理文件失败")
		}

		done++
		if done%ProgressInterval == 0 || done == total {
			logger.Progress(done, total, "处理进度")
		}
	}
	return nil
}

// Run 依次执行扫描、授权和操作
func (p *Processor) Run(root string, confirmer prompt.Confirmer) (*resource.Tree, error) {
	tree, err := p.Scan(root)
	if err != nil {
		return nil, err
	}
	if _, err := p.Authorize(confirmer); err != nil {
		logger.Warn().Err(err).Msg("未获得操作许可")
	}
	if err := p.Apply(); err != nil {
		return tree, err
	}
	return tree, nil
}
