package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moyu-x/file-organiser/internal/fileprocessor"
	"github.com/moyu-x/file-organiser/internal/logger"
	"github.com/moyu-x/file-organiser/pkg/classifier"
	"github.com/moyu-x/file-organiser/pkg/config"
	"github.com/moyu-x/file-organiser/pkg/criteria"
	"github.com/moyu-x/file-organiser/pkg/display"
	"github.com/moyu-x/file-organiser/pkg/pathinfo"
	"github.com/moyu-x/file-organiser/pkg/prompt"
	"github.com/moyu-x/file-organiser/pkg/resource"
	"github.com/moyu-x/file-organiser/tui"
	"github.com/spf13/afero"
)

type ScanOptions struct {
	Path   string
	Inputs criteria.Inputs
	Detail resource.DetailLevel
	// MaxDepthSet 为 false 时使用配置文件中的深度
	MaxDepthSet bool
	Verify      bool
	LogLevel    string
	LogFile     string
	ConfigFile  string

	Fs        afero.Fs
	Out       io.Writer
	Confirmer prompt.Confirmer
}

// RunScan 执行一次完整的扫描：解析路径和条件、扫描、输出报告、授权并执行操作
func RunScan(opts *ScanOptions) (*fileprocessor.Stats, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logFile := cfg.Logging.File
	if opts.LogFile != "" {
		logFile = opts.LogFile
	}
	if err := logger.Init(logLevel, logFile); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	runID := logger.WithRunID()
	logger.Debug().Str("run", runID).Msg("加载配置完成")

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = prompt.Stdin()
		if tui.Interactive() {
			confirmer = tui.NewConfirmer(os.Stdin, os.Stderr)
		}
	}

	info, err := pathinfo.New(fs, opts.Path)
	if err != nil {
		return nil, err
	}

	in := opts.Inputs
	in.FilePattern = info.Pattern
	if !opts.MaxDepthSet {
		in.MaxDepth = cfg.Scanner.MaxDepth
	}
	for _, kind := range criteria.ParseList(in.Kind) {
		if !classifier.IsCategory(kind) {
			return nil, fmt.Errorf("未知的文件类型 %q，可选: %s", kind, strings.Join(classifier.Categories, ", "))
		}
	}

	c, err := criteria.Build(in)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("root", info.Canonical).
		Str("action", c.Action().String()).
		Int("maxDepth", c.MaxDepth()).
		Msg("开始扫描")
	fmt.Fprintf(out, "Scanning %s\n%s\n", info.Canonical, strings.Join(c.Summary(), ", "))

	p := fileprocessor.New(fs, c)
	p.FollowSymlinks = cfg.Scanner.FollowSymlinks
	p.SameFileSystem = cfg.Scanner.SameFileSystem
	p.Verify = opts.Verify || cfg.Copy.Verify

	tree, err := p.Scan(info.Canonical)
	if err != nil {
		return nil, err
	}

	detail := opts.Detail
	if c.IsDelete() {
		// 删除前必须让用户看到将被删除的文件
		detail.ShowFiles = true
	}
	if err := tree.Render(out, detail, p.Now()); err != nil {
		return nil, err
	}

	if c.IsDelete() && tree.NumFiles() == 0 {
		fmt.Fprintln(out, "No matched files to delete")
	}

	granted, err := p.Authorize(confirmer)
	if err != nil {
		if !errors.Is(err, fileprocessor.ErrUnresolvedTarget) {
			return nil, err
		}
		logger.Warn().Err(err).Msg("目标目录不可用，只列出文件")
	}
	if !granted {
		if c.Action() != criteria.ActionList && tree.NumFiles() > 0 {
			fmt.Fprintln(out, c.Action().NotApplied())
		}
		return &p.Stats, nil
	}

	if err := p.Apply(); err != nil {
		return nil, err
	}
	printOutcomes(out, tree, &p.Stats)

	logger.Info().
		Int("matched", p.Stats.Matched).
		Int("moved", p.Stats.Moved).
		Int("copied", p.Stats.Copied).
		Int("deleted", p.Stats.Deleted).
		Int("failed", p.Stats.Failed).
		Msg("处理完成")
	return &p.Stats, nil
}

func printOutcomes(out io.Writer, tree *resource.Tree, stats *fileprocessor.Stats) {
	for _, row := range tree.Rows() {
		if row.Outcome() == resource.OutcomeFailed {
			fmt.Fprintf(out, "failed: %s: %v\n", row.RelPath(), row.Err())
		}
	}

	done := stats.Moved + stats.Copied + stats.Deleted
	verb := "Processed"
	switch {
	case stats.Moved > 0:
		verb = "Moved"
	case stats.Copied > 0:
		verb = "Copied"
	case stats.Deleted > 0:
		verb = "Deleted"
	}
	fmt.Fprintf(out, "%s %d %s", verb, done, display.Pluralize("file", "s", int64(done)))
	if stats.Failed > 0 {
		fmt.Fprintf(out, ", %d failed", stats.Failed)
	}
	fmt.Fprintln(out)
}
