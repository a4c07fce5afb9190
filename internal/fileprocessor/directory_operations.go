package fileprocessor

import (
	"fmt"
	"path/filepath"

	"github.com/moyu-x/file-organiser/internal/logger"
	"github.com/moyu-x/file-organiser/pkg/prompt"
	"github.com/spf13/afero"
)

// ensureTargetDir 目标目录存在时直接通过，否则询问后创建
func (p *Processor) ensureTargetDir(confirmer prompt.Confirmer, target string) error {
	exists, err := afero.DirExists(p.Fs, target)
	if err != nil {
		return fmt.Errorf("%w: 检查目标目录失败: %v", ErrUnresolvedTarget, err)
	}
	if exists {
		return nil
	}

	create, err := confirmer.Confirm(fmt.Sprintf("The target directory %s does not exist. Create it?", target))
	if err != nil {
		return fmt.Errorf("%w: 读取确认失败: %v", ErrUnresolvedTarget, err)
	}
	if !create {
		return fmt.Errorf("%w: %s", ErrUnresolvedTarget, target)
	}

	if err := p.Fs.MkdirAll(target, DirPerm); err != nil {
		return fmt.Errorf("%w: 创建目标目录失败: %v", ErrUnresolvedTarget, err)
	}
	logger.Info().Str("target", target).Msg("已创建目标目录")
	return nil
}

// targetPathFor 目标目录下保持文件相对扫描根目录的路径
func (p *Processor) targetPathFor(relPath string) string {
	return filepath.Join(p.target, relPath)
}

// ensureParentDir 创建目标文件的父目录
func (p *Processor) ensureParentDir(path string) error {
	if err := p.Fs.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}
	return nil
}
