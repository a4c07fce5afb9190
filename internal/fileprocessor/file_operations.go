package fileprocessor

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/moyu-x/file-organiser/internal/logger"
	"github.com/moyu-x/file-organiser/pkg/resource"
	"github.com/spf13/afero"
)

var errSameFile = errors.New("source and target are the same file")

// moveRow 使用 rename 移动，不做复制后删除的回退
func (p *Processor) moveRow(row *resource.Row) error {
	dst, err := p.prepareTarget(row)
	if err != nil {
		return err
	}
	if err := p.Fs.Rename(row.Path(), dst); err != nil {
		return fmt.Errorf("移动文件失败: %w", err)
	}

	row.MarkMoved(dst)
	p.Stats.Moved++
	logger.Debug().Str("source", row.Path()).Str("destination", dst).Msg("文件已移动")
	return nil
}

// copyRow 复制文件并保留源文件，开启校验时比较两端的哈希
func (p *Processor) copyRow(row *resource.Row) error {
	dst, err := p.prepareTarget(row)
	if err != nil {
		return err
	}
	if err := p.copyFile(row.Path(), dst); err != nil {
		return err
	}
	if p.Verify {
		if err := p.verifyCopy(row.Path(), dst); err != nil {
			p.discard(dst)
			return err
		}
	}

	row.MarkCopied(dst)
	p.Stats.Copied++
	logger.Debug().Str("source", row.Path()).Str("destination", dst).Msg("文件已复制")
	return nil
}

func (p *Processor) deleteRow(row *resource.Row) error {
	if err := p.Fs.Remove(row.Path()); err != nil {
		return fmt.Errorf("删除文件失败: %w", err)
	}

	row.MarkDeleted()
	p.Stats.Deleted++
	logger.Debug().Str("file", row.Path()).Msg("文件已删除")
	return nil
}

// prepareTarget 计算目标路径、创建父目录，并避开已存在的文件
func (p *Processor) prepareTarget(row *resource.Row) (string, error) {
	dst := p.targetPathFor(row.RelPath())
	if filepath.Clean(dst) == filepath.Clean(row.Path()) {
		return "", errSameFile
	}
	if err := p.ensureParentDir(dst); err != nil {
		return "", err
	}
	return p.uniquePath(dst)
}

// uniquePath 目标文件已存在时在文件名后追加随机后缀
func (p *Processor) uniquePath(dst string) (string, error) {
	for {
		exists, err := afero.Exists(p.Fs, dst)
		if err != nil {
			return "", fmt.Errorf("检查文件是否存在失败: %w", err)
		}
		if !exists {
			return dst, nil
		}

		ext := filepath.Ext(dst)
		base := strings.TrimSuffix(dst, ext)
		renamed := fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)
		logger.Debug().
			Str("original_path", dst).
			Str("new_path", renamed).
			Msg("文件名冲突，自动重命名")
		dst = renamed
	}
}

// copyFile 复制内容并保留权限
func (p *Processor) copyFile(src, dst string) error {
	sourceFile, err := p.Fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return fmt.Errorf("读取源文件信息失败: %w", err)
	}

	destFile, err := p.Fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		p.discard(dst)
		return fmt.Errorf("复制文件内容失败: %w", err)
	}
	if err := destFile.Close(); err != nil {
		p.discard(dst)
		return fmt.Errorf("写入目标文件失败: %w", err)
	}

	if err := p.Fs.Chmod(dst, sourceInfo.Mode().Perm()); err != nil {
		p.discard(dst)
		return fmt.Errorf("设置文件权限失败: %w", err)
	}
	return nil
}

// discard 删除复制失败留下的目标文件
func (p *Processor) discard(dst string) {
	if err := p.Fs.Remove(dst); err != nil {
		logger.Warn().Err(err).Str("file", dst).Msg("清理目标文件失败")
	}
}
