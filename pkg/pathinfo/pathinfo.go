// Package pathinfo 将命令行给出的路径解析为扫描根目录，并在需要时从中提取文件名模式。
package pathinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrPathNotFound 路径及其父目录都不存在
var ErrPathNotFound = errors.New("path not found")

// Info 路径解析结果
type Info struct {
	// Input 原始输入
	Input string
	// Canonical 扫描根目录的绝对路径
	Canonical string
	// Exists 原始输入是否存在
	Exists bool
	// Pattern 从路径中提取出的文件名模式，没有时为空
	Pattern string
}

// HasPattern 路径的最后一段被当作文件名模式
func (i *Info) HasPattern() bool {
	return i.Pattern != ""
}

// New 解析路径：
// 已存在的目录直接作为根目录；已存在的普通文件以其父目录为根、文件名为模式；
// 不存在的最后一段在父目录存在时作为模式，否则返回 ErrPathNotFound
func New(fs afero.Fs, input string) (*Info, error) {
	if strings.TrimSpace(input) == "" {
		input = "."
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, fmt.Errorf("解析路径失败: %w", err)
	}
	info := &Info{Input: input}

	stat, err := fs.Stat(abs)
	switch {
	case err == nil && stat.IsDir():
		info.Exists = true
		info.Canonical = canonical(abs)
		return info, nil
	case err == nil:
		info.Exists = true
		info.Canonical = canonical(filepath.Dir(abs))
		info.Pattern = filepath.Base(abs)
		return info, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("访问路径失败: %w", err)
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return nil, fmt.Errorf("The target directory %s does not exist: %w", input, ErrPathNotFound)
	}
	if ok, _ := afero.DirExists(fs, parent); !ok {
		return nil, fmt.Errorf("The target directory %s does not exist: %w", input, ErrPathNotFound)
	}
	info.Canonical = canonical(parent)
	info.Pattern = filepath.Base(abs)
	return info, nil
}

// canonical 尽量解析符号链接，失败时保留绝对路径
func canonical(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return resolved
}
