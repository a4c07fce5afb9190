// Package scanner 按深度优先遍历目录树，支持深度限制、跟随符号链接与同一文件系统限制。
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moyu-x/file-organiser/internal/logger"
	"github.com/spf13/afero"
)

// SkipDir 回调对目录返回时不进入该目录，对文件返回时跳过同目录剩余条目
var SkipDir = filepath.SkipDir

// Entry 遍历得到的一个条目，根目录深度为 0
type Entry struct {
	Path  string
	Info  os.FileInfo
	Depth int
	// SubDirs 目录的直接子目录数，文件为 0
	SubDirs int
}

func (e Entry) IsDir() bool {
	return e.Info.IsDir()
}

type FileWalker struct {
	Fs             afero.Fs
	MaxDepth       int
	FollowSymlinks bool
	SameFileSystem bool
}

func NewFileWalker(fs afero.Fs, maxDepth int) *FileWalker {
	return &FileWalker{
		Fs:             fs,
		MaxDepth:       maxDepth,
		FollowSymlinks: true,
		SameFileSystem: true,
	}
}

type walkState struct {
	fn        func(Entry) error
	rootDev   uint64
	hasDev    bool
	ancestors []os.FileInfo
}

// Walk 先序遍历 root，子条目按名称排序。
// 单个条目的错误（权限不足、断开的链接）记录后跳过，回调返回的其他错误会中止遍历。
func (w *FileWalker) Walk(root string, fn func(Entry) error) error {
	info, err := w.Fs.Stat(root)
	if err != nil {
		return fmt.Errorf("访问根目录失败: %w", err)
	}

	st := &walkState{fn: fn}
	if w.SameFileSystem {
		st.rootDev, st.hasDev = deviceID(info)
	}

	err = w.visit(st, root, info, 0)
	if errors.Is(err, filepath.SkipDir) || errors.Is(err, filepath.SkipAll) {
		return nil
	}
	return err
}

func (w *FileWalker) visit(st *walkState, path string, info os.FileInfo, depth int) error {
	if !info.IsDir() {
		return st.fn(Entry{Path: path, Info: info, Depth: depth})
	}

	listing, err := afero.ReadDir(w.Fs, path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("读取目录失败")
	}

	// 符号链接按目标类型计数
	children := make([]Entry, 0, len(listing))
	subDirs := 0
	for _, child := range listing {
		childPath := filepath.Join(path, child.Name())
		childInfo, ok := w.resolve(childPath, child)
		if !ok {
			continue
		}
		if childInfo.IsDir() {
			subDirs++
		}
		children = append(children, Entry{Path: childPath, Info: childInfo, Depth: depth + 1})
	}

	if err := st.fn(Entry{Path: path, Info: info, Depth: depth, SubDirs: subDirs}); err != nil {
		return err
	}
	if depth >= w.MaxDepth {
		return nil
	}

	st.ancestors = append(st.ancestors, info)
	defer func() { st.ancestors = st.ancestors[:len(st.ancestors)-1] }()

	for _, child := range children {
		childPath, childInfo := child.Path, child.Info
		if childInfo.IsDir() && !w.enterable(st, childPath, childInfo) {
			continue
		}

		err := w.visit(st, childPath, childInfo, depth+1)
		if err == nil {
			continue
		}
		if errors.Is(err, filepath.SkipDir) {
			if childInfo.IsDir() {
				continue
			}
			return nil
		}
		return err
	}
	return nil
}

// resolve 跟随符号链接得到目标信息，断开的链接和不跟随时的链接都被跳过
func (w *FileWalker) resolve(path string, info os.FileInfo) (os.FileInfo, bool) {
	if info.Mode()&os.ModeSymlink == 0 {
		return info, true
	}
	if !w.FollowSymlinks {
		logger.Debug().Str("path", path).Msg("跳过符号链接")
		return nil, false
	}
	target, err := w.Fs.Stat(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("符号链接无法访问")
		return nil, false
	}
	return target, true
}

// enterable 检查循环链接和跨文件系统
func (w *FileWalker) enterable(st *walkState, path string, info os.FileInfo) bool {
	for _, ancestor := range st.ancestors {
		if os.SameFile(ancestor, info) {
			logger.Debug().Str("path", path).Msg("检测到循环链接，跳过")
			return false
		}
	}
	if st.hasDev {
		if dev, ok := deviceID(info); ok && dev != st.rootDev {
			logger.Debug().Str("path", path).Msg("跳过其他文件系统上的目录")
			return false
		}
	}
	return true
}
