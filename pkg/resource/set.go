package resource

import "path/filepath"

// Set 一个被访问的目录及其直接包含的匹配文件
type Set struct {
	path       string
	relPath    string
	depth      int
	numSubDirs int
	rows       []*Row
}

// NewSet numSubDirs 为一次非递归列目录得到的子目录数
func NewSet(path, root string, depth, numSubDirs int) *Set {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return &Set{
		path:       path,
		relPath:    rel,
		depth:      depth,
		numSubDirs: numSubDirs,
	}
}

func (s *Set) Push(row *Row) {
	s.rows = append(s.rows, row)
}

func (s *Set) Rows() []*Row    { return s.rows }
func (s *Set) Count() int      { return len(s.rows) }
func (s *Set) Depth() int      { return s.depth }
func (s *Set) Path() string    { return s.path }
func (s *Set) RelPath() string { return s.relPath }
func (s *Set) NumSubDirs() int { return s.numSubDirs }

func (s *Set) Size() int64 {
	var size int64
	for _, row := range s.rows {
		size += row.Size()
	}
	return size
}
