package resource

import (
	"path/filepath"
	"sort"
)

// Tree 一次扫描的全部目录集合，Sets()[0] 始终是根目录
type Tree struct {
	root     string
	hasRoot  bool
	sets     []*Set
	index    map[string]int
	maxDepth int
}

func NewTree(maxDepth int) *Tree {
	return &Tree{
		maxDepth: maxDepth,
		index:    make(map[string]int),
	}
}

// AddRoot 只有第一次调用生效
func (t *Tree) AddRoot(path string) {
	if t.hasRoot {
		return
	}
	t.root = path
	t.hasRoot = true
}

func (t *Tree) Root() string {
	return t.root
}

func (t *Tree) HasRoot() bool {
	return t.hasRoot
}

func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Push 添加目录，同一路径只保留第一个
func (t *Tree) Push(set *Set) bool {
	key := filepath.Clean(set.Path())
	if _, ok := t.index[key]; ok {
		return false
	}
	t.index[key] = len(t.sets)
	t.sets = append(t.sets, set)
	return true
}

// Lookup 按目录路径查找 Set
func (t *Tree) Lookup(dir string) (*Set, bool) {
	i, ok := t.index[filepath.Clean(dir)]
	if !ok {
		return nil, false
	}
	return t.sets[i], true
}

// Attach 将文件挂到父目录对应的 Set 上，父目录不在树中（被排除）时返回 false
func (t *Tree) Attach(row *Row) bool {
	set, ok := t.Lookup(row.ParentDir())
	if !ok {
		return false
	}
	set.Push(row)
	return true
}

func (t *Tree) Sets() []*Set {
	return t.sets
}

// Rows 按目录顺序返回全部文件
func (t *Tree) Rows() []*Row {
	rows := make([]*Row, 0, t.NumFiles())
	for _, set := range t.sets {
		rows = append(rows, set.Rows()...)
	}
	return rows
}

func (t *Tree) NumDirs() int {
	return len(t.sets)
}

func (t *Tree) NumSubDirs() int {
	if len(t.sets) == 0 {
		return 0
	}
	return len(t.sets) - 1
}

func (t *Tree) NumFiles() int {
	n := 0
	for _, set := range t.sets {
		n += set.Count()
	}
	return n
}

func (t *Tree) TotalSize() int64 {
	var size int64
	for _, set := range t.sets {
		size += set.Size()
	}
	return size
}

// pick 遍历所有文件，better 为真时替换当前结果，相等时保留先出现的
func (t *Tree) pick(better func(candidate, current *Row) bool) *Row {
	var found *Row
	for _, set := range t.sets {
		for _, row := range set.Rows() {
			if found == nil || better(row, found) {
				found = row
			}
		}
	}
	return found
}

func (t *Tree) Smallest() *Row {
	return t.pick(func(c, cur *Row) bool { return c.Size() < cur.Size() })
}

func (t *Tree) Largest() *Row {
	return t.pick(func(c, cur *Row) bool { return c.Size() > cur.Size() })
}

func (t *Tree) Oldest() *Row {
	return t.pick(func(c, cur *Row) bool { return c.ModTime() < cur.ModTime() })
}

func (t *Tree) Newest() *Row {
	return t.pick(func(c, cur *Row) bool { return c.ModTime() > cur.ModTime() })
}

// ExtStat 单个扩展名的数量与累计大小
type ExtStat struct {
	Extension string
	Count     int
	Size      int64
}

// ExtensionHistogram 按累计大小降序排列，大小相同时保持首次出现的顺序
func (t *Tree) ExtensionHistogram() []ExtStat {
	var stats []ExtStat
	byExt := make(map[string]int)
	for _, set := range t.sets {
		for _, row := range set.Rows() {
			i, ok := byExt[row.Extension()]
			if !ok {
				i = len(stats)
				byExt[row.Extension()] = i
				stats = append(stats, ExtStat{Extension: row.Extension()})
			}
			stats[i].Count++
			stats[i].Size += row.Size()
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Size > stats[j].Size
	})
	return stats
}

// Outcomes 按操作结果统计文件数
func (t *Tree) Outcomes() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, set := range t.sets {
		for _, row := range set.Rows() {
			counts[row.Outcome()]++
		}
	}
	return counts
}
