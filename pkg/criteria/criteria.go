// Package criteria 解析命令行输入并生成一次扫描所需的只读过滤与操作规格。
package criteria

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/moyu-x/file-organiser/pkg/display"
	"github.com/moyu-x/file-organiser/pkg/matcher"
)

// DefaultMaxDepth 未指定深度时的默认值，相当于不限深度
const DefaultMaxDepth = 255

// SizeRange 字节大小区间，Max 为 0 表示不限
type SizeRange struct {
	Min uint64
	Max uint64
}

// HasMax 最大值只有大于最小值时才生效
func (r SizeRange) HasMax() bool {
	return r.Max > r.Min
}

// IsBounded 是否设置了任意大小限制
func (r SizeRange) IsBounded() bool {
	return r.Min > 0 || r.HasMax()
}

// Contains 判断大小是否在区间内
func (r SizeRange) Contains(size uint64) bool {
	return size >= r.Min && (!r.HasMax() || size <= r.Max)
}

// AgeRange 以天为单位的年龄区间
type AgeRange struct {
	MinDays float64
	MaxDays float64
}

func (r AgeRange) HasMin() bool {
	return r.MinDays > 0
}

// HasMax 最大值只有大于最小值时才生效
func (r AgeRange) HasMax() bool {
	return r.MaxDays > r.MinDays
}

func (r AgeRange) IsBounded() bool {
	return r.HasMin() || r.HasMax()
}

// Contains 判断以天计的年龄是否在区间内：age >= min 且 age < max
func (r AgeRange) Contains(days float64) bool {
	if r.HasMin() && days < r.MinDays {
		return false
	}
	if r.HasMax() && days >= r.MaxDays {
		return false
	}
	return true
}

// Action 扫描时声明的操作
type Action int

const (
	ActionList Action = iota
	ActionMove
	ActionCopy
	ActionDelete
	// ActionDirectDelete 不经确认直接删除
	ActionDirectDelete
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionCopy:
		return "copy"
	case ActionDelete:
		return "delete"
	case ActionDirectDelete:
		return "force delete"
	default:
		return "list"
	}
}

// NotApplied 操作未执行时的提示
func (a Action) NotApplied() string {
	switch a {
	case ActionMove:
		return "Not moved"
	case ActionCopy:
		return "Not copied"
	case ActionDelete, ActionDirectDelete:
		return "Not deleted"
	default:
		return "Listed only"
	}
}

// Permission 通过前置检查后才会提升的操作许可
type Permission int

const (
	PermissionNone Permission = iota
	PermissionMove
	PermissionCopy
	PermissionDelete
)

func (p Permission) String() string {
	switch p {
	case PermissionMove:
		return "move"
	case PermissionCopy:
		return "copy"
	case PermissionDelete:
		return "delete"
	default:
		return "none"
	}
}

// Inputs 来自命令行的原始输入，缺省值为空字符串或 false
type Inputs struct {
	Before      string
	After       string
	Size        string
	Ext         string
	NotExt      string
	ExcludeDirs string
	Pattern     string
	OmitPattern string
	StartsWith  string
	EndsWith    string
	Kind        string
	// MaxDepth 为 DefaultMaxDepth 时表示不限深度
	MaxDepth  int
	Hidden    bool
	RegexMode bool
	Move      string
	Copy      string
	Delete    bool
	Force     bool
	// FilePattern 路径参数本身指向文件名模式时提取出的模式
	FilePattern string
}

// Criteria 一次扫描的完整过滤与操作规格
// 除 ApplyActionPermissions 外没有其他修改入口
type Criteria struct {
	sizes       SizeRange
	age         AgeRange
	includeExts []string
	excludeExts []string
	excludeDirs []string
	kinds       []string
	include     *matcher.Matcher
	exclude     *matcher.Matcher
	bounds      matcher.Bounds
	mode        matcher.Mode
	maxDepth    int
	showHidden  bool
	action      Action
	target      string

	permission Permission
	targetAbs  string
	applied    bool
}

// Build 按固定顺序解析输入，模式非法时返回 matcher.ErrInvalidPattern
func Build(in Inputs) (*Criteria, error) {
	c := &Criteria{
		showHidden: in.Hidden,
	}

	// 年龄：before 给出下限（可带区间），after 给出上限
	c.age.MinDays, c.age.MaxDays = ParseAgeRange(in.Before)
	if after := ParseAge(in.After); after > 0 {
		c.age.MaxDays = after
	}

	// 深度：文件名模式只扫描其所在目录
	c.maxDepth = in.MaxDepth
	if c.maxDepth <= 0 || in.FilePattern != "" {
		c.maxDepth = 1
	}

	c.includeExts = ParseExtensions(in.Ext)
	c.excludeExts = ParseExtensions(in.NotExt)
	c.excludeDirs = ParseList(in.ExcludeDirs)
	c.sizes = ParseSizeRange(in.Size)
	for _, kind := range ParseList(in.Kind) {
		c.kinds = append(c.kinds, strings.ToLower(kind))
	}

	c.mode = matcher.Literal
	if in.RegexMode {
		c.mode = matcher.Regex
	}

	pattern, bounds := resolvePattern(in)
	c.bounds = bounds
	if pattern != "" {
		m, err := matcher.New(pattern, true, bounds, c.mode)
		if err != nil {
			return nil, fmt.Errorf("解析匹配模式失败: %w", err)
		}
		c.include = m
	}
	if in.OmitPattern != "" {
		m, err := matcher.New(in.OmitPattern, true, matcher.Open, c.mode)
		if err != nil {
			return nil, fmt.Errorf("解析排除模式失败: %w", err)
		}
		c.exclude = m
	}

	c.action, c.target = resolveAction(in)
	return c, nil
}

// resolvePattern starts-with > ends-with > pattern，路径中的文件名模式覆盖三者
func resolvePattern(in Inputs) (string, matcher.Bounds) {
	switch {
	case in.FilePattern != "":
		return in.FilePattern, matcher.Open
	case in.StartsWith != "":
		return in.StartsWith, matcher.Start
	case in.EndsWith != "":
		return in.EndsWith, matcher.End
	default:
		return in.Pattern, matcher.Open
	}
}

// resolveAction copy > move > delete+force > delete > list
func resolveAction(in Inputs) (Action, string) {
	switch {
	case strings.TrimSpace(in.Copy) != "":
		return ActionCopy, strings.TrimSpace(in.Copy)
	case strings.TrimSpace(in.Move) != "":
		return ActionMove, strings.TrimSpace(in.Move)
	case in.Delete && in.Force:
		return ActionDirectDelete, ""
	case in.Delete:
		return ActionDelete, ""
	default:
		return ActionList, ""
	}
}

func (c *Criteria) Sizes() SizeRange             { return c.sizes }
func (c *Criteria) Age() AgeRange                { return c.age }
func (c *Criteria) IncludeExtensions() []string  { return c.includeExts }
func (c *Criteria) ExcludeExtensions() []string  { return c.excludeExts }
func (c *Criteria) ExcludeDirectories() []string { return c.excludeDirs }
func (c *Criteria) Kinds() []string              { return c.kinds }
func (c *Criteria) MaxDepth() int                { return c.maxDepth }
func (c *Criteria) ShowHidden() bool             { return c.showHidden }
func (c *Criteria) Action() Action               { return c.action }
func (c *Criteria) Target() string               { return c.target }
func (c *Criteria) Permission() Permission       { return c.permission }
func (c *Criteria) Bounds() matcher.Bounds       { return c.bounds }
func (c *Criteria) MatchMode() matcher.Mode      { return c.mode }

func (c *Criteria) HasPattern() bool {
	return c.include != nil
}

func (c *Criteria) HasExcludePattern() bool {
	return c.exclude != nil
}

func (c *Criteria) HasSizeLimits() bool {
	return c.sizes.IsBounded()
}

func (c *Criteria) FiltersByAge() bool {
	return c.age.IsBounded()
}

func (c *Criteria) FiltersByKind() bool {
	return len(c.kinds) > 0
}

func (c *Criteria) DeleteRequiresConfirmation() bool {
	return c.action == ActionDelete
}

func (c *Criteria) IsDelete() bool {
	return c.action == ActionDelete || c.action == ActionDirectDelete
}

func (c *Criteria) IsMoveOrCopy() bool {
	return c.action == ActionMove || c.action == ActionCopy
}

// NameMatches 文件名需匹配包含模式且不匹配排除模式，未设置的模式直接通过
func (c *Criteria) NameMatches(name string) bool {
	if c.include != nil && !c.include.Match(name) {
		return false
	}
	if c.exclude != nil && c.exclude.Match(name) {
		return false
	}
	return true
}

// ExtensionAllowed 扩展名需在包含列表中（列表为空时全部通过）且不在排除列表中
func (c *Criteria) ExtensionAllowed(ext string) bool {
	if len(c.includeExts) > 0 && !containsExtension(c.includeExts, ext) {
		return false
	}
	return !containsExtension(c.excludeExts, ext)
}

func containsExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext || (e == NoExtension && ext == "") {
			return true
		}
	}
	return false
}

// KindAllowed 内容类型过滤，未设置时全部通过
func (c *Criteria) KindAllowed(kind string) bool {
	if len(c.kinds) == 0 {
		return true
	}
	for _, k := range c.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ExcludesDir 判断相对根目录的路径段是否被排除
// 以分隔符开头的排除项按相对路径前缀匹配，其余按任意路径段匹配
func (c *Criteria) ExcludesDir(relParts []string) bool {
	if len(relParts) == 0 {
		return false
	}
	joined := "/" + strings.Join(relParts, "/")
	for _, token := range c.excludeDirs {
		token = filepath.ToSlash(token)
		if strings.HasPrefix(token, "/") {
			prefix := strings.TrimRight(token, "/")
			if prefix == "" {
				continue
			}
			if joined == prefix || strings.HasPrefix(joined, prefix+"/") {
				return true
			}
			continue
		}
		for _, part := range relParts {
			if part == token {
				return true
			}
		}
	}
	return false
}

// ApplyActionPermissions 在目标目录已确认存在（或已创建）、删除已获确认后调用一次。
// granted 为 true 时将许可提升为对应操作；ActionDirectDelete 无需确认。
// 返回 move/copy 的绝对目标路径，未获许可时返回空字符串。重复调用不再修改状态。
func (c *Criteria) ApplyActionPermissions(granted bool) string {
	if c.applied {
		return c.targetAbs
	}
	c.applied = true

	switch c.action {
	case ActionMove, ActionCopy:
		if !granted {
			return ""
		}
		abs, err := filepath.Abs(c.target)
		if err != nil {
			abs = c.target
		}
		c.targetAbs = abs
		if c.action == ActionMove {
			c.permission = PermissionMove
		} else {
			c.permission = PermissionCopy
		}
	case ActionDelete:
		if granted {
			c.permission = PermissionDelete
		}
	case ActionDirectDelete:
		c.permission = PermissionDelete
	}
	return c.targetAbs
}

// PermissionApplied 是否已经调用过 ApplyActionPermissions
func (c *Criteria) PermissionApplied() bool {
	return c.applied
}

// ActionText 操作描述，如 "move to /tmp/out"
func (c *Criteria) ActionText() string {
	switch c.action {
	case ActionMove:
		return "move to " + c.target
	case ActionCopy:
		return "copy to " + c.target
	case ActionDelete, ActionDirectDelete:
		return "delete"
	default:
		return "list"
	}
}

// Summary 返回用于报告头部的多行描述
func (c *Criteria) Summary() []string {
	sizeText := "All sizes"
	if c.HasSizeLimits() {
		parts := make([]string, 0, 2)
		if c.sizes.Min > 0 {
			parts = append(parts, "min. "+display.FormatBytes(int64(c.sizes.Min)))
		}
		if c.sizes.HasMax() {
			parts = append(parts, "max. "+display.FormatBytes(int64(c.sizes.Max)))
		}
		sizeText = strings.Join(parts, " ")
	}
	extText := "all"
	if len(c.includeExts) > 0 {
		extText = strings.Join(c.includeExts, ", ")
	}
	lines := []string{
		display.AgeRange(c.age.MinDays, c.age.MaxDays),
		"size range " + sizeText,
		"extensions " + extText,
	}
	if c.include != nil {
		lines = append(lines, fmt.Sprintf("pattern %s (%s, %s)", display.ShortPattern(c.include.Pattern()), c.bounds, c.mode))
	}
	if len(c.kinds) > 0 {
		lines = append(lines, "kinds "+strings.Join(c.kinds, ", "))
	}
	lines = append(lines, "action "+c.ActionText())
	return lines
}
