// Package matcher 将通配符或正则模式与锚定方式编译为单个可复用的匹配器。
package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern 模式语法错误，匹配器无法构建
var ErrInvalidPattern = errors.New("invalid pattern")

// Bounds 匹配锚定方式
type Bounds int

const (
	// Open 不加锚点，任意位置匹配
	Open Bounds = iota
	// Start 从开头匹配
	Start
	// End 匹配到结尾，允许忽略末尾的扩展名
	End
)

// Mode 模式语法
type Mode int

const (
	// Literal 简单模式：. 为字面量，* 为通配符
	Literal Mode = iota
	// Regex 正则模式，原样传递
	Regex
)

// endSuffix 让 End 锚定忽略末尾的 .ext
const endSuffix = `(\.\w+)?$`

func (b Bounds) String() string {
	switch b {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "open"
	}
}

func (m Mode) String() string {
	if m == Regex {
		return "regex"
	}
	return "literal"
}

// Matcher 编译后的匹配器
type Matcher struct {
	pattern string
	bounds  Bounds
	mode    Mode
	re      *regexp.Regexp
}

// New 构建匹配器，模式非法时返回包装了 ErrInvalidPattern 的错误
func New(pattern string, caseInsensitive bool, bounds Bounds, mode Mode) (*Matcher, error) {
	expr := Expression(pattern, caseInsensitive, bounds, mode)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &Matcher{
		pattern: pattern,
		bounds:  bounds,
		mode:    mode,
		re:      re,
	}, nil
}

// Expression 返回最终交给正则引擎的表达式
func Expression(pattern string, caseInsensitive bool, bounds Bounds, mode Mode) string {
	parsed := pattern
	if mode == Literal {
		parsed = strings.ReplaceAll(parsed, ".", `\.`)
		parsed = strings.ReplaceAll(parsed, "*", ".*")
	}

	var b strings.Builder
	if caseInsensitive {
		b.WriteString("(?i)")
	}
	if bounds == Start && !strings.HasPrefix(pattern, "^") {
		b.WriteString("^")
	}
	b.WriteString(parsed)
	if bounds == End && !strings.HasSuffix(pattern, "$") {
		b.WriteString(endSuffix)
	}
	return b.String()
}

// Match 判断文本是否匹配
func (m *Matcher) Match(text string) bool {
	return m.re.MatchString(text)
}

// Pattern 返回原始模式
func (m *Matcher) Pattern() string {
	return m.pattern
}

func (m *Matcher) Bounds() Bounds {
	return m.bounds
}

func (m *Matcher) Mode() Mode {
	return m.mode
}

func (m *Matcher) String() string {
	return m.re.String()
}

// MatchString 一次性匹配，不缓存编译结果
func MatchString(text, pattern string, caseInsensitive bool, bounds Bounds, mode Mode) (bool, error) {
	m, err := New(pattern, caseInsensitive, bounds, mode)
	if err != nil {
		return false, err
	}
	return m.Match(text), nil
}
