// Package prompt 提供操作前的确认能力。
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer 向用户提问，返回是否同意
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc 函数适配器
type ConfirmFunc func(question string) (bool, error)

func (f ConfirmFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// Always 固定回答，用于测试或 --force
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(string) (bool, error) { return answer, nil })
}

// Line 从 In 读取一行回答，y 或 yes（不区分大小写）视为同意
type Line struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{In: bufio.NewReader(in), Out: out}
}

// Stdin 读取标准输入，问题写到标准错误
func Stdin() *Line {
	return NewLine(os.Stdin, os.Stderr)
}

func (l *Line) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(l.Out, "%s [y/N] ", question); err != nil {
		return false, err
	}
	answer, err := l.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("读取输入失败: %w", err)
	}
	return IsYes(answer), nil
}

// IsYes 判断回答是否为同意
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
