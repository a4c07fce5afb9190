package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Confirmer 用 bubbletea 显示是/否选择
type Confirmer struct {
	In  io.Reader
	Out io.Writer
}

func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{In: in, Out: out}
}

func (c *Confirmer) Confirm(question string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(question), tea.WithInput(c.In), tea.WithOutput(c.Out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("运行确认界面失败: %w", err)
	}
	m, ok := final.(confirmModel)
	return ok && m.answered && m.answer, nil
}

// Interactive 标准输入和标准错误都是终端时才使用交互界面
func Interactive() bool {
	in, errOut := os.Stdin.Fd(), os.Stderr.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(errOut) || isatty.IsCygwinTerminal(errOut))
}
