// Package tui 提供终端下的交互式确认界面。
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "是")),
		No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "否")),
		Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "切换")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "确认")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "取消")),
	}
}

// confirmModel 是/否选择，默认选中"否"
type confirmModel struct {
	question string
	onYes    bool
	answered bool
	answer   bool
	keys     keyMap
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{
		question: question,
		keys:     defaultKeyMap(),
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		return m.finish(true)
	case key.Matches(keyMsg, m.keys.No), key.Matches(keyMsg, m.keys.Quit):
		return m.finish(false)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.onYes = !m.onYes
	case key.Matches(keyMsg, m.keys.Submit):
		return m.finish(m.onYes)
	}
	return m, nil
}

func (m confirmModel) finish(answer bool) (tea.Model, tea.Cmd) {
	m.answer = answer
	m.answered = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.question))

	if m.answered {
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		b.WriteString(" " + answerStyle.Render(answer) + "\n")
		return b.String()
	}

	yes, no := normalStyle, focusedStyle
	if m.onYes {
		yes, no = focusedStyle, normalStyle
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, yes.Render("Yes"), " ", no.Render("No")))
	b.WriteString("\n")

	hints := []key.Binding{m.keys.Yes, m.keys.No, m.keys.Toggle, m.keys.Submit, m.keys.Quit}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.Help().Key+" "+h.Help().Desc)
	}
	b.WriteString(hintStyle.Render(strings.Join(parts, " • ")))
	b.WriteString("\n")
	return b.String()
}
