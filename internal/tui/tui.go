// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Show pages an already-rendered report in an interactive viewer.
func Show(title, report string) error {
	m := model{title: title, report: report}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type model struct {
	title  string
	report string
	vp     viewport.Model
	ready  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Reserve one line each for the title and the status bar.
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.vp.SetContent(m.report)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	status := fmt.Sprintf("%3.0f%%  ↑/↓ scroll, q quit", m.vp.ScrollPercent()*100)
	return titleStyle.Render(m.title) + "\n" + m.vp.View() + "\n" + statusStyle.Render(status)
}
