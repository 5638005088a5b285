// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package main provides the entry point for the cvdcheck CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ghchinoy/cvdcheck/internal/checker"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// maxHistory is the number of filter blocks kept on screen.
const maxHistory = 9

type resultMsg struct {
	Result checker.FilterResult
	Err    error
}

type eventMsg resultMsg
type doneMsg struct{}

type model struct {
	sub      <-chan resultMsg
	blocks   []string
	spinner  spinner.Model
	status   string
	expected int
	label    int
	seen     int
	meta     checker.Meta
	failures int
	quitting bool
	err      error
	width    int
}

// initialModel expects one result per name, baseline included.
func initialModel(sub <-chan resultMsg, names []string) model {
	label := 0
	for _, name := range names {
		label = max(label, len(name))
	}
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(statusStyle),
	)
	return model{
		sub:      sub,
		spinner:  s,
		status:   "Simulating...",
		expected: len(names),
		label:    label,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForResult(m.sub),
	)
}

func waitForResult(sub <-chan resultMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-sub
		if !ok {
			return doneMsg{}
		}
		return eventMsg(msg)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case doneMsg:
		m.quitting = true
		m.status = fmt.Sprintf("Done: %d warnings", m.failures)
		if m.meta.Count > 0 {
			m.meta.Average = m.meta.Total / float64(m.meta.Count)
		}
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case eventMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, tea.Quit
		}
		res := msg.Result
		m.seen++
		if res.Deficiency != checker.TrichromatName {
			m.meta.Total += res.Metrics.AbsoluteDistance
			m.meta.Count++
		}
		m.failures += len(res.Failed())
		m.blocks = append(m.blocks, strings.TrimRight(renderFilter(res, m.label), "\n"))
		m.status = fmt.Sprintf("Simulated %s (%d/%d)", res.Deficiency, m.seen, m.expected)
		return m, waitForResult(m.sub)
	}

	return m, nil
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("%s %v\n", StyleFail.Render("Error:"), m.err)
	}

	spin := m.spinner.View() + " "
	if m.quitting {
		spin = ""
	}
	statusLine := spin + statusStyle.Render(strings.ToUpper(m.status))
	if m.meta.Count > 0 {
		statusLine += StyleMuted.Render(fmt.Sprintf(" | total distance %.2f", m.meta.Total))
	}

	start := 0
	if len(m.blocks) > maxHistory {
		start = len(m.blocks) - maxHistory
	}
	history := strings.Join(m.blocks[start:], "\n")

	width := max(m.width-4, 0)

	return docStyle.Width(width).Render(fmt.Sprintf(
		"%s\n\n%s\n\n(q to quit)",
		history,
		statusLine,
	))
}

// streamResults feeds the results of c into a channel until they run out
// or done is closed.
func streamResults(c *checker.Checker, done <-chan struct{}) <-chan resultMsg {
	stream := make(chan resultMsg)
	go func() {
		defer close(stream)
		for res, err := range c.Results() {
			select {
			case <-done:
				return
			default:
			}
			select {
			case stream <- resultMsg{Result: res, Err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return stream
}

// runTUI streams the results of c into the interactive view.
func runTUI(c *checker.Checker) error {
	done := make(chan struct{})
	defer close(done)

	names := append([]string{checker.TrichromatName}, c.Config().Deficiencies...)
	p := tea.NewProgram(initialModel(streamResults(c, done), names))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}
	if m, ok := finalModel.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
