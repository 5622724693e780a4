package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/abieos"
	"github.com/wippyai/abieos/abi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newExploreCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Browse the ABI and convert values interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("explore needs a terminal")
			}
			k, err := o.loadContract()
			if err != nil {
				return err
			}
			def, err := k.ABI()
			if err != nil {
				return err
			}
			p := tea.NewProgram(newExploreModel(k, bindingsOf(def)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// binding is one action, table or action result and the type it names.
type binding struct {
	kind     string
	name     string
	typeName string
}

func bindingsOf(def *abi.Def) []binding {
	var out []binding
	for _, a := range def.Actions {
		out = append(out, binding{kind: "action", name: a.Name.String(), typeName: a.Type})
	}
	for _, t := range def.Tables {
		out = append(out, binding{kind: "table", name: t.Name.String(), typeName: t.Type})
	}
	for _, r := range def.ActionResults {
		out = append(out, binding{kind: "result", name: r.Name.String(), typeName: r.ResultType})
	}
	return out
}

type exploreState int

const (
	stateSelectBinding exploreState = iota
	stateInputValue
	stateShowResult
)

type exploreModel struct {
	err      error
	contract *abieos.Contract
	result   string
	bindings []binding
	input    textinput.Model
	selected int
	state    exploreState
	fromHex  bool
}

type convertedMsg struct {
	err    error
	result string
}

func newExploreModel(k *abieos.Contract, bindings []binding) *exploreModel {
	return &exploreModel{
		contract: k,
		bindings: bindings,
		state:    stateSelectBinding,
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectBinding && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectBinding && m.selected < len(m.bindings)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectBinding:
				if len(m.bindings) == 0 {
					return m, nil
				}
				m.prepareInput()
				m.state = stateInputValue
				return m, textinput.Blink
			case stateInputValue:
				return m, m.convert
			case stateShowResult:
				m.reset()
				return m, nil
			}

		case "tab":
			if m.state == stateInputValue {
				m.fromHex = !m.fromHex
				m.input.Placeholder = m.placeholder()
				return m, nil
			}

		case "esc":
			if m.state != stateSelectBinding {
				m.reset()
				return m, nil
			}
		}

	case convertedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *exploreModel) reset() {
	m.state = stateSelectBinding
	m.result = ""
	m.err = nil
}

func (m *exploreModel) placeholder() string {
	if m.fromHex {
		return "hex"
	}
	return "JSON"
}

func (m *exploreModel) prepareInput() {
	ti := textinput.New()
	ti.Prompt = m.bindings[m.selected].typeName + ": "
	ti.Width = 60
	ti.Focus()
	m.input = ti
	m.input.Placeholder = m.placeholder()
}

func (m *exploreModel) convert() tea.Msg {
	b := m.bindings[m.selected]
	value := strings.TrimSpace(m.input.Value())
	if m.fromHex {
		out, err := m.contract.HexToJSON(b.typeName, value)
		return convertedMsg{result: out, err: err}
	}
	out, err := m.contract.JSONToHex(b.typeName, value)
	return convertedMsg{result: out, err: err}
}

func (m *exploreModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ABI Explorer"))
	b.WriteString(" ")
	b.WriteString(m.contract.Name().String())
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectBinding:
		if len(m.bindings) == 0 {
			b.WriteString("The ABI binds no actions or tables.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select a binding:\n\n")
		for i, bd := range m.bindings {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + formatBinding(bd)))
			} else {
				b.WriteString("  " + formatBinding(bd))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter convert • q quit"))

	case stateInputValue:
		bd := m.bindings[m.selected]
		direction := "JSON → hex"
		if m.fromHex {
			direction = "hex → JSON"
		}
		b.WriteString(fmt.Sprintf("Converting %s %s (%s)\n\n", kindStyle.Render(bd.kind), bd.name, direction))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab switch direction • enter convert • esc back"))

	case stateShowResult:
		bd := m.bindings[m.selected]
		b.WriteString(fmt.Sprintf("Result for %s:\n\n", typeStyle.Render(bd.typeName)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatBinding(bd binding) string {
	return kindStyle.Render(fmt.Sprintf("%-6s", bd.kind)) + " " + bd.name + " -> " + typeStyle.Render(bd.typeName)
}
