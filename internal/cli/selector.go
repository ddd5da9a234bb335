package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var errSelectorCanceled = errors.New("selector canceled")

type blueprintCandidate struct {
	Name        string
	Description string
}

type blueprintSelectorModel struct {
	candidates []blueprintCandidate
	cursor     int
	useColor   bool
	canceled   bool
	done       bool
}

func newBlueprintSelectorModel(candidates []blueprintCandidate, useColor bool) blueprintSelectorModel {
	return blueprintSelectorModel{
		candidates: candidates,
		useColor:   useColor,
	}
}

func (m blueprintSelectorModel) Init() tea.Cmd {
	return nil
}

func (m blueprintSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			switch msg.Runes[0] {
			case 'j', 'J':
				if m.cursor < len(m.candidates)-1 {
					m.cursor++
				}
				return m, nil
			case 'k', 'K':
				if m.cursor > 0 {
					m.cursor--
				}
				return m, nil
			}
		}
	}
	return m, nil
}

func (m blueprintSelectorModel) View() string {
	nameWidth := len("blueprint")
	for _, it := range m.candidates {
		if n := len(it.Name); n > nameWidth {
			nameWidth = n
		}
	}

	lines := make([]string, 0, len(m.candidates)+4)
	lines = append(lines, styleBold("Blueprints:", m.useColor))
	lines = append(lines, "")

	for i, it := range m.candidates {
		body := fmt.Sprintf("%-*s  %s", nameWidth, it.Name, it.Description)
		if m.useColor && i == m.cursor {
			highlighted := lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "252", Dark: "236"}).
				Render(body)
			focus := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Render(">")
			lines = append(lines, focus+" "+highlighted)
			continue
		}
		focus := " "
		if i == m.cursor {
			focus = ">"
		}
		lines = append(lines, focus+" "+body)
	}

	lines = append(lines, "")
	lines = append(lines, styleMuted("↑↓/j/k move  enter select  esc/c-c cancel", m.useColor))
	return strings.Join(lines, "\n")
}

func (c *CLI) promptBlueprintSelector(candidates []blueprintCandidate) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no blueprint candidates")
	}

	inFile, ok := c.In.(*os.File)
	if !ok || !isatty.IsTerminal(inFile.Fd()) {
		return "", fmt.Errorf("interactive blueprint selection requires a TTY")
	}

	useColor := writerSupportsColor(c.Err)
	return runBlueprintSelector(inFile, c.Err, candidates, useColor)
}

func runBlueprintSelector(in *os.File, out io.Writer, candidates []blueprintCandidate, useColor bool) (string, error) {
	model := newBlueprintSelectorModel(candidates, useColor)
	program := tea.NewProgram(
		model,
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)

	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}
	m, ok := finalModel.(blueprintSelectorModel)
	if !ok {
		return "", fmt.Errorf("unexpected selector model type")
	}
	if m.canceled || !m.done {
		return "", errSelectorCanceled
	}
	return m.candidates[m.cursor].Name, nil
}
