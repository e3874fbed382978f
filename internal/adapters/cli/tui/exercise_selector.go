package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollandre/fitscan/internal/domain"
)

var (
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	uncheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ExerciseSelectorModel is the bubbletea model for picking exercises
// to save into the library after an analysis.
type ExerciseSelectorModel struct {
	exercises []domain.Exercise
	checked   []bool
	cursor    int
	done      bool
}

// NewExerciseSelectorModel creates a selector with everything pre-checked.
func NewExerciseSelectorModel(exercises []domain.Exercise) ExerciseSelectorModel {
	checked := make([]bool, len(exercises))
	for i := range checked {
		checked[i] = true
	}
	return ExerciseSelectorModel{
		exercises: exercises,
		checked:   checked,
	}
}

func (m ExerciseSelectorModel) Init() tea.Cmd {
	return nil
}

func (m ExerciseSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.exercises)-1 {
				m.cursor++
			}
		case " ", "x":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "a":
			for i := range m.checked {
				m.checked[i] = true
			}
		case "n":
			for i := range m.checked {
				m.checked[i] = false
			}
		case "enter":
			m.done = true
			return m, tea.Quit
		case "q", "ctrl+c", "esc":
			m.done = false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ExerciseSelectorModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Select exercises to save to your library:"))
	sb.WriteString("\n\n")

	for i, ex := range m.exercises {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checkbox := "[ ]"
		style := uncheckedStyle
		if m.checked[i] {
			checkbox = "[x]"
			style = checkedStyle
		}

		line := fmt.Sprintf("%s%s %s", cursor, checkbox, FormatExerciseLine(ex, 28))
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n(space=toggle, a=all, n=none, enter=confirm, q=cancel)\n")
	return sb.String()
}

// Selected returns the checked exercises
func (m ExerciseSelectorModel) Selected() []domain.Exercise {
	var result []domain.Exercise
	for i, ex := range m.exercises {
		if m.checked[i] {
			result = append(result, ex)
		}
	}
	return result
}

// Cancelled returns true if the user cancelled
func (m ExerciseSelectorModel) Cancelled() bool {
	return !m.done
}

// RunExerciseSelector displays the selector and returns the chosen
// exercises; nil means the user cancelled.
func RunExerciseSelector(exercises []domain.Exercise) ([]domain.Exercise, error) {
	model := NewExerciseSelectorModel(exercises)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := finalModel.(ExerciseSelectorModel)
	if result.Cancelled() {
		return nil, nil
	}
	return result.Selected(), nil
}
