package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkrasnov/bankt/internal/models"
	"github.com/dkrasnov/bankt/internal/parser"
	"github.com/dkrasnov/bankt/internal/timebank"
)

// absenceStep represents the current step in the absence form
type absenceStep int

const (
	stepFrom absenceStep = iota
	stepTo
	stepDescription
)

var absenceStepLabels = []string{"Start", "End", "Description"}

// AbsenceFormModel represents the TUI model for planning an absence
type AbsenceFormModel struct {
	currentStep absenceStep
	inputs      []textinput.Model
	width       int
	height      int

	ledger *timebank.Ledger

	// Result state
	entry         *models.TimeEntry
	warning       *timebank.InsufficientBalanceWarning
	err           error
	completed     bool
	cancelled     bool
	validationErr string
}

// NewAbsenceFormModel creates a new absence form TUI model
func NewAbsenceFormModel(ledger *timebank.Ledger) AbsenceFormModel {
	inputs := make([]textinput.Model, 3)

	// Apply color theme to all inputs
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Start input
	inputs[0].Placeholder = "dd/mm/yyyy hh:mm, dd/mm/yyyy, or hh:mm (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 20

	// End input
	inputs[1].Placeholder = "Same formats; bare hh:mm uses the start date (required)"
	inputs[1].CharLimit = 20

	// Description input
	inputs[2].Placeholder = "Reason for the absence (Enter to skip)"
	inputs[2].CharLimit = 200

	return AbsenceFormModel{
		inputs: inputs,
		ledger: ledger,
	}
}

// Init initializes the absence form model
func (m AbsenceFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AbsenceFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.advance()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	return m, cmd
}

// advance validates the current step and moves to the next one, or
// submits the absence on the last step.
func (m AbsenceFormModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case stepFrom:
		if _, err := parser.ParseTimestamp(m.inputs[stepFrom].Value()); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}

	case stepTo:
		if _, _, err := parser.ParseRange(m.inputs[stepFrom].Value(), m.inputs[stepTo].Value()); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}

	case stepDescription:
		return m.submit()
	}

	m.inputs[m.currentStep].Blur()
	m.currentStep++
	m.inputs[m.currentStep].Focus()
	return m, textinput.Blink
}

// submit creates the absence through the ledger and quits.
func (m AbsenceFormModel) submit() (tea.Model, tea.Cmd) {
	start, end, err := parser.ParseRange(m.inputs[stepFrom].Value(), m.inputs[stepTo].Value())
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	entry, warning, err := m.ledger.AddAbsence(start, end, strings.TrimSpace(m.inputs[stepDescription].Value()))
	if err != nil {
		m.err = err
		m.validationErr = err.Error()
		return m, nil
	}

	m.entry = entry
	m.warning = warning
	m.err = nil
	m.completed = true
	return m, tea.Quit
}

// View renders the absence form TUI
func (m AbsenceFormModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain)).
		Width(m.width - 4)
	b.WriteString(titleStyle.Render("📅 Plan an absence"))
	b.WriteString("\n")

	balanceStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Width(m.width - 4)
	b.WriteString(balanceStyle.Render(fmt.Sprintf("Available net balance: %s",
		timebank.FormatMinutes(m.ledger.Bank().NetBalance))))
	b.WriteString("\n\n")

	for i := range m.inputs {
		labelColor := ColorDisabledText
		if absenceStep(i) == m.currentStep {
			labelColor = ColorAccentBright
		}

		labelStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(labelColor))
		b.WriteString(labelStyle.Render(absenceStepLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Width(m.width - 4)
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter next · esc cancel"))

	return b.String()
}

// RunAbsenceFormTUI starts the interactive absence form
func RunAbsenceFormTUI(ledger *timebank.Ledger) error {
	model := NewAbsenceFormModel(ledger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AbsenceFormModel); ok {
		if m.cancelled {
			fmt.Println("❌ Absence cancelled.")
		} else if m.completed && m.entry != nil {
			fmt.Printf("📅 Absence planned: %s to %s (%s)\n",
				timebank.FormatDate(m.entry.StartTime),
				timebank.FormatTime(*m.entry.EndTime),
				timebank.FormatMinutes(m.entry.Duration))
			if m.warning != nil {
				fmt.Printf("⚠️  %s\n", m.warning)
			}
			fmt.Printf("Net balance: %s\n", timebank.FormatMinutes(ledger.Bank().NetBalance))
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
