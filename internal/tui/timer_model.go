package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkrasnov/bankt/internal/models"
	"github.com/dkrasnov/bankt/internal/timebank"
)

// TimerModel represents the TUI model for the running overtime session
type TimerModel struct {
	width  int
	height int
	ledger *timebank.Ledger
	entry  *models.TimeEntry

	// Timer state
	elapsedTime time.Duration
	lastUpdate  time.Time

	// UI state
	stopping bool // True when user pressed S and we're stopping
	exiting  bool // True when user pressed ESC/Q and we're exiting without stopping
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// NewTimerModel creates a new timer TUI model
func NewTimerModel(ledger *timebank.Ledger) TimerModel {
	entry := ledger.ActiveEntry()
	m := TimerModel{
		ledger:     ledger,
		entry:      entry,
		lastUpdate: time.Now(),
	}
	if entry != nil {
		m.elapsedTime = time.Since(entry.StartTime)
	}
	return m
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		// Pure read of now - startTime, nothing is mutated
		now := time.Now()
		if m.entry != nil {
			m.elapsedTime = now.Sub(m.entry.StartTime)
		}
		m.lastUpdate = now

		// Continue ticking if not stopping or exiting
		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// Stop the timer and save
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Exit without stopping
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	panel := m.renderTimerPanel(m.width, m.height-2)
	helpBar := m.renderHelpBar()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panel,
		helpBar,
	)
}

// renderTimerPanel renders the centered timer readout with session info
func (m TimerModel) renderTimerPanel(width, height int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain)).
		Align(lipgloss.Center).
		Width(width - 4)
	b.WriteString(titleStyle.Render("⏱  OVERTIME"))
	b.WriteString("\n\n")

	// Elapsed time, the centerpiece
	elapsedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Width(width - 4)
	b.WriteString(elapsedStyle.Render(formatElapsed(m.elapsedTime)))
	b.WriteString("\n\n")

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(width - 4)
	b.WriteString(separatorStyle.Render(strings.Repeat("─", min(width-8, 40))))
	b.WriteString("\n\n")

	infoStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 4)

	if m.entry != nil {
		description := m.entry.Description
		descriptionColor := ColorDisabledText
		if description == "" {
			description = "none"
		} else {
			descriptionColor = ColorAccentBright
		}
		b.WriteString(infoStyle.Render(fmt.Sprintf("📝 Description: %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color(descriptionColor)).Render(description))))
		b.WriteString("\n")

		b.WriteString(infoStyle.Render(fmt.Sprintf("🕐 Started: %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(m.entry.StartTime.Format("15:04:05")))))
		b.WriteString("\n")
	}

	bank := m.ledger.Bank()
	netColor := ColorSuccess
	if bank.NetBalance < 0 {
		netColor = ColorError
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf("🏦 Net balance: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(netColor)).Bold(true).Render(timebank.FormatMinutes(bank.NetBalance)))))

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 2).
		Height(height - 2).
		Padding(1, 1)

	return panelStyle.Render(b.String())
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "s stop & save · esc/q exit (keep running) · ctrl+c force quit"

	return helpStyle.Render(helpText)
}

// formatElapsed formats elapsed time as HH:MM:SS
func formatElapsed(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// RunTimerTUI runs the timer TUI over the running session
func RunTimerTUI(ledger *timebank.Ledger) error {
	model := NewTimerModel(ledger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Check if we need to stop the session
	timerModel := finalModel.(TimerModel)
	if timerModel.stopping {
		entry, err := ledger.StopOvertime()
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}

		fmt.Printf("⏹️  Stopped tracking overtime\n")
		fmt.Printf("📊 Session duration: %s\n", timebank.FormatMinutes(entry.Duration))
		fmt.Printf("🏦 Net balance: %s\n", timebank.FormatMinutes(ledger.Bank().NetBalance))
	} else if timerModel.exiting {
		fmt.Printf("\n💡 Timer is still running in the background.\n")
		fmt.Printf("   Use 'bankt status' to check it or 'bankt stop' to stop it.\n")
	}

	return nil
}
