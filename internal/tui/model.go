package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/store"
	"github.com/akyairhashvil/wagetrack/internal/tracker"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateSetup SessionState = iota
	StateDashboard
)

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	state     SessionState
	ctx       context.Context
	store     *store.Store
	tracker   *tracker.Tracker
	textInput textinput.Model
	dashboard DashboardModel
	err       error
	width     int
	height    int
}

// NewMainModel starts in the dashboard when an hourly rate or any job is
// already configured, and in first-run setup otherwise.
func NewMainModel(ctx context.Context, st *store.Store, tr *tracker.Tracker) MainModel {
	m := MainModel{ctx: ctx, store: st, tracker: tr}

	settings, err := st.GetSettings(ctx)
	if err != nil {
		m.err = err
		return m
	}
	jobs, err := st.GetJobs(ctx)
	if err != nil {
		m.err = err
		return m
	}

	if settings != nil || len(jobs) > 0 {
		m.state = StateDashboard
		m.dashboard = NewDashboardModel(ctx, tr, st)
		return m
	}

	m.state = StateSetup
	ti := textinput.New()
	ti.Placeholder = "e.g. 17.50"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 12
	m.textInput = ti
	return m
}

func (m MainModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, textinput.Blink)
	if m.state == StateDashboard {
		cmds = append(cmds, m.dashboard.Init())
	}
	return tea.Batch(cmds...)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateDashboard {
			var newDash tea.Model
			newDash, cmd = m.dashboard.Update(msg)
			m.dashboard = newDash.(DashboardModel)
			return m, cmd
		}
	}

	switch m.state {
	case StateSetup:
		return m.updateSetup(msg)
	case StateDashboard:
		newDash, newCmd := m.dashboard.Update(msg)
		m.dashboard = newDash.(DashboardModel)
		return m, newCmd
	}
	return m, cmd
}

func (m MainModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		rate, err := strconv.ParseFloat(m.textInput.Value(), 64)
		if err != nil || rate <= 0 {
			m.err = fmt.Errorf("please enter a positive hourly rate")
			return m, nil
		}
		if _, err := m.store.SaveSettings(m.ctx, rate, models.CurrencyEUR); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.state = StateDashboard
		m.dashboard = NewDashboardModel(m.ctx, m.tracker, m.store)
		m.dashboard.width = m.width
		m.dashboard.height = m.height
		return m, m.dashboard.Init()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	if m.err != nil && m.state != StateSetup {
		return fmt.Sprintf("Error: %v\nPress Ctrl+C to quit.", m.err)
	}

	switch m.state {
	case StateSetup:
		prompt := "What do you earn per hour?"
		if m.err != nil {
			prompt = CurrentTheme.Error.Render(m.err.Error())
		}
		return fmt.Sprintf(
			"\n  %s\n\n  %s\n\n  %s\n",
			"Welcome. Let's set up your earnings.",
			prompt,
			m.textInput.View(),
		)
	case StateDashboard:
		return m.dashboard.View()
	}
	return ""
}
