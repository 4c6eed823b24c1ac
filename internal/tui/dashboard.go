package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/store"
	"github.com/akyairhashvil/wagetrack/internal/tracker"
	"github.com/akyairhashvil/wagetrack/internal/util"
)

type tickMsg time.Time

// snapshotMsg carries a fresh engine snapshot into the model.
type snapshotMsg struct {
	snap tracker.Snapshot
	err  error
}

type statusMsg string

// DashboardModel renders the live earnings view and routes key commands
// to the tracker.
type DashboardModel struct {
	ctx     context.Context
	tracker *tracker.Tracker
	store   *store.Store

	snap   tracker.Snapshot
	cursor int
	status string
	err    error
	width  int
	height int
}

func NewDashboardModel(ctx context.Context, tr *tracker.Tracker, st *store.Store) DashboardModel {
	return DashboardModel{ctx: ctx, tracker: tr, store: st}
}

// Init starts the display tick. Schedule reconciliation runs in its own
// loop outside the TUI; the tick only re-reads state.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.DisplayTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.tracker.Snapshot(m.ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}

// maxCursor is the last selectable row, 0 when the job list is empty.
func (m DashboardModel) maxCursor() int {
	if len(m.snap.ActiveJobs) == 0 {
		return 0
	}
	return len(m.snap.ActiveJobs) - 1
}

// selectedJob returns the job under the cursor, nil when none exist.
func (m DashboardModel) selectedJob() *models.Job {
	if len(m.snap.ActiveJobs) == 0 {
		return nil
	}
	if m.cursor >= len(m.snap.ActiveJobs) {
		return &m.snap.ActiveJobs[len(m.snap.ActiveJobs)-1]
	}
	return &m.snap.ActiveJobs[m.cursor]
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The snapshot recomputes live earnings from the clock.
		return m, tea.Batch(m.refreshCmd(), tickCmd())

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.snap = msg.snap
		m.cursor = util.Clamp(m.cursor, 0, m.maxCursor())
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, m.refreshCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.cursor = util.Clamp(m.cursor-1, 0, m.maxCursor())
		return m, nil

	case "down", "j":
		m.cursor = util.Clamp(m.cursor+1, 0, m.maxCursor())
		return m, nil

	case "s":
		return m, m.toggleSelected()

	case "S":
		return m, m.stopAll()

	case "p":
		return m, m.togglePause()

	case "r":
		return m, m.weeklyReport()

	case "R":
		return m, m.reconcileNow()
	}
	return m, nil
}

// toggleSelected starts or stops the job under the cursor. With no jobs
// configured it drives the single ungrouped session instead.
func (m DashboardModel) toggleSelected() tea.Cmd {
	job := m.selectedJob()
	return func() tea.Msg {
		if job == nil {
			if m.snap.OpenSessionFor("") != nil {
				if _, err := m.tracker.StopLegacy(m.ctx); err != nil {
					return snapshotMsg{err: err}
				}
				return statusMsg("stopped")
			}
			if _, err := m.tracker.StartLegacy(m.ctx, "", false); err != nil {
				return snapshotMsg{err: err}
			}
			return statusMsg("started")
		}
		if m.snap.OpenSessionFor(job.ID) != nil {
			if _, err := m.tracker.StopJob(m.ctx, job.ID); err != nil {
				return snapshotMsg{err: err}
			}
			return statusMsg("stopped " + job.Name)
		}
		if _, err := m.tracker.StartJob(m.ctx, job.ID, "", false); err != nil {
			return snapshotMsg{err: err}
		}
		return statusMsg("started " + job.Name)
	}
}

func (m DashboardModel) stopAll() tea.Cmd {
	return func() tea.Msg {
		n, err := m.tracker.StopAll(m.ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}
		if n == 0 {
			return statusMsg("nothing running")
		}
		return statusMsg("all sessions stopped")
	}
}

func (m DashboardModel) togglePause() tea.Cmd {
	job := m.selectedJob()
	if job == nil {
		return nil
	}
	return func() tea.Msg {
		if m.snap.IsPaused(job.ID) {
			if err := m.tracker.ResumeAutoStart(m.ctx, job.ID); err != nil {
				return snapshotMsg{err: err}
			}
			return statusMsg("auto-start resumed for " + job.Name)
		}
		if err := m.tracker.PauseAutoStart(m.ctx, job.ID); err != nil {
			return snapshotMsg{err: err}
		}
		return statusMsg("auto-start paused for " + job.Name)
	}
}

func (m DashboardModel) weeklyReport() tea.Cmd {
	return func() tea.Msg {
		path, err := GenerateWeeklyReport(m.ctx, m.store, time.Now())
		if err != nil {
			return snapshotMsg{err: err}
		}
		return statusMsg("report saved: " + path)
	}
}

// reconcileNow forces one schedule pass, for the manual check key.
func (m DashboardModel) reconcileNow() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.tracker.Reconcile(m.ctx); err != nil {
			return snapshotMsg{err: err}
		}
		return statusMsg("schedule check complete")
	}
}
