package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/schedule"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

const minContentWidth = 40

// snapshotTime re-derives the snapshot's wall clock, so "next session"
// is computed against the same moment the rest of the view shows.
func snapshotTime(date, clock string) time.Time {
	t, err := time.Parse(timeutil.DateLayout+" "+timeutil.ClockLayout, date+" "+clock)
	if err != nil {
		return time.Now()
	}
	return t
}

func (m DashboardModel) contentWidth() int {
	w := m.width - 6
	if w < minContentWidth {
		w = minContentWidth
	}
	return w
}

func (m DashboardModel) currency() models.Currency {
	if m.snap.Settings != nil {
		return m.snap.Settings.Currency
	}
	return models.CurrencyEUR
}

func (m DashboardModel) View() string {
	t := CurrentTheme
	width := m.contentWidth()
	var b strings.Builder

	header := fmt.Sprintf("WageTrack  %s %s", m.snap.Date, m.snap.Clock)
	b.WriteString(t.Header.Width(width).Render(header))
	b.WriteString("\n\n")

	if m.snap.OnVacation != nil {
		label := fmt.Sprintf("On %s until %s", m.snap.OnVacation.Type, m.snap.OnVacation.EndDate)
		b.WriteString(t.Vacation.Render(label))
		b.WriteString("\n\n")
	}

	total := fmt.Sprintf("Today: %s", FormatMoney(m.snap.Today.TotalEarnings, m.currency()))
	b.WriteString(t.Money.Render(total))
	if m.snap.Today.ActiveCount > 0 {
		b.WriteString(t.Working.Render(fmt.Sprintf("  (%d running)", m.snap.Today.ActiveCount)))
	}
	b.WriteString("\n\n")

	if len(m.snap.ActiveJobs) == 0 {
		b.WriteString(m.renderLegacyRow(width))
	} else {
		for i, job := range m.snap.ActiveJobs {
			b.WriteString(m.renderJobRow(i, job, width))
		}
	}
	b.WriteString("\n")

	if next, ok := schedule.NextSession(m.snap.JobSchedules, snapshotTime(m.snap.Date, m.snap.Clock)); ok && m.snap.Today.ActiveCount == 0 {
		when := next.DayName
		if next.IsToday {
			when = "today"
		}
		b.WriteString(t.Dim.Render(fmt.Sprintf("Next scheduled: %s at %s", when, next.StartTime)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(t.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(t.Highlight.Render(m.status))
		b.WriteString("\n")
	}

	footer := "s start/stop | S stop all | p pause auto | r report | R check now | q quit"
	b.WriteString("\n")
	b.WriteString(t.Dim.Render(ansi.Truncate(footer, width, "...")))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Width(width + 4)
	return t.Base.Render(box.Render(b.String()))
}

func (m DashboardModel) renderJobRow(idx int, job models.Job, width int) string {
	t := CurrentTheme
	cursor := "  "
	name := t.JobName.Render(job.Name)
	if idx == m.cursor {
		cursor = t.Focused.Render("> ")
		name = t.Focused.Render(job.Name)
	}

	state := t.Dim.Render("idle")
	detail := ""
	if open := m.snap.OpenSessionFor(job.ID); open != nil {
		state = t.Working.Render("working")
		detail = t.Dim.Render("  " + FormatSpan(open.StartTime, open.EndTime))
	} else if m.snap.ScheduledFor(job.ID) {
		state = t.Paused.Render("scheduled")
	}
	if m.snap.IsPaused(job.ID) {
		state += t.Paused.Render(" [auto off]")
	}

	earned := ""
	if bucket, ok := m.snap.TodayByJob[job.ID]; ok {
		earned = "  " + t.Money.Render(FormatMoney(bucket.TotalEarnings, m.currency()))
	}

	row := fmt.Sprintf("%s%s  %s%s%s", cursor, name, state, earned, detail)
	return ansi.Truncate(row, width, "...") + "\n"
}

func (m DashboardModel) renderLegacyRow(width int) string {
	t := CurrentTheme
	if m.snap.Settings == nil {
		return t.Dim.Render("No jobs or hourly rate configured yet.") + "\n"
	}
	state := t.Dim.Render("idle")
	detail := ""
	if open := m.snap.OpenSessionFor(""); open != nil {
		state = t.Working.Render("working")
		detail = t.Dim.Render("  " + FormatSpan(open.StartTime, open.EndTime))
	}
	row := fmt.Sprintf("> %s  %s%s", t.JobName.Render("Main Job"), state, detail)
	return ansi.Truncate(row, width, "...") + "\n"
}
