package tracker

import (
	"context"

	"github.com/akyairhashvil/wagetrack/internal/earnings"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/schedule"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

// ReconcileResult reports what a single reconciliation pass changed.
type ReconcileResult struct {
	Started []models.WorkSession
	Stopped []models.WorkSession
	// OnVacation is set when today is covered by a vacation entry, in
	// which case every open session was force-closed and no other rule
	// ran.
	OnVacation bool
}

// Reconcile aligns running sessions with the schedule: it force-closes
// everything on vacation days, opens sessions for scheduled jobs that
// are idle and not paused, and closes auto-started sessions that are no
// longer inside any window. Manual sessions are never closed here. All
// decisions are made against a snapshot of state taken at entry, so one
// rule's mutation cannot feed another rule in the same pass.
func (t *Tracker) Reconcile(ctx context.Context) (ReconcileResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var res ReconcileResult
	date, clock, day := t.nowParts()

	vac, err := t.repo.VacationFor(ctx, date)
	if err != nil {
		return res, err
	}
	if vac != nil {
		open, err := t.repo.GetOpenSessions(ctx)
		if err != nil {
			return res, err
		}
		for _, sess := range open {
			closed, err := t.repo.CloseSession(ctx, sess.ID, clock)
			if err != nil {
				return res, err
			}
			res.Stopped = append(res.Stopped, closed)
		}
		res.OnVacation = true
		return res, nil
	}

	activeJobs, err := t.repo.GetActiveJobs(ctx)
	if err != nil {
		return res, err
	}
	if err := t.prunePausedLocked(ctx, activeJobs); err != nil {
		return res, err
	}
	jobSchedules, err := t.repo.GetJobSchedules(ctx)
	if err != nil {
		return res, err
	}

	if len(activeJobs) > 0 && len(jobSchedules) > 0 {
		return t.reconcileJobsLocked(ctx, res, activeJobs, jobSchedules, day, clock)
	}
	return t.reconcileLegacyLocked(ctx, res, activeJobs, day, clock)
}

func (t *Tracker) reconcileJobsLocked(ctx context.Context, res ReconcileResult, activeJobs []models.Job, jobSchedules []models.ScheduleEntry, day int, clock string) (ReconcileResult, error) {
	scheduled := schedule.JobsNow(activeJobs, jobSchedules, day, clock)
	open, err := t.repo.GetOpenSessions(ctx)
	if err != nil {
		return res, err
	}
	openByJob := make(map[string]struct{}, len(open))
	for _, sess := range open {
		openByJob[sess.JobID] = struct{}{}
	}

	started := make(map[string]struct{})
	for _, sj := range scheduled {
		if _, ok := openByJob[sj.Job.ID]; ok {
			continue
		}
		if t.isPausedLocked(sj.Job.ID) {
			continue
		}
		// Overlapping windows for the same job yield one session.
		if _, ok := started[sj.Job.ID]; ok {
			continue
		}
		sess, err := t.startJobLocked(ctx, sj.Job.ID, sj.Entry.StartTime, true)
		if err != nil {
			return res, err
		}
		started[sj.Job.ID] = struct{}{}
		res.Started = append(res.Started, sess)
	}

	for _, sess := range open {
		if sess.JobID == "" || !sess.IsAutoStarted {
			continue
		}
		if schedule.ContainsJob(scheduled, sess.JobID) {
			continue
		}
		closed, err := t.repo.CloseSession(ctx, sess.ID, clock)
		if err != nil {
			return res, err
		}
		res.Stopped = append(res.Stopped, closed)
	}
	return res, nil
}

// reconcileLegacyLocked handles the pre-jobs data shape: a single
// ungrouped schedule and sessions with no job attached.
func (t *Tracker) reconcileLegacyLocked(ctx context.Context, res ReconcileResult, activeJobs []models.Job, day int, clock string) (ReconcileResult, error) {
	settings, err := t.repo.GetSettings(ctx)
	if err != nil {
		return res, err
	}
	entries, err := t.repo.GetLegacySchedule(ctx)
	if err != nil {
		return res, err
	}
	if settings == nil || len(entries) == 0 {
		return res, nil
	}

	shouldWork := schedule.LegacyActive(entries, day, clock)
	open, err := t.repo.GetOpenSessions(ctx)
	if err != nil {
		return res, err
	}
	var legacyOpen *models.WorkSession
	for i := range open {
		if open[i].JobID == "" {
			legacyOpen = &open[i]
			break
		}
	}

	if shouldWork && legacyOpen == nil {
		// A leftover flat schedule next to active jobs is inert; jobs own
		// auto-start once any exist.
		if len(activeJobs) > 0 {
			return res, nil
		}
		start, ok := schedule.EarliestStart(entries, day)
		if !ok {
			start = clock
		}
		sess, err := t.startLegacyLocked(ctx, start, true)
		if err != nil {
			return res, err
		}
		res.Started = append(res.Started, sess)
		return res, nil
	}
	if !shouldWork && legacyOpen != nil && legacyOpen.IsAutoStarted {
		closed, err := t.repo.CloseSession(ctx, legacyOpen.ID, clock)
		if err != nil {
			return res, err
		}
		res.Stopped = append(res.Stopped, closed)
	}
	return res, nil
}

// CurrentEarnings reports today's running total without taking a full
// snapshot; the display tick calls this every second.
func (t *Tracker) CurrentEarnings(ctx context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Now()
	date := timeutil.DateOf(now)
	sessions, err := t.repo.GetSessionsForDate(ctx, date)
	if err != nil {
		return 0, err
	}
	return earnings.DailyTotals(sessions, date, timeutil.ClockOf(now)).TotalEarnings, nil
}
