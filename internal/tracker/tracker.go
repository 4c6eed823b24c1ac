// Package tracker is the public face of the time-and-earnings engine. It
// composes the store, the scheduling resolver and the earnings
// calculator behind one mutex, so commands and reconciliation ticks
// never interleave and every caller observes a consistent view.
package tracker

import (
	"context"
	"sort"
	"sync"

	"github.com/akyairhashvil/wagetrack/internal/earnings"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/schedule"
	"github.com/akyairhashvil/wagetrack/internal/store"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

// Tracker owns the paused-auto-start set and serializes every command
// against the reconciliation loop. Construct one per process with New;
// there is no package-level instance.
type Tracker struct {
	repo  store.Repository
	clock Clock

	mu     sync.Mutex
	paused map[string]struct{}
}

type Option func(*Tracker)

// WithClock substitutes the wall clock, for tests.
func WithClock(c Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// New builds a Tracker and restores the persisted paused set.
func New(ctx context.Context, repo store.Repository, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		repo:   repo,
		clock:  SystemClock{},
		paused: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	paused, err := repo.GetPausedJobs(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range paused {
		t.paused[id] = struct{}{}
	}
	return t, nil
}

// nowParts returns the current date, clock and day-of-week in one read
// so a command never straddles midnight.
func (t *Tracker) nowParts() (date, clock string, dayOfWeek int) {
	now := t.clock.Now()
	return timeutil.DateOf(now), timeutil.ClockOf(now), int(now.Weekday())
}

// StartJob opens a session for a job. startClock may be empty to start
// at the current time; schedule-driven starts pass the window's start.
// There is no schedule restriction on manual starts: the user may work
// whenever they want. The only rejection is an already-open session for
// the same job.
func (t *Tracker) StartJob(ctx context.Context, jobID, startClock string, autoStarted bool) (models.WorkSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.startJobLocked(ctx, jobID, startClock, autoStarted)
}

func (t *Tracker) startJobLocked(ctx context.Context, jobID, startClock string, autoStarted bool) (models.WorkSession, error) {
	job, err := t.repo.GetJobByID(ctx, jobID)
	if err != nil {
		return models.WorkSession{}, err
	}
	open, err := t.repo.GetOpenSessions(ctx)
	if err != nil {
		return models.WorkSession{}, err
	}
	for _, sess := range open {
		if sess.JobID == jobID {
			return models.WorkSession{}, ErrSessionActive
		}
	}
	date, clock, _ := t.nowParts()
	if startClock == "" {
		startClock = clock
	}
	return t.repo.CreateSession(ctx, store.SessionInput{
		JobID:         job.ID,
		JobName:       job.Name,
		JobColor:      job.Color,
		Date:          date,
		StartTime:     startClock,
		HourlyRate:    job.HourlyRate,
		IsAutoStarted: autoStarted,
	})
}

// StopJob closes the job's open session at the current time. Returns
// false when the job was already idle; that is a no-op, not an error.
func (t *Tracker) StopJob(ctx context.Context, jobID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopJobLocked(ctx, jobID)
}

func (t *Tracker) stopJobLocked(ctx context.Context, jobID string) (bool, error) {
	open, err := t.repo.GetOpenSessions(ctx)
	if err != nil {
		return false, err
	}
	_, clock, _ := t.nowParts()
	stopped := false
	for _, sess := range open {
		if sess.JobID != jobID {
			continue
		}
		if _, err := t.repo.CloseSession(ctx, sess.ID, clock); err != nil {
			return stopped, err
		}
		stopped = true
	}
	return stopped, nil
}

// StopAll closes every open session across all jobs and reports how many
// ended. A second call in a row ends nothing and succeeds.
func (t *Tracker) StopAll(ctx context.Context) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, clock, _ := t.nowParts()
	return t.repo.CloseAllOpen(ctx, clock)
}

// StartLegacy opens the single ungrouped session used when no jobs are
// configured at all. It yields to the job-aware path otherwise.
func (t *Tracker) StartLegacy(ctx context.Context, startClock string, autoStarted bool) (models.WorkSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.startLegacyLocked(ctx, startClock, autoStarted)
}

func (t *Tracker) startLegacyLocked(ctx context.Context, startClock string, autoStarted bool) (models.WorkSession, error) {
	active, err := t.repo.GetActiveJobs(ctx)
	if err != nil {
		return models.WorkSession{}, err
	}
	if len(active) > 0 {
		return models.WorkSession{}, ErrJobsConfigured
	}
	settings, err := t.repo.GetSettings(ctx)
	if err != nil {
		return models.WorkSession{}, err
	}
	if settings == nil {
		return models.WorkSession{}, ErrNoSettings
	}
	open, err := t.repo.GetOpenSessions(ctx)
	if err != nil {
		return models.WorkSession{}, err
	}
	for _, sess := range open {
		if sess.JobID == "" {
			return models.WorkSession{}, ErrSessionActive
		}
	}
	date, clock, _ := t.nowParts()
	if startClock == "" {
		startClock = clock
	}
	return t.repo.CreateSession(ctx, store.SessionInput{
		Date:          date,
		StartTime:     startClock,
		HourlyRate:    settings.HourlyRate,
		IsAutoStarted: autoStarted,
	})
}

// StopLegacy closes the open ungrouped session, if any.
func (t *Tracker) StopLegacy(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopJobLocked(ctx, "")
}

// PauseAutoStart suppresses future auto-starts for a job. An already
// open session keeps running; only rule-driven starts are held back.
func (t *Tracker) PauseAutoStart(ctx context.Context, jobID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.paused[jobID]; ok {
		return nil
	}
	t.paused[jobID] = struct{}{}
	return t.persistPausedLocked(ctx)
}

// ResumeAutoStart lifts the suppression again.
func (t *Tracker) ResumeAutoStart(ctx context.Context, jobID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.paused[jobID]; !ok {
		return nil
	}
	delete(t.paused, jobID)
	return t.persistPausedLocked(ctx)
}

func (t *Tracker) persistPausedLocked(ctx context.Context) error {
	ids := make([]string, 0, len(t.paused))
	for id := range t.paused {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return t.repo.ReplacePausedJobs(ctx, ids)
}

// prunePausedLocked drops paused entries whose job is gone from the
// active job list and persists the set when it shrank.
func (t *Tracker) prunePausedLocked(ctx context.Context, activeJobs []models.Job) error {
	if len(t.paused) == 0 {
		return nil
	}
	known := make(map[string]struct{}, len(activeJobs))
	for _, j := range activeJobs {
		known[j.ID] = struct{}{}
	}
	changed := false
	for id := range t.paused {
		if _, ok := known[id]; !ok {
			delete(t.paused, id)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return t.persistPausedLocked(ctx)
}

func (t *Tracker) isPausedLocked(jobID string) bool {
	_, ok := t.paused[jobID]
	return ok
}

// UpdateSession edits a session's bounds. Earnings are recomputed and
// the session counts as manual from then on.
func (t *Tracker) UpdateSession(ctx context.Context, id, startClock, endClock string) (models.WorkSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.repo.UpdateSessionTimes(ctx, id, startClock, endClock)
}

// DeleteSession removes a session from history.
func (t *Tracker) DeleteSession(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.repo.DeleteSession(ctx, id)
}

// Snapshot aggregates one consistent view for the presentation layer.
func (t *Tracker) Snapshot(ctx context.Context) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	date, clock, day := t.nowParts()
	snap := Snapshot{Date: date, Clock: clock}

	var err error
	if snap.Settings, err = t.repo.GetSettings(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.ActiveJobs, err = t.repo.GetActiveJobs(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.JobSchedules, err = t.repo.GetJobSchedules(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.OpenSessions, err = t.repo.GetOpenSessions(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.OnVacation, err = t.repo.VacationFor(ctx, date); err != nil {
		return Snapshot{}, err
	}
	snap.ScheduledNow = schedule.JobsNow(snap.ActiveJobs, snap.JobSchedules, day, clock)

	todays, err := t.repo.GetSessionsForDate(ctx, date)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Today = earnings.DailyTotals(todays, date, clock)
	snap.TodayByJob = earnings.DailyTotalsByJob(todays, date, clock)

	snap.PausedJobs = make([]string, 0, len(t.paused))
	for id := range t.paused {
		snap.PausedJobs = append(snap.PausedJobs, id)
	}
	sort.Strings(snap.PausedJobs)
	return snap, nil
}
