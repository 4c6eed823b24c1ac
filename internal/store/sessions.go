package store

import (
	"context"
	"sort"
	"time"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/earnings"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

// SessionInput is the payload for a new work session. Job fields are
// snapshots taken by the caller at creation time.
type SessionInput struct {
	JobID         string
	JobName       string
	JobColor      string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	HourlyRate    float64
	IsManual      bool
	IsAutoStarted bool
}

func validateSessionInput(in SessionInput) error {
	if _, err := time.Parse(timeutil.DateLayout, in.Date); err != nil {
		return invalid("date", "must be YYYY-MM-DD")
	}
	if _, err := timeutil.ParseClock(in.StartTime); err != nil {
		return invalid("start time", "must be HH:MM")
	}
	if in.HourlyRate <= 0 {
		return invalid("hourly rate", "must be positive")
	}
	return nil
}

func sortSessions(sessions []models.WorkSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date > sessions[j].Date
		}
		return sessions[i].StartTime > sessions[j].StartTime
	})
}

// GetSessions returns all sessions, newest first.
func (s *Store) GetSessions(ctx context.Context) ([]models.WorkSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[models.WorkSession](ctx, s, config.KeySessions, EntitySession)
	if err != nil {
		return nil, err
	}
	sortSessions(sessions)
	return sessions, nil
}

// GetSessionsForDate returns the sessions of one date, newest first.
func (s *Store) GetSessionsForDate(ctx context.Context, date string) ([]models.WorkSession, error) {
	all, err := s.GetSessions(ctx)
	if err != nil {
		return nil, err
	}
	day := all[:0:0]
	for _, sess := range all {
		if sess.Date == date {
			day = append(day, sess)
		}
	}
	return day, nil
}

// GetSessionsForJob returns a job's sessions, optionally bounded by an
// inclusive date range (empty bounds mean unbounded).
func (s *Store) GetSessionsForJob(ctx context.Context, jobID, startDate, endDate string) ([]models.WorkSession, error) {
	all, err := s.GetSessions(ctx)
	if err != nil {
		return nil, err
	}
	mine := all[:0:0]
	for _, sess := range all {
		if sess.JobID != jobID {
			continue
		}
		if startDate != "" && sess.Date < startDate {
			continue
		}
		if endDate != "" && sess.Date > endDate {
			continue
		}
		mine = append(mine, sess)
	}
	return mine, nil
}

// GetOpenSessions returns every session whose end time is unset.
func (s *Store) GetOpenSessions(ctx context.Context) ([]models.WorkSession, error) {
	all, err := s.GetSessions(ctx)
	if err != nil {
		return nil, err
	}
	open := all[:0:0]
	for _, sess := range all {
		if sess.Open() {
			open = append(open, sess)
		}
	}
	return open, nil
}

// CreateSession opens a new session. Earnings stay 0 until it closes.
func (s *Store) CreateSession(ctx context.Context, in SessionInput) (models.WorkSession, error) {
	if err := validateSessionInput(in); err != nil {
		return models.WorkSession{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[models.WorkSession](ctx, s, config.KeySessions, EntitySession)
	if err != nil {
		return models.WorkSession{}, err
	}
	now := s.now()
	session := models.WorkSession{
		ID:            newID(),
		JobID:         in.JobID,
		JobName:       in.JobName,
		JobColor:      in.JobColor,
		Date:          in.Date,
		StartTime:     in.StartTime,
		HourlyRate:    in.HourlyRate,
		IsManual:      in.IsManual,
		IsAutoStarted: in.IsAutoStarted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sessions = append(sessions, session)
	if err := writeList(ctx, s, config.KeySessions, EntitySession, sessions); err != nil {
		return models.WorkSession{}, err
	}
	return session, nil
}

// CloseSession sets the end time and freezes earnings, recomputed from
// the stored bounds and rate.
func (s *Store) CloseSession(ctx context.Context, id, endClock string) (models.WorkSession, error) {
	if _, err := timeutil.ParseClock(endClock); err != nil {
		return models.WorkSession{}, invalid("end time", "must be HH:MM")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[models.WorkSession](ctx, s, config.KeySessions, EntitySession)
	if err != nil {
		return models.WorkSession{}, err
	}
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		end := endClock
		sessions[i].EndTime = &end
		sessions[i].Earnings = earnings.Compute(sessions[i].StartTime, endClock, sessions[i].HourlyRate)
		sessions[i].UpdatedAt = s.now()
		if err := writeList(ctx, s, config.KeySessions, EntitySession, sessions); err != nil {
			return models.WorkSession{}, err
		}
		return sessions[i], nil
	}
	return models.WorkSession{}, wrapErr(EntitySession, "close", id, ErrNotFound)
}

// CloseAllOpen closes every open session at the given clock and reports
// how many were closed. Zero is not an error; stop-all is idempotent.
func (s *Store) CloseAllOpen(ctx context.Context, endClock string) (int, error) {
	if _, err := timeutil.ParseClock(endClock); err != nil {
		return 0, invalid("end time", "must be HH:MM")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[models.WorkSession](ctx, s, config.KeySessions, EntitySession)
	if err != nil {
		return 0, err
	}
	closed := 0
	for i := range sessions {
		if !sessions[i].Open() {
			continue
		}
		end := endClock
		sessions[i].EndTime = &end
		sessions[i].Earnings = earnings.Compute(sessions[i].StartTime, endClock, sessions[i].HourlyRate)
		sessions[i].UpdatedAt = s.now()
		closed++
	}
	if closed == 0 {
		return 0, nil
	}
	if err := writeList(ctx, s, config.KeySessions, EntitySession, sessions); err != nil {
		return 0, err
	}
	return closed, nil
}

// UpdateSessionTimes edits a session's bounds, recomputes earnings and
// marks it manual (an edited session no longer reflects the schedule).
func (s *Store) UpdateSessionTimes(ctx context.Context, id, startClock, endClock string) (models.WorkSession, error) {
	if _, err := timeutil.ParseClock(startClock); err != nil {
		return models.WorkSession{}, invalid("start time", "must be HH:MM")
	}
	if _, err := timeutil.ParseClock(endClock); err != nil {
		return models.WorkSession{}, invalid("end time", "must be HH:MM")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[models.WorkSession](ctx, s, config.KeySessions, EntitySession)
	if err != nil {
		return models.WorkSession{}, err
	}
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		end := endClock
		sessions[i].StartTime = startClock
		sessions[i].EndTime = &end
		sessions[i].Earnings = earnings.Compute(startClock, endClock, sessions[i].HourlyRate)
		sessions[i].IsManual = true
		sessions[i].UpdatedAt = s.now()
		if err := writeList(ctx, s, config.KeySessions, EntitySession, sessions); err != nil {
			return models.WorkSession{}, err
		}
		return sessions[i], nil
	}
	return models.WorkSession{}, wrapErr(EntitySession, "update", id, ErrNotFound)
}

// DeleteSession removes a session from history.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := readList[models.WorkSession](ctx, s, config.KeySessions, EntitySession)
	if err != nil {
		return err
	}
	kept := sessions[:0:0]
	for _, sess := range sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	if len(kept) == len(sessions) {
		return wrapErr(EntitySession, "delete", id, ErrNotFound)
	}
	return writeList(ctx, s, config.KeySessions, EntitySession, kept)
}
