package store

import (
	"context"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

// ScheduleInput is one weekly window as entered in a schedule form.
type ScheduleInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

func validateScheduleInputs(entries []ScheduleInput) error {
	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return invalid("day of week", "must be 0 (Sunday) through 6 (Saturday)")
		}
		if _, err := timeutil.ParseClock(e.StartTime); err != nil {
			return invalid("start time", "must be HH:MM")
		}
		if _, err := timeutil.ParseClock(e.EndTime); err != nil {
			return invalid("end time", "must be HH:MM")
		}
		// start > end is a valid overnight window; only a zero-length
		// window is rejected.
		if e.StartTime == e.EndTime {
			return invalid("time window", "start and end must differ")
		}
	}
	return nil
}

// GetJobSchedules returns every job schedule entry across all jobs.
func (s *Store) GetJobSchedules(ctx context.Context) ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[models.ScheduleEntry](ctx, s, config.KeyJobSchedules, EntitySchedule)
}

// GetSchedulesForJob returns the weekly windows of one job.
func (s *Store) GetSchedulesForJob(ctx context.Context, jobID string) ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := readList[models.ScheduleEntry](ctx, s, config.KeyJobSchedules, EntitySchedule)
	if err != nil {
		return nil, err
	}
	mine := all[:0:0]
	for _, e := range all {
		if e.JobID == jobID {
			mine = append(mine, e)
		}
	}
	return mine, nil
}

// ReplaceJobSchedule swaps a job's entire weekly schedule: existing
// entries for the job are dropped and the new ones inserted. There is no
// incremental diffing.
func (s *Store) ReplaceJobSchedule(ctx context.Context, jobID string, entries []ScheduleInput) ([]models.ScheduleEntry, error) {
	if err := validateScheduleInputs(entries); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := readList[models.ScheduleEntry](ctx, s, config.KeyJobSchedules, EntitySchedule)
	if err != nil {
		return nil, err
	}
	kept := all[:0:0]
	for _, e := range all {
		if e.JobID != jobID {
			kept = append(kept, e)
		}
	}
	now := s.now()
	inserted := make([]models.ScheduleEntry, 0, len(entries))
	for _, in := range entries {
		entry := models.ScheduleEntry{
			ID:        newID(),
			JobID:     jobID,
			DayOfWeek: in.DayOfWeek,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			CreatedAt: now,
		}
		inserted = append(inserted, entry)
		kept = append(kept, entry)
	}
	if err := writeList(ctx, s, config.KeyJobSchedules, EntitySchedule, kept); err != nil {
		return nil, err
	}
	return inserted, nil
}

// GetLegacySchedule returns the flat weekly schedule used when no jobs
// are configured.
func (s *Store) GetLegacySchedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[models.ScheduleEntry](ctx, s, config.KeySchedule, EntitySchedule)
}

// ReplaceLegacySchedule overwrites the flat weekly schedule in full.
func (s *Store) ReplaceLegacySchedule(ctx context.Context, entries []ScheduleInput) ([]models.ScheduleEntry, error) {
	if err := validateScheduleInputs(entries); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	replaced := make([]models.ScheduleEntry, 0, len(entries))
	for _, in := range entries {
		replaced = append(replaced, models.ScheduleEntry{
			ID:        newID(),
			DayOfWeek: in.DayOfWeek,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			CreatedAt: now,
		})
	}
	if err := writeList(ctx, s, config.KeySchedule, EntitySchedule, replaced); err != nil {
		return nil, err
	}
	return replaced, nil
}
