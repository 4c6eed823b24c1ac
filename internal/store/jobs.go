package store

import (
	"context"
	"strings"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/models"
)

// GetJobs returns every job in creation order.
func (s *Store) GetJobs(ctx context.Context) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[models.Job](ctx, s, config.KeyJobs, EntityJob)
}

// GetActiveJobs returns jobs whose IsActive flag is set. Only these
// participate in scheduling and aggregation.
func (s *Store) GetActiveJobs(ctx context.Context) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeJobsLocked(ctx)
}

func (s *Store) activeJobsLocked(ctx context.Context) ([]models.Job, error) {
	jobs, err := readList[models.Job](ctx, s, config.KeyJobs, EntityJob)
	if err != nil {
		return nil, err
	}
	active := jobs[:0:0]
	for _, j := range jobs {
		if j.IsActive {
			active = append(active, j)
		}
	}
	return active, nil
}

// GetJobByID looks a job up; ErrNotFound when it does not exist.
func (s *Store) GetJobByID(ctx context.Context, id string) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := readList[models.Job](ctx, s, config.KeyJobs, EntityJob)
	if err != nil {
		return models.Job{}, err
	}
	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return models.Job{}, wrapErr(EntityJob, "get", id, ErrNotFound)
}

func validateJob(name string, hourlyRate float64) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "must not be empty")
	}
	if hourlyRate <= 0 {
		return "", invalid("hourly rate", "must be positive")
	}
	return name, nil
}

// CreateJob inserts a new job with a fresh id and timestamps.
func (s *Store) CreateJob(ctx context.Context, name string, hourlyRate float64, color string, isActive bool) (models.Job, error) {
	name, err := validateJob(name, hourlyRate)
	if err != nil {
		return models.Job{}, err
	}
	if color == "" {
		color = config.DefaultJobColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := readList[models.Job](ctx, s, config.KeyJobs, EntityJob)
	if err != nil {
		return models.Job{}, err
	}
	now := s.now()
	job := models.Job{
		ID:         newID(),
		Name:       name,
		HourlyRate: hourlyRate,
		Color:      color,
		IsActive:   isActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	jobs = append(jobs, job)
	if err := writeList(ctx, s, config.KeyJobs, EntityJob, jobs); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// UpdateJob merges new field values into an existing job and bumps its
// UpdatedAt. Historical sessions keep their own snapshots and are not
// touched.
func (s *Store) UpdateJob(ctx context.Context, id, name string, hourlyRate float64, color string, isActive bool) (models.Job, error) {
	name, err := validateJob(name, hourlyRate)
	if err != nil {
		return models.Job{}, err
	}
	if color == "" {
		color = config.DefaultJobColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := readList[models.Job](ctx, s, config.KeyJobs, EntityJob)
	if err != nil {
		return models.Job{}, err
	}
	for i := range jobs {
		if jobs[i].ID != id {
			continue
		}
		jobs[i].Name = name
		jobs[i].HourlyRate = hourlyRate
		jobs[i].Color = color
		jobs[i].IsActive = isActive
		jobs[i].UpdatedAt = s.now()
		if err := writeList(ctx, s, config.KeyJobs, EntityJob, jobs); err != nil {
			return models.Job{}, err
		}
		return jobs[i], nil
	}
	return models.Job{}, wrapErr(EntityJob, "update", id, ErrNotFound)
}

// DeleteJob removes a job and drops it from the paused set. Sessions are
// deliberately orphaned, not cascaded: they carry their own snapshots of
// name, color and rate for historical display.
func (s *Store) DeleteJob(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := readList[models.Job](ctx, s, config.KeyJobs, EntityJob)
	if err != nil {
		return err
	}
	kept := jobs[:0:0]
	for _, j := range jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	if len(kept) == len(jobs) {
		return wrapErr(EntityJob, "delete", id, ErrNotFound)
	}
	if err := writeList(ctx, s, config.KeyJobs, EntityJob, kept); err != nil {
		return err
	}

	paused, err := readList[string](ctx, s, config.KeyPausedJobs, EntityPausedJobs)
	if err != nil {
		return err
	}
	keptPaused := paused[:0:0]
	for _, p := range paused {
		if p != id {
			keptPaused = append(keptPaused, p)
		}
	}
	if len(keptPaused) != len(paused) {
		return writeList(ctx, s, config.KeyPausedJobs, EntityPausedJobs, keptPaused)
	}
	return nil
}
