package store

import (
	"context"

	"github.com/akyairhashvil/wagetrack/internal/models"
)

// SettingsRepository covers the legacy singleton configuration.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, hourlyRate float64, currency models.Currency) (models.Settings, error)
}

// JobRepository covers job CRUD.
type JobRepository interface {
	GetJobs(ctx context.Context) ([]models.Job, error)
	GetActiveJobs(ctx context.Context) ([]models.Job, error)
	GetJobByID(ctx context.Context, id string) (models.Job, error)
	CreateJob(ctx context.Context, name string, hourlyRate float64, color string, isActive bool) (models.Job, error)
	UpdateJob(ctx context.Context, id, name string, hourlyRate float64, color string, isActive bool) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

// ScheduleRepository covers weekly schedules, per job and legacy flat.
type ScheduleRepository interface {
	GetJobSchedules(ctx context.Context) ([]models.ScheduleEntry, error)
	GetSchedulesForJob(ctx context.Context, jobID string) ([]models.ScheduleEntry, error)
	ReplaceJobSchedule(ctx context.Context, jobID string, entries []ScheduleInput) ([]models.ScheduleEntry, error)
	GetLegacySchedule(ctx context.Context) ([]models.ScheduleEntry, error)
	ReplaceLegacySchedule(ctx context.Context, entries []ScheduleInput) ([]models.ScheduleEntry, error)
}

// SessionRepository covers work session lifecycle and queries.
type SessionRepository interface {
	GetSessions(ctx context.Context) ([]models.WorkSession, error)
	GetSessionsForDate(ctx context.Context, date string) ([]models.WorkSession, error)
	GetSessionsForJob(ctx context.Context, jobID, startDate, endDate string) ([]models.WorkSession, error)
	GetOpenSessions(ctx context.Context) ([]models.WorkSession, error)
	CreateSession(ctx context.Context, in SessionInput) (models.WorkSession, error)
	CloseSession(ctx context.Context, id, endClock string) (models.WorkSession, error)
	CloseAllOpen(ctx context.Context, endClock string) (int, error)
	UpdateSessionTimes(ctx context.Context, id, startClock, endClock string) (models.WorkSession, error)
	DeleteSession(ctx context.Context, id string) error
}

// VacationRepository covers time-off periods.
type VacationRepository interface {
	GetVacations(ctx context.Context) ([]models.Vacation, error)
	CreateVacation(ctx context.Context, in VacationInput) (models.Vacation, error)
	UpdateVacation(ctx context.Context, id string, in VacationInput) (models.Vacation, error)
	DeleteVacation(ctx context.Context, id string) error
	VacationFor(ctx context.Context, date string) (*models.Vacation, error)
	GetVacationsForMonth(ctx context.Context, year, month int) ([]models.Vacation, error)
}

// PausedJobsRepository covers the persisted auto-start suppression set.
type PausedJobsRepository interface {
	GetPausedJobs(ctx context.Context) ([]string, error)
	ReplacePausedJobs(ctx context.Context, jobIDs []string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=../tracker/mock_repository_test.go -package=tracker github.com/akyairhashvil/wagetrack/internal/store Repository
type Repository interface {
	SettingsRepository
	JobRepository
	ScheduleRepository
	SessionRepository
	VacationRepository
	PausedJobsRepository
}

var _ Repository = (*Store)(nil)
