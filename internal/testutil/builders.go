package testutil

import (
	"time"

	"github.com/akyairhashvil/wagetrack/internal/models"
)

// JobBuilder provides fluent API for creating test jobs.
type JobBuilder struct {
	job models.Job
}

func NewJob() *JobBuilder {
	return &JobBuilder{
		job: models.Job{
			ID:         "job-test",
			Name:       "Test Job",
			HourlyRate: 20,
			Color:      "#3B82F6",
			IsActive:   true,
			CreatedAt:  time.Now(),
		},
	}
}

func (b *JobBuilder) WithID(id string) *JobBuilder {
	b.job.ID = id
	return b
}

func (b *JobBuilder) WithName(name string) *JobBuilder {
	b.job.Name = name
	return b
}

func (b *JobBuilder) WithRate(rate float64) *JobBuilder {
	b.job.HourlyRate = rate
	return b
}

func (b *JobBuilder) Inactive() *JobBuilder {
	b.job.IsActive = false
	return b
}

func (b *JobBuilder) Build() models.Job {
	return b.job
}

// SessionBuilder provides fluent API for creating test work sessions.
type SessionBuilder struct {
	session models.WorkSession
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.WorkSession{
			ID:         "sess-test",
			Date:       "2025-08-25",
			StartTime:  "09:00",
			HourlyRate: 20,
			CreatedAt:  time.Now(),
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

func (b *SessionBuilder) WithJob(id, name string) *SessionBuilder {
	b.session.JobID = id
	b.session.JobName = name
	return b
}

func (b *SessionBuilder) WithDate(date string) *SessionBuilder {
	b.session.Date = date
	return b
}

func (b *SessionBuilder) WithStart(clock string) *SessionBuilder {
	b.session.StartTime = clock
	return b
}

// Closed sets an end time and the stored earnings for the span.
func (b *SessionBuilder) Closed(clock string, earned float64) *SessionBuilder {
	b.session.EndTime = &clock
	b.session.Earnings = earned
	return b
}

func (b *SessionBuilder) WithRate(rate float64) *SessionBuilder {
	b.session.HourlyRate = rate
	return b
}

func (b *SessionBuilder) Manual() *SessionBuilder {
	b.session.IsManual = true
	return b
}

func (b *SessionBuilder) AutoStarted() *SessionBuilder {
	b.session.IsAutoStarted = true
	return b
}

func (b *SessionBuilder) Build() models.WorkSession {
	return b.session
}

// VacationBuilder provides fluent API for creating test vacations.
type VacationBuilder struct {
	vacation models.Vacation
}

func NewVacation() *VacationBuilder {
	return &VacationBuilder{
		vacation: models.Vacation{
			ID:        "vac-test",
			StartDate: "2025-08-25",
			EndDate:   "2025-08-25",
			Type:      models.VacationTypeVacation,
			CreatedAt: time.Now(),
		},
	}
}

func (b *VacationBuilder) WithID(id string) *VacationBuilder {
	b.vacation.ID = id
	return b
}

func (b *VacationBuilder) WithRange(start, end string) *VacationBuilder {
	b.vacation.StartDate = start
	b.vacation.EndDate = end
	return b
}

func (b *VacationBuilder) WithType(t models.VacationType) *VacationBuilder {
	b.vacation.Type = t
	return b
}

func (b *VacationBuilder) WithReason(r string) *VacationBuilder {
	b.vacation.Reason = r
	return b
}

func (b *VacationBuilder) Build() models.Vacation {
	return b.vacation
}
