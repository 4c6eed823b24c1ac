package tracker

import (
	"github.com/akyairhashvil/wagetrack/internal/earnings"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/schedule"
)

// Snapshot is one consistent read of everything the presentation layer
// needs: entity state, the resolved "scheduled now" set, open sessions
// and live totals, all taken under the tracker lock.
type Snapshot struct {
	Date  string // YYYY-MM-DD
	Clock string // HH:MM

	Settings     *models.Settings
	ActiveJobs   []models.Job
	JobSchedules []models.ScheduleEntry

	ScheduledNow []schedule.ScheduledJob
	OpenSessions []models.WorkSession

	Today      earnings.DayTotals
	TodayByJob map[string]earnings.JobDayTotals

	PausedJobs []string
	OnVacation *models.Vacation
}

// IsWorking reports whether any session is open.
func (s Snapshot) IsWorking() bool { return len(s.OpenSessions) > 0 }

// IsPaused reports whether a job's auto-start is suspended.
func (s Snapshot) IsPaused(jobID string) bool {
	for _, id := range s.PausedJobs {
		if id == jobID {
			return true
		}
	}
	return false
}

// OpenSessionFor returns the job's open session, or nil when idle.
func (s Snapshot) OpenSessionFor(jobID string) *models.WorkSession {
	for i := range s.OpenSessions {
		if s.OpenSessions[i].JobID == jobID {
			return &s.OpenSessions[i]
		}
	}
	return nil
}

// ScheduledFor reports whether the job appears in the scheduled-now set.
func (s Snapshot) ScheduledFor(jobID string) bool {
	return schedule.ContainsJob(s.ScheduledNow, jobID)
}
