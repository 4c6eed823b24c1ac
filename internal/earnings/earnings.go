// Package earnings derives monetary and hour totals from work sessions.
// Everything here is a pure function of the sessions passed in and an
// explicit wall-clock value; live earnings are recomputed on every call,
// never cached.
package earnings

import (
	"fmt"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
	"github.com/akyairhashvil/wagetrack/internal/util"
)

// Compute values a period at a rate, floored at zero.
func Compute(start, end string, rate float64) float64 {
	v := timeutil.HoursBetween(start, end) * rate
	if v < 0 {
		return 0
	}
	return v
}

// SessionEarnings values one session. Closed sessions are recomputed from
// their own bounds (stored earnings are never trusted blindly); open
// sessions are valued up to nowClock.
func SessionEarnings(s models.WorkSession, nowClock string) float64 {
	if s.Open() {
		return Compute(s.StartTime, nowClock, s.HourlyRate)
	}
	return Compute(s.StartTime, util.Deref(s.EndTime), s.HourlyRate)
}

// SessionHours returns the duration of a closed session in decimal hours,
// 0 for an open one.
func SessionHours(s models.WorkSession) float64 {
	if s.Open() {
		return 0
	}
	return timeutil.HoursBetween(s.StartTime, util.Deref(s.EndTime))
}

// DayTotals aggregates one day, live sessions included.
type DayTotals struct {
	TotalEarnings  float64
	ActiveSessions []models.WorkSession
	ActiveCount    int
}

// DailyTotals sums the closed earnings of a date plus the live earnings
// of every session still open on it.
func DailyTotals(sessions []models.WorkSession, date, nowClock string) DayTotals {
	var t DayTotals
	for _, s := range sessions {
		if s.Date != date {
			continue
		}
		if s.Open() {
			t.ActiveSessions = append(t.ActiveSessions, s)
			t.TotalEarnings += SessionEarnings(s, nowClock)
			continue
		}
		t.TotalEarnings += s.Earnings
	}
	t.ActiveCount = len(t.ActiveSessions)
	return t
}

// JobDayTotals is one job's share of a day.
type JobDayTotals struct {
	JobID         string
	JobName       string
	TotalEarnings float64
	ActiveSession *models.WorkSession
	CompletedCount int
}

// defaultBucket collects legacy sessions that carry no job reference.
const defaultBucket = "default"

// DailyTotalsByJob partitions DailyTotals by job. Sessions without a job
// land in the "default" bucket.
func DailyTotalsByJob(sessions []models.WorkSession, date, nowClock string) map[string]JobDayTotals {
	byJob := make(map[string]JobDayTotals)
	for _, s := range sessions {
		if s.Date != date {
			continue
		}
		key := s.JobID
		name := s.JobName
		if key == "" {
			key = defaultBucket
		}
		if name == "" {
			name = config.DefaultJobLabel
		}
		bucket, ok := byJob[key]
		if !ok {
			bucket = JobDayTotals{JobID: key, JobName: name}
		}
		if s.Open() {
			live := s
			bucket.ActiveSession = &live
			bucket.TotalEarnings += SessionEarnings(s, nowClock)
		} else {
			bucket.TotalEarnings += s.Earnings
			bucket.CompletedCount++
		}
		byJob[key] = bucket
	}
	return byJob
}

// Totals aggregates closed sessions over a date range.
type Totals struct {
	TotalEarnings float64
	TotalHours    float64
	TotalSessions int
}

// RangeTotals sums closed sessions whose date falls inside the inclusive
// range. Open sessions are excluded from historical stats; they only
// count in today's live totals.
func RangeTotals(sessions []models.WorkSession, startDate, endDate string) Totals {
	var t Totals
	for _, s := range sessions {
		if s.Open() || s.Date < startDate || s.Date > endDate {
			continue
		}
		t.TotalEarnings += s.Earnings
		t.TotalHours += SessionHours(s)
		t.TotalSessions++
	}
	return t
}

// JobStats describes a job's closed-session history.
type JobStats struct {
	TotalEarnings     float64
	TotalHours        float64
	TotalSessions     int
	AverageHourlyRate float64
}

// StatsForJob aggregates a job's closed sessions, optionally bounded by
// an inclusive date range (empty bounds mean unbounded).
func StatsForJob(sessions []models.WorkSession, jobID, startDate, endDate string) JobStats {
	var st JobStats
	for _, s := range sessions {
		if s.JobID != jobID || s.Open() {
			continue
		}
		if startDate != "" && s.Date < startDate {
			continue
		}
		if endDate != "" && s.Date > endDate {
			continue
		}
		st.TotalEarnings += s.Earnings
		st.TotalHours += SessionHours(s)
		st.TotalSessions++
	}
	if st.TotalHours > 0 {
		st.AverageHourlyRate = st.TotalEarnings / st.TotalHours
	}
	return st
}

// VacationUsage summarizes time-off records.
type VacationUsage struct {
	TotalDays    int
	TotalPeriods int
	ByType       map[models.VacationType]int
}

// VacationStats counts vacation days (both ends inclusive), optionally
// restricted to periods starting in the given year (0 means all years).
func VacationStats(vacations []models.Vacation, year int) VacationUsage {
	usage := VacationUsage{ByType: make(map[models.VacationType]int)}
	prefix := ""
	if year > 0 {
		prefix = fmt.Sprintf("%04d-", year)
	}
	for _, v := range vacations {
		if prefix != "" && len(v.StartDate) < len(prefix) {
			continue
		}
		if prefix != "" && v.StartDate[:len(prefix)] != prefix {
			continue
		}
		days := v.Days()
		usage.TotalDays += days
		usage.TotalPeriods++
		usage.ByType[v.Type] += days
	}
	return usage
}
