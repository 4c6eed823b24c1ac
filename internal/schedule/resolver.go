// Package schedule answers "who should be working right now" from job
// schedules and the wall clock. It never consults session state; the
// reconciliation engine combines its output with open sessions.
package schedule

import (
	"sort"
	"time"

	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

// ScheduledJob pairs a job with one schedule window that matches the
// current clock.
type ScheduledJob struct {
	Job   models.Job
	Entry models.ScheduleEntry
}

// JobsNow returns every (active job, matching window) pair for the given
// day-of-week and clock. A job with overlapping windows is reported once
// per window; overlap is allowed by policy and never deduplicated here.
func JobsNow(jobs []models.Job, entries []models.ScheduleEntry, dayOfWeek int, clock string) []ScheduledJob {
	var matched []ScheduledJob
	for _, job := range jobs {
		if !job.IsActive {
			continue
		}
		for _, entry := range entries {
			if entry.JobID != job.ID || entry.DayOfWeek != dayOfWeek {
				continue
			}
			if timeutil.TimeInRange(clock, entry.StartTime, entry.EndTime) {
				matched = append(matched, ScheduledJob{Job: job, Entry: entry})
			}
		}
	}
	return matched
}

// ContainsJob reports whether any match belongs to the given job.
func ContainsJob(scheduled []ScheduledJob, jobID string) bool {
	for _, s := range scheduled {
		if s.Job.ID == jobID {
			return true
		}
	}
	return false
}

// LegacyActive reports whether the flat schedule covers the given moment.
func LegacyActive(entries []models.ScheduleEntry, dayOfWeek int, clock string) bool {
	for _, entry := range entries {
		if entry.DayOfWeek != dayOfWeek {
			continue
		}
		if timeutil.TimeInRange(clock, entry.StartTime, entry.EndTime) {
			return true
		}
	}
	return false
}

// EarliestStart returns the earliest start time among a day's windows,
// used to backdate a late auto-start to the scheduled beginning.
func EarliestStart(entries []models.ScheduleEntry, dayOfWeek int) (string, bool) {
	earliest := ""
	for _, entry := range entries {
		if entry.DayOfWeek != dayOfWeek {
			continue
		}
		if earliest == "" || timeutil.MinutesOfDay(entry.StartTime) < timeutil.MinutesOfDay(earliest) {
			earliest = entry.StartTime
		}
	}
	return earliest, earliest != ""
}

// Upcoming describes the next scheduled window.
type Upcoming struct {
	DayOfWeek int
	DayName   string
	StartTime string
	IsToday   bool
}

// NextSession finds the next window at or after now: later today first,
// then scanning forward through the week.
func NextSession(entries []models.ScheduleEntry, now time.Time) (Upcoming, bool) {
	currentDay := int(now.Weekday())
	currentMinutes := timeutil.MinutesOfDay(timeutil.ClockOf(now))

	var today []models.ScheduleEntry
	for _, entry := range entries {
		if entry.DayOfWeek == currentDay && timeutil.MinutesOfDay(entry.StartTime) > currentMinutes {
			today = append(today, entry)
		}
	}
	if len(today) > 0 {
		sort.Slice(today, func(i, j int) bool {
			return timeutil.MinutesOfDay(today[i].StartTime) < timeutil.MinutesOfDay(today[j].StartTime)
		})
		return Upcoming{
			DayOfWeek: currentDay,
			DayName:   timeutil.DayName(currentDay),
			StartTime: today[0].StartTime,
			IsToday:   true,
		}, true
	}

	for offset := 1; offset <= 7; offset++ {
		day := (currentDay + offset) % 7
		earliest, ok := EarliestStart(entries, day)
		if !ok {
			continue
		}
		return Upcoming{
			DayOfWeek: day,
			DayName:   timeutil.DayName(day),
			StartTime: earliest,
		}, true
	}
	return Upcoming{}, false
}
