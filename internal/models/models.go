package models

import "time"

// Currency enumerates the supported display currencies.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// VacationType enumerates the kinds of time-off periods.
type VacationType string

const (
	VacationTypeVacation VacationType = "vacation"
	VacationTypeSick     VacationType = "sick"
	VacationTypePersonal VacationType = "personal"
	VacationTypeTraining VacationType = "training"
)

// Settings is the legacy singleton configuration used when no jobs exist.
type Settings struct {
	HourlyRate float64   `json:"hourly_rate"`
	Currency   Currency  `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Job is a named work context with its own rate and weekly schedule.
type Job struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	HourlyRate float64   `json:"hourly_rate"`
	Color      string    `json:"color"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ScheduleEntry is one weekly time window. JobID is empty for entries
// belonging to the legacy flat schedule.
type ScheduleEntry struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id,omitempty"`
	DayOfWeek int       `json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartTime string    `json:"start_time"`  // HH:MM
	EndTime   string    `json:"end_time"`    // HH:MM
	CreatedAt time.Time `json:"created_at"`
}

// WorkSession is one continuous block of work. A session is open while
// EndTime is nil; closing it freezes Earnings. JobName, JobColor and
// HourlyRate are snapshots taken at creation so history survives job
// edits and deletions.
type WorkSession struct {
	ID            string    `json:"id"`
	JobID         string    `json:"job_id,omitempty"`
	JobName       string    `json:"job_name,omitempty"`
	JobColor      string    `json:"job_color,omitempty"`
	Date          string    `json:"date"`       // YYYY-MM-DD
	StartTime     string    `json:"start_time"` // HH:MM
	EndTime       *string   `json:"end_time"`   // nil while open
	HourlyRate    float64   `json:"hourly_rate"`
	Earnings      float64   `json:"earnings"`
	IsManual      bool      `json:"is_manual"`
	IsAutoStarted bool      `json:"is_auto_started"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Open reports whether the session is still running.
func (s WorkSession) Open() bool { return s.EndTime == nil }

// Vacation is an inclusive date range during which auto-start is suspended.
type Vacation struct {
	ID        string       `json:"id"`
	StartDate string       `json:"start_date"` // YYYY-MM-DD
	EndDate   string       `json:"end_date"`   // YYYY-MM-DD, inclusive
	Reason    string       `json:"reason"`
	Type      VacationType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Covers reports whether the given YYYY-MM-DD date falls inside the range.
// ISO dates compare correctly as strings.
func (v Vacation) Covers(date string) bool {
	return date >= v.StartDate && date <= v.EndDate
}

// Days returns the number of calendar days in the range, counting both ends.
func (v Vacation) Days() int {
	start, err := time.Parse("2006-01-02", v.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", v.EndDate)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
