package config

import "time"

// Tick intervals driving re-evaluation.
const (
	// DisplayTickInterval refreshes live earnings for open sessions.
	DisplayTickInterval = time.Second

	// ReconcileInterval runs the full auto-start/auto-stop pass.
	ReconcileInterval = time.Minute

	// InitialReconcileDelay postpones the first reconcile after startup so
	// sessions do not start the instant the app opens.
	InitialReconcileDelay = 2 * time.Second
)

// Storage keys. One whole-collection snapshot per key; renaming any of
// these orphans existing data.
const (
	KeySettings     = "time-tracker-settings"
	KeySchedule     = "time-tracker-schedule"
	KeySessions     = "time-tracker-sessions"
	KeyVacations    = "time-tracker-vacations"
	KeyJobs         = "time-tracker-jobs"
	KeyJobSchedules = "time-tracker-job-schedules"
	KeyPausedJobs   = "time-tracker-paused-jobs"
)

// Defaults.
const (
	// DefaultJobColor is assigned when a job is created without a color.
	DefaultJobColor = "#3B82F6"

	// DefaultJobLabel names the bucket for sessions without a job.
	DefaultJobLabel = "Main Job"
)

// Database/application settings.
const (
	AppName    = "wagetrack"
	DBFileName = "tracker.db"
)
