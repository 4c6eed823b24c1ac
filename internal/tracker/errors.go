package tracker

import "errors"

var (
	// ErrSessionActive rejects a start for a job that already has an
	// open session. One open session per job, never more.
	ErrSessionActive = errors.New("job already has an open session")

	// ErrNoSettings rejects the legacy start before settings exist.
	ErrNoSettings = errors.New("settings are not configured")

	// ErrJobsConfigured rejects the legacy path while jobs exist; the
	// job-aware commands must be used instead.
	ErrJobsConfigured = errors.New("jobs are configured, use the per-job commands")
)
