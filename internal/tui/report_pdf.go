package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/earnings"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/store"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
	"github.com/akyairhashvil/wagetrack/internal/util"
)

// GenerateWeeklyReport writes a PDF summary of the week containing the
// given day and returns the file path.
func GenerateWeeklyReport(ctx context.Context, st *store.Store, day time.Time) (string, error) {
	start, end := timeutil.WeekRange(day)
	return generateReport(ctx, st, start, end, fmt.Sprintf("Weekly Report %s", start))
}

// GenerateMonthlyReport writes a PDF summary of the month containing the
// given day and returns the file path.
func GenerateMonthlyReport(ctx context.Context, st *store.Store, day time.Time) (string, error) {
	start, end := timeutil.MonthRange(day)
	return generateReport(ctx, st, start, end, fmt.Sprintf("Monthly Report %s", day.Format("January 2006")))
}

func generateReport(ctx context.Context, st *store.Store, startDate, endDate, title string) (string, error) {
	settings, err := st.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	currency := models.CurrencyEUR
	if settings != nil {
		currency = settings.Currency
	}
	sessions, err := st.GetSessions(ctx)
	if err != nil {
		return "", err
	}
	jobs, err := st.GetJobs(ctx)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", startDate, endDate))
	pdf.Ln(10)

	totals := earnings.RangeTotals(sessions, startDate, endDate)

	// Per-job breakdown, legacy sessions last under a default label.
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "By Job")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, job := range jobs {
		stats := earnings.StatsForJob(sessions, job.ID, startDate, endDate)
		if stats.TotalSessions == 0 {
			continue
		}
		line := fmt.Sprintf("%s: %s over %s (%d sessions)",
			job.Name,
			FormatMoney(stats.TotalEarnings, currency),
			FormatHours(stats.TotalHours),
			stats.TotalSessions)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}
	legacy := earnings.StatsForJob(sessions, "", startDate, endDate)
	if legacy.TotalSessions > 0 {
		line := fmt.Sprintf("%s: %s over %s (%d sessions)",
			config.DefaultJobLabel,
			FormatMoney(legacy.TotalEarnings, currency),
			FormatHours(legacy.TotalHours),
			legacy.TotalSessions)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}
	if totals.TotalSessions == 0 {
		pdf.Cell(0, 8, "No completed sessions in this period.")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Session detail.
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Sessions")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for i := len(sessions) - 1; i >= 0; i-- { // oldest first on paper
		s := sessions[i]
		if s.Open() || s.Date < startDate || s.Date > endDate {
			continue
		}
		name := s.JobName
		if name == "" {
			name = config.DefaultJobLabel
		}
		line := fmt.Sprintf("%s  %s  %s  %s",
			s.Date, FormatSpan(s.StartTime, s.EndTime), name, FormatMoney(s.Earnings, currency))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %s over %s (%d sessions)",
		FormatMoney(totals.TotalEarnings, currency),
		FormatHours(totals.TotalHours),
		totals.TotalSessions))

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("earnings_%s_%s.pdf", startDate, endDate))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
