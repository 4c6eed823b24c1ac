package earnings

import (
	"testing"

	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/testutil"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		rate  float64
		want  float64
	}{
		{"regular day", "09:00", "17:30", 20, 170},
		{"overnight shift", "22:00", "06:00", 10, 80},
		{"quarter hour", "09:00", "09:15", 20, 5},
		{"zero span", "09:00", "09:00", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.start, tt.end, tt.rate); got != tt.want {
				t.Errorf("Compute(%q, %q, %v) = %v, want %v", tt.start, tt.end, tt.rate, got, tt.want)
			}
		})
	}
}

func TestSessionEarnings(t *testing.T) {
	open := testutil.NewSession().WithStart("09:00").WithRate(20).Build()
	if got := SessionEarnings(open, "10:30"); got != 30 {
		t.Errorf("open session earnings = %v, want 30", got)
	}

	// Closed sessions are revalued from bounds even when the stored
	// number disagrees.
	closed := testutil.NewSession().WithStart("09:00").WithRate(20).Closed("11:00", 999).Build()
	if got := SessionEarnings(closed, "23:59"); got != 40 {
		t.Errorf("closed session earnings = %v, want 40", got)
	}
}

func TestDailyTotals(t *testing.T) {
	sessions := []models.WorkSession{
		testutil.NewSession().WithDate("2025-08-25").WithStart("09:00").WithRate(10).Closed("12:00", 30).Build(),
		testutil.NewSession().WithDate("2025-08-25").WithStart("13:00").WithRate(10).Build(),
		testutil.NewSession().WithDate("2025-08-24").WithStart("09:00").WithRate(10).Closed("10:00", 10).Build(),
	}

	got := DailyTotals(sessions, "2025-08-25", "14:00")
	if got.TotalEarnings != 40 {
		t.Errorf("TotalEarnings = %v, want 40", got.TotalEarnings)
	}
	if got.ActiveCount != 1 {
		t.Errorf("ActiveCount = %d, want 1", got.ActiveCount)
	}
}

func TestDailyTotalsByJob(t *testing.T) {
	sessions := []models.WorkSession{
		testutil.NewSession().WithJob("j1", "Cafe").WithDate("2025-08-25").WithStart("09:00").WithRate(10).Closed("12:00", 30).Build(),
		testutil.NewSession().WithJob("j1", "Cafe").WithDate("2025-08-25").WithStart("14:00").WithRate(10).Build(),
		testutil.NewSession().WithDate("2025-08-25").WithStart("08:00").WithRate(20).Closed("09:00", 20).Build(),
	}

	got := DailyTotalsByJob(sessions, "2025-08-25", "15:00")
	cafe, ok := got["j1"]
	if !ok {
		t.Fatal("missing j1 bucket")
	}
	if cafe.TotalEarnings != 40 {
		t.Errorf("cafe TotalEarnings = %v, want 40", cafe.TotalEarnings)
	}
	if cafe.ActiveSession == nil {
		t.Error("cafe ActiveSession = nil, want open session")
	}
	if cafe.CompletedCount != 1 {
		t.Errorf("cafe CompletedCount = %d, want 1", cafe.CompletedCount)
	}

	legacy, ok := got["default"]
	if !ok {
		t.Fatal("missing default bucket for a legacy session")
	}
	if legacy.JobName != "Main Job" || legacy.TotalEarnings != 20 {
		t.Errorf("legacy bucket = %+v", legacy)
	}
}

func TestRangeTotals(t *testing.T) {
	sessions := []models.WorkSession{
		testutil.NewSession().WithDate("2025-08-25").WithStart("09:00").WithRate(10).Closed("12:00", 30).Build(),
		testutil.NewSession().WithDate("2025-08-26").WithStart("09:00").WithRate(10).Closed("11:00", 20).Build(),
		testutil.NewSession().WithDate("2025-09-01").WithStart("09:00").WithRate(10).Closed("10:00", 10).Build(),
		testutil.NewSession().WithDate("2025-08-26").WithStart("20:00").Build(), // still open
	}

	got := RangeTotals(sessions, "2025-08-25", "2025-08-31")
	if got.TotalEarnings != 50 {
		t.Errorf("TotalEarnings = %v, want 50", got.TotalEarnings)
	}
	if got.TotalHours != 5 {
		t.Errorf("TotalHours = %v, want 5", got.TotalHours)
	}
	if got.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", got.TotalSessions)
	}
}

func TestStatsForJob(t *testing.T) {
	sessions := []models.WorkSession{
		testutil.NewSession().WithJob("j1", "Cafe").WithDate("2025-08-25").WithStart("09:00").WithRate(10).Closed("11:00", 20).Build(),
		testutil.NewSession().WithJob("j1", "Cafe").WithDate("2025-08-26").WithStart("09:00").WithRate(20).Closed("10:00", 20).Build(),
		testutil.NewSession().WithJob("j2", "Office").WithDate("2025-08-25").WithStart("09:00").WithRate(30).Closed("17:00", 240).Build(),
	}

	got := StatsForJob(sessions, "j1", "", "")
	if got.TotalSessions != 2 || got.TotalEarnings != 40 || got.TotalHours != 3 {
		t.Errorf("stats = %+v", got)
	}
	want := 40.0 / 3.0
	if got.AverageHourlyRate != want {
		t.Errorf("AverageHourlyRate = %v, want %v", got.AverageHourlyRate, want)
	}

	bounded := StatsForJob(sessions, "j1", "2025-08-26", "2025-08-26")
	if bounded.TotalSessions != 1 || bounded.TotalEarnings != 20 {
		t.Errorf("bounded stats = %+v", bounded)
	}
}

func TestVacationStats(t *testing.T) {
	vacations := []models.Vacation{
		testutil.NewVacation().WithRange("2025-08-25", "2025-08-29").Build(),
		testutil.NewVacation().WithRange("2025-12-24", "2025-12-26").WithType(models.VacationTypePersonal).Build(),
		testutil.NewVacation().WithRange("2024-07-01", "2024-07-14").Build(),
	}

	all := VacationStats(vacations, 0)
	if all.TotalPeriods != 3 || all.TotalDays != 5+3+14 {
		t.Errorf("all years = %+v", all)
	}

	y2025 := VacationStats(vacations, 2025)
	if y2025.TotalPeriods != 2 || y2025.TotalDays != 8 {
		t.Errorf("2025 = %+v", y2025)
	}
	if y2025.ByType[models.VacationTypeVacation] != 5 {
		t.Errorf("vacation days = %d, want 5", y2025.ByType[models.VacationTypeVacation])
	}
	if y2025.ByType[models.VacationTypePersonal] != 3 {
		t.Errorf("personal days = %d, want 3", y2025.ByType[models.VacationTypePersonal])
	}
}
