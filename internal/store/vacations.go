package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

// VacationInput is the payload for creating or updating a vacation.
type VacationInput struct {
	StartDate string
	EndDate   string
	Reason    string
	Type      models.VacationType
}

func validateVacation(in VacationInput) (VacationInput, error) {
	if _, err := time.Parse(timeutil.DateLayout, in.StartDate); err != nil {
		return in, invalid("start date", "must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeutil.DateLayout, in.EndDate); err != nil {
		return in, invalid("end date", "must be YYYY-MM-DD")
	}
	if in.StartDate > in.EndDate {
		return in, invalid("date range", "start must not be after end")
	}
	switch in.Type {
	case "":
		in.Type = models.VacationTypeVacation
	case models.VacationTypeVacation, models.VacationTypeSick, models.VacationTypePersonal, models.VacationTypeTraining:
	default:
		return in, invalid("type", "must be vacation, sick, personal or training")
	}
	return in, nil
}

// GetVacations returns all time-off periods, most recent first.
func (s *Store) GetVacations(ctx context.Context) ([]models.Vacation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacations, err := readList[models.Vacation](ctx, s, config.KeyVacations, EntityVacation)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(vacations, func(i, j int) bool {
		return vacations[i].StartDate > vacations[j].StartDate
	})
	return vacations, nil
}

// CreateVacation records a new time-off period.
func (s *Store) CreateVacation(ctx context.Context, in VacationInput) (models.Vacation, error) {
	in, err := validateVacation(in)
	if err != nil {
		return models.Vacation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vacations, err := readList[models.Vacation](ctx, s, config.KeyVacations, EntityVacation)
	if err != nil {
		return models.Vacation{}, err
	}
	now := s.now()
	vacation := models.Vacation{
		ID:        newID(),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    strings.TrimSpace(in.Reason),
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	vacations = append(vacations, vacation)
	if err := writeList(ctx, s, config.KeyVacations, EntityVacation, vacations); err != nil {
		return models.Vacation{}, err
	}
	return vacation, nil
}

// UpdateVacation replaces the fields of an existing period.
func (s *Store) UpdateVacation(ctx context.Context, id string, in VacationInput) (models.Vacation, error) {
	in, err := validateVacation(in)
	if err != nil {
		return models.Vacation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vacations, err := readList[models.Vacation](ctx, s, config.KeyVacations, EntityVacation)
	if err != nil {
		return models.Vacation{}, err
	}
	for i := range vacations {
		if vacations[i].ID != id {
			continue
		}
		vacations[i].StartDate = in.StartDate
		vacations[i].EndDate = in.EndDate
		vacations[i].Reason = strings.TrimSpace(in.Reason)
		vacations[i].Type = in.Type
		vacations[i].UpdatedAt = s.now()
		if err := writeList(ctx, s, config.KeyVacations, EntityVacation, vacations); err != nil {
			return models.Vacation{}, err
		}
		return vacations[i], nil
	}
	return models.Vacation{}, wrapErr(EntityVacation, "update", id, ErrNotFound)
}

// DeleteVacation removes a time-off period.
func (s *Store) DeleteVacation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacations, err := readList[models.Vacation](ctx, s, config.KeyVacations, EntityVacation)
	if err != nil {
		return err
	}
	kept := vacations[:0:0]
	for _, v := range vacations {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(vacations) {
		return wrapErr(EntityVacation, "delete", id, ErrNotFound)
	}
	return writeList(ctx, s, config.KeyVacations, EntityVacation, kept)
}

// VacationFor returns the period covering a date, or nil when the date is
// a working day.
func (s *Store) VacationFor(ctx context.Context, date string) (*models.Vacation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacations, err := readList[models.Vacation](ctx, s, config.KeyVacations, EntityVacation)
	if err != nil {
		return nil, err
	}
	for _, v := range vacations {
		if v.Covers(date) {
			found := v
			return &found, nil
		}
	}
	return nil, nil
}

// GetVacationsForMonth returns periods that touch the given month: those
// starting or ending in it, plus those spanning it entirely.
func (s *Store) GetVacationsForMonth(ctx context.Context, year, month int) ([]models.Vacation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacations, err := readList[models.Vacation](ctx, s, config.KeyVacations, EntityVacation)
	if err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	matched := vacations[:0:0]
	for _, v := range vacations {
		if strings.HasPrefix(v.StartDate, prefix) ||
			strings.HasPrefix(v.EndDate, prefix) ||
			(v.StartDate < prefix && v.EndDate > prefix) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}
