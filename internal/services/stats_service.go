package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"shift-track/internal/clock"
	"shift-track/internal/models"
	"shift-track/internal/timeutil"
)

// StatsService folds persisted day records into monthly summaries and
// reports. Pure read side; it never writes.
type StatsService struct {
	dayStatus *DayStatusService
	clock     clock.Clock
}

// NewStatsService constructs a StatsService.
func NewStatsService(dayStatus *DayStatusService, clk clock.Clock) *StatsService {
	return &StatsService{dayStatus: dayStatus, clock: clk}
}

// validateMonth checks the "yyyy-MM" month key format.
func validateMonth(month string) error {
	if _, err := time.Parse(timeutil.MonthLayout, month); err != nil {
		return fmt.Errorf("invalid month %q: expected yyyy-MM", month)
	}
	return nil
}

// MonthStats aggregates the day records of one month into per-status
// counters, total hours and the rounded average. A month without records
// yields all zeros; the average guards against division by zero.
func (s *StatsService) MonthStats(month string) (models.MonthlyStats, error) {
	if err := validateMonth(month); err != nil {
		return models.MonthlyStats{}, err
	}

	records, err := s.monthRecords(month)
	if err != nil {
		return models.MonthlyStats{}, err
	}

	var stats models.MonthlyStats
	for _, r := range records {
		stats.TotalDays++
		stats.TotalHours += r.TotalHours
		switch r.Status {
		case models.DayStatusFullWork:
			stats.FullWork++
		case models.DayStatusMissingAction:
			stats.MissingAction++
		case models.DayStatusLeave:
			stats.Leave++
		case models.DayStatusSick:
			stats.Sick++
		case models.DayStatusHoliday:
			stats.Holiday++
		case models.DayStatusAbsent:
			stats.Absent++
		case models.DayStatusLateEarly:
			stats.LateEarly++
		case models.DayStatusNotSet:
			// Counted in TotalDays only.
		}
	}

	stats.TotalHours = timeutil.Round1(stats.TotalHours)
	if stats.TotalDays > 0 {
		stats.AverageHours = timeutil.Round1(stats.TotalHours / float64(stats.TotalDays))
	}
	return stats, nil
}

// MonthlyReport bundles the month's stats with its raw day records, sorted
// ascending by date. No persistence side effect.
func (s *StatsService) MonthlyReport(month string) (models.MonthlyReport, error) {
	stats, err := s.MonthStats(month)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	records, err := s.monthRecords(month)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	return models.MonthlyReport{
		Month:       month,
		GeneratedAt: s.clock.Now().Format(time.RFC3339),
		Summary:     stats,
		Details:     records,
	}, nil
}

func (s *StatsService) monthRecords(month string) ([]models.DayRecord, error) {
	all, err := s.dayStatus.Records()
	if err != nil {
		return nil, err
	}
	records := make([]models.DayRecord, 0, len(all))
	for _, r := range all {
		if strings.HasPrefix(r.Date, month) {
			records = append(records, r)
		}
	}
	return records, nil
}
