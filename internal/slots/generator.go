package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window describes the generation parameters for a date range: shop opening
// hours and the slot length in minutes.
type Window struct {
	StartDate time.Time
	EndDate   time.Time
	OpenTime  string // "08:00"
	CloseTime string // "18:00"
	Duration  int    // minutes
	SkipDays  []time.Weekday
}

// Entry is one generated slot candidate.
type Entry struct {
	Date      time.Time
	StartTime string // "08:00"
	EndTime   string // "08:30"
}

// Generate produces every slot in the window, date by date. The caller is
// responsible for skipping entries that already exist in the catalog.
func Generate(w Window) ([]Entry, error) {
	if w.Duration <= 0 {
		w.Duration = 30
	}
	if w.EndDate.Before(w.StartDate) {
		return nil, fmt.Errorf("end date %s before start date %s",
			w.EndDate.Format("2006-01-02"), w.StartDate.Format("2006-01-02"))
	}

	openMin, err := parseMinutes(w.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("parse open time: %w", err)
	}
	closeMin, err := parseMinutes(w.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("parse close time: %w", err)
	}
	if closeMin <= openMin {
		return nil, fmt.Errorf("close time %s not after open time %s", w.CloseTime, w.OpenTime)
	}

	skipped := make(map[time.Weekday]bool, len(w.SkipDays))
	for _, d := range w.SkipDays {
		skipped[d] = true
	}

	var entries []Entry

	start := dateOnly(w.StartDate)
	end := dateOnly(w.EndDate)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if skipped[day.Weekday()] {
			continue
		}

		for cursor := openMin; cursor+w.Duration <= closeMin; cursor += w.Duration {
			entries = append(entries, Entry{
				Date:      day,
				StartTime: formatMinutes(cursor),
				EndTime:   formatMinutes(cursor + w.Duration),
			})
		}
	}

	return entries, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour: %w", err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute: %w", err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %s", s)
	}

	return hour*60 + minute, nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
