package domain

import (
	"fmt"
	"strconv"
	"time"
)

// BirthdayStats are derived from the stored birthdate at read time, using the
// device timezone. They are recomputed every turn that needs them and never
// persisted.
type BirthdayStats struct {
	// Age in completed years as of today.
	Age int
	// DaysUntilBirthday is 0 when today is the birthday.
	DaysUntilBirthday int
}

// ComputeBirthdayStats derives age and days-until-birthday from the stored
// day/month/year strings in the given IANA timezone, relative to now.
func ComputeBirthdayStats(day, month, year, timezone string, now time.Time) (BirthdayStats, error) {
	bd, err := strconv.Atoi(day)
	if err != nil {
		return BirthdayStats{}, fmt.Errorf("parse birth day %q: %w", day, err)
	}
	bm, err := strconv.Atoi(month)
	if err != nil {
		return BirthdayStats{}, fmt.Errorf("parse birth month %q: %w", month, err)
	}
	by, err := strconv.Atoi(year)
	if err != nil {
		return BirthdayStats{}, fmt.Errorf("parse birth year %q: %w", year, err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return BirthdayStats{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	// Normalize to calendar dates in UTC so DST shifts cannot skew the
	// day arithmetic.
	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	next := time.Date(y, time.Month(bm), bd, 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(y+1, time.Month(bm), bd, 0, 0, 0, 0, time.UTC)
	}
	daysUntil := int(next.Sub(today) / (24 * time.Hour))

	age := y - by
	// Before this year's birthday the last completed year is one less.
	if daysUntil > 0 && next.Year() == y {
		age--
	}

	return BirthdayStats{Age: age, DaysUntilBirthday: daysUntil}, nil
}
