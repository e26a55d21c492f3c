package model

import (
	"fmt"
	"time"
)

// DayKey is a calendar date used as an aggregation bucket. It is
// comparable and safe as a map key; ordering is by real date value,
// never by string form.
type DayKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

func DayOf(t time.Time) DayKey {
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d DayKey) Before(other DayKey) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d DayKey) Date() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthKey is a year-month aggregation bucket.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

func (m MonthKey) Before(other MonthKey) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// DailyPoint pairs a day bucket with both event streams. A stream with
// no activity on the day carries exactly zero, never a dropped bucket.
type DailyPoint struct {
	Date        DayKey  `json:"date"`
	Distributed float64 `json:"distributed"`
	Pumped      float64 `json:"pumped"`
}

// MonthlyPoint is the month-bucketed counterpart. Label formatting
// (e.g. "Sep 2024") is left to presentation callers.
type MonthlyPoint struct {
	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	Distributed float64    `json:"distributed"`
	Pumped      float64    `json:"pumped"`
}
