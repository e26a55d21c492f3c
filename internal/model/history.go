package model

import (
	"strings"
	"time"
)

type RangeKind string

const (
	RangeAll       RangeKind = "all"
	RangeToday     RangeKind = "today"
	RangeLastWeek  RangeKind = "week"
	RangeLastMonth RangeKind = "month"
)

func ParseRangeKind(raw string) RangeKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RangeToday):
		return RangeToday
	case string(RangeLastWeek):
		return RangeLastWeek
	case string(RangeLastMonth):
		return RangeLastMonth
	default:
		return RangeAll
	}
}

// Matches evaluates the range predicate against a record timestamp.
// Today means same calendar day as now, not a rolling 24h window; week
// and month are inclusive lower bounds at now-7d and now-1 calendar
// month respectively.
func (k RangeKind) Matches(ts, now time.Time) bool {
	switch k {
	case RangeToday:
		y1, m1, d1 := ts.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case RangeLastWeek:
		return !ts.Before(now.AddDate(0, 0, -7))
	case RangeLastMonth:
		return !ts.Before(now.AddDate(0, -1, 0))
	default:
		return true
	}
}

// HistoryFilter combines the independent ledger predicates. A nil
// FuelType passes every record through.
type HistoryFilter struct {
	FuelType *FuelType
	Range    RangeKind
}

type HistoryPage struct {
	Items      []DistributionRecord `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
	TotalItems int                  `json:"total_items"`
}
