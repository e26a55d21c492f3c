package service

import (
	"sort"
	"time"

	"distribution-service/internal/model"
)

// FilterDistributions applies the independent ledger predicates. The
// fuel-type match is exact once normalized; the date range predicate
// follows calendar semantics (see model.RangeKind.Matches).
func FilterDistributions(records []model.DistributionRecord, filter model.HistoryFilter, now time.Time) []model.DistributionRecord {
	result := make([]model.DistributionRecord, 0, len(records))
	for _, rec := range records {
		if filter.FuelType != nil && rec.FuelType != *filter.FuelType {
			continue
		}
		if !filter.Range.Matches(rec.Timestamp, now) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// SortDistributions orders strictly descending by timestamp. The sort
// is stable: ties keep their original relative order since no
// secondary key is defined.
func SortDistributions(records []model.DistributionRecord) []model.DistributionRecord {
	sorted := make([]model.DistributionRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

// PaginateDistributions slices one page out of an already filtered and
// sorted ledger. Pages beyond the last yield an empty item list, not an
// error; clamping the requested page is the caller's job.
func PaginateDistributions(records []model.DistributionRecord, page, pageSize int) model.HistoryPage {
	result := model.HistoryPage{
		Items:      []model.DistributionRecord{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(records),
	}
	if pageSize <= 0 {
		return result
	}
	result.TotalPages = (len(records) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if page < 1 || start >= len(records) {
		return result
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	result.Items = records[start:end]
	return result
}

// ClampPage bounds a requested page to [1, totalPages]. A ledger with
// no pages still reports page 1 so the view has a stable anchor.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
