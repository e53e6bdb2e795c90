package browse

import (
	"sort"
	"strings"

	"github.com/gameon-app/gameon-go/internal/domain/request"
)

// Visible derives the ordered list of requests the dashboard renders. It is a
// pure function of its inputs: every stage narrows the previous one without
// reordering, and only the final sort stage reorders. The result is always a
// fresh slice holding a subset of items.
func Visible(
	items []request.PlayRequest,
	criteria Criteria,
	mode ViewMode,
	sortBy SortOption,
	viewerID int64,
	joined JoinedSet,
) []request.PlayRequest {
	out := make([]request.PlayRequest, 0, len(items))
	out = append(out, items...)

	out = applyViewMode(out, mode, viewerID, joined)
	out = applySportTab(out, criteria.ActiveSportTab)
	out = applySearch(out, criteria.SearchTerm)
	out = applyStatuses(out, criteria.Statuses)
	out = applySports(out, criteria.Sports)
	out = applyLocations(out, criteria.Locations)
	out = applyPrice(out, normalizePriceRange(criteria.Price, items))
	out = applyDates(out, criteria.Dates)
	out = applyProficiency(out, criteria.ProficiencyLevels)

	sortRequests(out, sortBy)
	return out
}

func applyViewMode(items []request.PlayRequest, mode ViewMode, viewerID int64, joined JoinedSet) []request.PlayRequest {
	switch mode {
	case ViewMyRequests:
		return keep(items, func(r request.PlayRequest) bool {
			return r.HostUserID == viewerID
		})
	case ViewJoinedRequests:
		// An empty joined set means nothing is shown, not everything.
		if joined.Empty() {
			return items[:0]
		}
		return keep(items, func(r request.PlayRequest) bool {
			return joined.Has(r.ID)
		})
	case ViewConfirmedRequests:
		return keep(items, func(r request.PlayRequest) bool {
			return r.Status == request.StatusCompleted
		})
	default:
		return items
	}
}

func applySportTab(items []request.PlayRequest, tab string) []request.PlayRequest {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" || tab == SportTabAll {
		return items
	}
	return keep(items, func(r request.PlayRequest) bool {
		return strings.ToLower(r.SportName()) == tab
	})
}

func applySearch(items []request.PlayRequest, term string) []request.PlayRequest {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	return keep(items, func(r request.PlayRequest) bool {
		return strings.Contains(strings.ToLower(r.HostName), term) ||
			strings.Contains(strings.ToLower(r.Location), term) ||
			strings.Contains(strings.ToLower(r.SportName()), term)
	})
}

func applyStatuses(items []request.PlayRequest, statuses []request.Status) []request.PlayRequest {
	if len(statuses) == 0 {
		return items
	}
	wanted := make(map[request.Status]struct{}, len(statuses))
	for _, status := range statuses {
		wanted[request.NormalizeStatus(string(status))] = struct{}{}
	}
	return keep(items, func(r request.PlayRequest) bool {
		_, ok := wanted[r.Status]
		return ok
	})
}

func applySports(items []request.PlayRequest, sports []string) []request.PlayRequest {
	if len(sports) == 0 {
		return items
	}
	wanted := make(map[string]struct{}, len(sports))
	for _, name := range sports {
		wanted[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	return keep(items, func(r request.PlayRequest) bool {
		_, ok := wanted[strings.ToLower(r.SportName())]
		return ok
	})
}

func applyLocations(items []request.PlayRequest, locations []string) []request.PlayRequest {
	if len(locations) == 0 {
		return items
	}
	wanted := make(map[string]struct{}, len(locations))
	for _, location := range locations {
		wanted[location] = struct{}{}
	}
	return keep(items, func(r request.PlayRequest) bool {
		_, ok := wanted[r.Location]
		return ok
	})
}

// normalizePriceRange substitutes the default [0, maxObserved] bounds when
// the caller left the range unset, so the always-active price stage never
// filters on an unset bound.
func normalizePriceRange(bounds PriceRange, items []request.PlayRequest) PriceRange {
	if !bounds.Set() {
		return NewPriceRange(0, MaxCourtPrice(items))
	}
	return bounds
}

func applyPrice(items []request.PlayRequest, bounds PriceRange) []request.PlayRequest {
	return keep(items, func(r request.PlayRequest) bool {
		return r.CourtPrice >= bounds.Min && r.CourtPrice <= bounds.Max
	})
}

func applyDates(items []request.PlayRequest, bounds DateRange) []request.PlayRequest {
	if !bounds.Set() {
		return items
	}
	return keep(items, func(r request.PlayRequest) bool {
		return !r.Scheduled.Before(bounds.Start) && !r.Scheduled.After(bounds.End)
	})
}

// applyProficiency restricts by the per-sport proficiency level. Records
// without a level carry no attribute to match and pass through unfiltered.
func applyProficiency(items []request.PlayRequest, levels []string) []request.PlayRequest {
	if len(levels) == 0 {
		return items
	}
	wanted := make(map[string]struct{}, len(levels))
	for _, level := range levels {
		wanted[strings.ToLower(strings.TrimSpace(level))] = struct{}{}
	}
	return keep(items, func(r request.PlayRequest) bool {
		level := strings.ToLower(strings.TrimSpace(r.SportLevel()))
		if level == "" {
			return true
		}
		_, ok := wanted[level]
		return ok
	})
}

func sortRequests(items []request.PlayRequest, sortBy SortOption) {
	switch sortBy {
	case SortUpcoming:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Scheduled.Before(items[j].Scheduled)
		})
	case SortPriceLowHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CourtPrice < items[j].CourtPrice
		})
	case SortPriceHighLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CourtPrice > items[j].CourtPrice
		})
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	}
}

func keep(items []request.PlayRequest, predicate func(request.PlayRequest) bool) []request.PlayRequest {
	out := items[:0]
	for _, item := range items {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}
