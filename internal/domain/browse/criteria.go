package browse

import (
	"sort"
	"strings"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/request"
)

// SportTabAll disables the sport-tab restriction.
const SportTabAll = "all"

// ViewMode selects which slice of the collection the dashboard shows before
// any other filter applies.
type ViewMode string

const (
	ViewAllRequests       ViewMode = "all-requests"
	ViewJoinedRequests    ViewMode = "joined-requests"
	ViewMyRequests        ViewMode = "my-requests"
	ViewConfirmedRequests ViewMode = "confirmed-requests"
)

// SortOption orders the filtered result. Newest/Oldest sort by creation time
// and are retained for compatibility with older dashboards.
type SortOption string

const (
	SortUpcoming     SortOption = "upcoming"
	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
)

// PriceRange is an inclusive bound on court price. The zero value means "no
// restriction". Bounded marks a deliberately chosen range so an explicit
// [0, 0] bound (free requests only) is not mistaken for unset.
type PriceRange struct {
	Min     float64
	Max     float64
	Bounded bool
}

// NewPriceRange returns an explicitly bounded range.
func NewPriceRange(min, max float64) PriceRange {
	return PriceRange{Min: min, Max: max, Bounded: true}
}

func (p PriceRange) Set() bool {
	return p.Bounded || p.Min != 0 || p.Max != 0
}

// DateRange is an inclusive bound on scheduled play time. It only takes
// effect when both ends are set.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (d DateRange) Set() bool {
	return !d.Start.IsZero() && !d.End.IsZero()
}

// Criteria is the viewer-local filter configuration. Empty fields mean
// "no restriction". It is owned by the caller and carries no derived caches.
type Criteria struct {
	ActiveSportTab    string
	SearchTerm        string
	Statuses          []request.Status
	Sports            []string
	Locations         []string
	Price             PriceRange
	Dates             DateRange
	ProficiencyLevels []string
}

// DefaultCriteria returns the unrestricted criteria for a collection: the
// "all" sport tab and price bounds spanning every loaded request.
func DefaultCriteria(items []request.PlayRequest) Criteria {
	return Criteria{
		ActiveSportTab: SportTabAll,
		Price:          NewPriceRange(0, MaxCourtPrice(items)),
	}
}

// MaxCourtPrice is the highest court price across the loaded collection, or
// 0 when the collection is empty. Price bounds derived from it are always
// well-defined, so resetting filters against an empty list cannot produce an
// invalid range.
func MaxCourtPrice(items []request.PlayRequest) float64 {
	max := 0.0
	for _, item := range items {
		if item.CourtPrice > max {
			max = item.CourtPrice
		}
	}
	return max
}

// SportTabs lists the distinct sport names present in the collection,
// lowercased and sorted. The dashboard derives its tab row from this.
func SportTabs(items []request.PlayRequest) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.ToLower(item.SportName())
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Locations lists the distinct locations present in the collection, in first
// appearance order.
func Locations(items []request.PlayRequest) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Location]; ok {
			continue
		}
		seen[item.Location] = struct{}{}
		out = append(out, item.Location)
	}
	return out
}
