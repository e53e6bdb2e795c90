package request

import (
	"fmt"
	"strings"
	"time"
)

// Status is the server-owned lifecycle of a play request. The client only
// reads it; it changes locally only by re-fetching after a mutation.
type Status string

const (
	StatusOpen      Status = "Open"
	StatusAccepted  Status = "Accepted"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// PlayRequest is a hostable, joinable game slot.
type PlayRequest struct {
	ID         int64             `json:"id"`
	HostUserID int64             `json:"user_id"`
	HostName   string            `json:"name"`
	HostEmail  string            `json:"email"`
	HostPhone  string            `json:"phone_number"`
	Sport      map[string]string `json:"sport"`
	Location   string            `json:"location"`
	Scheduled  time.Time         `json:"time"`
	CourtPrice float64           `json:"court_price"`
	Status     Status            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// SportName returns the sport key of the request. Current usage carries
// exactly one entry; when more are present the lexicographically smallest
// key wins so the answer is deterministic.
func (r PlayRequest) SportName() string {
	name := ""
	for key := range r.Sport {
		if name == "" || key < name {
			name = key
		}
	}
	return name
}

// SportLevel returns the proficiency level recorded for the request's sport,
// or "" when none is set.
func (r PlayRequest) SportLevel() string {
	if len(r.Sport) == 0 {
		return ""
	}
	return r.Sport[r.SportName()]
}

func (r PlayRequest) IsOpen() bool {
	return r.Status == StatusOpen
}

func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open":
		return StatusOpen
	case "accepted":
		return StatusAccepted
	case "cancelled":
		return StatusCancelled
	case "completed":
		return StatusCompleted
	default:
		return Status(strings.TrimSpace(raw))
	}
}

func (r PlayRequest) ValidateBasic() error {
	if r.ID <= 0 {
		return fmt.Errorf("request id is required")
	}
	if r.HostUserID <= 0 {
		return fmt.Errorf("host user id is required")
	}
	if len(r.Sport) == 0 {
		return fmt.Errorf("sport is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return fmt.Errorf("location is required")
	}
	if r.CourtPrice < 0 {
		return fmt.Errorf("court price cannot be negative")
	}
	return nil
}
