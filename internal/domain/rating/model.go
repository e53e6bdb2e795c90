package rating

import "time"

const (
	Min = 1
	Max = 5
)

// Rating is feedback one participant leaves another after a completed
// session.
type Rating struct {
	ID        int64     `json:"id"`
	GivenBy   int64     `json:"given_by"`
	GivenTo   int64     `json:"given_to"`
	RequestID int64     `json:"request_id"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CompleteRating is a rating joined with the giver's name and the request's
// sport, as returned by the user-ratings listing.
type CompleteRating struct {
	ID          int64             `json:"id"`
	GivenBy     int64             `json:"given_by"`
	GivenByName string            `json:"name"`
	GivenTo     int64             `json:"given_to"`
	RequestID   int64             `json:"request_id"`
	Sport       map[string]string `json:"sport"`
	Rating      int               `json:"rating"`
	Feedback    string            `json:"feedback,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func InRange(value int) bool {
	return value >= Min && value <= Max
}
