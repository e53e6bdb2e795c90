package participant

// Status tracks one join attempt. Created as Pending when a user joins;
// moves to Confirmed or Cancelled only through host action.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

// Participant is a join-attempt record scoped to one play request.
type Participant struct {
	ID        int64  `json:"id"`
	RequestID int64  `json:"request_id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Status    Status `json:"status"`
}

func (p Participant) IsConfirmed() bool {
	return p.Status == StatusConfirmed
}
