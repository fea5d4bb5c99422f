package domain

type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// PollState is owned by a single poller and is never shared.
type PollState struct {
	LastKnownStatus Status
	// FromDate is passed as from_date, in unix seconds.
	FromDate int64
}
