package reservation

type Status string

const (
	StatusPending         Status = "pending"
	StatusApproved        Status = "approved"
	StatusIssued          Status = "issued"
	StatusReturnRequested Status = "return_requested"
	StatusCompleted       Status = "completed"
	StatusRejected        Status = "rejected"
	StatusCancelled       Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusIssued, StatusReturnRequested,
		StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation still holds equipment capacity.
// Availability checks count only active reservations as conflicts.
func (s Status) IsActive() bool {
	return s != StatusRejected && s != StatusCancelled
}

type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusIssued   ItemStatus = "issued"
	ItemStatusReturned ItemStatus = "returned"
	ItemStatusDamaged  ItemStatus = "damaged"
	ItemStatusLost     ItemStatus = "lost"
)

func (s ItemStatus) String() string {
	return string(s)
}

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusIssued, ItemStatusReturned, ItemStatusDamaged, ItemStatusLost:
		return true
	default:
		return false
	}
}

// IsClosed reports whether the item line is settled: returned, or written
// off as damaged/lost. Closed items count toward the all-returned rule.
func (s ItemStatus) IsClosed() bool {
	switch s {
	case ItemStatusReturned, ItemStatusDamaged, ItemStatusLost:
		return true
	default:
		return false
	}
}
