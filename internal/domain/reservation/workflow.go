package reservation

// The workflow below is the single source of truth for reservation
// lifecycle legality. Handler surfaces differ only in authorization;
// they all funnel transitions through these guards.
//
//	pending ── approve ──> approved ── issue(all) ──> issued ── requestReturn ──> return_requested
//	   │                      │                          │                             │
//	   │                      │                          └──── return(all) ────┬───────┘
//	 reject                 cancel                                             ▼
//	   │                      │                                            completed
//	   ▼                      ▼
//	rejected              cancelled

var transitions = map[Status][]Status{
	StatusPending:         {StatusApproved, StatusRejected, StatusCancelled, StatusIssued},
	StatusApproved:        {StatusIssued, StatusCancelled},
	StatusIssued:          {StatusReturnRequested, StatusCompleted},
	StatusReturnRequested: {StatusCompleted},
	StatusCompleted:       {},
	StatusRejected:        {},
	StatusCancelled:       {},
}

// CanTransition reports whether the aggregate may move from one status to
// another. pending -> issued is included for the scan convenience path,
// which approves and issues in a single transaction.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// deriveStatus recomputes the aggregate status implied by the item set.
// The parent advances to issued only when every line is issued, and to
// completed only when every line is closed (returned, damaged, or lost).
// Anything in between leaves the current status untouched.
func deriveStatus(current Status, items []*Item) Status {
	if len(items) == 0 {
		return current
	}

	allIssued := true
	allClosed := true
	for _, it := range items {
		if it.status != ItemStatusIssued {
			allIssued = false
		}
		if !it.status.IsClosed() {
			allClosed = false
		}
	}

	switch {
	case allClosed && CanTransition(current, StatusCompleted):
		return StatusCompleted
	case allIssued && CanTransition(current, StatusIssued):
		return StatusIssued
	default:
		return current
	}
}
