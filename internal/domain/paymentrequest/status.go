package paymentrequest

type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusPaid, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusPaid, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusSent
}

// CanTransitionTo is the full transition relation:
// pending → sent, pending → cancelled, sent → {paid, cancelled, expired}.
// Everything else is rejected, terminal states unconditionally so.
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case StatusPending:
		return target == StatusSent || target == StatusCancelled || target == StatusExpired
	case StatusSent:
		return target == StatusPaid || target == StatusCancelled || target == StatusExpired
	default:
		return false
	}
}

// SourcesFor lists the states a conditional update may transition from when
// writing target. The repository passes this set into the CAS predicate.
func SourcesFor(target Status) []Status {
	var sources []Status
	for _, s := range []Status{StatusPending, StatusSent} {
		if s.CanTransitionTo(target) {
			sources = append(sources, s)
		}
	}
	return sources
}

func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusSent}
}
