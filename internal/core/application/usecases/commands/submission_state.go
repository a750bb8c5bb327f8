package commands

// SubmissionState is a step of the order submission state machine:
//
//	Idle → Validating → {Rejected | Persisting} → {PersistenceFailed | Dispatching} → {Completed | PartiallyCompleted}
//
// Duplicate is reached from Validating (or Persisting, when a concurrent
// submission won the race) when the idempotency key was already used.
type SubmissionState int

const (
	Idle SubmissionState = iota
	Validating
	Rejected
	Persisting
	PersistenceFailed
	Dispatching
	Completed
	PartiallyCompleted
	Duplicate
)

func getSubmissionStateStrings() map[SubmissionState]string {
	return map[SubmissionState]string{
		Idle:               "Idle",
		Validating:         "Validating",
		Rejected:           "Rejected",
		Persisting:         "Persisting",
		PersistenceFailed:  "PersistenceFailed",
		Dispatching:        "Dispatching",
		Completed:          "Completed",
		PartiallyCompleted: "PartiallyCompleted",
		Duplicate:          "Duplicate",
	}
}

func (s SubmissionState) String() string {
	if str, ok := getSubmissionStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition can follow.
func (s SubmissionState) IsTerminal() bool {
	switch s {
	case Rejected, PersistenceFailed, Completed, PartiallyCompleted, Duplicate:
		return true
	default:
		return false
	}
}

// IsAccepted reports whether the order is recorded and counts as placed.
func (s SubmissionState) IsAccepted() bool {
	return s == Completed || s == PartiallyCompleted || s == Duplicate
}
