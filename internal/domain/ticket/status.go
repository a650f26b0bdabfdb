package ticket

// ===============================
// Work Ticket Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is one of the three known statuses.
func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus is the status assigned on creation. Tickets record work that
// has already been performed, so they start out completed; "pending" and
// "cancelled" stay reachable through updates, and transitions between the
// three states are unrestricted.
func InitialStatus() Status {
	return StatusCompleted
}
