package delivery

// Status is the lifecycle state of a delivery, derived from its recorded
// timestamps rather than stored as a column.
//
// Happy path:
//
//	Open ──> Withdrawn ──> Delivered ──> Removed
//	  │                        ▲
//	  └──────> Canceled ───────┘ (Removed is reachable from Canceled too)
//
// Canceled is reachable from Open (administrative cancel) and from Withdrawn
// (cancel via reported problem). Removed is reachable only from Canceled or
// Delivered.
type Status int

const (
	// Open means no lifecycle timestamp has been recorded yet.
	Open Status = iota

	// Withdrawn means the package was picked up but not yet delivered.
	Withdrawn

	// Delivered means the package reached the recipient.
	Delivered

	// Canceled means the delivery was canceled.
	Canceled

	// Removed means the delivery was soft-deleted after being closed.
	Removed
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case Open:
		return "Open"
	case Withdrawn:
		return "Withdrawn"
	case Delivered:
		return "Delivered"
	case Canceled:
		return "Canceled"
	case Removed:
		return "Removed"
	default:
		return "Unknown"
	}
}
