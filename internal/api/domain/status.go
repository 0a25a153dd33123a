package domain

// Application status values. The set is closed: storage and handlers reject
// anything outside it.
const (
	StatusApplied    = "Applied"
	StatusOnlineTest = "Online Test"
	StatusInterview  = "Interview"
	StatusOffer      = "Offer"
	StatusRejected   = "Rejected"
)

// DefaultStatus is applied when a new record carries no status.
const DefaultStatus = StatusApplied

// AllStatuses lists every valid status in lifecycle order.
var AllStatuses = []string{
	StatusApplied,
	StatusOnlineTest,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// ValidStatus reports whether s is one of the five application statuses.
func ValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
