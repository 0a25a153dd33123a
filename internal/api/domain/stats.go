package domain

// Stats holds per-status application counts for one owner. Applied is not
// broken out separately: it is Total minus the other four.
type Stats struct {
	Total     int `json:"total"`
	Test      int `json:"test"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Reject    int `json:"reject"`
}

// StatsFromCounts folds per-status counts (as produced by a grouped count
// query) into a Stats value. Unknown statuses still contribute to Total.
func StatsFromCounts(counts map[string]int) Stats {
	var s Stats
	for status, n := range counts {
		s.Total += n
		switch status {
		case StatusOnlineTest:
			s.Test += n
		case StatusInterview:
			s.Interview += n
		case StatusOffer:
			s.Offer += n
		case StatusRejected:
			s.Reject += n
		}
	}
	return s
}
