package domain

import "time"

// JobUpdate carries a partial update for a job application. A nil field means
// "not supplied, keep the stored value"; a non-nil field overwrites it. This
// keeps "field not sent" distinguishable from "field cleared" (an empty
// string in Notes is an explicit clear).
type JobUpdate struct {
	Company     *string
	Role        *string
	Status      *string
	AppliedDate *time.Time
	Notes       *string
}

// Empty reports whether the update would change nothing.
func (u JobUpdate) Empty() bool {
	return u.Company == nil && u.Role == nil && u.Status == nil &&
		u.AppliedDate == nil && u.Notes == nil
}
