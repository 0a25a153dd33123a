package dto

type CreateJobRequest struct {
	OwnerEmail  string `json:"owner_email" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Status      string `json:"status"`
	AppliedDate string `json:"applied_date" binding:"required"`
	Notes       string `json:"notes"`
}

// UpdateJobRequest uses pointer fields so an omitted key is distinguishable
// from an explicitly cleared one. Only non-nil fields are written.
type UpdateJobRequest struct {
	Company     *string `json:"company"`
	Role        *string `json:"role"`
	Status      *string `json:"status"`
	AppliedDate *string `json:"applied_date"`
	Notes       *string `json:"notes"`
}

type ListJobsResponse struct {
	OK   bool     `json:"ok"`
	Jobs []JobDTO `json:"jobs"`
}

type JobDTO struct {
	JobID       string `json:"job_id"`
	OwnerEmail  string `json:"owner_email"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	AppliedDate string `json:"applied_date"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
