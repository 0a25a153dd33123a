package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/applytrack/applytrack-be/internal/api/domain"
	"github.com/applytrack/applytrack-be/internal/api/dto"
	"github.com/applytrack/applytrack-be/internal/api/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// appliedDateLayout is the date format the form sends (input type=date)
const appliedDateLayout = "2006-01-02"

// parseAppliedDate accepts a plain date or a full RFC3339 timestamp
func parseAppliedDate(value string) (time.Time, error) {
	if t, err := time.Parse(appliedDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func toJobDTO(job model.JobApplication) dto.JobDTO {
	return dto.JobDTO{
		JobID:       job.JobID,
		OwnerEmail:  job.OwnerEmail,
		Company:     job.Company,
		Role:        job.Role,
		Status:      job.Status,
		AppliedDate: job.AppliedDate.Format(appliedDateLayout),
		Notes:       job.Notes,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   job.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateJob handles POST /api/v1/jobs
// Records a new job application for the owner
func (h *JobHandler) CreateJob(c *gin.Context) {
	h.logger.Info("CreateJob called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid create job request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "owner_email, company, role and applied_date are required",
		})
		return
	}

	status := req.Status
	if status == "" {
		status = domain.DefaultStatus
	}
	if !domain.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "Invalid application status",
		})
		return
	}

	appliedDate, err := parseAppliedDate(req.AppliedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "applied_date must be a YYYY-MM-DD date",
		})
		return
	}

	now := time.Now()
	job := model.JobApplication{
		JobID:       uuid.New().String(),
		OwnerEmail:  req.OwnerEmail,
		Company:     req.Company,
		Role:        req.Role,
		Status:      status,
		AppliedDate: appliedDate,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.jobs.CreateJob(c.Request.Context(), &job); err != nil {
		h.logger.Error("Failed to create job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":  true,
		"job": toJobDTO(job),
	})
}

// ListJobs handles GET /api/v1/jobs?email=...
// Returns every application for the owner, newest first
func (h *JobHandler) ListJobs(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "email query param required",
		})
		return
	}

	h.logger.Info("ListJobs called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("owner_email", email),
	)

	jobs, err := h.jobs.ListJobsByOwner(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("Failed to list jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	jobResponse := make([]dto.JobDTO, len(jobs))
	for i, job := range jobs {
		jobResponse[i] = toJobDTO(job)
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{
		OK:   true,
		Jobs: jobResponse,
	})
}

// UpdateJob handles PUT /api/v1/jobs/:job_id
// Applies a partial update: only fields present in the body are written
func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID := c.Param("job_id")

	h.logger.Info("UpdateJob called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("job_id", jobID),
	)

	if _, err := uuid.Parse(jobID); err != nil {
		h.logger.Error("Invalid job_id format", slog.String("job_id", jobID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "job_id must be a valid UUID",
		})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid update job request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "Invalid request body",
		})
		return
	}

	upd := domain.JobUpdate{
		Company: req.Company,
		Role:    req.Role,
		Status:  req.Status,
		Notes:   req.Notes,
	}

	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "Invalid application status",
		})
		return
	}

	if req.AppliedDate != nil {
		appliedDate, err := parseAppliedDate(*req.AppliedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":      false,
				"message": "applied_date must be a YYYY-MM-DD date",
			})
			return
		}
		upd.AppliedDate = &appliedDate
	}

	job, err := h.jobs.UpdateJob(c.Request.Context(), jobID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"ok":      false,
				"message": "Job not found",
			})
			return
		}

		h.logger.Error("Failed to update job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":  true,
		"job": toJobDTO(*job),
	})
}

// DeleteJob handles DELETE /api/v1/jobs/:job_id
// Permanently removes a job application
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID := c.Param("job_id")

	h.logger.Info("DeleteJob called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("job_id", jobID),
	)

	if _, err := uuid.Parse(jobID); err != nil {
		h.logger.Error("Invalid job_id format", slog.String("job_id", jobID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "job_id must be a valid UUID",
		})
		return
	}

	if err := h.jobs.DeleteJob(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"ok":      false,
				"message": "Job not found",
			})
			return
		}

		h.logger.Error("Failed to delete job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"message":    "Job deleted",
		"deleted_id": jobID,
	})
}

// GetStats handles GET /api/v1/jobs/stats?email=...
// Recomputes per-status counts for the owner on every call
func (h *JobHandler) GetStats(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "email query param required",
		})
		return
	}

	h.logger.Info("GetStats called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("owner_email", email),
	)

	counts, err := h.jobs.CountJobsByStatus(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("Failed to compute stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"stats": domain.StatsFromCounts(counts),
	})
}
