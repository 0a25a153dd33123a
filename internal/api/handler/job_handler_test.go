package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/applytrack/applytrack-be/internal/api/domain"
	"github.com/applytrack/applytrack-be/internal/api/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockJobStore keeps jobs newest-first, mirroring the storage ordering
type mockJobStore struct {
	jobs []model.JobApplication
	err  error
}

func (m *mockJobStore) CreateJob(ctx context.Context, job *model.JobApplication) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append([]model.JobApplication{*job}, m.jobs...)
	return nil
}

func (m *mockJobStore) ListJobsByOwner(ctx context.Context, ownerEmail string) ([]model.JobApplication, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []model.JobApplication{}
	for _, job := range m.jobs {
		if job.OwnerEmail == ownerEmail {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *mockJobStore) UpdateJob(ctx context.Context, jobID string, upd domain.JobUpdate) (*model.JobApplication, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.jobs {
		if m.jobs[i].JobID != jobID {
			continue
		}
		if upd.Company != nil {
			m.jobs[i].Company = *upd.Company
		}
		if upd.Role != nil {
			m.jobs[i].Role = *upd.Role
		}
		if upd.Status != nil {
			m.jobs[i].Status = *upd.Status
		}
		if upd.AppliedDate != nil {
			m.jobs[i].AppliedDate = *upd.AppliedDate
		}
		if upd.Notes != nil {
			m.jobs[i].Notes = *upd.Notes
		}
		job := m.jobs[i]
		return &job, nil
	}
	return nil, domain.ErrJobNotFound
}

func (m *mockJobStore) DeleteJob(ctx context.Context, jobID string) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.jobs {
		if m.jobs[i].JobID == jobID {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func (m *mockJobStore) CountJobsByStatus(ctx context.Context, ownerEmail string) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := map[string]int{}
	for _, job := range m.jobs {
		if job.OwnerEmail == ownerEmail {
			counts[job.Status]++
		}
	}
	return counts, nil
}

func newJobTestRouter(jobs JobStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewJobHandler(&Dependencies{
		Logger: testLogger(),
		Jobs:   jobs,
	})

	r := gin.New()
	r.POST("/api/v1/jobs", h.CreateJob)
	r.GET("/api/v1/jobs", h.ListJobs)
	r.GET("/api/v1/jobs/stats", h.GetStats)
	r.PUT("/api/v1/jobs/:job_id", h.UpdateJob)
	r.DELETE("/api/v1/jobs/:job_id", h.DeleteJob)
	return r
}

func createJob(t *testing.T, r *gin.Engine, fields gin.H) map[string]interface{} {
	t.Helper()

	req := gin.H{
		"owner_email":  "user@x.com",
		"company":      "Acme",
		"role":         "Backend Engineer",
		"applied_date": "2025-03-01",
	}
	for k, v := range fields {
		req[k] = v
	}

	w := performJSON(t, r, http.MethodPost, "/api/v1/jobs", req)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, true, body["ok"])
	return body["job"].(map[string]interface{})
}

func TestJobHandler_CreateJob(t *testing.T) {
	t.Run("defaults status to Applied", func(t *testing.T) {
		store := &mockJobStore{}
		r := newJobTestRouter(store)

		job := createJob(t, r, nil)

		assert.Equal(t, domain.StatusApplied, job["status"])
		assert.Equal(t, "2025-03-01", job["applied_date"])
		assert.Equal(t, "", job["notes"])
		assert.NotEmpty(t, job["job_id"])

		require.Len(t, store.jobs, 1)
		assert.Equal(t, domain.StatusApplied, store.jobs[0].Status)
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		job := createJob(t, r, gin.H{"status": domain.StatusOnlineTest})

		assert.Equal(t, domain.StatusOnlineTest, job["status"])
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
			"owner_email":  "user@x.com",
			"company":      "Acme",
			"role":         "Backend Engineer",
			"applied_date": "2025-03-01",
			"status":       "Ghosted",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid application status", decodeBody(t, w)["message"])
	})

	t.Run("rejects a malformed applied_date", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
			"owner_email":  "user@x.com",
			"company":      "Acme",
			"role":         "Backend Engineer",
			"applied_date": "March 1st",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
			"owner_email": "user@x.com",
			"company":     "Acme",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["ok"])
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{err: errors.New("connection refused")})

		w := performJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
			"owner_email":  "user@x.com",
			"company":      "Acme",
			"role":         "Backend Engineer",
			"applied_date": "2025-03-01",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error", decodeBody(t, w)["message"])
	})
}

func TestJobHandler_ListJobs(t *testing.T) {
	t.Run("requires the email query param", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodGet, "/api/v1/jobs", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email query param required", decodeBody(t, w)["message"])
	})

	t.Run("returns the owner's jobs newest first", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		createJob(t, r, gin.H{"company": "First"})
		createJob(t, r, gin.H{"company": "Second"})
		createJob(t, r, gin.H{"company": "Elsewhere", "owner_email": "other@x.com"})

		w := performJSON(t, r, http.MethodGet, "/api/v1/jobs?email=user@x.com", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		jobs := body["jobs"].([]interface{})
		require.Len(t, jobs, 2)

		assert.Equal(t, "Second", jobs[0].(map[string]interface{})["company"])
		assert.Equal(t, "First", jobs[1].(map[string]interface{})["company"])
	})

	t.Run("owner with no jobs gets an empty list", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodGet, "/api/v1/jobs?email=user@x.com", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Empty(t, body["jobs"])
	})
}

func TestJobHandler_UpdateJob(t *testing.T) {
	t.Run("partial update changes only the supplied field", func(t *testing.T) {
		store := &mockJobStore{}
		r := newJobTestRouter(store)

		created := createJob(t, r, gin.H{"notes": "referral from Dana"})
		jobID := created["job_id"].(string)

		w := performJSON(t, r, http.MethodPut, "/api/v1/jobs/"+jobID, gin.H{
			"status": domain.StatusOffer,
		})

		require.Equal(t, http.StatusOK, w.Code)
		job := decodeBody(t, w)["job"].(map[string]interface{})

		assert.Equal(t, domain.StatusOffer, job["status"])
		assert.Equal(t, "Acme", job["company"])
		assert.Equal(t, "Backend Engineer", job["role"])
		assert.Equal(t, "2025-03-01", job["applied_date"])
		assert.Equal(t, "referral from Dana", job["notes"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodPut, "/api/v1/jobs/6e8bc430-9c3a-11d9-9669-0800200c9a66", gin.H{
			"status": domain.StatusOffer,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Job not found", decodeBody(t, w)["message"])
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodPut, "/api/v1/jobs/not-a-uuid", gin.H{
			"status": domain.StatusOffer,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})
		created := createJob(t, r, nil)

		w := performJSON(t, r, http.MethodPut, "/api/v1/jobs/"+created["job_id"].(string), gin.H{
			"status": "Ghosted",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJobHandler_DeleteJob(t *testing.T) {
	t.Run("deletes and echoes the id", func(t *testing.T) {
		store := &mockJobStore{}
		r := newJobTestRouter(store)

		created := createJob(t, r, nil)
		jobID := created["job_id"].(string)

		w := performJSON(t, r, http.MethodDelete, "/api/v1/jobs/"+jobID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "Job deleted", body["message"])
		assert.Equal(t, jobID, body["deleted_id"])
		assert.Empty(t, store.jobs)
	})

	t.Run("unknown id returns 404 and leaves the store unchanged", func(t *testing.T) {
		store := &mockJobStore{}
		r := newJobTestRouter(store)
		createJob(t, r, nil)

		w := performJSON(t, r, http.MethodDelete, "/api/v1/jobs/6e8bc430-9c3a-11d9-9669-0800200c9a66", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Len(t, store.jobs, 1)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodDelete, "/api/v1/jobs/42", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJobHandler_GetStats(t *testing.T) {
	t.Run("requires the email query param", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodGet, "/api/v1/jobs/stats", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("counts per status for the owner", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		createJob(t, r, gin.H{"company": "A", "status": domain.StatusInterview})
		createJob(t, r, gin.H{"company": "B", "status": domain.StatusOffer})
		createJob(t, r, gin.H{"company": "C", "status": domain.StatusApplied})

		w := performJSON(t, r, http.MethodGet, "/api/v1/jobs/stats?email=user@x.com", nil)

		require.Equal(t, http.StatusOK, w.Code)
		stats := decodeBody(t, w)["stats"].(map[string]interface{})

		assert.Equal(t, float64(3), stats["total"])
		assert.Equal(t, float64(0), stats["test"])
		assert.Equal(t, float64(1), stats["interview"])
		assert.Equal(t, float64(1), stats["offer"])
		assert.Equal(t, float64(0), stats["reject"])
	})

	t.Run("total matches the list length", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		createJob(t, r, gin.H{"company": "A"})
		createJob(t, r, gin.H{"company": "B", "status": domain.StatusRejected})

		list := performJSON(t, r, http.MethodGet, "/api/v1/jobs?email=user@x.com", nil)
		stats := performJSON(t, r, http.MethodGet, "/api/v1/jobs/stats?email=user@x.com", nil)

		jobs := decodeBody(t, list)["jobs"].([]interface{})
		s := decodeBody(t, stats)["stats"].(map[string]interface{})

		assert.Equal(t, float64(len(jobs)), s["total"])
	})

	t.Run("owner with no jobs gets all-zero stats", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{})

		w := performJSON(t, r, http.MethodGet, "/api/v1/jobs/stats?email=empty@x.com", nil)

		require.Equal(t, http.StatusOK, w.Code)
		stats := decodeBody(t, w)["stats"].(map[string]interface{})

		for _, field := range []string{"total", "test", "interview", "offer", "reject"} {
			assert.Equal(t, float64(0), stats[field], field)
		}
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		r := newJobTestRouter(&mockJobStore{err: errors.New("connection refused")})

		w := performJSON(t, r, http.MethodGet, "/api/v1/jobs/stats?email=user@x.com", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
