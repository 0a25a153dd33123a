package handler

import (
	"context"
	"log/slog"

	"github.com/applytrack/applytrack-be/internal/api/domain"
	"github.com/applytrack/applytrack-be/internal/api/model"
)

// UserStore is the credential persistence surface used by auth handlers
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// JobStore is the job-application persistence surface used by job handlers
type JobStore interface {
	CreateJob(ctx context.Context, job *model.JobApplication) error
	ListJobsByOwner(ctx context.Context, ownerEmail string) ([]model.JobApplication, error)
	UpdateJob(ctx context.Context, jobID string, upd domain.JobUpdate) (*model.JobApplication, error)
	DeleteJob(ctx context.Context, jobID string) error
	CountJobsByStatus(ctx context.Context, ownerEmail string) (map[string]int, error)
}

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger     *slog.Logger
	Users      UserStore
	Jobs       JobStore
	Health     HealthChecker
	BcryptCost int
}

// AuthHandler handles signup and login requests
type AuthHandler struct {
	logger     *slog.Logger
	users      UserStore
	bcryptCost int
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(deps *Dependencies) *AuthHandler {
	return &AuthHandler{
		logger:     deps.Logger,
		users:      deps.Users,
		bcryptCost: deps.BcryptCost,
	}
}

// JobHandler handles job-application HTTP requests
type JobHandler struct {
	logger *slog.Logger
	jobs   JobStore
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
	}
}
