package service

import (
	"context"
	"log/slog"

	"user-microservice/internal/api/models"
	"user-microservice/internal/api/repository"
)

// StatusService reports whether the backing store is reachable.
type StatusService interface {
	Check(ctx context.Context) models.AppStatus
}

type statusService struct {
	userRepo repository.UserRepository
}

// NewStatusService creates a new StatusService.
func NewStatusService(userRepo repository.UserRepository) StatusService {
	return &statusService{userRepo: userRepo}
}

// Check probes the database with a trivial round trip. A failed probe is
// reported as an unavailable database, never as an error.
func (s *statusService) Check(ctx context.Context) models.AppStatus {
	if err := s.userRepo.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "database probe failed", "error", err)
		return models.AppStatus{Database: false}
	}
	return models.AppStatus{Database: true}
}
