package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// ListUsers returns every user, soft-deleted ones included, for the admin
// console.
func (s *adminService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return s.userRepo.List(ctx)
}

// SoftDeleteUser marks the user deleted without removing the row; their
// booking history stays intact.
func (s *adminService) SoftDeleteUser(ctx context.Context, actor domain.Actor, userID int32) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}
	if err := s.userRepo.SoftDelete(ctx, userID); err != nil {
		return err
	}
	logger.Info("user soft-deleted by admin", "user_id", userID, "admin_id", actor.ID)
	return nil
}
