package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, actor domain.Actor, userID int32) (*domain.User, error) {
	if !actor.CanActFor(userID) {
		return nil, domain.ErrForbidden
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, actor domain.Actor, userID int32, username, name, lastName, email string) (*domain.User, error) {
	if !actor.CanActFor(userID) {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Name = name
	user.LastName = lastName
	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
