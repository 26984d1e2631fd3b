package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

type userService struct {
	repository store.UserRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewUserService(repository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repository.List(ctx), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return s.repository.Create(ctx, req.NameValue(), req.EmailValue()), nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	// existence is reported before validation problems
	if _, err := s.repository.Get(ctx, id); err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	updated, err := s.repository.Update(ctx, id, req.NameValue(), req.EmailValue())
	if err != nil {
		// deleted concurrently between the check and the update
		return models.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if !s.repository.Delete(ctx, id) {
		return fmt.Errorf("delete user %d: %w", id, store.ErrUserNotFound)
	}
	return nil
}
