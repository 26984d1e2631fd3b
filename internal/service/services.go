package service

import (
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.UserRepository == nil {
		return nil, ErrNoUserRepository
	}

	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserService(storages.UserRepository, validators.NewUserValidator(), logger),
		AppInfoService: appInfoService,
	}, nil
}
