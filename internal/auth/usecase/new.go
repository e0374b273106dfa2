package usecase

import (
	"condopay-srv/config"
	"condopay-srv/internal/apartment/repository"
	"condopay-srv/internal/auth"
	pkgLog "condopay-srv/pkg/log"
	"condopay-srv/pkg/scope"
)

type implUseCase struct {
	l       pkgLog.Logger
	cfg     config.AuthConfig
	jwtMgr  scope.Manager
	aptRepo repository.Repository
}

func New(l pkgLog.Logger, cfg config.AuthConfig, jwtMgr scope.Manager, aptRepo repository.Repository) auth.UseCase {
	return &implUseCase{
		l:       l,
		cfg:     cfg,
		jwtMgr:  jwtMgr,
		aptRepo: aptRepo,
	}
}
