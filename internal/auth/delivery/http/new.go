package http

import (
	"condopay-srv/internal/auth"
	pkgLog "condopay-srv/pkg/log"
)

type Handler struct {
	uc auth.UseCase
	l  pkgLog.Logger
}

func New(l pkgLog.Logger, uc auth.UseCase) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
