package http

import (
	"condopay-srv/internal/apartment"
	pkgLog "condopay-srv/pkg/log"
)

type Handler struct {
	uc apartment.UseCase
	l  pkgLog.Logger
}

func New(l pkgLog.Logger, uc apartment.UseCase) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
