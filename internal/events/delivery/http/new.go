package http

import (
	"condopay-srv/internal/events"
	pkgLog "condopay-srv/pkg/log"
)

type Handler struct {
	uc events.UseCase
	l  pkgLog.Logger
}

func New(l pkgLog.Logger, uc events.UseCase) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
