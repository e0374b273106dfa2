package usecase

import (
	"condopay-srv/internal/events"
	pkgLog "condopay-srv/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	registry *Registry
}

// New creates the events UseCase around an injected Registry.
func New(l pkgLog.Logger, registry *Registry) events.UseCase {
	return &implUseCase{
		l:        l,
		registry: registry,
	}
}
