package usecase

import (
	"time"

	"condopay-srv/internal/apartment"
	"condopay-srv/internal/apartment/repository"
	"condopay-srv/internal/events"
	pkgLog "condopay-srv/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	publisher events.Publisher
	clock     func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, publisher events.Publisher) apartment.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		publisher: publisher,
		clock:     time.Now,
	}
}
