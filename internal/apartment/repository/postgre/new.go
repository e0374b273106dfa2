package postgre

import (
	"database/sql"

	"condopay-srv/internal/apartment/repository"
	pkgLog "condopay-srv/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
