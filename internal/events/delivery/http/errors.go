package http

import (
	"net/http"

	"condopay-srv/internal/events"
	pkgErrors "condopay-srv/pkg/errors"
	"condopay-srv/pkg/response"
)

var subscribeErrorMapping = response.ErrorMapping{
	events.ErrInvalidRole:       pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid subscription role"),
	events.ErrMissingIdentifier: pkgErrors.NewHTTPError(http.StatusBadRequest, "Resident identifier is required"),
}
