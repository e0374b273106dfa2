package http

import (
	"net/http"

	"condopay-srv/internal/apartment"
	pkgErrors "condopay-srv/pkg/errors"
	"condopay-srv/pkg/response"
)

var errorMapping = response.ErrorMapping{
	apartment.ErrApartmentNotFound: pkgErrors.NewNotFoundHTTPError("Apartment not found"),
	apartment.ErrApartmentExists:   pkgErrors.NewHTTPError(http.StatusConflict, "Apartment number already registered"),
	apartment.ErrFieldRequired:     pkgErrors.NewHTTPError(http.StatusBadRequest, "Number and floor are required"),
	apartment.ErrInvalidAmount:     pkgErrors.NewHTTPError(http.StatusBadRequest, "Amount must be positive"),
	apartment.ErrAlreadyPaid:       pkgErrors.NewHTTPError(http.StatusConflict, "Bill is already settled"),
	apartment.ErrNotAllowed:        pkgErrors.NewForbiddenHTTPError(),
}
