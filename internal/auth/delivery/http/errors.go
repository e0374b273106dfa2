package http

import (
	"net/http"

	"condopay-srv/internal/auth"
	pkgErrors "condopay-srv/pkg/errors"
	"condopay-srv/pkg/response"
)

var errorMapping = response.ErrorMapping{
	auth.ErrInvalidCredentials: pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials"),
	auth.ErrFieldRequired:      pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing login fields"),
}
