package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/api/middleware"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// ctxPrincipal extracts the Principal attached by the authorization gate.
// Handlers behind the gate must always find one; its absence means the
// route was wired without the guard, which is a programming error, so the
// request is rejected rather than served unauthenticated.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || principal == nil {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return *principal, nil
}
