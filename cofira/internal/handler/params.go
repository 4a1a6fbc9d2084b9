package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func pathInt64(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func pathID(c echo.Context) (int64, error) {
	return pathInt64(c, "id")
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	return c.Validate(req)
}

// ownerOrAdmin lets members reach only their own plan and goals.
func ownerOrAdmin(ctx context.Context, usuarioID int64) error {
	profile, err := auth.GetProfile(ctx)
	if err != nil {
		return err
	}
	if profile.UserID != usuarioID && !auth.HasRole(ctx, auth.RoleAdmin) {
		return echo.NewHTTPError(http.StatusForbidden, "access to this resource is not allowed")
	}
	return nil
}

func respond[T any](c echo.Context, code int, v T, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(code, v)
}
