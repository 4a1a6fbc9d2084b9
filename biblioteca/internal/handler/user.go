package handler

import (
	"net/http"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListUsers(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	users, err := h.librarySvc.ListUsers(c.Request().Context(), model.UserFilter{Name: c.QueryParam("nombre")}, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := ownerOrLibrarian(c, id); err != nil {
		return err
	}
	user, err := h.librarySvc.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) GetUserByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	user, err := h.librarySvc.GetUserByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.librarySvc.Me(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUser
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.librarySvc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser lets users edit themselves; only librarians may edit others or touch roles.
func (h *Handler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := ownerOrLibrarian(c, id); err != nil {
		return err
	}
	var req model.UpdateUser
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Role != nil && !auth.IsLibrarian(ctx) {
		return echo.NewHTTPError(http.StatusForbidden, "only librarians may change roles")
	}
	user, err := h.librarySvc.UpdateUser(ctx, id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ChangeRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	role := c.QueryParam("nuevoRol")
	if role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "nuevoRol is required")
	}
	user, err := h.librarySvc.ChangeRole(c.Request().Context(), id, model.Role(role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
