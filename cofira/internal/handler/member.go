package handler

import (
	"net/http"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListPlanes(c echo.Context) error {
	planes, err := h.cofiraSvc.ListPlanes(c.Request().Context())
	return respond(c, http.StatusOK, planes, err)
}

func (h *Handler) GetPlan(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}
	plan, err := h.cofiraSvc.GetPlan(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOrAdmin(ctx, plan.UsuarioID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *Handler) GetPlanByUsuario(c echo.Context) error {
	ctx := c.Request().Context()
	usuarioID, err := pathInt64(c, "usuarioId")
	if err != nil {
		return err
	}
	if err := ownerOrAdmin(ctx, usuarioID); err != nil {
		return err
	}
	plan, err := h.cofiraSvc.GetPlanByUsuario(ctx, usuarioID)
	return respond(c, http.StatusOK, plan, err)
}

func (h *Handler) CreatePlan(c echo.Context) error {
	var req model.CreatePlan
	if err := bind(c, &req); err != nil {
		return err
	}
	plan, err := h.cofiraSvc.CreatePlan(c.Request().Context(), req)
	return respond(c, http.StatusCreated, plan, err)
}

func (h *Handler) UpdatePlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdatePlan
	if err := bind(c, &req); err != nil {
		return err
	}
	plan, err := h.cofiraSvc.UpdatePlan(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, plan, err)
}

func (h *Handler) DeletePlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cofiraSvc.DeletePlan(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListObjetivos(c echo.Context) error {
	objetivos, err := h.cofiraSvc.ListObjetivos(c.Request().Context())
	return respond(c, http.StatusOK, objetivos, err)
}

func (h *Handler) GetObjetivos(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}
	objetivos, err := h.cofiraSvc.GetObjetivos(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOrAdmin(ctx, objetivos.UsuarioID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, objetivos)
}

func (h *Handler) GetObjetivosByUsuario(c echo.Context) error {
	ctx := c.Request().Context()
	usuarioID, err := pathInt64(c, "usuarioId")
	if err != nil {
		return err
	}
	if err := ownerOrAdmin(ctx, usuarioID); err != nil {
		return err
	}
	objetivos, err := h.cofiraSvc.GetObjetivosByUsuario(ctx, usuarioID)
	return respond(c, http.StatusOK, objetivos, err)
}

func (h *Handler) CreateObjetivos(c echo.Context) error {
	ctx := c.Request().Context()
	var req model.CreateObjetivos
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := ownerOrAdmin(ctx, req.UsuarioID); err != nil {
		return err
	}
	objetivos, err := h.cofiraSvc.CreateObjetivos(ctx, req)
	return respond(c, http.StatusCreated, objetivos, err)
}

func (h *Handler) UpdateObjetivos(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateObjetivos
	if err := bind(c, &req); err != nil {
		return err
	}
	current, err := h.cofiraSvc.GetObjetivos(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOrAdmin(ctx, current.UsuarioID); err != nil {
		return err
	}
	objetivos, err := h.cofiraSvc.UpdateObjetivos(ctx, id, req)
	return respond(c, http.StatusOK, objetivos, err)
}

func (h *Handler) DeleteObjetivos(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}
	current, err := h.cofiraSvc.GetObjetivos(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOrAdmin(ctx, current.UsuarioID); err != nil {
		return err
	}
	if err := h.cofiraSvc.DeleteObjetivos(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
