package handler

import (
	"net/http"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListRutinasEjercicio(c echo.Context) error {
	rutinas, err := h.cofiraSvc.ListRutinasEjercicio(c.Request().Context())
	return respond(c, http.StatusOK, rutinas, err)
}

func (h *Handler) GetRutinaEjercicio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rutina, err := h.cofiraSvc.GetRutinaEjercicio(c.Request().Context(), id)
	return respond(c, http.StatusOK, rutina, err)
}

func (h *Handler) CreateRutinaEjercicio(c echo.Context) error {
	var req model.CreateRutinaEjercicio
	if err := bind(c, &req); err != nil {
		return err
	}
	rutina, err := h.cofiraSvc.CreateRutinaEjercicio(c.Request().Context(), req)
	return respond(c, http.StatusCreated, rutina, err)
}

func (h *Handler) DeleteRutinaEjercicio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cofiraSvc.DeleteRutinaEjercicio(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListRutinasAlimentacion(c echo.Context) error {
	rutinas, err := h.cofiraSvc.ListRutinasAlimentacion(c.Request().Context())
	return respond(c, http.StatusOK, rutinas, err)
}

func (h *Handler) GetRutinaAlimentacion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rutina, err := h.cofiraSvc.GetRutinaAlimentacion(c.Request().Context(), id)
	return respond(c, http.StatusOK, rutina, err)
}

func (h *Handler) CreateRutinaAlimentacion(c echo.Context) error {
	var req model.CreateRutinaAlimentacion
	if err := bind(c, &req); err != nil {
		return err
	}
	rutina, err := h.cofiraSvc.CreateRutinaAlimentacion(c.Request().Context(), req)
	return respond(c, http.StatusCreated, rutina, err)
}

func (h *Handler) DeleteRutinaAlimentacion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cofiraSvc.DeleteRutinaAlimentacion(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
