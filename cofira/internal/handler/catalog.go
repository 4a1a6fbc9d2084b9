package handler

import (
	"net/http"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListAlimentos(c echo.Context) error {
	alimentos, err := h.cofiraSvc.ListAlimentos(c.Request().Context())
	return respond(c, http.StatusOK, alimentos, err)
}

func (h *Handler) GetAlimento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	alimento, err := h.cofiraSvc.GetAlimento(c.Request().Context(), id)
	return respond(c, http.StatusOK, alimento, err)
}

func (h *Handler) CreateAlimento(c echo.Context) error {
	var req model.CreateAlimento
	if err := bind(c, &req); err != nil {
		return err
	}
	alimento, err := h.cofiraSvc.CreateAlimento(c.Request().Context(), req)
	return respond(c, http.StatusCreated, alimento, err)
}

func (h *Handler) UpdateAlimento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateAlimento
	if err := bind(c, &req); err != nil {
		return err
	}
	alimento, err := h.cofiraSvc.UpdateAlimento(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, alimento, err)
}

func (h *Handler) DeleteAlimento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cofiraSvc.DeleteAlimento(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListEjercicios(c echo.Context) error {
	ejercicios, err := h.cofiraSvc.ListEjercicios(c.Request().Context())
	return respond(c, http.StatusOK, ejercicios, err)
}

func (h *Handler) ListEjerciciosBySala(c echo.Context) error {
	salaID, err := pathInt64(c, "salaId")
	if err != nil {
		return err
	}
	ejercicios, err := h.cofiraSvc.ListEjerciciosBySala(c.Request().Context(), salaID)
	return respond(c, http.StatusOK, ejercicios, err)
}

func (h *Handler) GetEjercicio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ejercicio, err := h.cofiraSvc.GetEjercicio(c.Request().Context(), id)
	return respond(c, http.StatusOK, ejercicio, err)
}

func (h *Handler) CreateEjercicio(c echo.Context) error {
	var req model.CreateEjercicio
	if err := bind(c, &req); err != nil {
		return err
	}
	ejercicio, err := h.cofiraSvc.CreateEjercicio(c.Request().Context(), req)
	return respond(c, http.StatusCreated, ejercicio, err)
}

func (h *Handler) UpdateEjercicio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateEjercicio
	if err := bind(c, &req); err != nil {
		return err
	}
	ejercicio, err := h.cofiraSvc.UpdateEjercicio(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, ejercicio, err)
}

func (h *Handler) DeleteEjercicio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cofiraSvc.DeleteEjercicio(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListSalas(c echo.Context) error {
	salas, err := h.cofiraSvc.ListSalas(c.Request().Context())
	return respond(c, http.StatusOK, salas, err)
}

func (h *Handler) GetSala(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sala, err := h.cofiraSvc.GetSala(c.Request().Context(), id)
	return respond(c, http.StatusOK, sala, err)
}

func (h *Handler) CreateSala(c echo.Context) error {
	var req model.CreateSala
	if err := bind(c, &req); err != nil {
		return err
	}
	sala, err := h.cofiraSvc.CreateSala(c.Request().Context(), req)
	return respond(c, http.StatusCreated, sala, err)
}

func (h *Handler) UpdateSala(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateSala
	if err := bind(c, &req); err != nil {
		return err
	}
	sala, err := h.cofiraSvc.UpdateSala(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, sala, err)
}

func (h *Handler) DeleteSala(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cofiraSvc.DeleteSala(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
