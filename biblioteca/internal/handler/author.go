package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListAuthors(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	filter := model.AuthorFilter{Name: c.QueryParam("nombre")}
	if withBooks := c.QueryParam("conLibros"); withBooks != "" {
		if filter.WithBooks, err = strconv.ParseBool(withBooks); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "conLibros is invalid")
		}
	}

	authors, err := h.librarySvc.ListAuthors(c.Request().Context(), filter, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	author, err := h.librarySvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.CreateAuthor
	if err := bind(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateAuthor
	if err := bind(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.UpdateAuthor(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
