package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func pageRequest(c echo.Context) (model.PageRequest, error) {
	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return model.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return model.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return model.NewPageRequest(page, size), nil
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	return c.Validate(req)
}
