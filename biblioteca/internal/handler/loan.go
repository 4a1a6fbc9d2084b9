package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

// ListLoans godoc
// @Summary      List loans
// @Description  Librarians see every loan and may filter by usuarioId. Readers only see their own.
// @Tags         prestamos
// @Produce      json
// @Param        page       query  int  false  "1-based page"
// @Param        size       query  int  false  "page size"
// @Param        usuarioId  query  int  false  "borrower id"
// @Success      200  {object}  model.ListLoans
// @Failure      401  {object}  errs.ErrorResponse
// @Security     BearerAuth
// @Router       /prestamos [get]
func (h *Handler) ListLoans(c echo.Context) error {
	ctx := c.Request().Context()
	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	var filter model.LoanFilter
	if userParam := c.QueryParam("usuarioId"); userParam != "" {
		userID, err := strconv.ParseInt(userParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "usuarioId is invalid")
		}
		filter.UserID = &userID
	}
	if !auth.IsLibrarian(ctx) {
		profile, err := auth.GetProfile(ctx)
		if err != nil {
			return err
		}
		filter.UserID = &profile.UserID
	}

	loans, err := h.librarySvc.ListLoans(ctx, filter, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loans)
}

// GetLoan godoc
// @Summary  Get a loan
// @Tags     prestamos
// @Produce  json
// @Param    id   path  int  true  "loan id"
// @Success  200  {object}  model.LoanView
// @Failure  404  {object}  errs.ErrorResponse
// @Security BearerAuth
// @Router   /prestamos/{id} [get]
func (h *Handler) GetLoan(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.GetLoan(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOrLibrarian(c, loan.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loan)
}

// CreateLoan godoc
// @Summary      Lend a book
// @Description  Fails with 409 when the book is already lent or the borrower has an overdue loan.
// @Tags         prestamos
// @Accept       json
// @Produce      json
// @Param        request  body  model.CreateLoan  true  "book and borrower"
// @Success      201  {object}  model.LoanView
// @Failure      400  {object}  errs.ErrorResponse
// @Failure      404  {object}  errs.ErrorResponse
// @Failure      409  {object}  errs.ErrorResponse
// @Security     BearerAuth
// @Router       /prestamos [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoan
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := ownerOrLibrarian(c, req.UserID); err != nil {
		return err
	}
	loan, err := h.librarySvc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, loan)
}

// RenewLoan godoc
// @Summary  Extend a loan
// @Tags     prestamos
// @Produce  json
// @Param    id              path   int  true  "loan id"
// @Param    diasExtension   query  int  true  "days to add, at least 1"
// @Success  200  {object}  model.LoanView
// @Failure  400  {object}  errs.ErrorResponse
// @Failure  409  {object}  errs.ErrorResponse
// @Security BearerAuth
// @Router   /prestamos/renovar/{id} [put]
func (h *Handler) RenewLoan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	extraDays, err := strconv.Atoi(c.QueryParam("diasExtension"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "diasExtension is invalid")
	}
	loan, err := h.librarySvc.RenewLoan(c.Request().Context(), id, extraDays)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loan)
}

// ReturnLoan godoc
// @Summary  Return a lent book
// @Tags     prestamos
// @Produce  json
// @Param    id   path  int  true  "loan id"
// @Success  200  {object}  model.LoanView
// @Failure  404  {object}  errs.ErrorResponse
// @Security BearerAuth
// @Router   /prestamos/devolver/{id} [put]
func (h *Handler) ReturnLoan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.ReturnLoan(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) UpdateLoan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateLoan
	if err := bind(c, &req); err != nil {
		return err
	}
	loan, err := h.librarySvc.UpdateLoan(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) DeleteLoan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteLoan(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func ownerOrLibrarian(c echo.Context, userID int64) error {
	ctx := c.Request().Context()
	profile, err := auth.GetProfile(ctx)
	if err != nil {
		return err
	}
	if profile.UserID != userID && !auth.IsLibrarian(ctx) {
		return echo.NewHTTPError(http.StatusForbidden, "access to this resource is not allowed")
	}
	return nil
}
