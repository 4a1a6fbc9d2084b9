package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errStatus = []struct {
	err  error
	code int
}{
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrDuplicate, http.StatusConflict},
	{errs.ErrInUse, http.StatusConflict},
	{errs.ErrBookUnavailable, http.StatusConflict},
	{errs.ErrLoanOverdue, http.StatusConflict},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrNoProfile, http.StatusUnauthorized},
	{auth.ErrInvalidToken, http.StatusUnauthorized},
	{auth.ErrTokenExpired, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrInvalidRole, http.StatusBadRequest},
	{errs.ErrUnsupportedMedia, http.StatusBadRequest},
	{errs.ErrFileTooLarge, http.StatusBadRequest},
	{errs.ErrInvalidArgument, http.StatusBadRequest},
}

// HTTPErrorHandler renders every error as errs.ErrorResponse.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	resp := h.errorResponse(err, c)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(resp.Status)
	} else {
		err = c.JSON(resp.Status, resp)
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

func (h *Handler) errorResponse(err error, c echo.Context) errs.ErrorResponse {
	resp := errs.ErrorResponse{Timestamp: time.Now().UTC()}

	var fieldErrs validate.FieldErrors
	if errors.As(err, &fieldErrs) {
		resp.Status = http.StatusBadRequest
		resp.Error = "Validation Failed"
		resp.Errors = fieldErrs
		return resp
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		resp.Status = httpErr.Code
		resp.Error = http.StatusText(httpErr.Code)
		resp.Message = fmt.Sprint(httpErr.Message)
		return resp
	}

	for _, es := range errStatus {
		if errors.Is(err, es.err) {
			resp.Status = es.code
			resp.Error = http.StatusText(es.code)
			resp.Message = err.Error()
			return resp
		}
	}

	h.log.Error("unhandled error",
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err))
	resp.Status = http.StatusInternalServerError
	resp.Error = http.StatusText(http.StatusInternalServerError)
	resp.Message = "unexpected error"
	return resp
}
