package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

const (
	avatarField = "file"
	// multipart envelope on top of service.MaxAvatarSize
	avatarBodyLimit = "3M"
)

func (h *Handler) UploadAvatar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile(avatarField)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")
	}
	if fh.Size > service.MaxAvatarSize {
		return errs.ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := h.librarySvc.UploadAvatar(c.Request().Context(), id, f); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetAvatar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return h.writeAvatar(c, id)
}

func (h *Handler) GetMyAvatar(c echo.Context) error {
	profile, err := auth.GetProfile(c.Request().Context())
	if err != nil {
		return err
	}
	return h.writeAvatar(c, profile.UserID)
}

func (h *Handler) writeAvatar(c echo.Context, userID int64) error {
	avatar, err := h.librarySvc.GetAvatar(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", avatar.FileName))
	return c.Blob(http.StatusOK, avatar.ContentType, avatar.Data)
}
