package service

import (
	"context"
	"io"
	"path/filepath"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const MaxAvatarSize = 2 << 20

var avatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// UploadAvatar stores an image for the user. Only the user or a librarian may do it.
func (s *Service) UploadAvatar(ctx context.Context, userID int64, r io.Reader) error {
	profile, err := auth.GetProfile(ctx)
	if err != nil {
		return err
	}
	if profile.UserID != userID && profile.Role != auth.RoleLibrarian {
		return errs.ErrForbidden
	}
	if s.avatars == nil {
		return errors.New("avatar storage is not configured")
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxAvatarSize+1))
	if err != nil {
		return errors.Wrap(err, "read avatar")
	}
	if len(data) > MaxAvatarSize {
		return errs.ErrFileTooLarge
	}
	mime := mimetype.Detect(data)
	ext, ok := avatarTypes[mime.String()]
	if !ok {
		return errors.Wrap(errs.ErrUnsupportedMedia, mime.String())
	}

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return err
	}
	path, err := s.avatars.Save(ctx, userID, ext, data)
	if err != nil {
		return err
	}
	return s.repo.SetUserAvatar(ctx, userID, path)
}

func (s *Service) GetAvatar(ctx context.Context, userID int64) (model.Avatar, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.Avatar{}, err
	}
	if user.Avatar == nil || *user.Avatar == "" || s.avatars == nil {
		return model.Avatar{}, errors.Wrap(errs.ErrNotFound, "avatar")
	}
	data, err := s.avatars.Open(ctx, *user.Avatar)
	if err != nil {
		return model.Avatar{}, err
	}
	return model.Avatar{
		Data:        data,
		ContentType: mimetype.Detect(data).String(),
		FileName:    filepath.Base(*user.Avatar),
	}, nil
}
