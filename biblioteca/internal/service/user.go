package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) ListUsers(ctx context.Context, filter model.UserFilter, page model.PageRequest) (model.ListUsers, error) {
	return s.repo.ListUsers(ctx, filter, page)
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

// Me returns the user behind the token in ctx.
func (s *Service) Me(ctx context.Context) (model.User, error) {
	profile, err := auth.GetProfile(ctx)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.GetUser(ctx, profile.UserID)
}

func (s *Service) CreateUser(ctx context.Context, req model.CreateUser) (model.User, error) {
	role := req.Role
	if role == "" {
		role = model.RoleReader
	}
	if !role.Valid() {
		return model.User{}, errs.ErrInvalidRole
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.CreateUser(ctx, model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	})
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req model.UpdateUser) (model.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return model.User{}, errs.ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.Password != nil {
		if user.PasswordHash, err = hashPassword(*req.Password); err != nil {
			return model.User{}, err
		}
	}
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Service) ChangeRole(ctx context.Context, id int64, role model.Role) (model.User, error) {
	if !role.Valid() {
		return model.User{}, errors.Wrapf(errs.ErrInvalidRole, "%q", role)
	}
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if err := s.repo.SetUserRole(ctx, id, role); err != nil {
		return model.User{}, err
	}
	user.Role = role
	return user, nil
}

// DeleteUser fails with errs.ErrInUse while loans still reference the user.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

func hashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", errors.Wrapf(errs.ErrInvalidArgument, "password exceeds %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}
	return string(hash), nil
}
