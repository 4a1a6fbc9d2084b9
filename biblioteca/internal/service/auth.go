package service

import (
	"context"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a reader account and signs it in.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	user, err := s.CreateUser(ctx, model.CreateUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.RoleReader,
	})
	if err != nil {
		return model.AuthResponse{}, err
	}
	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) issue(user model.User) (model.AuthResponse, error) {
	token, _, err := s.tokens.Issue(user.Profile())
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "issue token")
	}
	return model.AuthResponse{
		Token: token,
		Type:  model.TokenTypeBearer,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// Logout puts the token of the current request on the denylist until it expires.
func (s *Service) Logout(ctx context.Context) error {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil {
		return errors.Wrap(auth.ErrInvalidToken, "no exp")
	}
	expiresAt := claims.ExpiresAt.Time
	if err := s.repo.RevokeToken(ctx, claims.ID, expiresAt); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.MarkRevoked(ctx, claims.ID, expiresAt.Sub(s.now())); err != nil {
			s.log.Warn("cache.MarkRevoked", zap.Error(err))
		}
	}
	return nil
}

// ActiveTokenTTL bounds how long a cached "not revoked" answer is trusted.
const ActiveTokenTTL = 30 * time.Second

// IsTokenRevoked checks the cache first and falls back to the denylist table.
func (s *Service) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if s.cache != nil {
		revoked, found, err := s.cache.Lookup(ctx, jti)
		if err != nil {
			s.log.Warn("cache.Lookup", zap.Error(err))
		} else if found {
			return revoked, nil
		}
	}

	token, err := s.repo.GetRevokedToken(ctx, jti)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.remember(ctx, jti, false, ActiveTokenTTL)
			return false, nil
		}
		return false, err
	}
	s.remember(ctx, jti, true, token.ExpiresAt.Sub(s.now()))
	return true, nil
}

func (s *Service) remember(ctx context.Context, jti string, revoked bool, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	var err error
	if revoked {
		err = s.cache.MarkRevoked(ctx, jti, ttl)
	} else {
		err = s.cache.MarkActive(ctx, jti, ttl)
	}
	if err != nil {
		s.log.Warn("cache backfill", zap.Bool("revoked", revoked), zap.Error(err))
	}
}

// PurgeExpiredTokens drops denylist rows whose tokens have expired anyway.
func (s *Service) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.repo.PurgeRevokedTokens(ctx, s.now())
	if err != nil {
		return 0, err
	}
	s.log.Info("purged revoked tokens", zap.Int64("count", n))
	return n, nil
}
