package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

// RevocationChecker reports whether a token id has been logged out.
type RevocationChecker func(ctx context.Context, jti string) (bool, error)

func BearerToken(r *http.Request) (string, error) {
	authorization := r.Header.Get(AuthorizationHeader)
	if authorization == "" {
		return "", errors.New("No Authorization Header")
	}
	if !strings.HasPrefix(authorization, bearer) {
		return "", errors.New("Invalid Authorization Header")
	}
	return strings.TrimPrefix(authorization, bearer), nil
}

func JwtAuthentication(tokens *auth.TokenManager, isRevoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := BearerToken(c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			claims, err := tokens.Parse(tokenStr)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "TokenExpired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
			}

			req := c.Request()
			if isRevoked != nil {
				revoked, err := isRevoked(req.Context(), claims.ID)
				if err != nil {
					return err
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "TokenRevoked")
				}
			}

			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), claims)))
			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not in roles. Must run after JwtAuthentication.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if _, err := auth.GetProfile(ctx); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			if !auth.HasRole(ctx, roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "access to this resource is not allowed")
			}
			return next(c)
		}
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Status >= http.StatusInternalServerError {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
