package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/metrics"
	md "github.com/Astemirdum/biblioteca-service/pkg/middleware"
	"github.com/Astemirdum/biblioteca-service/stats/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	statsSvc StatsService
	tokens   *auth.TokenManager
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func New(statsSvc StatsService, tokens *auth.TokenManager, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{
		statsSvc: statsSvc,
		tokens:   tokens,
		metrics:  m,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead},
		AllowCredentials: true,
	}))
	if h.metrics != nil {
		e.Use(h.metrics.Middleware())
	}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	if h.metrics != nil {
		base.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}

	// stats keeps no denylist of its own, so revoked tokens stay valid here until they expire
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.tokens, nil),
	)
	api.GET("/stats", h.GetStats, md.RequireRole(auth.RoleLibrarian))
	api.GET("/stats/:userId", h.GetUserStats)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetStats(c echo.Context) error {
	stat, err := h.statsSvc.GetStats(c.Request().Context())
	if err != nil {
		h.log.Error("statsSvc.GetStats", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "unexpected error")
	}
	return c.JSON(http.StatusOK, stat)
}

func (h *Handler) GetUserStats(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is invalid")
	}
	profile, err := auth.GetProfile(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if profile.UserID != userID && !auth.IsLibrarian(ctx) {
		return echo.NewHTTPError(http.StatusForbidden, "access to this resource is not allowed")
	}

	stat, err := h.statsSvc.GetUserStats(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no loan events for user")
		}
		h.log.Error("statsSvc.GetUserStats", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "unexpected error")
	}
	return c.JSON(http.StatusOK, stat)
}
