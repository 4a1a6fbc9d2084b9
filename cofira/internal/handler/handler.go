package handler

import (
	"net/http"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/metrics"
	md "github.com/Astemirdum/biblioteca-service/pkg/middleware"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	cofiraSvc CofiraService
	tokens    *auth.TokenManager
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func New(cofiraSvc CofiraService, tokens *auth.TokenManager, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{
		cofiraSvc: cofiraSvc,
		tokens:    tokens,
		metrics:   m,
		log:       log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Validator = validate.NewCustomValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestID())
	if h.metrics != nil {
		e.Use(h.metrics.Middleware())
	}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	if h.metrics != nil {
		base.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}

	// tokens come from the shared issuer; cofira keeps no denylist
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.tokens, nil),
	)
	admin := md.RequireRole(auth.RoleAdmin)

	api.GET("/alimentos", h.ListAlimentos)
	api.GET("/alimentos/:id", h.GetAlimento)
	api.POST("/alimentos", h.CreateAlimento, admin)
	api.PUT("/alimentos/:id", h.UpdateAlimento, admin)
	api.DELETE("/alimentos/:id", h.DeleteAlimento, admin)

	api.GET("/ejercicios", h.ListEjercicios)
	api.GET("/ejercicios/sala/:salaId", h.ListEjerciciosBySala)
	api.GET("/ejercicios/:id", h.GetEjercicio)
	api.POST("/ejercicios", h.CreateEjercicio, admin)
	api.PUT("/ejercicios/:id", h.UpdateEjercicio, admin)
	api.DELETE("/ejercicios/:id", h.DeleteEjercicio, admin)

	api.GET("/salas", h.ListSalas)
	api.GET("/salas/:id", h.GetSala)
	api.POST("/salas", h.CreateSala, admin)
	api.PUT("/salas/:id", h.UpdateSala, admin)
	api.DELETE("/salas/:id", h.DeleteSala, admin)

	api.GET("/planes", h.ListPlanes, admin)
	api.GET("/planes/usuario/:usuarioId", h.GetPlanByUsuario)
	api.GET("/planes/:id", h.GetPlan)
	api.POST("/planes", h.CreatePlan, admin)
	api.PUT("/planes/:id", h.UpdatePlan, admin)
	api.DELETE("/planes/:id", h.DeletePlan, admin)

	api.GET("/objetivos", h.ListObjetivos, admin)
	api.GET("/objetivos/usuario/:usuarioId", h.GetObjetivosByUsuario)
	api.GET("/objetivos/:id", h.GetObjetivos)
	api.POST("/objetivos", h.CreateObjetivos)
	api.PUT("/objetivos/:id", h.UpdateObjetivos)
	api.DELETE("/objetivos/:id", h.DeleteObjetivos)

	api.GET("/rutinas-ejercicio", h.ListRutinasEjercicio)
	api.GET("/rutinas-ejercicio/:id", h.GetRutinaEjercicio)
	api.POST("/rutinas-ejercicio", h.CreateRutinaEjercicio, admin)
	api.DELETE("/rutinas-ejercicio/:id", h.DeleteRutinaEjercicio, admin)

	api.GET("/rutinas-alimentacion", h.ListRutinasAlimentacion)
	api.GET("/rutinas-alimentacion/:id", h.GetRutinaAlimentacion)
	api.POST("/rutinas-alimentacion", h.CreateRutinaAlimentacion, admin)
	api.DELETE("/rutinas-alimentacion/:id", h.DeleteRutinaAlimentacion, admin)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
