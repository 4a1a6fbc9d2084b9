package handler

import (
	"net/http"

	_ "github.com/Astemirdum/biblioteca-service/biblioteca/docs"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/metrics"
	md "github.com/Astemirdum/biblioteca-service/pkg/middleware"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	librarySvc LibraryService
	tokens     *auth.TokenManager
	metrics    *metrics.Metrics
	log        *zap.Logger
}

func New(librarySvc LibraryService, tokens *auth.TokenManager, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		tokens:     tokens,
		metrics:    m,
		log:        log.Named("handler"),
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

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestID())
	if h.metrics != nil {
		e.Use(h.metrics.Middleware())
	}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	if h.metrics != nil {
		base.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)
	jwt := md.JwtAuthentication(h.tokens, h.librarySvc.IsTokenRevoked)
	librarian := md.RequireRole(auth.RoleLibrarian)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/me", h.Me, jwt)
	authGroup.POST("/logout", h.Logout, jwt)

	secured := api.Group("", jwt)

	secured.GET("/autores", h.ListAuthors)
	secured.GET("/autores/:id", h.GetAuthor)
	secured.POST("/autores", h.CreateAuthor, librarian)
	secured.PUT("/autores/:id", h.UpdateAuthor, librarian)
	secured.DELETE("/autores/:id", h.DeleteAuthor, librarian)

	secured.GET("/libros", h.ListBooks)
	secured.GET("/libros/:id", h.GetBook)
	secured.POST("/libros", h.CreateBook, librarian)
	secured.PUT("/libros/:id", h.UpdateBook, librarian)
	secured.DELETE("/libros/:id", h.DeleteBook, librarian)

	secured.GET("/prestamos", h.ListLoans)
	secured.GET("/prestamos/:id", h.GetLoan)
	secured.POST("/prestamos", h.CreateLoan)
	secured.PUT("/prestamos/renovar/:id", h.RenewLoan)
	secured.PUT("/prestamos/devolver/:id", h.ReturnLoan)
	secured.PUT("/prestamos/:id", h.UpdateLoan, librarian)
	secured.DELETE("/prestamos/:id", h.DeleteLoan, librarian)

	secured.GET("/usuarios", h.ListUsers, librarian)
	secured.POST("/usuarios", h.CreateUser, librarian)
	secured.GET("/usuarios/email", h.GetUserByEmail, librarian)
	secured.GET("/usuarios/me", h.Me)
	secured.GET("/usuarios/me/avatar", h.GetMyAvatar)
	secured.GET("/usuarios/:id", h.GetUser)
	secured.PUT("/usuarios/:id", h.UpdateUser)
	secured.DELETE("/usuarios/:id", h.DeleteUser, librarian)
	secured.PUT("/usuarios/:id/cambiar-rol", h.ChangeRole, librarian)
	secured.POST("/usuarios/:id/avatar", h.UploadAvatar, middleware.BodyLimit(avatarBodyLimit))
	secured.GET("/usuarios/:id/avatar", h.GetAvatar)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
