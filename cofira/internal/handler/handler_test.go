package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/errs"
	"github.com/Astemirdum/biblioteca-service/cofira/internal/handler"
	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/biblioteca-service/cofira/internal/handler/mocks"
)

var tokens = auth.NewTokenManager(auth.Config{Secret: "cofira-secret", TTL: time.Hour, Issuer: "biblioteca"})

var (
	admin  = auth.Profile{UserID: 1, Email: "marta@cofira.es", Role: auth.RoleAdmin}
	member = auth.Profile{UserID: 7, Email: "pablo@cofira.es", Role: auth.RoleParticipant}
)

func bearerFor(t *testing.T, p auth.Profile) string {
	t.Helper()
	token, _, err := tokens.Issue(p)
	require.NoError(t, err)
	return "Bearer " + token
}

func newRouter(t *testing.T) (*echo.Echo, *service_mocks.MockCofiraService) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockCofiraService(c)
	h := handler.New(svc, tokens, nil, zap.NewNop())
	return h.NewRouter(), svc
}

func errorBody(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	require.Contains(t, m, "timestamp")
	delete(m, "timestamp")
	return m
}

type request struct {
	method  string
	target  string
	body    string
	profile *auth.Profile
}

func (r request) do(t *testing.T, e *echo.Echo) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(r.method, r.target, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if r.profile != nil {
		req.Header.Set(echo.HeaderAuthorization, bearerFor(t, *r.profile))
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func date(y int, m time.Month, d int) model.Date {
	return model.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestHandler_Salas(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		req          request
		mockBehavior func(r *service_mocks.MockCofiraService)
		expectedCode int
		expectedBody string
		expectedErr  map[string]any
	}{
		{
			name: "ok. member reads a sala",
			req:  request{method: http.MethodGet, target: "/api/salas/4", profile: &member},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().GetSala(gomock.Any(), int64(4)).
					Return(model.Sala{ID: 4, FechaInicio: date(2024, 1, 8), FechaFin: date(2024, 6, 30)}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":4,"fechaInicio":"2024-01-08","fechaFin":"2024-06-30"}`,
		},
		{
			name: "ok. admin creates a sala",
			req: request{method: http.MethodPost, target: "/api/salas", profile: &admin,
				body: `{"fechaInicio":"2024-01-08","fechaFin":"2024-06-30"}`},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().CreateSala(gomock.Any(), model.CreateSala{FechaInicio: date(2024, 1, 8), FechaFin: date(2024, 6, 30)}).
					Return(model.Sala{ID: 4, FechaInicio: date(2024, 1, 8), FechaFin: date(2024, 6, 30)}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":4,"fechaInicio":"2024-01-08","fechaFin":"2024-06-30"}`,
		},
		{
			name: "err. member creates a sala",
			req: request{method: http.MethodPost, target: "/api/salas", profile: &member,
				body: `{"fechaInicio":"2024-01-08","fechaFin":"2024-06-30"}`},
			mockBehavior: func(r *service_mocks.MockCofiraService) {},
			expectedCode: http.StatusForbidden,
			expectedErr: map[string]any{
				"status": float64(403), "error": "Forbidden", "message": "access to this resource is not allowed",
			},
		},
		{
			name: "err. dates out of order",
			req: request{method: http.MethodPut, target: "/api/salas/4", profile: &admin,
				body: `{"fechaInicio":"2024-07-01"}`},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().UpdateSala(gomock.Any(), int64(4), gomock.Any()).
					Return(model.Sala{}, errors.Wrap(errs.ErrInvalidArgument, "fechaInicio must not be after fechaFin"))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr: map[string]any{
				"status": float64(400), "error": "Bad Request",
				"message": "fechaInicio must not be after fechaFin: invalid argument",
			},
		},
		{
			name:         "err. bad id",
			req:          request{method: http.MethodGet, target: "/api/salas/abc", profile: &member},
			mockBehavior: func(r *service_mocks.MockCofiraService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr: map[string]any{
				"status": float64(400), "error": "Bad Request", "message": "id is invalid",
			},
		},
		{
			name: "err. not found",
			req:  request{method: http.MethodDelete, target: "/api/salas/9", profile: &admin},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().DeleteSala(gomock.Any(), int64(9)).Return(errors.Wrap(errs.ErrNotFound, "sala 9"))
			},
			expectedCode: http.StatusNotFound,
			expectedErr: map[string]any{
				"status": float64(404), "error": "Not Found", "message": "sala 9: not found",
			},
		},
		{
			name:         "err. no token",
			req:          request{method: http.MethodGet, target: "/api/salas"},
			mockBehavior: func(r *service_mocks.MockCofiraService) {},
			expectedCode: http.StatusUnauthorized,
			expectedErr: map[string]any{
				"status": float64(401), "error": "Unauthorized", "message": "No Authorization Header",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			w := tt.req.do(t, e)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr != nil {
				require.Equal(t, tt.expectedErr, errorBody(t, w.Body.String()))
				return
			}
			require.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_DeleteEjercicio_InUse(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().DeleteEjercicio(gomock.Any(), int64(3)).
		Return(errors.Wrap(errs.ErrInUse, "dia_ejercicio_ejercicios_ejercicio_id_fkey"))

	w := request{method: http.MethodDelete, target: "/api/ejercicios/3", profile: &admin}.do(t, e)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Conflict", errorBody(t, w.Body.String())["error"])
}

func TestHandler_CreateEjercicio_Validation(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)

	w := request{method: http.MethodPost, target: "/api/ejercicios", profile: &admin,
		body: `{"nombreEjercicio":"Press banca","series":0,"repeticiones":8}`}.do(t, e)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, map[string]any{
		"status": float64(400), "error": "Validation Failed",
		"errors": map[string]any{
			"series":           "must not be empty",
			"salaDeGimnasioId": "must not be empty",
		},
	}, errorBody(t, w.Body.String()))
}

func TestHandler_PlanOwnership(t *testing.T) {
	t.Parallel()
	plan := model.Plan{ID: 2, Precio: 29.9, SubscripcionActiva: true, UsuarioID: member.UserID}
	const planJSON = `{"id":2,"precio":29.9,"subscripcionActiva":true,"usuarioId":7}`

	tests := []struct {
		name         string
		req          request
		mockBehavior func(r *service_mocks.MockCofiraService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok. member reads own plan",
			req:  request{method: http.MethodGet, target: "/api/planes/usuario/7", profile: &member},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().GetPlanByUsuario(gomock.Any(), int64(7)).Return(plan, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: planJSON,
		},
		{
			name:         "err. member reads another user's plan",
			req:          request{method: http.MethodGet, target: "/api/planes/usuario/8", profile: &member},
			mockBehavior: func(r *service_mocks.MockCofiraService) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "ok. admin reads any plan",
			req:  request{method: http.MethodGet, target: "/api/planes/2", profile: &admin},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().GetPlan(gomock.Any(), int64(2)).Return(plan, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: planJSON,
		},
		{
			name: "err. member reads a plan by id that is not theirs",
			req:  request{method: http.MethodGet, target: "/api/planes/3", profile: &member},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().GetPlan(gomock.Any(), int64(3)).
					Return(model.Plan{ID: 3, UsuarioID: 8}, nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "err. member lists every plan",
			req:          request{method: http.MethodGet, target: "/api/planes", profile: &member},
			mockBehavior: func(r *service_mocks.MockCofiraService) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "err. missing precio",
			req: request{method: http.MethodPost, target: "/api/planes", profile: &admin,
				body: `{"subscripcionActiva":true,"usuarioId":7}`},
			mockBehavior: func(r *service_mocks.MockCofiraService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "ok. free plan",
			req: request{method: http.MethodPost, target: "/api/planes", profile: &admin,
				body: `{"precio":0,"subscripcionActiva":false,"usuarioId":7}`},
			mockBehavior: func(r *service_mocks.MockCofiraService) {
				r.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
					Return(model.Plan{ID: 5, UsuarioID: 7}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":5,"precio":0,"subscripcionActiva":false,"usuarioId":7}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			w := tt.req.do(t, e)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_Objetivos(t *testing.T) {
	t.Parallel()
	own := model.Objetivos{ID: 4, ListaObjetivos: model.Strings{"correr 10k"}, UsuarioID: member.UserID}

	t.Run("ok. member creates own goals", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			CreateObjetivos(gomock.Any(), model.CreateObjetivos{ListaObjetivos: []string{"correr 10k"}, UsuarioID: 7}).
			Return(own, nil)

		w := request{method: http.MethodPost, target: "/api/objetivos", profile: &member,
			body: `{"listaObjetivos":["correr 10k"],"usuarioId":7}`}.do(t, e)

		require.Equal(t, http.StatusCreated, w.Code)
		require.JSONEq(t, `{"id":4,"listaObjetivos":["correr 10k"],"usuarioId":7}`, w.Body.String())
	})

	t.Run("err. member creates goals for someone else", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)

		w := request{method: http.MethodPost, target: "/api/objetivos", profile: &member,
			body: `{"listaObjetivos":["correr 10k"],"usuarioId":8}`}.do(t, e)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("err. second goal list", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().CreateObjetivos(gomock.Any(), gomock.Any()).
			Return(model.Objetivos{}, errors.Wrap(errs.ErrDuplicate, "usuario 7 already has objetivos"))

		w := request{method: http.MethodPost, target: "/api/objetivos", profile: &member,
			body: `{"listaObjetivos":["nadar"],"usuarioId":7}`}.do(t, e)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, "usuario 7 already has objetivos: already exists", errorBody(t, w.Body.String())["message"])
	})

	t.Run("err. member deletes someone else's goals", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().GetObjetivos(gomock.Any(), int64(5)).
			Return(model.Objetivos{ID: 5, UsuarioID: 8}, nil)

		w := request{method: http.MethodDelete, target: "/api/objetivos/5", profile: &member}.do(t, e)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ok. admin updates a member's goals", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		updated := own
		updated.ListaObjetivos = model.Strings{"correr 21k"}
		svc.EXPECT().GetObjetivos(gomock.Any(), int64(4)).Return(own, nil)
		svc.EXPECT().
			UpdateObjetivos(gomock.Any(), int64(4), model.UpdateObjetivos{ListaObjetivos: []string{"correr 21k"}}).
			Return(updated, nil)

		w := request{method: http.MethodPut, target: "/api/objetivos/4", profile: &admin,
			body: `{"listaObjetivos":["correr 21k"]}`}.do(t, e)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"id":4,"listaObjetivos":["correr 21k"],"usuarioId":7}`, w.Body.String())
	})
}

func TestHandler_CreateRutinaAlimentacion(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().
		CreateRutinaAlimentacion(gomock.Any(), model.CreateRutinaAlimentacion{
			FechaInicio: date(2024, 2, 5),
			DiasAlimentacion: []model.CreateDiaAlimentacion{{
				DiaSemana: "LUNES",
				Desayuno:  &model.Comida{Alimentos: model.Strings{"avena"}},
			}},
		}).
		Return(model.RutinaAlimentacion{
			ID:          2,
			FechaInicio: date(2024, 2, 5),
			DiasAlimentacion: []model.DiaAlimentacion{{
				ID: 9, RutinaID: 2, DiaSemana: model.Lunes,
				Desayuno: &model.Comida{Alimentos: model.Strings{"avena"}},
			}},
		}, nil)

	w := request{method: http.MethodPost, target: "/api/rutinas-alimentacion", profile: &admin,
		body: `{"fechaInicio":"2024-02-05","diasAlimentacion":[{"diaSemana":"LUNES","desayuno":{"alimentos":["avena"]}}]}`}.do(t, e)

	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":2,"fechaInicio":"2024-02-05","diasAlimentacion":[
		{"id":9,"diaSemana":"LUNES","desayuno":{"alimentos":["avena"]},"almuerzo":null,"comida":null,"merienda":null,"cena":null}
	]}`, w.Body.String())
}
