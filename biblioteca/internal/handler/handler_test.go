package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/handler"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/biblioteca-service/biblioteca/internal/handler/mocks"
)

var tokens = auth.NewTokenManager(auth.Config{Secret: "handler-secret", TTL: time.Hour, Issuer: "biblioteca"})

var (
	librarian = auth.Profile{UserID: 1, Email: "ana@biblioteca.es", Role: auth.RoleLibrarian}
	reader    = auth.Profile{UserID: 7, Email: "luis@biblioteca.es", Role: auth.RoleReader}
)

func bearerFor(t *testing.T, p auth.Profile) string {
	t.Helper()
	token, _, err := tokens.Issue(p)
	require.NoError(t, err)
	return "Bearer " + token
}

func newRouter(t *testing.T) (*echo.Echo, *service_mocks.MockLibraryService) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	h := handler.New(svc, tokens, nil, zap.NewNop())
	return h.NewRouter(), svc
}

// errorBody decodes an error response without its timestamp.
func errorBody(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	require.Contains(t, m, "timestamp")
	delete(m, "timestamp")
	return m
}

func loanView() model.LoanView {
	return model.LoanView{
		ID:        11,
		BookID:    3,
		BookTitle: "Rayuela",
		UserID:    reader.UserID,
		UserName:  "Luis",
		LoanDate:  model.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
}

const loanViewJSON = `{"id":11,"libroId":3,"libroTitulo":"Rayuela","usuarioId":7,"nombre":"Luis","fechaPrestamo":"2024-03-01","fechaDevolucion":null,"vencido":false}`

func TestHandler_CreateLoan(t *testing.T) {
	t.Parallel()
	type input struct {
		profile *auth.Profile
		body    string
	}
	type response struct {
		expectedCode int
		expectedBody string
		expectedErr  map[string]any
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok. librarian lends to a reader",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), model.CreateLoan{BookID: 3, UserID: 7}).
					Return(loanView(), nil)
			},
			input:    input{profile: &librarian, body: `{"libroId":3,"usuarioId":7}`},
			response: response{expectedCode: http.StatusCreated, expectedBody: loanViewJSON},
		},
		{
			name: "ok. reader borrows for themselves",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), model.CreateLoan{BookID: 3, UserID: 7}).
					Return(loanView(), nil)
			},
			input:    input{profile: &reader, body: `{"libroId":3,"usuarioId":7}`},
			response: response{expectedCode: http.StatusCreated, expectedBody: loanViewJSON},
		},
		{
			name:         "err. reader borrows for someone else",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{profile: &reader, body: `{"libroId":3,"usuarioId":8}`},
			response: response{expectedCode: http.StatusForbidden, expectedErr: map[string]any{
				"status": float64(403), "error": "Forbidden", "message": "access to this resource is not allowed",
			}},
		},
		{
			name: "err. book unavailable",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), model.CreateLoan{BookID: 3, UserID: 7}).
					Return(model.LoanView{}, errors.Wrap(errs.ErrBookUnavailable, "create loan"))
			},
			input: input{profile: &librarian, body: `{"libroId":3,"usuarioId":7}`},
			response: response{expectedCode: http.StatusConflict, expectedErr: map[string]any{
				"status": float64(409), "error": "Conflict", "message": "create loan: book unavailable",
			}},
		},
		{
			name: "err. overdue loan",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), gomock.Any()).
					Return(model.LoanView{}, errs.ErrLoanOverdue)
			},
			input: input{profile: &librarian, body: `{"libroId":3,"usuarioId":7}`},
			response: response{expectedCode: http.StatusConflict, expectedErr: map[string]any{
				"status": float64(409), "error": "Conflict", "message": "user has overdue loan",
			}},
		},
		{
			name:         "err. validation",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{profile: &librarian, body: `{"usuarioId":7}`},
			response: response{expectedCode: http.StatusBadRequest, expectedErr: map[string]any{
				"status": float64(400), "error": "Validation Failed",
				"errors": map[string]any{"libroId": "must not be empty"},
			}},
		},
		{
			name:         "err. malformed body",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{profile: &librarian, body: `{"libroId":`},
			response: response{expectedCode: http.StatusBadRequest, expectedErr: map[string]any{
				"status": float64(400), "error": "Bad Request", "message": "malformed request body",
			}},
		},
		{
			name:         "err. no token",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{body: `{"libroId":3,"usuarioId":7}`},
			response: response{expectedCode: http.StatusUnauthorized, expectedErr: map[string]any{
				"status": float64(401), "error": "Unauthorized", "message": "No Authorization Header",
			}},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), gomock.Any()).
					Return(model.LoanView{}, errors.New("db internal"))
			},
			input: input{profile: &librarian, body: `{"libroId":3,"usuarioId":7}`},
			response: response{expectedCode: http.StatusInternalServerError, expectedErr: map[string]any{
				"status": float64(500), "error": "Internal Server Error", "message": "unexpected error",
			}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/prestamos", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.profile != nil {
				r.Header.Set(echo.HeaderAuthorization, bearerFor(t, *tt.input.profile))
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedErr != nil {
				require.Equal(t, tt.response.expectedErr, errorBody(t, w.Body.String()))
				return
			}
			require.JSONEq(t, tt.response.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_RenewLoan(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		query        string
		mockBehavior func(r *service_mocks.MockLibraryService)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:  "ok",
			query: "?diasExtension=5",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().RenewLoan(gomock.Any(), int64(11), 5).Return(loanView(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "err. missing extension",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "diasExtension is invalid",
		},
		{
			name:  "err. non positive extension",
			query: "?diasExtension=0",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().RenewLoan(gomock.Any(), int64(11), 0).
					Return(model.LoanView{}, errors.Wrap(errs.ErrInvalidArgument, "extra days must be at least 1"))
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "extra days must be at least 1: invalid argument",
		},
		{
			name:  "err. overdue",
			query: "?diasExtension=3",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().RenewLoan(gomock.Any(), int64(11), 3).Return(model.LoanView{}, errs.ErrLoanOverdue)
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "user has overdue loan",
		},
		{
			name:  "err. not found",
			query: "?diasExtension=3",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().RenewLoan(gomock.Any(), int64(11), 3).Return(model.LoanView{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "not found",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPut, "/prestamos/renovar/11"+tt.query, http.NoBody)
			r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMsg != "" {
				require.Equal(t, tt.expectedMsg, errorBody(t, w.Body.String())["message"])
				return
			}
			require.JSONEq(t, loanViewJSON, w.Body.String())
		})
	}
}

func TestHandler_ListLoans_ReaderSeesOwnLoans(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	want := reader.UserID
	svc.EXPECT().
		ListLoans(gomock.Any(), model.LoanFilter{UserID: &want}, model.NewPageRequest(2, 5)).
		Return(model.ListLoans{
			Paging: model.Paging{Page: 2, PageSize: 5, TotalElements: 6},
			Items:  []model.LoanView{loanView()},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/prestamos?usuarioId=1&page=2&size=5", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"page":2,"pageSize":5,"totalElements":6,"items":[`+loanViewJSON+`]}`, w.Body.String())
}

func TestHandler_ReturnAndDeleteLoan(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	returned := loanView()
	returnDate := returned.LoanDate.AddDays(3)
	returned.ReturnDate = &returnDate
	svc.EXPECT().ReturnLoan(gomock.Any(), int64(11)).Return(returned, nil)
	svc.EXPECT().DeleteLoan(gomock.Any(), int64(11)).Return(nil)

	r := httptest.NewRequest(http.MethodPut, "/prestamos/devolver/11", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"fechaDevolucion":"2024-03-04"`)

	r = httptest.NewRequest(http.MethodDelete, "/prestamos/11", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)

	r = httptest.NewRequest(http.MethodDelete, "/prestamos/11", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, librarian))
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Authorization(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		method, path string
		body         string
		profile      auth.Profile
		expectedCode int
	}{
		{name: "reader cannot create authors", method: http.MethodPost, path: "/autores", body: `{"nombre":"Borges","nacionalidad":"AR"}`, profile: reader, expectedCode: http.StatusForbidden},
		{name: "reader cannot delete books", method: http.MethodDelete, path: "/libros/3", profile: reader, expectedCode: http.StatusForbidden},
		{name: "reader cannot list users", method: http.MethodGet, path: "/usuarios", profile: reader, expectedCode: http.StatusForbidden},
		{name: "reader cannot change roles", method: http.MethodPut, path: "/usuarios/7/cambiar-rol?nuevoRol=BIBLIOTECARIO", profile: reader, expectedCode: http.StatusForbidden},
		{name: "reader cannot read other users", method: http.MethodGet, path: "/usuarios/8", profile: reader, expectedCode: http.StatusForbidden},
		{name: "reader cannot promote themselves", method: http.MethodPut, path: "/usuarios/7", body: `{"rol":"BIBLIOTECARIO"}`, profile: reader, expectedCode: http.StatusForbidden},
		{name: "invalid id", method: http.MethodGet, path: "/libros/abc", profile: reader, expectedCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _ := newRouter(t)
			body := http.NoBody
			r := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				r = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			r.Header.Set(echo.HeaderAuthorization, bearerFor(t, tt.profile))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_RevokedToken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, tokens, nil, zap.NewNop())
	e := h.NewRouter()

	token := bearerFor(t, reader)
	svc.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

	r := httptest.NewRequest(http.MethodGet, "/auth/me", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, token)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "TokenRevoked", errorBody(t, w.Body.String())["message"])
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockLibraryService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"email":"luis@biblioteca.es","password":"secreto"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Login(gomock.Any(), model.LoginRequest{Email: "luis@biblioteca.es", Password: "secreto"}).
					Return(model.AuthResponse{Token: "t", Type: model.TokenTypeBearer, ID: 7, Name: "Luis", Email: "luis@biblioteca.es", Role: model.RoleReader}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"t","type":"Bearer","id":7,"nombre":"Luis","email":"luis@biblioteca.es","rol":"LECTOR"}`,
		},
		{
			name: "err. bad credentials",
			body: `{"email":"luis@biblioteca.es","password":"nope"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Login(gomock.Any(), gomock.Any()).Return(model.AuthResponse{}, errs.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "err. invalid email",
			body:         `{"email":"luis","password":"nope"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_Avatar(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	png := []byte("\x89PNG\r\n\x1a\n")

	svc.EXPECT().UploadAvatar(gomock.Any(), reader.UserID, gomock.Any()).Return(nil)
	svc.EXPECT().GetAvatar(gomock.Any(), reader.UserID).
		Return(model.Avatar{Data: png, ContentType: "image/png", FileName: "avatar.png"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "me.png")
	require.NoError(t, err)
	_, err = fw.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/usuarios/7/avatar", &buf)
	r.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusNoContent, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/usuarios/me/avatar", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get(echo.HeaderContentType))
	require.Equal(t, `inline; filename="avatar.png"`, w.Header().Get(echo.HeaderContentDisposition))
	require.Equal(t, png, w.Body.Bytes())

	r = httptest.NewRequest(http.MethodPost, "/usuarios/7/avatar", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Avatar_BodyTooLarge(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "huge.png")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{0xff}, 4<<20))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/usuarios/7/avatar", &buf)
	r.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	r.Header.Set(echo.HeaderAuthorization, bearerFor(t, reader))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandler_Register_PasswordBytes(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	body := `{"nombre":"Ana","email":"ana@biblioteca.es","password":"` + strings.Repeat("ñ", 40) + `"}`

	r := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, map[string]any{"password": "must be at most 72 bytes long"}, errorBody(t, w.Body.String())["errors"])
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
