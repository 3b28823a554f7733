package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papi/internal/auth"
	"papi/internal/datastore"
	"papi/internal/model"
	"papi/internal/repository"
	"papi/internal/service"
	"papi/internal/store"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// newAuthTestServer wires the auth handler against real services over an
// in-memory store with one known buyer.
func newAuthTestServer(t *testing.T) (*echo.Echo, *AuthHandler) {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemory()
	ds := datastore.New(kv)
	datastore.WriteCollection[model.User](ctx, ds, datastore.KeyUsers, []model.User{
		{
			ID:       "user-1",
			Role:     model.RoleBuyer,
			Email:    "asha@example.com",
			Password: "buyer123",
			Name:     "Asha Verma",
			Status:   model.StatusActive,
		},
	})

	authService := service.NewAuthService(
		repository.NewUserRepository(ds),
		auth.NewTokenService("test-secret"),
		auth.NewSessionStore(kv),
	)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e, NewAuthHandler(authService)
}

func doJSON(e *echo.Echo, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "successful login",
			body:           `{"email":"asha@example.com","password":"buyer123"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           `{"email":"asha@example.com","password":"nope"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_CREDENTIAL",
		},
		{
			name:           "unknown user",
			body:           `{"email":"nobody@example.com","password":"whatever"}`,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "USER_NOT_FOUND",
		},
		{
			name:           "malformed email fails validation",
			body:           `{"email":"not-an-email","password":"whatever"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, h := newAuthTestServer(t)

			rec := doJSON(e, h.Login, http.MethodPost, "/api/auth/login", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp SessionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.NotNil(t, resp.Session)
				assert.NotEmpty(t, resp.Session.Token)
				assert.Equal(t, "user-1", resp.Session.User.ID)
				// The password never leaves the server.
				assert.NotContains(t, rec.Body.String(), "buyer123")
			}
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates the account and returns a live session", func(t *testing.T) {
		e, h := newAuthTestServer(t)

		body := `{"role":"seller","email":"new@example.com","password":"pw123456","name":"New Seller","businessName":"New Farm"}`
		rec := doJSON(e, h.Register, http.MethodPost, "/api/auth/register", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Session)
		assert.Equal(t, model.RoleSeller, resp.Session.User.Role)
		assert.Equal(t, "New Farm", resp.Session.User.BusinessName)
		assert.NotEmpty(t, resp.Session.Token)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		e, h := newAuthTestServer(t)

		body := `{"role":"buyer","email":"asha@example.com","password":"pw123456","name":"Dup"}`
		rec := doJSON(e, h.Register, http.MethodPost, "/api/auth/register", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "DUPLICATE_EMAIL")
	})

	t.Run("admin role is rejected by validation", func(t *testing.T) {
		e, h := newAuthTestServer(t)

		body := `{"role":"admin","email":"evil@example.com","password":"pw123456","name":"Evil"}`
		rec := doJSON(e, h.Register, http.MethodPost, "/api/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		e, h := newAuthTestServer(t)

		body := `{"role":"buyer","email":"new@example.com","password":"tiny","name":"New"}`
		rec := doJSON(e, h.Register, http.MethodPost, "/api/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_LogoutInvalidatesSession(t *testing.T) {
	e, h := newAuthTestServer(t)

	rec := doJSON(e, h.Login, http.MethodPost, "/api/auth/login", `{"email":"asha@example.com","password":"buyer123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	token := resp.Session.Token

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	logoutRec := httptest.NewRecorder()
	c := e.NewContext(req, logoutRec)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, logoutRec.Code)

	// Logging out twice stays a 200.
	again := httptest.NewRecorder()
	c = e.NewContext(req, again)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, again.Code)
}

func TestBearerToken(t *testing.T) {
	e := echo.New()

	t.Run("extracts the token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer abc.def.ghi")
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "abc.def.ghi", BearerToken(c))
	})

	t.Run("missing or malformed header is empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Empty(t, BearerToken(c))

		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwdw==")
		c = e.NewContext(req, httptest.NewRecorder())
		assert.Empty(t, BearerToken(c))
	})
}
