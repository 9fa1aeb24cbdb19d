package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ridehail/internal/delivery/http/validator"
	"ridehail/internal/domain/entity"
	domainerrors "ridehail/internal/domain/errors"
	"ridehail/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authUsecaseStub lets each test pin the behavior of the usecase boundary.
type authUsecaseStub struct {
	registerDriverFn func(context.Context, *usecase.RegisterDriverInput) (*usecase.RegisterOutput, error)
	loginFn          func(context.Context, *usecase.LoginInput) (*usecase.TokenPairOutput, error)
	refreshFn        func(context.Context, *usecase.RefreshInput) (*usecase.TokenPairOutput, error)
}

func (s *authUsecaseStub) RegisterDriver(ctx context.Context, input *usecase.RegisterDriverInput) (*usecase.RegisterOutput, error) {
	return s.registerDriverFn(ctx, input)
}

func (s *authUsecaseStub) RegisterPassenger(context.Context, *usecase.RegisterPassengerInput) (*usecase.RegisterOutput, error) {
	panic("not stubbed")
}

func (s *authUsecaseStub) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *authUsecaseStub) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	return s.refreshFn(ctx, input)
}

func (s *authUsecaseStub) Logout(context.Context, *usecase.LogoutInput) error {
	panic("not stubbed")
}

func (s *authUsecaseStub) ForgotPassword(context.Context, *usecase.ForgotPasswordInput) (*usecase.ForgotPasswordOutput, error) {
	panic("not stubbed")
}

func (s *authUsecaseStub) ResetPassword(context.Context, *usecase.ResetPasswordInput) error {
	panic("not stubbed")
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDriverAccount(input *usecase.RegisterDriverInput) *entity.Account {
	id := uuid.New()

	return &entity.Account{
		ID:           id,
		Email:        strings.ToLower(input.Email),
		Name:         input.Name,
		Role:         entity.RoleDriver,
		PasswordHash: "$2a$10$stored-digest",
		DriverProfile: &entity.DriverProfile{
			AccountID: id,
			Licence:   input.Licence,
			Phone:     input.Phone,
		},
		CreatedAt: time.Now(),
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &authUsecaseStub{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
			assert.Equal(t, "ada@example.com", input.Email)

			return &usecase.TokenPairOutput{
				AccessToken:  "access.jwt",
				RefreshToken: "refresh-token",
			}, nil
		},
	}
	h := NewAuthHandler(uc, testLogger())

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"Password123!"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access.jwt")
	assert.Contains(t, rec.Body.String(), "refresh-token")
}

func TestAuthHandler_Login_InvalidEmailRejected(t *testing.T) {
	h := NewAuthHandler(&authUsecaseStub{}, testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"not-an-email","password":"Password123!"}`)

	err := h.Login(c)

	// Validation failures surface as the application error and never reach
	// the usecase (the stub would panic).
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAuthHandler_RegisterDriver_ShortPasswordRejected(t *testing.T) {
	h := NewAuthHandler(&authUsecaseStub{}, testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/driver",
		`{"name":"Ada","email":"ada@example.com","password":"short","licence":"DL-1"}`)

	err := h.RegisterDriver(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAuthHandler_RegisterDriver_NoTokensInResponse(t *testing.T) {
	uc := &authUsecaseStub{
		registerDriverFn: func(_ context.Context, input *usecase.RegisterDriverInput) (*usecase.RegisterOutput, error) {
			return &usecase.RegisterOutput{Account: newTestDriverAccount(input)}, nil
		},
	}
	h := NewAuthHandler(uc, testLogger())

	c, rec := newTestContext(t, http.MethodPost, "/auth/driver",
		`{"name":"Ada","email":"ada@example.com","password":"Password123!","licence":"DL-1"}`)

	require.NoError(t, h.RegisterDriver(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	// Registration never issues credentials of any kind.
	body := rec.Body.String()
	assert.NotContains(t, body, "accessToken")
	assert.NotContains(t, body, "refreshToken")
	assert.NotContains(t, body, "passwordHash")
}

func TestAuthHandler_Refresh_InvalidTokenPropagates(t *testing.T) {
	uc := &authUsecaseStub{
		refreshFn: func(context.Context, *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
			return nil, domainerrors.ErrInvalidToken
		},
	}
	h := NewAuthHandler(uc, testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/refresh",
		`{"refreshToken":"stale"}`)

	err := h.Refresh(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
