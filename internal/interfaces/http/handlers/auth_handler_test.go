package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/middleware"
	"github.com/InusahIbraheem/solid-life-web/pkg/jwt"
)

type authServiceStub struct {
	registerFn       func(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error)
	loginFn          func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	refreshFn        func(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	changePasswordFn func(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error
	getUserFn        func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (s authServiceStub) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	return s.registerFn(ctx, input)
}
func (s authServiceStub) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}
func (s authServiceStub) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}
func (s authServiceStub) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	return s.changePasswordFn(ctx, userID, input)
}
func (s authServiceStub) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUserFn(ctx, id)
}

func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func TestAuthHandler_RegisterAndLoginMappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	service := authServiceStub{
		registerFn: func(_ context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
			if input.Email == "taken@example.com" {
				return nil, domainerrors.ErrAlreadyExists
			}
			if input.SponsorCode == "NOPE" {
				return nil, domainerrors.ErrNotFound
			}
			return &entities.AuthResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         &entities.User{ID: userID, Email: input.Email},
			}, nil
		},
		loginFn: func(_ context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
			switch input.Email {
			case "suspended@example.com":
				return nil, domainerrors.ErrAccountSuspended
			case "member@example.com":
				if input.Password != "correct-horse" {
					return nil, domainerrors.ErrInvalidCredentials
				}
				return &entities.AuthResponse{AccessToken: "access", User: &entities.User{ID: userID}}, nil
			default:
				return nil, domainerrors.ErrInvalidCredentials
			}
		},
	}

	h := NewAuthHandler(service)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	post := func(path string, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	registerBody := `{"email":"new@example.com","firstName":"Ada","lastName":"Obi","password":"longenough","sponsorCode":"SL-AAAA"}`
	if w := post("/auth/register", registerBody); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	// Duplicate email maps to conflict
	dupBody := `{"email":"taken@example.com","firstName":"Ada","lastName":"Obi","password":"longenough"}`
	if w := post("/auth/register", dupBody); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown sponsor code maps to not found
	badSponsor := `{"email":"x@example.com","firstName":"Ada","lastName":"Obi","password":"longenough","sponsorCode":"NOPE"}`
	if w := post("/auth/register", badSponsor); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	// Binding failure: password too short
	if w := post("/auth/register", `{"email":"x@example.com","firstName":"Ada","lastName":"Obi","password":"short"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	if w := post("/auth/login", `{"email":"member@example.com","password":"correct-horse"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post("/auth/login", `{"email":"member@example.com","password":"wrong"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post("/auth/login", `{"email":"suspended@example.com","password":"whatever1"}`); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_MeAndChangePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	service := authServiceStub{
		getUserFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			if id == userID {
				return &entities.User{ID: id, Email: "member@example.com"}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
		changePasswordFn: func(_ context.Context, _ uuid.UUID, input *entities.ChangePasswordInput) error {
			if input.CurrentPassword == "wrongpass" {
				return domainerrors.ErrInvalidCredentials
			}
			return nil
		},
		refreshFn: func(_ context.Context, token string) (*jwt.TokenPair, error) {
			if token == "expired" {
				return nil, domainerrors.ErrTokenExpired
			}
			if token == "boom" {
				return nil, errors.New("refresh boom")
			}
			return &jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		},
	}

	h := NewAuthHandler(service)
	r := gin.New()
	r.GET("/auth/me", withUser(userID), h.Me)
	r.GET("/auth/me-anon", h.Me)
	r.POST("/auth/change-password", withUser(userID), h.ChangePassword)
	r.POST("/auth/refresh", h.RefreshToken)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// No identity in context
	req = httptest.NewRequest(http.MethodGet, "/auth/me-anon", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := post("/auth/change-password", `{"currentPassword":"oldpassword","newPassword":"newpassword"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post("/auth/change-password", `{"currentPassword":"wrongpass","newPassword":"newpassword"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}

	if w := post("/auth/refresh", `{"refreshToken":"valid"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post("/auth/refresh", `{"refreshToken":"expired"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post("/auth/refresh", `{"refreshToken":"boom"}`); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post("/auth/refresh", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}
