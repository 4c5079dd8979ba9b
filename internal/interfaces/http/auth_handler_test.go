package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rahulxkr/storekart-api/internal/application/auth"
	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	apphttp "github.com/rahulxkr/storekart-api/internal/interfaces/http"
)

// memAdminRepo is just enough of the account repository for session tests.
type memAdminRepo struct {
	rows map[string]*entity.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{rows: map[string]*entity.Admin{}}
}

func (r *memAdminRepo) Create(_ context.Context, a *entity.Admin) error {
	r.rows[a.ID] = a
	return nil
}

func (r *memAdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	a, ok := r.rows[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, a := range r.rows {
		if a.Email == email && !a.IsDeleted {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAdminRepo) List(_ context.Context, _, _ int) ([]*entity.Admin, error) {
	return nil, nil
}

func (r *memAdminRepo) ListActive(_ context.Context, _, _ int) ([]*entity.Admin, error) {
	return nil, nil
}

func (r *memAdminRepo) Update(_ context.Context, a *entity.Admin) error {
	stored, ok := r.rows[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *a
	cp.PasswordHash = stored.PasswordHash
	cp.RefreshToken = stored.RefreshToken
	r.rows[a.ID] = &cp
	return nil
}

func (r *memAdminRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	a, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.PasswordHash = passwordHash
	return nil
}

func (r *memAdminRepo) UpdateRefreshToken(_ context.Context, id, refreshToken string) error {
	a, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.RefreshToken = refreshToken
	return nil
}

func (r *memAdminRepo) SoftDelete(_ context.Context, id string) error {
	a, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if a.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	a.IsDeleted = true
	return nil
}

func (r *memAdminRepo) HardDelete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memAdminRepo) EmailExists(_ context.Context, _, _ string, _ bool) (bool, error) {
	return false, nil
}

func (r *memAdminRepo) PhoneExists(_ context.Context, _, _ string, _ bool) (bool, error) {
	return false, nil
}

func (r *memAdminRepo) PANExists(_ context.Context, _, _ string, _ bool) (bool, error) {
	return false, nil
}

// buildAuthApp registers the session routes against a fake-backed use case
// and seeds one active admin account.
func buildAuthApp(t *testing.T) (*fiber.App, *memAdminRepo) {
	t.Helper()
	admins := newMemAdminRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	admins.rows[testAdminID] = &entity.Admin{
		ID:           testAdminID,
		Name:         "Root Admin",
		Email:        "root@storekart.test",
		PasswordHash: string(hash),
		Status:       entity.StatusActive,
		Role:         &entity.Role{ID: "role-admin", Name: entity.RoleNameAdmin},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	uc := auth.NewSessionUseCase(admins, testTokens(), bcrypt.MinCost)
	handler := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/v1/auth/login", handler.Login)
	app.Post("/api/v1/auth/refresh", handler.Refresh)
	app.Post("/api/v1/auth/logout", apphttp.AuthMiddleware(testTokens()), handler.Logout)
	app.Post("/api/v1/auth/change-password", apphttp.AuthMiddleware(testTokens()), handler.ChangePassword)
	return app, admins
}

func postJSON(t *testing.T, app *fiber.App, path, authHeader string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginReturnsTokenPair(t *testing.T) {
	app, admins := buildAuthApp(t)

	resp := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "secret123",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, testAdminID, out.Admin.ID)
	assert.Equal(t, "root@storekart.test", out.Admin.Email)

	// The refresh token is persisted on the account.
	assert.Equal(t, out.RefreshToken, admins.rows[testAdminID].RefreshToken)
}

func TestLoginMixedCaseEmail(t *testing.T) {
	app, _ := buildAuthApp(t)

	resp := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "Root@Storekart.TEST",
		Password: "secret123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := buildAuthApp(t)

	resp := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "wrong-password",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmailSameStatusAsWrongPassword(t *testing.T) {
	app, _ := buildAuthApp(t)

	resp := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "nobody@storekart.test",
		Password: "secret123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginBlockedAccount(t *testing.T) {
	app, admins := buildAuthApp(t)
	admins.rows[testAdminID].Status = entity.StatusBlocked

	resp := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "secret123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := buildAuthApp(t)

	resp := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{Email: "root@storekart.test"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRefreshRotatesPair(t *testing.T) {
	app, admins := buildAuthApp(t)

	login := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "secret123",
	})
	defer login.Body.Close()
	var session dto.LoginResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&session))

	resp := postJSON(t, app, "/api/v1/auth/refresh", "", dto.RefreshRequest{RefreshToken: session.RefreshToken})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pair dto.TokenPairResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pair))
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, pair.RefreshToken, admins.rows[testAdminID].RefreshToken)

	// The old refresh token no longer matches the persisted one.
	replay := postJSON(t, app, "/api/v1/auth/refresh", "", dto.RefreshRequest{RefreshToken: session.RefreshToken})
	defer replay.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, replay.StatusCode)
}

func TestRefreshAfterLogout(t *testing.T) {
	app, _ := buildAuthApp(t)

	login := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "secret123",
	})
	defer login.Body.Close()
	var session dto.LoginResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&session))

	logout := postJSON(t, app, "/api/v1/auth/logout", "Bearer "+session.AccessToken, fiber.Map{})
	defer logout.Body.Close()
	require.Equal(t, http.StatusOK, logout.StatusCode)

	// Signature still valid, but the stored token is cleared.
	resp := postJSON(t, app, "/api/v1/auth/refresh", "", dto.RefreshRequest{RefreshToken: session.RefreshToken})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePassword(t *testing.T) {
	app, _ := buildAuthApp(t)

	login := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "secret123",
	})
	defer login.Body.Close()
	var session dto.LoginResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&session))

	resp := postJSON(t, app, "/api/v1/auth/change-password", "Bearer "+session.AccessToken, dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "brand-new-secret",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Old password stops working, the new one logs in.
	old := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{Email: "root@storekart.test", Password: "secret123"})
	defer old.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, old.StatusCode)

	fresh := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{Email: "root@storekart.test", Password: "brand-new-secret"})
	defer fresh.Body.Close()
	assert.Equal(t, http.StatusOK, fresh.StatusCode)
}

func TestChangePasswordWrongOld(t *testing.T) {
	app, _ := buildAuthApp(t)

	login := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "secret123",
	})
	defer login.Body.Close()
	var session dto.LoginResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&session))

	resp := postJSON(t, app, "/api/v1/auth/change-password", "Bearer "+session.AccessToken, dto.ChangePasswordRequest{
		OldPassword: "not-the-password",
		NewPassword: "brand-new-secret",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordTooShort(t *testing.T) {
	app, _ := buildAuthApp(t)

	login := postJSON(t, app, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@storekart.test",
		Password: "secret123",
	})
	defer login.Body.Close()
	var session dto.LoginResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&session))

	resp := postJSON(t, app, "/api/v1/auth/change-password", "Bearer "+session.AccessToken, dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "short",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
