package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rahulxkr/storekart-api/internal/application/auth"
	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/pkg/jwt"
)

// fakeAdminRepo is an in-memory AdminRepository. Find methods honor the
// soft-delete gate the same way the postgres implementation does.
type fakeAdminRepo struct {
	admins map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*entity.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, a *entity.Admin) error {
	r.admins[a.ID] = a
	return nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	a, ok := r.admins[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	return a, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email && !a.IsDeleted {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) List(_ context.Context, _, _ int) ([]*entity.Admin, error) {
	var out []*entity.Admin
	for _, a := range r.admins {
		if !a.IsDeleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAdminRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Admin, error) {
	all, _ := r.List(ctx, limit, offset)
	var out []*entity.Admin
	for _, a := range all {
		if a.Status == entity.StatusActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAdminRepo) Update(_ context.Context, a *entity.Admin) error {
	stored, ok := r.admins[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// General updates never touch credentials, same contract as postgres.
	hash, token := stored.PasswordHash, stored.RefreshToken
	*stored = *a
	stored.PasswordHash = hash
	stored.RefreshToken = token
	return nil
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, id, hash string) error {
	a, ok := r.admins[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (r *fakeAdminRepo) UpdateRefreshToken(_ context.Context, id, token string) error {
	a, ok := r.admins[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.RefreshToken = token
	return nil
}

func (r *fakeAdminRepo) SoftDelete(_ context.Context, id string) error {
	a, ok := r.admins[id]
	if !ok {
		return domain.ErrNotFound
	}
	if a.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	a.IsDeleted = true
	return nil
}

func (r *fakeAdminRepo) HardDelete(_ context.Context, id string) error {
	delete(r.admins, id)
	return nil
}

func (r *fakeAdminRepo) EmailExists(_ context.Context, email, excludeID string, activeOnly bool) (bool, error) {
	for _, a := range r.admins {
		if a.Email == email && a.ID != excludeID && (!activeOnly || !a.IsDeleted) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAdminRepo) PhoneExists(_ context.Context, phone, excludeID string, activeOnly bool) (bool, error) {
	for _, a := range r.admins {
		if a.Phone == phone && a.ID != excludeID && (!activeOnly || !a.IsDeleted) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAdminRepo) PANExists(_ context.Context, pan, excludeID string, activeOnly bool) (bool, error) {
	for _, a := range r.admins {
		if a.PANNumber == pan && a.ID != excludeID && (!activeOnly || !a.IsDeleted) {
			return true, nil
		}
	}
	return false, nil
}

func tokenConfig() jwt.Config {
	return jwt.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    10 * time.Hour,
		Issuer:        "storekart-test",
	}
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, email, password string) *entity.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	a := &entity.Admin{
		ID:           "admin-" + email,
		Name:         "Test Admin",
		Email:        email,
		Phone:        "9876543210",
		PasswordHash: string(hash),
		RoleID:       "role-1",
		Status:       entity.StatusActive,
		Role:         &entity.Role{ID: "role-1", Name: entity.RoleNameAdmin, Status: entity.StatusActive},
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, admin.ID, out.Admin.ID)

	// The refresh token must be persisted on the account row.
	assert.Equal(t, out.RefreshToken, repo.admins[admin.ID].RefreshToken)

	// Access token carries identity and role.
	adminID, role, err := tokenConfig().ParseAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, adminID)
	assert.Equal(t, entity.RoleNameAdmin, role)
}

// Accounts are stored with a lowercased email; login must accept any casing
// and surrounding whitespace.
func TestLogin_EmailCaseInsensitive(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "A@X.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, out.Admin.ID)

	out, err = uc.Login(context.Background(), dto.LoginRequest{Email: "  a@x.com  ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, out.Admin.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, repo.admins[admin.ID].RefreshToken, "failed login must not open a session")
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_UnknownEmail_SameErrorAsWrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	_, errWrongPw := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestLogin_BlockedAccount(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	admin.Status = entity.StatusBlocked
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_SoftDeletedAccountInvisible(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	admin.IsDeleted = true
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SecondLoginOverwritesRefreshToken(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	first, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	second, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, second.RefreshToken, repo.admins[admin.ID].RefreshToken)
}

func TestLogout_ClearsTokenAndIsIdempotent(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, repo.admins[admin.ID].RefreshToken)

	require.NoError(t, uc.Logout(context.Background(), admin.ID))
	assert.Empty(t, repo.admins[admin.ID].RefreshToken)

	// Second logout is not an error.
	assert.NoError(t, uc.Logout(context.Background(), admin.ID))
}

func TestLogout_UnknownAccount(t *testing.T) {
	uc := auth.NewSessionUseCase(newFakeAdminRepo(), tokenConfig(), bcrypt.MinCost)
	assert.ErrorIs(t, uc.Logout(context.Background(), "missing"), domain.ErrNotFound)
}

func TestChangePassword_WrongCurrentLeavesHash(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	before := admin.PasswordHash
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	err := uc.ChangePassword(context.Background(), admin.ID, "wrong", "newpassword")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, before, repo.admins[admin.ID].PasswordHash)
}

func TestChangePassword_Success(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	require.NoError(t, uc.ChangePassword(context.Background(), admin.ID, "secret1", "newpassword"))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "old password must stop working")
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "newpassword"})
	assert.NoError(t, err)
}

// ChangePassword does not invalidate the refresh token (accepted limitation).
func TestChangePassword_KeepsRefreshToken(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, uc.ChangePassword(context.Background(), admin.ID, "secret1", "newpassword"))
	assert.Equal(t, out.RefreshToken, repo.admins[admin.ID].RefreshToken)
}

// Unrelated profile updates must never touch the stored hash.
func TestUpdate_DoesNotRehashPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	before := admin.PasswordHash

	changed := *admin
	changed.Name = "Renamed Admin"
	changed.PasswordHash = "should-be-ignored"
	require.NoError(t, repo.Update(context.Background(), &changed))

	assert.Equal(t, "Renamed Admin", repo.admins[admin.ID].Name)
	assert.Equal(t, before, repo.admins[admin.ID].PasswordHash)
}

func TestRefresh_RotatesPair(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	pair, err := uc.Refresh(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, out.RefreshToken, pair.RefreshToken)
	assert.Equal(t, pair.RefreshToken, repo.admins[admin.ID].RefreshToken)

	// The old refresh token no longer matches the persisted one.
	_, err = uc.Refresh(context.Background(), out.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_AfterLogoutRejected(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, uc.Logout(context.Background(), admin.ID))

	_, err = uc.Refresh(context.Background(), out.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_GarbageTokenRejected(t *testing.T) {
	uc := auth.NewSessionUseCase(newFakeAdminRepo(), tokenConfig(), bcrypt.MinCost)
	_, err := uc.Refresh(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestToAdminResponse_Sanitized(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "a@x.com", "secret1")
	uc := auth.NewSessionUseCase(repo, tokenConfig(), bcrypt.MinCost)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// The projection type has no password or refresh token field at all;
	// spot-check the values that do cross the boundary.
	assert.Equal(t, "a@x.com", out.Admin.Email)
	assert.NotNil(t, out.Admin.Role)
	assert.Equal(t, entity.RoleNameAdmin, out.Admin.Role.Name)
}
