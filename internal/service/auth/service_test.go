package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtauth "github.com/liam-m3/divorce-companion/internal/auth"
	"github.com/liam-m3/divorce-companion/internal/config"
	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/pkg/ctxutil"
)

// ============================================================
// Mocks
// ============================================================

type mockUserRepo struct {
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, u *domain.User) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u, nil
}

type mockProfileRepo struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

func (m *mockProfileRepo) Create(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID)
	}
	return &domain.Profile{UserID: userID}, nil
}

type mockTokenRepo struct {
	CreateFunc           func(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHashFunc        func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeFunc           func(ctx context.Context, tokenID uuid.UUID, now time.Time) error
	RevokeAllForUserFunc func(ctx context.Context, userID uuid.UUID, now time.Time) error
	DeleteExpiredFunc    func(ctx context.Context, now time.Time) (int, error)
}

func (m *mockTokenRepo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t, nil
}

func (m *mockTokenRepo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if m.GetByHashFunc != nil {
		return m.GetByHashFunc(ctx, tokenHash)
	}
	return nil, domain.ErrNotFound
}

func (m *mockTokenRepo) Revoke(ctx context.Context, tokenID uuid.UUID, now time.Time) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, tokenID, now)
	}
	return nil
}

func (m *mockTokenRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID, now time.Time) error {
	if m.RevokeAllForUserFunc != nil {
		return m.RevokeAllForUserFunc(ctx, userID, now)
	}
	return nil
}

func (m *mockTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, now)
	}
	return 0, nil
}

type mockTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

// ============================================================
// Helpers
// ============================================================

type testDeps struct {
	users    *mockUserRepo
	profiles *mockProfileRepo
	tokens   *mockTokenRepo
	tx       *mockTxManager
}

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:        "test-secret-that-is-long-enough-0",
		JWTIssuer:        "divorce-companion-test",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newTestService() (*Service, testDeps) {
	deps := testDeps{
		users:    &mockUserRepo{},
		profiles: &mockProfileRepo{},
		tokens:   &mockTokenRepo{},
		tx:       &mockTxManager{},
	}
	cfg := testCfg()
	jwt := jwtauth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	svc := NewService(slog.Default(), deps.users, deps.profiles, deps.tokens, deps.tx, jwt, cfg)
	return svc, deps
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ============================================================
// Register
// ============================================================

func TestService_Register_HappyPath(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()

	var createdUser *domain.User
	deps.users.CreateFunc = func(ctx context.Context, u *domain.User) (*domain.User, error) {
		createdUser = u
		return u, nil
	}

	var profileUserID uuid.UUID
	deps.profiles.CreateFunc = func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
		profileUserID = userID
		return &domain.Profile{UserID: userID}, nil
	}

	var storedToken *domain.RefreshToken
	deps.tokens.CreateFunc = func(ctx context.Context, tok *domain.RefreshToken) (*domain.RefreshToken, error) {
		storedToken = tok
		return tok, nil
	}

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Liam@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NotNil(t, createdUser)
	assert.Equal(t, "liam@example.com", createdUser.Email)
	assert.NotEmpty(t, createdUser.PasswordHash)
	assert.NotEqual(t, "correct horse", createdUser.PasswordHash)
	assert.Equal(t, createdUser.ID, profileUserID)

	require.NotNil(t, storedToken)
	assert.Equal(t, createdUser.ID, storedToken.UserID)
	assert.Equal(t, jwtauth.HashToken(result.RefreshToken), storedToken.TokenHash)
	assert.True(t, storedToken.ExpiresAt.After(time.Now().Add(700*time.Hour)))

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, createdUser, result.User)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	deps.users.CreateFunc = func(ctx context.Context, u *domain.User) (*domain.User, error) {
		return nil, domain.ErrAlreadyExists
	}

	tokensIssued := false
	deps.tokens.CreateFunc = func(ctx context.Context, tok *domain.RefreshToken) (*domain.RefreshToken, error) {
		tokensIssued = true
		return tok, nil
	}

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.False(t, tokensIssued)
}

func TestService_Register_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing email", RegisterInput{Password: "correct horse"}},
		{"invalid email", RegisterInput{Email: "not-an-email", Password: "correct horse"}},
		{"missing password", RegisterInput{Email: "a@example.com"}},
		{"short password", RegisterInput{Email: "a@example.com", Password: "short"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, deps := newTestService()
			txCalled := false
			deps.tx.RunInTxFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
				txCalled = true
				return fn(ctx)
			}

			_, err := svc.Register(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.False(t, txCalled)
		})
	}
}

// ============================================================
// Login
// ============================================================

func TestService_Login_HappyPath(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "liam@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
	}
	deps.users.GetByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		assert.Equal(t, "liam@example.com", email)
		return user, nil
	}

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "LIAM@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, user, result.User)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	deps.users.GetByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: hashPassword(t, "correct horse"),
		}, nil
	}

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "liam@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	// GetByEmail defaults to ErrNotFound; the caller must not be able to
	// tell an unknown email from a wrong password.
	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ============================================================
// Refresh
// ============================================================

func TestService_Refresh_RotatesToken(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()

	user := &domain.User{ID: uuid.New(), Email: "liam@example.com"}
	raw := "raw-refresh-token"
	stored := &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: jwtauth.HashToken(raw),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	deps.tokens.GetByHashFunc = func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
		assert.Equal(t, jwtauth.HashToken(raw), tokenHash)
		return stored, nil
	}
	deps.users.GetByIDFunc = func(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
		assert.Equal(t, user.ID, userID)
		return user, nil
	}

	var revokedID uuid.UUID
	deps.tokens.RevokeFunc = func(ctx context.Context, tokenID uuid.UUID, now time.Time) error {
		revokedID = tokenID
		return nil
	}

	var newToken *domain.RefreshToken
	deps.tokens.CreateFunc = func(ctx context.Context, tok *domain.RefreshToken) (*domain.RefreshToken, error) {
		newToken = tok
		return tok, nil
	}

	result, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: raw})
	require.NoError(t, err)

	assert.Equal(t, stored.ID, revokedID)
	require.NotNil(t, newToken)
	assert.NotEqual(t, stored.TokenHash, newToken.TokenHash)
	assert.Equal(t, jwtauth.HashToken(result.RefreshToken), newToken.TokenHash)
	assert.NotEmpty(t, result.AccessToken)
}

func TestService_Refresh_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	deps.tokens.GetByHashFunc = func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
		return &domain.RefreshToken{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil
	}

	revoked := false
	deps.tokens.RevokeFunc = func(ctx context.Context, tokenID uuid.UUID, now time.Time) error {
		revoked = true
		return nil
	}

	_, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: "stale"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, revoked)
}

func TestService_Refresh_RevokedToken(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	revokedAt := time.Now().Add(-time.Hour)
	deps.tokens.GetByHashFunc = func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
		return &domain.RefreshToken{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(time.Hour),
			RevokedAt: &revokedAt,
		}, nil
	}

	_, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: "revoked"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_Refresh_UnknownToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: "unknown"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ============================================================
// Logout / ValidateToken / Cleanup
// ============================================================

func TestService_Logout_RevokesAllTokens(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	userID := uuid.New()

	var revokedFor uuid.UUID
	deps.tokens.RevokeAllForUserFunc = func(ctx context.Context, id uuid.UUID, now time.Time) error {
		revokedFor = id
		return nil
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)
	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, userID, revokedFor)
}

func TestService_Logout_NoUserInContext(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	err := svc.Logout(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_ValidateToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	cfg := testCfg()
	jwt := jwtauth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	userID := uuid.New()
	token, err := jwt.GenerateAccessToken(userID)
	require.NoError(t, err)

	got, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = svc.ValidateToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_CleanupExpiredTokens(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	deps.tokens.DeleteExpiredFunc = func(ctx context.Context, now time.Time) (int, error) {
		return 7, nil
	}

	count, err := svc.CleanupExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestService_CleanupExpiredTokens_Error(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	deps.tokens.DeleteExpiredFunc = func(ctx context.Context, now time.Time) (int, error) {
		return 0, errors.New("db down")
	}

	_, err := svc.CleanupExpiredTokens(context.Background())
	assert.Error(t, err)
}
