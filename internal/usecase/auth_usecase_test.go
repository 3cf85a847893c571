package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"therapy-booking/config"
	"therapy-booking/internal/domain/entity"
	"therapy-booking/internal/repository"
	"therapy-booking/pkg/autherr"
	"therapy-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memoryTokenStore struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{keys: make(map[string]bool)}
}

func (s *memoryTokenStore) StoreRefreshToken(_ context.Context, userID uuid.UUID, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[userID.String()+":"+tokenID] = true
	return nil
}

func (s *memoryTokenStore) RefreshTokenActive(_ context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[userID.String()+":"+tokenID], nil
}

func newJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func newAuthUsecase(t *testing.T) (AuthUsecase, *jwt.JWTService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	jwtService := newJWTService()
	uc := NewAuthUsecase(db, newTestLogger(), repository.NewUserRepository(), jwtService, newMemoryTokenStore())
	return uc, jwtService, db
}

func createUser(t *testing.T, db *gorm.DB, username, password string) *entity.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := entity.User{
		Username: username,
		Password: string(hashed),
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestLoginIssuesAccessAndRefreshTokens(t *testing.T) {
	uc, jwtService, db := newAuthUsecase(t)
	user := createUser(t, db, "admin", "hunter2")

	pair, err := uc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := jwtService.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, jwt.AccessToken, accessClaims.TokenType)
	require.Equal(t, user.ID, accessClaims.UserID)

	refreshClaims, err := jwtService.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, jwt.RefreshToken, refreshClaims.TokenType)
}

func TestLoginFailureDoesNotLeakWhichHalfWasWrong(t *testing.T) {
	uc, _, db := newAuthUsecase(t)
	createUser(t, db, "admin", "hunter2")

	_, err := uc.Login(context.Background(), "admin", "wrong-password")
	require.ErrorIs(t, err, autherr.InvalidCredentials)

	_, err = uc.Login(context.Background(), "nobody", "hunter2")
	require.ErrorIs(t, err, autherr.InvalidCredentials)
}

func TestRefreshMintsDistinctAccessTokens(t *testing.T) {
	uc, jwtService, db := newAuthUsecase(t)
	user := createUser(t, db, "admin", "hunter2")

	pair, err := uc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	first, err := uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	// the same refresh token keeps working; each refresh yields a new value
	second, err := uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	claims, err := jwtService.ValidateToken(second)
	require.NoError(t, err)
	require.Equal(t, jwt.AccessToken, claims.TokenType)
	require.Equal(t, user.ID, claims.UserID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	uc, _, db := newAuthUsecase(t)
	createUser(t, db, "admin", "hunter2")

	pair, err := uc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), pair.AccessToken)
	require.ErrorIs(t, err, autherr.InvalidToken)
}

func TestRefreshRejectsUnregisteredRefreshToken(t *testing.T) {
	uc, jwtService, _ := newAuthUsecase(t)

	// a signed refresh token that never went through Login
	token, _, err := jwtService.GenerateRefreshToken(uuid.New(), "ghost")
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), token)
	require.ErrorIs(t, err, autherr.InvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	uc, _, _ := newAuthUsecase(t)

	_, err := uc.Refresh(context.Background(), "not-a-token")
	require.ErrorIs(t, err, autherr.InvalidToken)
}
