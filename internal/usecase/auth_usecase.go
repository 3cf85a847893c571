package usecase

import (
	"context"
	"time"

	"therapy-booking/internal/domain/repository"
	"therapy-booking/pkg/autherr"
	"therapy-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenStore records refresh tokens issued at login so a refresh token can be
// checked for liveness before it mints new access tokens.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	RefreshTokenActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	// Login verifies the username/password pair and issues an access and a
	// refresh token. A missing user and a wrong password both fail with the
	// same generic credential error.
	Login(ctx context.Context, username, password string) (*TokenPair, error)

	// Refresh mints a new access token from a valid, still-live refresh
	// token. The refresh token is not rotated; presenting it again keeps
	// working until it expires. An access token presented here fails.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	tokenStore TokenStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokenStore TokenStore,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, autherr.InvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, autherr.InvalidCredentials
	}

	accessToken, _, err := u.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.StoreRefreshToken(ctx, user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		u.log.Warnf("Token decoding error: %+v", err)
		return "", autherr.InvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return "", autherr.InvalidToken
	}

	active, err := u.tokenStore.RefreshTokenActive(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token liveness: %+v", err)
		return "", err
	}
	if !active {
		return "", autherr.InvalidToken
	}

	accessToken, _, err := u.jwtService.GenerateAccessToken(claims.UserID, claims.Username)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return "", err
	}

	return accessToken, nil
}
