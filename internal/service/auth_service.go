package service

import (
	"context"
	"errors"
	"fittrack_backend/internal/config"
	"fittrack_backend/internal/model"
	"fittrack_backend/internal/util"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is deliberately above bcrypt.DefaultCost; signup is rare enough
// that the extra hashing time is acceptable.
const bcryptCost = 12

// UserStore is the slice of UserRepository the auth and user services need.
type UserStore interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	DeleteCascade(userID uint) error
}

// RefreshTokenStore records issued refresh tokens so they can be revoked.
type RefreshTokenStore interface {
	Store(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

type AuthService struct {
	UserRepo  UserStore
	TokenRepo RefreshTokenStore
	Cfg       *config.Config
}

func NewAuthService(userRepo UserStore, tokenRepo RefreshTokenStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Cfg:       cfg,
	}
}

// Signup creates the account. The returned user carries the hash in memory
// only; the model never serializes it.
func (s *AuthService) Signup(email, password, username string) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.Create(user); err != nil {
		// Two signups for the same email can both pass the existence check;
		// the unique index decides, so its violation is a conflict, not a
		// server fault.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Login returns an access/refresh token pair. Missing user and wrong
// password are indistinguishable to the caller so accounts cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error) {
	user, err := s.UserRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", util.ErrInvalidCredentials
	}
	if err != nil {
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", util.ErrInvalidCredentials
	}

	accessToken, err = util.GenerateAccessToken(user.ID, user.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.AccessExpire)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = util.GenerateRefreshToken(user.ID, user.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.RefreshExpire)
	if err != nil {
		return "", "", err
	}

	if err := s.TokenRepo.Store(ctx, refreshToken, user.ID, s.Cfg.JWT.RefreshExpire); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh validates the refresh token and mints a new access token. Expired,
// malformed, wrong-typed, or revoked tokens all fail with ErrInvalidToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := util.ParseJWT(refreshToken, s.Cfg.JWT.Secret)
	if err != nil || claims.TokenType != util.TokenTypeRefresh {
		return "", util.ErrInvalidToken
	}

	ok, err := s.TokenRepo.Exists(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", util.ErrInvalidToken
	}

	return util.GenerateAccessToken(claims.UserID, claims.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.AccessExpire)
}

// Logout revokes the refresh token. The access token stays valid until its
// short expiry; clients drop it.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := util.ParseJWT(refreshToken, s.Cfg.JWT.Secret)
	if err != nil || claims.TokenType != util.TokenTypeRefresh {
		return util.ErrInvalidToken
	}
	return s.TokenRepo.Revoke(ctx, refreshToken)
}
