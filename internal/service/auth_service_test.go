package service

import (
	"context"
	"errors"
	"fittrack_backend/internal/model"
	"fittrack_backend/internal/util"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Test hashes use bcrypt.MinCost; the production cost only matters for
// timing, not correctness.
func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := &mockUserStore{
		FindByEmailFn: func(email string) (*model.User, error) {
			return &model.User{Email: email}, nil
		},
	}
	svc := NewAuthService(users, &mockTokenStore{}, testConfig())

	_, err := svc.Signup("taken@example.com", "password123", "someone")
	if !errors.Is(err, util.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestSignupStoreFailurePassesThrough(t *testing.T) {
	dbDown := errors.New("connection refused")
	users := &mockUserStore{
		FindByEmailFn: func(email string) (*model.User, error) {
			return nil, dbDown
		},
	}
	svc := NewAuthService(users, &mockTokenStore{}, testConfig())

	_, err := svc.Signup("new@example.com", "password123", "someone")
	if !errors.Is(err, dbDown) {
		t.Fatalf("err = %v, want the store error", err)
	}
}

func TestSignupHashesPassword(t *testing.T) {
	var created *model.User
	users := &mockUserStore{
		CreateFn: func(user *model.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := NewAuthService(users, &mockTokenStore{}, testConfig())

	user, err := svc.Signup("new@example.com", "password123", "newbie")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if created == nil {
		t.Fatal("user was never persisted")
	}
	if user.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
}

func TestSignupDuplicateKeyOnCreate(t *testing.T) {
	// Two concurrent signups can both pass the existence check; the unique
	// index rejects the loser and the caller still sees a conflict.
	users := &mockUserStore{
		CreateFn: func(user *model.User) error {
			return gorm.ErrDuplicatedKey
		},
	}
	svc := NewAuthService(users, &mockTokenStore{}, testConfig())

	_, err := svc.Signup("raced@example.com", "password123", "someone")
	if !errors.Is(err, util.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserStore{}, &mockTokenStore{}, testConfig())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginStoreFailurePassesThrough(t *testing.T) {
	// An unreachable database is a server fault; it must not be dressed up
	// as bad credentials.
	dbDown := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	users := &mockUserStore{
		FindByEmailFn: func(email string) (*model.User, error) {
			return nil, dbDown
		},
	}
	svc := NewAuthService(users, &mockTokenStore{}, testConfig())

	_, _, err := svc.Login(context.Background(), "user@example.com", "password123")
	if errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatal("store failure was reported as invalid credentials")
	}
	if !errors.Is(err, dbDown) {
		t.Fatalf("err = %v, want the store error", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := &mockUserStore{
		FindByEmailFn: func(email string) (*model.User, error) {
			return &model.User{
				BaseModel: model.BaseModel{ID: 1},
				Email:     email,
				Password:  hashFor(t, "correct-password"),
			}, nil
		},
	}
	svc := NewAuthService(users, &mockTokenStore{}, testConfig())

	_, _, err := svc.Login(context.Background(), "user@example.com", "wrong-password")
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	cfg := testConfig()
	users := &mockUserStore{
		FindByEmailFn: func(email string) (*model.User, error) {
			return &model.User{
				BaseModel: model.BaseModel{ID: 9},
				Email:     email,
				Password:  hashFor(t, "password123"),
			}, nil
		},
	}
	var storedToken string
	var storedTTL time.Duration
	tokens := &mockTokenStore{
		StoreFn: func(ctx context.Context, token string, userID uint, ttl time.Duration) error {
			storedToken = token
			storedTTL = ttl
			return nil
		},
	}
	svc := NewAuthService(users, tokens, cfg)

	access, refresh, err := svc.Login(context.Background(), "user@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	accessClaims, err := util.ParseJWT(access, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if accessClaims.TokenType != util.TokenTypeAccess || accessClaims.UserID != 9 {
		t.Errorf("access claims = %+v", accessClaims)
	}

	refreshClaims, err := util.ParseJWT(refresh, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse refresh token: %v", err)
	}
	if refreshClaims.TokenType != util.TokenTypeRefresh {
		t.Errorf("refresh token type = %q", refreshClaims.TokenType)
	}

	if storedToken != refresh {
		t.Error("refresh token was not recorded for revocation")
	}
	if storedTTL != cfg.JWT.RefreshExpire {
		t.Errorf("stored ttl = %v, want %v", storedTTL, cfg.JWT.RefreshExpire)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(&mockUserStore{}, &mockTokenStore{}, cfg)

	access, err := util.GenerateAccessToken(1, "user@example.com", cfg.JWT.Secret, cfg.JWT.AccessExpire)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = svc.Refresh(context.Background(), access)
	if !errors.Is(err, util.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshRejectsRevokedToken(t *testing.T) {
	cfg := testConfig()
	tokens := &mockTokenStore{
		ExistsFn: func(ctx context.Context, token string) (bool, error) {
			return false, nil
		},
	}
	svc := NewAuthService(&mockUserStore{}, tokens, cfg)

	refresh, err := util.GenerateRefreshToken(1, "user@example.com", cfg.JWT.Secret, cfg.JWT.RefreshExpire)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	_, err = svc.Refresh(context.Background(), refresh)
	if !errors.Is(err, util.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshMintsAccessToken(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(&mockUserStore{}, &mockTokenStore{}, cfg)

	refresh, err := util.GenerateRefreshToken(5, "user@example.com", cfg.JWT.Secret, cfg.JWT.RefreshExpire)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	access, err := svc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	claims, err := util.ParseJWT(access, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.TokenType != util.TokenTypeAccess || claims.UserID != 5 {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	cfg := testConfig()
	var revoked string
	tokens := &mockTokenStore{
		RevokeFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	svc := NewAuthService(&mockUserStore{}, tokens, cfg)

	refresh, err := util.GenerateRefreshToken(5, "user@example.com", cfg.JWT.Secret, cfg.JWT.RefreshExpire)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if err := svc.Logout(context.Background(), refresh); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if revoked != refresh {
		t.Error("refresh token was not revoked")
	}
}

func TestLogoutRejectsGarbage(t *testing.T) {
	svc := NewAuthService(&mockUserStore{}, &mockTokenStore{}, testConfig())

	if err := svc.Logout(context.Background(), "not-a-token"); !errors.Is(err, util.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
