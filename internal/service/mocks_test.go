package service

import (
	"context"
	"fittrack_backend/internal/config"
	"fittrack_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// Function-field mocks for the store interfaces. Unset read funcs report
// gorm.ErrRecordNotFound, unset write funcs succeed.

type mockUserStore struct {
	CreateFn        func(user *model.User) error
	FindByIDFn      func(id uint) (*model.User, error)
	FindByEmailFn   func(email string) (*model.User, error)
	UpdateFn        func(user *model.User) error
	DeleteCascadeFn func(userID uint) error
}

func (m *mockUserStore) Create(user *model.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	return nil
}

func (m *mockUserStore) FindByID(id uint) (*model.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) FindByEmail(email string) (*model.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) Update(user *model.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(user)
	}
	return nil
}

func (m *mockUserStore) DeleteCascade(userID uint) error {
	if m.DeleteCascadeFn != nil {
		return m.DeleteCascadeFn(userID)
	}
	return nil
}

type mockTokenStore struct {
	StoreFn  func(ctx context.Context, token string, userID uint, ttl time.Duration) error
	ExistsFn func(ctx context.Context, token string) (bool, error)
	RevokeFn func(ctx context.Context, token string) error
}

func (m *mockTokenStore) Store(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	if m.StoreFn != nil {
		return m.StoreFn(ctx, token, userID, ttl)
	}
	return nil
}

func (m *mockTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, token)
	}
	return true, nil
}

func (m *mockTokenStore) Revoke(ctx context.Context, token string) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, token)
	}
	return nil
}

type mockGoalStore struct {
	CreateFn            func(goal *model.Goal) error
	FindByIDAndUserIDFn func(id, userID uint) (*model.Goal, error)
	FindByUserIDFn      func(userID uint) ([]model.Goal, error)
	CountByUserIDFn     func(userID uint) (int64, error)
	UpdateFieldsFn      func(id, userID uint, fields map[string]interface{}) error
	DeleteFn            func(id, userID uint) error
}

func (m *mockGoalStore) Create(goal *model.Goal) error {
	if m.CreateFn != nil {
		return m.CreateFn(goal)
	}
	return nil
}

func (m *mockGoalStore) FindByIDAndUserID(id, userID uint) (*model.Goal, error) {
	if m.FindByIDAndUserIDFn != nil {
		return m.FindByIDAndUserIDFn(id, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGoalStore) FindByUserID(userID uint) ([]model.Goal, error) {
	if m.FindByUserIDFn != nil {
		return m.FindByUserIDFn(userID)
	}
	return []model.Goal{}, nil
}

func (m *mockGoalStore) CountByUserID(userID uint) (int64, error) {
	if m.CountByUserIDFn != nil {
		return m.CountByUserIDFn(userID)
	}
	return 0, nil
}

func (m *mockGoalStore) UpdateFields(id, userID uint, fields map[string]interface{}) error {
	if m.UpdateFieldsFn != nil {
		return m.UpdateFieldsFn(id, userID, fields)
	}
	return nil
}

func (m *mockGoalStore) Delete(id, userID uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id, userID)
	}
	return nil
}

type mockProgressStore struct {
	CreateFn             func(progress *model.Progress) error
	FindByIDAndUserIDFn  func(id, userID uint) (*model.Progress, error)
	FindByGoalIDFn       func(goalID, userID uint) ([]model.Progress, error)
	FindRecentByUserIDFn func(userID uint, limit int) ([]model.Progress, error)
	CountByUserIDFn      func(userID uint) (int64, error)
	UpdateFieldsFn       func(id, userID uint, fields map[string]interface{}) error
	DeleteFn             func(id, userID uint) error
}

func (m *mockProgressStore) Create(progress *model.Progress) error {
	if m.CreateFn != nil {
		return m.CreateFn(progress)
	}
	return nil
}

func (m *mockProgressStore) FindByIDAndUserID(id, userID uint) (*model.Progress, error) {
	if m.FindByIDAndUserIDFn != nil {
		return m.FindByIDAndUserIDFn(id, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgressStore) FindByGoalID(goalID, userID uint) ([]model.Progress, error) {
	if m.FindByGoalIDFn != nil {
		return m.FindByGoalIDFn(goalID, userID)
	}
	return []model.Progress{}, nil
}

func (m *mockProgressStore) FindRecentByUserID(userID uint, limit int) ([]model.Progress, error) {
	if m.FindRecentByUserIDFn != nil {
		return m.FindRecentByUserIDFn(userID, limit)
	}
	return []model.Progress{}, nil
}

func (m *mockProgressStore) CountByUserID(userID uint) (int64, error) {
	if m.CountByUserIDFn != nil {
		return m.CountByUserIDFn(userID)
	}
	return 0, nil
}

func (m *mockProgressStore) UpdateFields(id, userID uint, fields map[string]interface{}) error {
	if m.UpdateFieldsFn != nil {
		return m.UpdateFieldsFn(id, userID, fields)
	}
	return nil
}

func (m *mockProgressStore) Delete(id, userID uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id, userID)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret-test-secret-test-secret",
			AccessExpire:  15 * time.Minute,
			RefreshExpire: 168 * time.Hour,
		},
	}
}
