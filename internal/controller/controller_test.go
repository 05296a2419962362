package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fittrack_backend/internal/config"
	"fittrack_backend/internal/middleware"
	"fittrack_backend/internal/model"
	"fittrack_backend/internal/service"
	"fittrack_backend/internal/util"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler tests run the real routing, middleware, services and controllers
// over in-memory stores; only MySQL and Redis are mocked out.

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

type testStores struct {
	users   *mockUserStore
	tokens  *mockTokenStore
	goals   *mockGoalStore
	entries *mockProgressStore
}

func newTestStores() *testStores {
	return &testStores{
		users:   &mockUserStore{},
		tokens:  &mockTokenStore{},
		goals:   &mockGoalStore{},
		entries: &mockProgressStore{},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret-test-secret-test-secret",
			AccessExpire:  15 * time.Minute,
			RefreshExpire: 168 * time.Hour,
		},
		Storage: config.StorageConfig{Type: "local", LocalPath: "testdata"},
	}
}

func newTestRouter(cfg *config.Config, st *testStores) *gin.Engine {
	gin.SetMode(gin.TestMode)

	authController := NewAuthController(service.NewAuthService(st.users, st.tokens, cfg))
	userController := NewUserController(service.NewUserService(st.users), service.NewStorageService(cfg))
	goalController := NewGoalController(service.NewGoalService(st.goals))
	progressController := NewProgressController(service.NewProgressService(st.entries, st.goals))
	dashboardController := NewDashboardController(service.NewDashboardService(st.goals, st.entries))

	router := gin.New()
	api := router.Group("/api")

	api.POST("/auth/signup", authController.Signup)
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/refresh-token", authController.RefreshToken)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.POST("/auth/logout", authController.Logout)
	protected.GET("/profile", userController.GetProfile)
	protected.PUT("/user/profile", userController.UpdateProfile)
	protected.POST("/user/avatar/upload", userController.UploadAvatar)
	protected.DELETE("/user", userController.DeleteAccount)
	protected.POST("/goals", goalController.CreateGoal)
	protected.GET("/goals", goalController.GetGoals)
	protected.GET("/goals/:id", goalController.GetGoal)
	protected.PUT("/goals/:id", goalController.UpdateGoal)
	protected.DELETE("/goals/:id", goalController.DeleteGoal)
	protected.POST("/progress", progressController.CreateProgress)
	protected.GET("/progress/:goalId", progressController.GetProgressByGoal)
	protected.PUT("/progress/:id", progressController.UpdateProgress)
	protected.DELETE("/progress/:id", progressController.DeleteProgress)
	protected.GET("/dashboard", dashboardController.GetDashboard)

	return router
}

func accessTokenFor(t *testing.T, cfg *config.Config, userID uint) string {
	t.Helper()
	token, err := util.GenerateAccessToken(userID, "user@example.com", cfg.JWT.Secret, cfg.JWT.AccessExpire)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return token
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}
