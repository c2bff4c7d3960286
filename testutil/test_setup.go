// Package testutil はハンドラーテスト用のデータベースとルーターを用意します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-multiuser-todo/backend/internal/config"
	"go-multiuser-todo/backend/internal/database"
	"go-multiuser-todo/backend/internal/models"
	"go-multiuser-todo/backend/internal/repositories"
	"go-multiuser-todo/backend/internal/routes"
)

const (
	TestSecret = "test-secret"

	NormalUserEmail    = "normal_user@example.com"
	NormalUserPassword = "password123"
)

// TestConfig はテスト用の設定を返します。データベースは t.TempDir() に作られます。
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:        3004,
		DBDriver:    config.DriverSQLite,
		DBPath:      filepath.Join(t.TempDir(), "todos.db"),
		JWTSecret:   TestSecret,
		JWTTTL:      time.Hour,
		CORSOrigins: []string{"*"},
		LogLevel:    "warn",
		GinMode:     gin.TestMode,
	}
}

// OpenTestDB はスキーマ作成済みの空のsqliteデータベースを開きます。
func OpenTestDB(t *testing.T, cfg *config.Config) *sql.DB {
	t.Helper()
	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db, cfg.DBDriver))
	return db
}

// SetupTestDB はテスト用のデータベースとルーターを用意し、normal_user を登録します。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.TodoRepository, *repositories.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := TestConfig(t)
	db := OpenTestDB(t, cfg)

	userRepo := repositories.NewUserRepository(db)
	CreateTestUser(t, userRepo, "normal_user", NormalUserEmail, NormalUserPassword)

	router := routes.SetupRouter(db, cfg)
	todoRepo := repositories.NewTodoRepository(db)

	return db, router, todoRepo, userRepo
}

func CreateTestUser(t *testing.T, userRepo *repositories.UserRepository, name, email, password string) *models.User {
	t.Helper()
	hashedPassword, err := repositories.HashPassword(password)
	require.NoError(t, err)

	createdUser, err := userRepo.Create(&models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, createdUser.ID)
	return createdUser
}

// DoJSON はJSONボディ付きのリクエストをルーターに送ります。token が空なら Authorization を付けません。
func DoJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// CreateTestTodo は /add-todo でTodoを作成します。
func CreateTestTodo(t *testing.T, router *gin.Engine, token, title, status string) {
	t.Helper()
	resp := DoJSON(t, router, http.MethodPost, "/add-todo", token, map[string]string{
		"todo_title":  title,
		"todo_status": status,
	})
	require.Equal(t, http.StatusOK, resp.Code, "failed to create todo: %s", resp.Body.String())
}

// GetTodos は /get-todos の結果を返します。
func GetTodos(t *testing.T, router *gin.Engine, token string) []models.Todo {
	t.Helper()
	resp := DoJSON(t, router, http.MethodGet, "/get-todos", token, nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var todos []models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &todos))
	return todos
}

func LoginAndGetToken(t *testing.T, router *gin.Engine, email, password string) (string, error) {
	resp := DoJSON(t, router, http.MethodPost, "/user-login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if resp.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", resp.Code, resp.Body.String())
	}

	var loginRes map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &loginRes); err != nil {
		return "", fmt.Errorf("failed to unmarshal login response: %w", err)
	}
	token, ok := loginRes["token"].(string)
	if !ok {
		return "", errors.New("token not found or not a string in login response")
	}
	return token, nil
}
