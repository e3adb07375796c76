package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"financas/config"
	"financas/database"
	"financas/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

func userColumns() []string {
	return []string{"id", "name", "email", "password", "created_at", "updated_at", "deleted_at"}
}

func TestUserHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// duplicate check finds nothing
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("ana@x.com").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/cadastrar", NewUserHandler(cfg).Register)

	body := `{"name":"Ana","email":"ana@x.com","password":"secret1"}`
	req := httptest.NewRequest("POST", "/cadastrar", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user registered", resp["message"])
	// the password hash must never appear in a response
	assert.NotContains(t, w.Body.String(), "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("ana@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Ana", "ana@x.com", "hash", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/cadastrar", NewUserHandler(cfg).Register)

	body := `{"name":"Other","email":"ana@x.com","password":"secret2"}`
	req := httptest.NewRequest("POST", "/cadastrar", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/cadastrar", NewUserHandler(cfg).Register)

	body := `{"name":"Ana","email":"ana@x.com","password":"short"}`
	req := httptest.NewRequest("POST", "/cadastrar", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestUserHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("ana@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Ana", "ana@x.com", string(hash), time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", NewUserHandler(cfg).Login)

	body := `{"email":"ana@x.com","password":"secret1"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "ana@x.com", user["email"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	// unknown email and wrong password must be indistinguishable
	cfg := testConfig()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)

	run := func(setup func(mock sqlmock.Sqlmock), body string) *httptest.ResponseRecorder {
		mock, cleanup := setupMockDB(t)
		defer cleanup()
		setup(mock)

		router := gin.New()
		router.POST("/login", NewUserHandler(cfg).Login)
		req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.NoError(t, mock.ExpectationsWereMet())
		return w
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// unknown email
	wUnknown := run(func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT .* FROM `users`").
			WithArgs("ghost@x.com").
			WillReturnRows(sqlmock.NewRows([]string{}))
	}, `{"email":"ghost@x.com","password":"whatever"}`)

	// wrong password
	wWrong := run(func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT .* FROM `users`").
			WithArgs("ana@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(1, "Ana", "ana@x.com", string(hash), time.Now(), time.Now(), nil))
	}, `{"email":"ana@x.com","password":"not-it"}`)

	assert.Equal(t, 401, wUnknown.Code)
	assert.Equal(t, 401, wWrong.Code)
	assert.Equal(t, wUnknown.Body.String(), wWrong.Body.String())
}

func TestUserHandler_GetProfile(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Ana", "ana@x.com", "hash", created, created, nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/perfil", NewUserHandler(cfg).GetProfile)

	req := httptest.NewRequest("GET", "/perfil", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "ana@x.com")
	assert.Contains(t, w.Body.String(), "created_at")
	assert.NotContains(t, w.Body.String(), "hash")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_UpdateProfile_DuplicateEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// another user already owns the new email
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("taken@x.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(2, "Bia", "taken@x.com", "hash", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/atualizar", NewUserHandler(cfg).UpdateProfile)

	body := `{"name":"Ana","email":"taken@x.com"}`
	req := httptest.NewRequest("PUT", "/atualizar", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_DeleteAccount(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Ana", "ana@x.com", "hash", time.Now(), time.Now(), nil))

	// transactions, categories and the user row go in one transaction
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE `categories`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/deletar", NewUserHandler(cfg).DeleteAccount)

	req := httptest.NewRequest("DELETE", "/deletar", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_DeleteAccount_RollsBackWhenUserMissing(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Ana", "ana@x.com", "hash", time.Now(), time.Now(), nil))

	// the final delete affects no rows, so the whole cascade must roll back
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE `categories`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/deletar", NewUserHandler(cfg).DeleteAccount)

	req := httptest.NewRequest("DELETE", "/deletar", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
