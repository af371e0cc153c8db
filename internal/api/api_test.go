package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adboard/internal/auth"
	"adboard/internal/domain"
	"adboard/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testTTL = 900 * time.Second

// testEnv bundles a fully wired router with direct handles on its stores
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client
	tokens *auth.TokenStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Token{}, &domain.Advertisement{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	tokens := auth.NewTokenStore(db)
	resolver := auth.NewResolver(db, testTTL)

	r := gin.New()
	RegisterRoutes(r, db, rdb, resolver, tokens, bcrypt.MinCost)
	return &testEnv{router: r, db: db, rdb: rdb, tokens: tokens}
}

// do performs a request against the router, attaching the token header when given
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (e *testEnv) register(t *testing.T, name, password string) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/user", "", gin.H{"name": name, "password": password})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func (e *testEnv) login(t *testing.T, name, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/login", "", gin.H{"name": name, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

// createAdmin seeds an admin directly in the store and issues it a token;
// there is deliberately no registration path that yields the admin role
func (e *testEnv) createAdmin(t *testing.T, name string) string {
	t.Helper()
	digest, err := auth.HashPassword("admin-secret", bcrypt.MinCost)
	require.NoError(t, err)
	admin := &domain.User{Name: name, Password: digest, Role: domain.RoleAdmin}
	require.NoError(t, e.db.Create(admin).Error)
	token, err := e.tokens.Issue(context.Background(), admin.ID)
	require.NoError(t, err)
	return token.Token
}

func (e *testEnv) createAd(t *testing.T, token, title, author string, price float64) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/advertisement", token, gin.H{
		"title":  title,
		"price":  price,
		"author": author,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}
