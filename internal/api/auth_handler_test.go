package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	id := env.register(t, "alice", "pw1secret")
	assert.NotZero(t, id)

	token := env.login(t, "alice", "pw1secret")
	_, err := uuid.Parse(token)
	assert.NoError(t, err, "token must be a canonical 128-bit identifier")

	// Every login issues a fresh token
	second := env.login(t, "alice", "pw1secret")
	assert.NotEqual(t, token, second)
}

func TestRegister_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1secret")

	w := env.do(t, http.MethodPost, "/api/v1/user", "", gin.H{"name": "alice", "password": "otherpass"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Item already exists", decode(t, w)["error"])
}

func TestRegister_BadInput(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/user", "", gin.H{"name": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/user", "", gin.H{"name": "alice", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1secret")

	unknownName := env.do(t, http.MethodPost, "/api/v1/login", "", gin.H{"name": "mallory", "password": "pw1secret"})
	wrongPassword := env.do(t, http.MethodPost, "/api/v1/login", "", gin.H{"name": "alice", "password": "incorrect1"})

	require.Equal(t, http.StatusUnauthorized, unknownName.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	// Same status, same body: no hint whether the name exists
	assert.Equal(t, unknownName.Body.String(), wrongPassword.Body.String())
	assert.Equal(t, "Invalid credentials", decode(t, wrongPassword)["error"])
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	// Missing header
	w := env.do(t, http.MethodPost, "/api/v1/advertisement", "", gin.H{"title": "bike", "price": 50, "author": "alice"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token not found", decode(t, w)["error"])

	// Malformed header value
	w = env.do(t, http.MethodPost, "/api/v1/advertisement", "garbage", gin.H{"title": "bike", "price": 50, "author": "alice"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token not found", decode(t, w)["error"])
}
