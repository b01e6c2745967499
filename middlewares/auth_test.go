package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    float64(7),
		"email": "ana@example.com",
		"role":  role,
		"exp":   time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append(handlers, func(ctx *gin.Context) {
		_, authed := ctx.Get("user")
		ctx.JSON(http.StatusOK, gin.H{"authed": authed})
	})
	router.GET("/probe", chain...)
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := testRouter(RequireAuth())

	t.Run("missing token", func(t *testing.T) {
		rec := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		rec := doRequest(router, signToken(t, "user", -time.Hour))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(router, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := doRequest(router, signToken(t, "user", time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authed":true`)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := testRouter(OptionalAuth())

	t.Run("guest passes through", func(t *testing.T) {
		rec := doRequest(router, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authed":false`)
	})

	t.Run("bad token passes through as guest", func(t *testing.T) {
		rec := doRequest(router, "not-a-jwt")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authed":false`)
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		rec := doRequest(router, signToken(t, "user", time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authed":true`)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := testRouter(RequireAuth(), RequireAdmin())

	t.Run("non-admin forbidden", func(t *testing.T) {
		rec := doRequest(router, signToken(t, "user", time.Hour))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		rec := doRequest(router, signToken(t, "admin", time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no claims at all", func(t *testing.T) {
		router := testRouter(RequireAdmin())
		rec := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
