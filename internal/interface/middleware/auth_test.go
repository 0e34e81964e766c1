package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare/pkg/helpers"
)

func newAuthTestRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", BearerAuth(jwt), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": id, "email": UserEmail(c)})
	})
	return r
}

func TestBearerAuthMissingHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newAuthTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestBearerAuthMalformedHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newAuthTestRouter(jwt)

	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token-without-scheme"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestBearerAuthInvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newAuthTestRouter(jwt)

	token, _, err := helpers.NewJWTManager("other-secret", time.Hour).Generate(7, "a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestBearerAuthExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newAuthTestRouter(jwt)

	token, _, err := helpers.NewJWTManager("secret", -time.Minute).Generate(7, "a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuthValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newAuthTestRouter(jwt)

	token, _, err := jwt.Generate(42, "a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":42`)
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
}

func TestBearerTokenParsing(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken("Token abc"))
}
