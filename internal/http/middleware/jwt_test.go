package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/model"
)

type userStore struct {
	db.Store
	user *model.User
}

func (s *userStore) GetUserByID(id int) (*model.User, error) {
	return s.user, nil
}

func protectedRouter(secret string, store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTMiddleware(secret, store))
	r.GET("/me", func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no current user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return r
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	const secret = "test-secret"
	store := &userStore{user: &model.User{ID: 9, Email: "admin@example.com"}}
	router := protectedRouter(secret, store)

	token, err := GenerateJWT(9, secret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":9`)
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	const secret = "test-secret"
	store := &userStore{user: &model.User{ID: 9}}
	router := protectedRouter(secret, store)

	// missing header
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// token signed with another secret
	token, err := GenerateJWT(9, "other-secret")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2-hunter2")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter2-hunter2"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
