package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
}

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) Upsert(user *models.User) error { return nil }

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (f *fakeUserRepo) GetAllWithProjection(projection bson.M) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetRole(email, role string) error { return nil }

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CallerEmail(c)})
	})
	return r
}

func adminRouter(repo *fakeUserRepo) *gin.Engine {
	r := gin.New()
	r.GET("/admin-only", JWTAuthMiddleware(), AdminOnlyMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	w := doRequest(protectedRouter(), "", "/protected")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	w := doRequest(protectedRouter(), "Token abc", "/protected")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	w := doRequest(protectedRouter(), "Bearer not-a-token", "/protected")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	claims := utils.Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)

	w := doRequest(protectedRouter(), "Bearer "+expired, "/protected")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	token, err := utils.GenerateToken("a@x.com")
	require.NoError(t, err)

	w := doRequest(protectedRouter(), "Bearer "+token, "/protected")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]models.User{
		"patient@x.com": {Email: "patient@x.com"},
	}}
	token, err := utils.GenerateToken("patient@x.com")
	require.NoError(t, err)

	w := doRequest(adminRouter(repo), "Bearer "+token, "/admin-only")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyRejectsUnknownUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]models.User{}}
	token, err := utils.GenerateToken("ghost@x.com")
	require.NoError(t, err)

	w := doRequest(adminRouter(repo), "Bearer "+token, "/admin-only")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]models.User{
		"boss@x.com": {Email: "boss@x.com", Role: models.RoleAdmin},
	}}
	token, err := utils.GenerateToken("boss@x.com")
	require.NoError(t, err)

	w := doRequest(adminRouter(repo), "Bearer "+token, "/admin-only")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRevocationTakesEffectImmediately(t *testing.T) {
	// The role lookup runs per request; demoting the user flips the very
	// next response with no restart or token change.
	repo := &fakeUserRepo{users: map[string]models.User{
		"boss@x.com": {Email: "boss@x.com", Role: models.RoleAdmin},
	}}
	token, err := utils.GenerateToken("boss@x.com")
	require.NoError(t, err)

	r := adminRouter(repo)
	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+token, "/admin-only").Code)

	repo.users["boss@x.com"] = models.User{Email: "boss@x.com"}
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer "+token, "/admin-only").Code)
}
