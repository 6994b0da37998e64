package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docuchat/backend/internal/infrastructure/auth"
	"github.com/docuchat/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Expiration: time.Hour,
		Issuer:     "docuchat-test",
	})
}

func newAuthedEngine(jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuth(JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
	}))
	engine.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant_id":    GetJWTTenantID(c),
			"subject_id":   GetJWTSubjectID(c),
			"subject_type": c.GetString(JWTSubjectTypeKey),
		})
	})
	return engine
}

func issueToken(t *testing.T, jwtService *auth.JWTService, subjectType auth.SubjectType) *auth.Token {
	t.Helper()
	token, err := jwtService.GenerateToken(auth.GenerateTokenInput{
		TenantID:    uuid.New(),
		SubjectID:   uuid.New(),
		SubjectType: subjectType,
		Email:       "admin@acme.test",
	})
	require.NoError(t, err)
	return token
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	engine := newAuthedEngine(jwtService, auth.NewInMemoryTokenBlacklist())
	token := issueToken(t, jwtService, auth.SubjectUser)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.Value)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject_type":"user"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	engine := newAuthedEngine(newTestJWTService(), nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	engine := newAuthedEngine(newTestJWTService(), nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	engine := newAuthedEngine(newTestJWTService(), nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	otherService := auth.NewJWTService(config.JWTConfig{
		Secret:     "a-different-secret-entirely",
		Expiration: time.Hour,
		Issuer:     "docuchat-test",
	})
	token := issueToken(t, otherService, auth.SubjectUser)

	engine := newAuthedEngine(newTestJWTService(), nil)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.Value)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RevokedToken(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	engine := newAuthedEngine(jwtService, blacklist)

	token := issueToken(t, jwtService, auth.SubjectUser)
	claims, err := jwtService.ValidateToken(token.Value)
	require.NoError(t, err)
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.Value)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
}

func TestRequireSubjectType(t *testing.T) {
	jwtService := newTestJWTService()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuth(JWTMiddlewareConfig{JWTService: jwtService}))
	engine.POST("/admin-only", RequireSubjectType(auth.SubjectUser), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	customerToken := issueToken(t, jwtService, auth.SubjectCustomer)
	req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken.Value)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	userToken := issueToken(t, jwtService, auth.SubjectUser)
	req = httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken.Value)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
