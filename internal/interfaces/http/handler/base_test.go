package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := &BaseHandler{}
	engine.GET("/", func(c *gin.Context) {
		h.HandleError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHandleError_NotFound(t *testing.T) {
	w := serveWithError(t, shared.NewDomainError("NOT_FOUND", "test run not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
	assert.Contains(t, w.Body.String(), "test run not found")
}

func TestHandleError_Forbidden(t *testing.T) {
	w := serveWithError(t, shared.ErrForbidden)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestHandleError_InvalidState(t *testing.T) {
	w := serveWithError(t, shared.NewDomainError("INVALID_STATE", "run is not completed"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestHandleError_OpaqueErrorBecomes500(t *testing.T) {
	w := serveWithError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHandleError_WrappedDomainError(t *testing.T) {
	wrapped := shared.NewDomainError("INVALID_CREDENTIALS", "invalid email or password")
	w := serveWithError(t, errors.Join(errors.New("login failed"), wrapped))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}
