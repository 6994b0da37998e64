package handler

import (
	identityapp "github.com/docuchat/backend/internal/application/identity"
	"github.com/docuchat/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, logout and tenant resolution
type AuthHandler struct {
	BaseHandler
	authService      *identityapp.AuthService
	directoryService *identityapp.DirectoryService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, directoryService *identityapp.DirectoryService) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		directoryService: directoryService,
	}
}

// Login authenticates an admin console user
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Email and password are required")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CustomerLogin authenticates a portal customer
// POST /api/v1/auth/customer/login
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Email and password are required")
		return
	}

	resp, err := h.authService.CustomerLogin(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout revokes the caller's session token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Logged out"})
}

// ResolveTenant maps a customer email to its tenant; the chat runtime
// calls this to route inbound conversations
// GET /api/v1/directory/resolve?email=...
func (h *AuthHandler) ResolveTenant(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		h.BadRequest(c, "Query parameter 'email' is required")
		return
	}

	resolution, err := h.directoryService.ResolveTenant(c.Request.Context(), email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resolution)
}
