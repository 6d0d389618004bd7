package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mukuru1/UbuzimaHC-2/internal/auth"
	"github.com/mukuru1/UbuzimaHC-2/internal/middleware"
	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

// AuthHandler exposes the Supabase auth operations over HTTP. Unlike the
// session manager it holds no session state: every request carries its own
// token.
type AuthHandler struct {
	auth     auth.Authenticator
	profiles auth.ProfileStore
}

func NewAuthHandler(authenticator auth.Authenticator, profiles auth.ProfileStore) *AuthHandler {
	return &AuthHandler{auth: authenticator, profiles: profiles}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	user, profileCreated, err := auth.SignUpWithProfile(c.Request.Context(), h.auth, h.profiles, req.Email, req.Password, req.Profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "signup failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.SignUpResponse{
		User:           user,
		ProfileCreated: profileCreated,
	})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	session, user, err := auth.SignInWithProfile(c.Request.Context(), h.auth, h.profiles, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "signin failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{
		Session: session,
		User:    user,
	})
}

// SignOut revokes the caller's session. Revocation failures are still
// reported, but by the time this returns the client should treat itself as
// signed out either way.
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing access token"})
		return
	}

	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "signout failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "signed out"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "password reset failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "password reset email sent"})
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing access token"})
		return
	}

	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if err := h.auth.UpdatePassword(c.Request.Context(), token, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "password update failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "password updated"})
}
