package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/model"
	"github.com/grocerly/grocerly/internal/service"
	"github.com/grocerly/grocerly/internal/validate"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account
// @Summary Register a new account
// @Description Creates an account with email and password and returns JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup payload"
// @Success 201 {object} model.Response "Account created"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 409 {object} model.ErrorResponse "Email already registered"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.SignupRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.StringLength("name", req.Name, 2, 50),
		validate.Email("email", req.Email),
		validate.Password("password", req.Password),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	authResponse, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			respondConflict(c, "An account with this email already exists")
			return
		}
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondCreated(c, authResponse, "Account created successfully")
}

// Login authenticates an account
// @Summary Log in
// @Description Authenticates with email and password and returns JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login payload"
// @Success 200 {object} model.Response "Authenticated"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 401 {object} model.ErrorResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.Email("email", req.Email),
		validate.StringLength("password", req.Password, 6, 128),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	authResponse, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondUnauthorized(c, "Invalid email or password")
			return
		}
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, authResponse, "Logged in successfully")
}

// Logout ends the client session
// @Summary Log out
// @Description Acknowledges logout; tokens are stateless and expire on their own
// @Tags auth
// @Produce json
// @Success 200 {object} model.Response "Logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	respondOK(c, nil, "Logged out successfully")
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary Refresh tokens
// @Description Generates a new token pair from a valid refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} model.Response "New tokens"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 401 {object} model.ErrorResponse "Invalid refresh token"
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}
	if req.RefreshToken == "" {
		respondBadRequest(c, "Refresh token is required")
		return
	}

	tokens, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		respondUnauthorized(c, "Invalid or expired refresh token")
		return
	}

	respondOK(c, model.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Me returns the authenticated user
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Current user"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondNotFound(c, ErrResourceNotFound)
			return
		}
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, user)
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.Response "Updated user"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 409 {object} model.ErrorResponse "Email already registered"
// @Router /api/v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.OptionalStringLength("name", req.Name, 2, 50),
		validate.OptionalEmail("email", req.Email),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), currentUserID(c), req.Name, req.Email, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			respondConflict(c, "An account with this email already exists")
		case errors.Is(err, service.ErrUserNotFound):
			respondNotFound(c, ErrResourceNotFound)
		default:
			respondInternalServerError(c, ErrInternalServer)
		}
		return
	}

	respondOK(c, user, "Profile updated successfully")
}

// ChangePassword replaces the authenticated user's password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} model.Response "Password changed"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 401 {object} model.ErrorResponse "Wrong current password"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.Password("newPassword", req.NewPassword),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), currentUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondUnauthorized(c, "Current password is incorrect")
			return
		}
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, nil, "Password changed successfully")
}

// DeleteAccount permanently removes the authenticated user's account
// @Summary Delete account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DeleteAccountRequest true "Password confirmation"
// @Success 200 {object} model.Response "Account deleted"
// @Failure 401 {object} model.ErrorResponse "Wrong password"
// @Router /api/v1/auth/account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req model.DeleteAccountRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	err := h.authService.DeleteAccount(c.Request.Context(), currentUserID(c), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondUnauthorized(c, "Password is incorrect")
			return
		}
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, nil, "Account deleted successfully")
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.RefreshToken)
	}

	protected := router.Group("/api/v1/auth", authMiddleware)
	{
		protected.GET("/me", h.Me)
		protected.PUT("/profile", h.UpdateProfile)
		protected.PUT("/password", h.ChangePassword)
		protected.DELETE("/account", h.DeleteAccount)
	}
}
