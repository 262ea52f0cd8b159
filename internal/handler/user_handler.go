package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/model"
	"github.com/grocerly/grocerly/internal/service"
	"github.com/grocerly/grocerly/internal/validate"
)

// UserHandler handles user statistics, preferences and notifications
type UserHandler struct {
	userService service.UserService
	authService service.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, authService service.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// GetProfile returns the authenticated user's profile
// @Summary Get profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Profile"
// @Router /api/v1/user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.GetUserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, user)
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.Response "Updated user"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Router /api/v1/user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
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
		if errors.Is(err, service.ErrUserAlreadyExists) {
			respondConflict(c, "An account with this email already exists")
			return
		}
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, user, "Profile updated successfully")
}

// GetStats aggregates the user's activity across the app
// @Summary User statistics
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Statistics"
// @Router /api/v1/user/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.userService.GetStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, stats)
}

// GetPreferences returns the user's settings
// @Summary Get preferences
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Preferences"
// @Router /api/v1/user/preferences [get]
func (h *UserHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.userService.GetPreferences(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, prefs)
}

// UpdatePreferences applies a partial settings update
// @Summary Update preferences
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdatePreferencesRequest true "Fields to change"
// @Success 200 {object} model.Response "Updated preferences"
// @Router /api/v1/user/preferences [put]
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	var req model.UpdatePreferencesRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	prefs, err := h.userService.UpdatePreferences(c.Request.Context(), currentUserID(c), service.PreferencesPatch{
		Theme:         req.Theme,
		Language:      req.Language,
		Currency:      req.Currency,
		Notifications: req.Notifications,
		Privacy:       req.Privacy,
	})
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, prefs, "Preferences updated successfully")
}

// GetNotifications returns a page of the user's notifications
// @Summary List notifications
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Param unreadOnly query bool false "Only unread notifications"
// @Success 200 {object} model.Response "Notifications"
// @Router /api/v1/user/notifications [get]
func (h *UserHandler) GetNotifications(c *gin.Context) {
	limit, err := getQueryInt(c, "limit", 20)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	offset, err := getQueryInt(c, "offset", 0)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	unreadOnly := c.Query("unreadOnly") == "true"

	notifications, total, unread, err := h.userService.GetNotifications(c.Request.Context(), currentUserID(c), limit, offset, unreadOnly)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, model.NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
	})
}

// MarkNotificationRead flags one notification as read
// @Summary Mark notification read
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} model.Response "Marked read"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/user/notifications/{id}/read [patch]
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.userService.MarkNotificationRead(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "Notification marked as read")
}

// MarkAllNotificationsRead flags every unread notification as read
// @Summary Mark all notifications read
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Marked read"
// @Router /api/v1/user/notifications/read-all [patch]
func (h *UserHandler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.userService.MarkAllNotificationsRead(c.Request.Context(), currentUserID(c)); err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, nil, "All notifications marked as read")
}

// DeleteNotification permanently removes a notification
// @Summary Delete notification
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} model.Response "Deleted"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/user/notifications/{id} [delete]
func (h *UserHandler) DeleteNotification(c *gin.Context) {
	if err := h.userService.DeleteNotification(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "Notification deleted")
}

// RegisterRoutes registers the user routes
func (h *UserHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	user := router.Group("/api/v1/user", authMiddleware)
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.GET("/stats", h.GetStats)
		user.GET("/preferences", h.GetPreferences)
		user.PUT("/preferences", h.UpdatePreferences)
		user.GET("/notifications", h.GetNotifications)
		user.PATCH("/notifications/read-all", h.MarkAllNotificationsRead)
		user.PATCH("/notifications/:id/read", h.MarkNotificationRead)
		user.DELETE("/notifications/:id", h.DeleteNotification)
	}
}
