package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/model"
	"github.com/grocerly/grocerly/internal/repository"
	"github.com/grocerly/grocerly/internal/service"
	"github.com/grocerly/grocerly/internal/validate"
)

// currentUserID returns the authenticated user's id set by the auth middleware
func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}

// getQueryInt retrieves an integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}

	return value, nil
}

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// respondValidationFailures sends a 400 with one detail per failed field
func respondValidationFailures(c *gin.Context, failures []validate.Failure) {
	details := make([]model.ErrorDetail, 0, len(failures))
	for _, f := range failures {
		details = append(details, model.ErrorDetail{Field: f.Field, Message: f.Message})
	}
	respondBadRequest(c, ErrValidationFailed, details...)
}

// respondRepositoryError maps a repository error to 404 or 500. Records
// owned by other users surface as not found.
func respondRepositoryError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrUserNotFound) {
		respondNotFound(c, ErrResourceNotFound)
		return
	}
	respondInternalServerError(c, ErrInternalServer)
}
