package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/model"
)

// Common error messages
const (
	ErrInvalidInput     = "Invalid request body"
	ErrValidationFailed = "Validation failed"
	ErrResourceNotFound = "Resource not found"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	c.JSON(statusCode, model.ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondUnauthorized sends a 401 Unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	respondWithError(c, http.StatusUnauthorized, message)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, message)
}

// respondConflict sends a 409 Conflict response
func respondConflict(c *gin.Context, message string) {
	respondWithError(c, http.StatusConflict, message)
}

// respondInternalServerError sends a 500 Internal Server Error response
func respondInternalServerError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, message)
}

// respondOK sends a 200 OK response with data in the success envelope
func respondOK(c *gin.Context, data interface{}, message ...string) {
	respond(c, http.StatusOK, data, message...)
}

// respondCreated sends a 201 Created response with data in the success envelope
func respondCreated(c *gin.Context, data interface{}, message ...string) {
	respond(c, http.StatusCreated, data, message...)
}

func respond(c *gin.Context, statusCode int, data interface{}, message ...string) {
	response := model.Response{Success: true, Data: data}
	if len(message) > 0 {
		response.Message = message[0]
	}
	c.JSON(statusCode, response)
}
