package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/structech/survey-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// ParseUintQuery extracts and parses a required query parameter as uint
// Returns the parsed value and sends error response if missing or malformed
func ParseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: name + " is required",
		})
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name,
		})
		return 0, false
	}
	return uint(value), true
}

// OptionalUintQuery parses an optional query parameter as uint. Returns nil
// when absent and sends an error response when malformed.
func OptionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name,
		})
		return nil, false
	}
	v := uint(value)
	return &v, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// SendUnauthorized sends a standardized unauthorized response
func SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: message})
}

// SendForbidden sends a standardized forbidden response
func SendForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorResponse{Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// SendConflict sends a standardized conflict response
func SendConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Message: message})
}

// SendGone signals metadata whose backing payload no longer exists
func SendGone(c *gin.Context, message string) {
	c.JSON(http.StatusGone, ErrorResponse{Message: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}

// SendAppError maps a structured application error onto the wire format,
// using its default HTTP status
func SendAppError(c *gin.Context, err *apperrors.AppError) {
	c.JSON(err.GetHTTPCode(), ErrorResponse{Message: err.Message, Details: err.Details})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
