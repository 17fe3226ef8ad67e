package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StandardResponse represents the standard API response envelope
type StandardResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginationMeta is the pagination block attached to list responses
type PaginationMeta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// Success sends a standardized success response
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a standardized created response (201)
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination sends a paginated success response. The entity slice
// is attached under the given key so each list endpoint keeps its own shape.
func SuccessWithPagination(c *gin.Context, message string, key string, data interface{}, p *Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		key:       data,
		"pagination": PaginationMeta{
			CurrentPage:  p.Page,
			TotalPages:   p.LastPage,
			TotalItems:   p.Total,
			ItemsPerPage: p.Limit,
		},
	})
}

// Error sends a standardized error response
func Error(c *gin.Context, statusCode int, message string, err interface{}) {
	response := StandardResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		response.Data = gin.H{"error": err}
	}
	c.JSON(statusCode, response)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 Conflict response
func Conflict(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusConflict, message, err)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusInternalServerError, message, err)
}

// SoftFailure sends an HTTP 200 whose body carries success=false. The
// postback receiver answers malformed completion ids this way so CPA
// networks do not retry the callback.
func SoftFailure(c *gin.Context, message string) {
	c.JSON(http.StatusOK, StandardResponse{
		Success: false,
		Message: message,
	})
}

// MultiStatus sends a 207 Multi-Status response for batch operations
func MultiStatus(c *gin.Context, message string, results interface{}) {
	c.JSON(http.StatusMultiStatus, gin.H{
		"success": true,
		"message": message,
		"results": results,
	})
}
