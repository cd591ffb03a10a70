package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swap-backend/usecase"
)

// respondError maps usecase errors to a status and a {"error", "code"} body.
// Anything unexpected is logged and hidden behind a 500.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, usecase.ErrValidation):
		status, code = http.StatusBadRequest, "validation"
	case errors.Is(err, usecase.ErrUnauthorized):
		status, code = http.StatusBadRequest, "authorization"
	case errors.Is(err, usecase.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, usecase.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	default:
		logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": code})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation"})
}
