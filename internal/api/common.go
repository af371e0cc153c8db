package api

import (
	"net/http" // HTTP status codes

	"adboard/internal/apperr" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// successResponse is the envelope returned by update and delete operations
var successResponse = gin.H{"status": "success"}

// respondError writes the status and message for a taxonomy error. Anything
// outside the taxonomy is logged and answered with a generic 500 so storage
// internals never leak into a response body.
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
