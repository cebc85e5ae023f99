package controllers

import (
	"strconv"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/middleware"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads a positive integer path parameter
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// logFailure records an unexpected storage error with the request it belongs to
func logFailure(ctx *gin.Context, operation string, err error) {
	log.WithFields(log.Fields{
		"request_id": ctx.GetString(middleware.RequestIDKey),
		"operation":  operation,
	}).WithError(err).Error("Request failed")
}
