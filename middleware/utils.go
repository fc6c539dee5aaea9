package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/common/helper"
	"github.com/ZiadElshayeb/workky/common/logger"
)

func abortWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"message": helper.MessageWithRequestId(message, c.GetString(helper.RequestIdKey)),
			"type":    "workky_api_error",
		},
	})
	c.Abort()
	logger.Error(c.Request.Context(), message)
}
