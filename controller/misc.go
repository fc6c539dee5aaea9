package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/common"
)

func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":    common.Version,
			"start_time": common.StartTime.Unix(),
		},
	})
}
