package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/controller"
	"github.com/ZiadElshayeb/workky/middleware"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	apiRouter.Use(middleware.CORS())
	{
		apiRouter.GET("/status", controller.Status)
	}
}
