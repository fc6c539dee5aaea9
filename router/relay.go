package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/controller"
	"github.com/ZiadElshayeb/workky/middleware"
)

// SetRelayRouter exposes the completion endpoint both bare and under /v1, so
// stock OpenAI clients can point their base URL at the relay unchanged.
func SetRelayRouter(router *gin.Engine) {
	router.Use(middleware.CORS())
	router.NoRoute(controller.RelayNotFound)

	handlers := []gin.HandlerFunc{
		middleware.RelayPanicRecover(),
		middleware.RelayTime(),
		middleware.RelayValidate(),
		controller.Relay,
	}
	router.POST("/chat/completions", handlers...)
	v1Router := router.Group("/v1")
	{
		v1Router.POST("/chat/completions", handlers...)
	}
}
