package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/common"
	"github.com/ZiadElshayeb/workky/common/config"
	"github.com/ZiadElshayeb/workky/common/env"
	"github.com/ZiadElshayeb/workky/common/logger"
	"github.com/ZiadElshayeb/workky/middleware"
	"github.com/ZiadElshayeb/workky/router"
)

func main() {
	common.Init()
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("workky voice relay %s started", common.Version))

	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.LLMAPIKey == "" {
		logger.SysError("LLM_API_KEY is not set, relay requests will fail")
	}

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)

	router.SetRouter(server)
	port := os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*env.Port)
	}
	logger.SysLog("server started on http://localhost:" + port)
	err := server.Run(":" + port)
	if err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
