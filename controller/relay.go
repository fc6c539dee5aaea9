package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/common/config"
	"github.com/ZiadElshayeb/workky/common/ctxkey"
	"github.com/ZiadElshayeb/workky/common/helper"
	"github.com/ZiadElshayeb/workky/common/logger"
	relay "github.com/ZiadElshayeb/workky/relay/controller"
	"github.com/ZiadElshayeb/workky/relay/model"
)

// Relay serves the chat-completions endpoint. Errors surface as a JSON
// envelope only while nothing has been written; once the SSE stream has
// started the connection is simply closed out.
func Relay(c *gin.Context) {
	ctx := c.Request.Context()
	if config.LLMAPIKey == "" {
		configErr := model.NewErrorWithStatusCode(http.StatusInternalServerError,
			"missing_api_key", "LLM_API_KEY is not configured")
		c.JSON(configErr.StatusCode, gin.H{"error": configErr.Error})
		return
	}
	bizErr := relay.RelayTextHelper(c)
	if bizErr == nil {
		return
	}
	logger.Errorf(ctx, "relay error (model: %s): %s",
		c.GetString(ctxkey.RequestModel), bizErr.Error.Message)
	if c.GetBool(ctxkey.StreamStarted) {
		return
	}
	requestId := c.GetString(helper.RequestIdKey)
	bizErr.Error.Message = helper.MessageWithRequestId(bizErr.Error.Message, requestId)
	c.JSON(bizErr.StatusCode, gin.H{"error": bizErr.Error})
}

func RelayNotFound(c *gin.Context) {
	err := model.Error{
		Message: fmt.Sprintf("Invalid URL (%s %s)", c.Request.Method, c.Request.URL.Path),
		Type:    "invalid_request_error",
		Code:    "unknown_url",
	}
	c.JSON(http.StatusNotFound, gin.H{"error": err})
}
