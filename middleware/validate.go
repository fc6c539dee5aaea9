package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"github.com/ZiadElshayeb/workky/common"
	"github.com/ZiadElshayeb/workky/common/ctxkey"
)

// RelayValidate rejects requests the voice consumer cannot use before they
// reach the upstream. The endpoint only speaks SSE, so an explicit
// "stream": false is a caller bug; an absent stream flag defaults to true.
func RelayValidate() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := common.GetRequestBody(c)
		if err != nil {
			abortWithMessage(c, http.StatusBadRequest, "failed to read request body: "+err.Error())
			return
		}
		if !gjson.ValidBytes(body) {
			abortWithMessage(c, http.StatusBadRequest, "request body is not valid JSON")
			return
		}
		if stream := gjson.GetBytes(body, "stream"); stream.Exists() && !stream.Bool() {
			abortWithMessage(c, http.StatusBadRequest, "this endpoint only supports streaming responses; set \"stream\": true")
			return
		}
		if modelName := gjson.GetBytes(body, "model"); modelName.Exists() {
			c.Set(ctxkey.RequestModel, modelName.String())
		}
		c.Next()
	}
}
