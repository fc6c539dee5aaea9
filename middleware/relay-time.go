package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/common/helper"
	"github.com/ZiadElshayeb/workky/common/logger"
)

// RelayTime stamps the request start on the gin keys and the request context,
// then logs the whole relay turn's duration once the stream has finished.
func RelayTime() func(c *gin.Context) {
	return func(c *gin.Context) {
		st := time.Now().UnixMilli()
		c.Set(helper.StartTimeKey, st)
		ctx := context.WithValue(c.Request.Context(), helper.StartTimeKey, st)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		logger.Infof(c.Request.Context(), "relay finished in %dms", time.Now().UnixMilli()-st)
	}
}
