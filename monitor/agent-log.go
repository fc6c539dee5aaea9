package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ZiadElshayeb/workky/common/config"
	"github.com/ZiadElshayeb/workky/common/logger"
	"github.com/ZiadElshayeb/workky/relay/client"
)

// AgentLogURL is the dashboard endpoint; tests override it.
var AgentLogURL = config.AgentLogURL

// Emit pushes a status event to the dashboard backend. It is fire-and-forget:
// the POST runs detached with its own deadline, and every failure is
// swallowed so a slow or unreachable dashboard can never stall the relay.
func Emit(eventType string, payload map[string]any) {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["type"] = eventType

	jsonData, err := json.Marshal(body)
	if err != nil {
		logger.SysError("failed to marshal agent log event: " + err.Error())
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, AgentLogURL, bytes.NewBuffer(jsonData))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.ImpatientHTTPClient.Do(req)
		if err != nil {
			logger.SysLog("agent log post failed: " + err.Error())
			return
		}
		_ = resp.Body.Close()
	}()
}
