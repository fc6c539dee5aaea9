package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/common/config"
)

func TestRelayRejectsMissingAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	old := config.LLMAPIKey
	config.LLMAPIKey = ""
	t.Cleanup(func() { config.LLMAPIKey = old })

	r := gin.New()
	r.POST("/chat/completions", Relay)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat/completions",
		strings.NewReader(`{"model":"gpt-4o-mini","messages":[],"stream":true}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    any    `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body did not decode: %v", err)
	}
	if body.Error.Code != "missing_api_key" {
		t.Errorf("code = %v", body.Error.Code)
	}
	if body.Error.Type != "workky_api_error" {
		t.Errorf("type = %q", body.Error.Type)
	}
}

func TestRelayNotFoundEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(RelayNotFound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown_url") {
		t.Errorf("body = %s", w.Body.String())
	}
}
