package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZiadElshayeb/workky/relay/model"
)

func withTestUpstream(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	oldBase, oldKey := BaseURL, APIKey
	BaseURL, APIKey = server.URL, "test-key"
	t.Cleanup(func() { BaseURL, APIKey = oldBase, oldKey })
}

func TestChatCompletionDecodesResponse(t *testing.T) {
	body := `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",` +
		`"choices":[{"index":0,"message":{"role":"assistant","content":"Hello"},"finish_reason":"stop"}],` +
		`"usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}}`
	withTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req model.GeneralOpenAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body did not decode: %v", err)
		} else if req.Model != "gpt-4o-mini" {
			t.Errorf("model = %q", req.Model)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	})

	resp, bizErr := ChatCompletion(context.Background(), &model.GeneralOpenAIRequest{Model: "gpt-4o-mini"})
	if bizErr != nil {
		t.Fatalf("completion failed: %+v", bizErr)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("choices = %d", len(resp.Choices))
	}
	if content, _ := resp.Choices[0].Message.Content.(string); content != "Hello" {
		t.Errorf("content = %q", content)
	}
	if resp.Choices[0].FinishReason != "stop" {
		t.Errorf("finish_reason = %q", resp.Choices[0].FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 3 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

func TestChatCompletionUpstreamError(t *testing.T) {
	withTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited","type":"rate_limit_error"}}`)
	})

	_, bizErr := ChatCompletion(context.Background(), &model.GeneralOpenAIRequest{Model: "gpt-4o-mini"})
	if bizErr == nil {
		t.Fatal("expected an error")
	}
	if bizErr.StatusCode != http.StatusTooManyRequests || bizErr.Error.Message != "rate limited" {
		t.Errorf("got %d %q", bizErr.StatusCode, bizErr.Error.Message)
	}
}

func TestChatCompletionStreamParsesChunks(t *testing.T) {
	chunk := `{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"hello"},"finish_reason":null}]}`
	withTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, ": keepalive\n\n")
		fmt.Fprint(w, "data: {malformed\n\n")
		fmt.Fprintf(w, "data: %s\n\n", chunk)
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	stream, bizErr := ChatCompletionStream(context.Background(), &model.GeneralOpenAIRequest{
		Model:  "gpt-4o-mini",
		Stream: true,
	})
	if bizErr != nil {
		t.Fatalf("stream failed: %+v", bizErr)
	}
	defer stream.Close()

	// Comment and malformed lines are skipped, not surfaced.
	parsed, raw, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv failed: %v", err)
	}
	if raw != chunk {
		t.Errorf("raw = %q, want the chunk verbatim", raw)
	}
	if content, _ := parsed.Choices[0].Delta.Content.(string); content != "hello" {
		t.Errorf("content = %q", content)
	}

	if _, _, err := stream.Recv(); err != io.EOF {
		t.Errorf("after [DONE] err = %v, want io.EOF", err)
	}
}

func TestChatCompletionStreamUpstreamError(t *testing.T) {
	withTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	})

	_, bizErr := ChatCompletionStream(context.Background(), &model.GeneralOpenAIRequest{Model: "gpt-4o-mini"})
	if bizErr == nil {
		t.Fatal("expected an error")
	}
	if bizErr.StatusCode != http.StatusUnauthorized || bizErr.Error.Message != "bad key" {
		t.Errorf("got %d %q", bizErr.StatusCode, bizErr.Error.Message)
	}
}

func TestChatCompletionStreamUndecodableErrorBody(t *testing.T) {
	withTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "gateway exploded")
	})

	_, bizErr := ChatCompletionStream(context.Background(), &model.GeneralOpenAIRequest{Model: "gpt-4o-mini"})
	if bizErr == nil {
		t.Fatal("expected an error")
	}
	if bizErr.Error.Code != "bad_response_status_code" {
		t.Errorf("code = %v", bizErr.Error.Code)
	}
}

func TestChatCompletionStreamCanceledContext(t *testing.T) {
	withTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("canceled request must not reach the upstream handler")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, bizErr := ChatCompletionStream(ctx, &model.GeneralOpenAIRequest{Model: "gpt-4o-mini"})
	if bizErr == nil {
		t.Fatal("expected an error")
	}
	if bizErr.StatusCode != 499 {
		t.Errorf("status = %d, want 499", bizErr.StatusCode)
	}
}
