package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ZiadElshayeb/workky/common/config"
	"github.com/ZiadElshayeb/workky/common/logger"
	"github.com/ZiadElshayeb/workky/relay/model"
)

// BaseURL and APIKey default to the configured upstream; tests override them.
var BaseURL = config.LLMBaseURL
var APIKey = config.LLMAPIKey

func newChatRequest(ctx context.Context, request *model.GeneralOpenAIRequest) (*http.Request, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+APIKey)
	return req, nil
}

func relayUpstreamError(resp *http.Response) *model.ErrorWithStatusCode {
	defer resp.Body.Close()
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrorWrapper(err, "read_response_body_failed", http.StatusInternalServerError)
	}
	var wrapped struct {
		Error model.Error `json:"error"`
	}
	if err = json.Unmarshal(responseBody, &wrapped); err != nil || wrapped.Error.Message == "" {
		wrapped.Error = model.Error{
			Message: fmt.Sprintf("upstream returned status %d: %s", resp.StatusCode, string(responseBody)),
			Type:    "upstream_error",
			Code:    "bad_response_status_code",
		}
	}
	return &model.ErrorWithStatusCode{
		Error:      wrapped.Error,
		StatusCode: resp.StatusCode,
	}
}

// ChatCompletion issues one non-streaming completion call.
func ChatCompletion(ctx context.Context, request *model.GeneralOpenAIRequest) (*model.TextResponse, *model.ErrorWithStatusCode) {
	req, err := newChatRequest(ctx, request)
	if err != nil {
		return nil, ErrorWrapper(err, "create_request_failed", http.StatusInternalServerError)
	}
	resp, err := HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ErrorWrapper(err, "request_canceled", 499)
		}
		return nil, ErrorWrapper(err, "do_request_failed", http.StatusBadGateway)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, relayUpstreamError(resp)
	}
	defer resp.Body.Close()
	var textResponse model.TextResponse
	if err = json.NewDecoder(resp.Body).Decode(&textResponse); err != nil {
		return nil, ErrorWrapper(err, "unmarshal_response_body_failed", http.StatusInternalServerError)
	}
	return &textResponse, nil
}

// Stream reads "data: " framed completion chunks from an upstream response.
type Stream struct {
	resp    *http.Response
	scanner *bufio.Scanner
}

// ChatCompletionStream issues a streaming completion call. The caller owns
// the returned stream and must Close it.
func ChatCompletionStream(ctx context.Context, request *model.GeneralOpenAIRequest) (*Stream, *model.ErrorWithStatusCode) {
	req, err := newChatRequest(ctx, request)
	if err != nil {
		return nil, ErrorWrapper(err, "create_request_failed", http.StatusInternalServerError)
	}
	req.Header.Set("Accept", "text/event-stream")
	resp, err := HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ErrorWrapper(err, "request_canceled", 499)
		}
		return nil, ErrorWrapper(err, "do_request_failed", http.StatusBadGateway)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, relayUpstreamError(resp)
	}
	scanner := bufio.NewScanner(resp.Body)
	scanner.Split(bufio.ScanLines)
	return &Stream{resp: resp, scanner: scanner}, nil
}

// Recv returns the next chunk together with its raw JSON payload so callers
// can relay it verbatim. io.EOF signals the end of the stream, either via the
// [DONE] sentinel or the upstream closing the connection.
func (s *Stream) Recv() (*model.ChatCompletionsStreamResponse, string, error) {
	for s.scanner.Scan() {
		data := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(data, "data: ") {
			continue
		}
		data = strings.TrimPrefix(data, "data: ")
		if data == "[DONE]" {
			return nil, "", io.EOF
		}
		var chunk model.ChatCompletionsStreamResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			logger.SysError("error unmarshalling stream response: " + err.Error())
			continue
		}
		return &chunk, data, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, "", err
	}
	return nil, "", io.EOF
}

func (s *Stream) Close() {
	_ = s.resp.Body.Close()
}
