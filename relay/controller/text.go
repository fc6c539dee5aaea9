// Package controller drives a single relay turn: it forwards the caller's
// chat request upstream with the calendar tool catalog attached, relays
// plain answers verbatim, and on a tool decision substitutes a spoken
// waiting utterance, executes the tools, and streams the follow-up answer.
package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZiadElshayeb/workky/common"
	"github.com/ZiadElshayeb/workky/common/config"
	"github.com/ZiadElshayeb/workky/common/ctxkey"
	"github.com/ZiadElshayeb/workky/common/logger"
	"github.com/ZiadElshayeb/workky/common/render"
	"github.com/ZiadElshayeb/workky/monitor"
	"github.com/ZiadElshayeb/workky/relay/client"
	"github.com/ZiadElshayeb/workky/relay/constant"
	"github.com/ZiadElshayeb/workky/relay/model"
	"github.com/ZiadElshayeb/workky/relay/waiting"
	"github.com/ZiadElshayeb/workky/tool"
	"github.com/ZiadElshayeb/workky/tool/calendar"
)

type toolRunner interface {
	Execute(ctx context.Context, name string, args map[string]any) string
}

// toolExecutor runs the calendar tools; tests swap in a stub.
var toolExecutor toolRunner = tool.NewExecutor(calendar.New())

// RelayTextHelper handles one streaming relay turn. Errors are returned only
// while the response is still unwritten; once the stream has started, failures
// are logged and the stream is closed out with [DONE].
func RelayTextHelper(c *gin.Context) *model.ErrorWithStatusCode {
	ctx := c.Request.Context()
	request := &model.GeneralOpenAIRequest{}
	if err := common.UnmarshalBodyReusable(c, request); err != nil {
		return client.ErrorWrapper(err, "bind_request_body_failed", http.StatusBadRequest)
	}

	upstream := *request
	upstream.Stream = true
	upstream.Tools = tool.MergeTools(request.Tools)
	upstream.ToolChoice = "auto"

	stream, bizErr := client.ChatCompletionStream(ctx, &upstream)
	if bizErr != nil {
		return bizErr
	}
	defer stream.Close()

	var buffered []string
	acc := newToolCallAccumulator()
	announced := false
	modelName := request.Model

	for {
		chunk, raw, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			if announced {
				logger.Errorf(ctx, "reading upstream stream after announce: %s", err.Error())
				render.Done(c)
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return client.ErrorWrapper(err, "request_canceled", 499)
			}
			return client.ErrorWrapper(err, "read_stream_failed", http.StatusInternalServerError)
		}
		if chunk.Model != "" {
			modelName = chunk.Model
		}
		if len(chunk.Choices) == 0 {
			if !announced {
				buffered = append(buffered, raw)
			}
			continue
		}
		choice := chunk.Choices[0]
		if len(choice.Delta.ToolCalls) > 0 {
			if !announced {
				// The model decided to call tools: the narration it streamed
				// ahead of the decision never reaches the caller.
				buffered = nil
				firstTool := choice.Delta.ToolCalls[0].Function.Name
				if err := announceWaiting(c, firstTool, modelName); err != nil {
					return client.ErrorWrapper(err, "write_waiting_chunk_failed", http.StatusInternalServerError)
				}
				announced = true
			}
			acc.Add(choice.Delta.ToolCalls)
			continue
		}
		if choice.FinishReason != nil && *choice.FinishReason == constant.ToolCallsFinishReason {
			logger.Debugf(ctx, "upstream finished with %d tool call(s)", len(acc.calls))
			continue
		}
		if !announced {
			buffered = append(buffered, raw)
		}
	}

	if !announced {
		// Plain answer: replay every buffered line exactly as received.
		common.SetEventStreamHeaders(c)
		c.Set(ctxkey.StreamStarted, true)
		for _, raw := range buffered {
			_ = render.StringData(c, raw)
		}
		render.Done(c)
		return nil
	}

	if err := stallForTTS(ctx); err != nil {
		logger.Infof(ctx, "client disconnected during stall: %s", err.Error())
		return nil
	}

	// Keep-alive while the tools run, so idle-timeout proxies hold the
	// connection open. SSE consumers ignore comment lines.
	_ = render.Comment(c, "executing tools")

	toolCalls := acc.Calls()
	toolMessages := runTools(ctx, toolCalls)

	followUp := make([]model.Message, 0, len(request.Messages)+1+len(toolMessages))
	followUp = append(followUp, request.Messages...)
	followUp = append(followUp, model.Message{
		Role:      "assistant",
		Content:   nil,
		ToolCalls: toolCalls,
	})
	followUp = append(followUp, toolMessages...)

	// No tool catalog on the follow-up call, so the model must answer in text.
	second := &model.GeneralOpenAIRequest{
		Model:       request.Model,
		Messages:    followUp,
		Stream:      true,
		Temperature: request.Temperature,
		TopP:        request.TopP,
		MaxTokens:   request.MaxTokens,
	}
	answer, bizErr := client.ChatCompletionStream(ctx, second)
	if bizErr != nil {
		logger.Errorf(ctx, "follow-up stream failed: %s", bizErr.Error.Message)
		render.Done(c)
		return nil
	}
	defer answer.Close()
	for {
		_, raw, err := answer.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Errorf(ctx, "reading follow-up stream: %s", err.Error())
			break
		}
		_ = render.StringData(c, raw)
	}
	render.Done(c)
	return nil
}

// announceWaiting commits the spoken stall to the caller: a waiting utterance
// as a text delta followed by a stop marker so the consumer flushes it to TTS.
func announceWaiting(c *gin.Context, toolName, modelName string) error {
	common.SetEventStreamHeaders(c)
	c.Set(ctxkey.StreamStarted, true)
	message := waiting.Select(toolName)
	if err := render.ObjectData(c, waitingChunk(message, modelName)); err != nil {
		return err
	}
	return render.ObjectData(c, stopChunk(modelName))
}

// stallForTTS pauses after the waiting utterance is on the wire, giving the
// consumer's speech synthesis a head start on the tool round-trip.
func stallForTTS(ctx context.Context) error {
	if config.TTSStallSeconds <= 0 {
		return nil
	}
	timer := time.NewTimer(time.Duration(config.TTSStallSeconds) * time.Second)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// runTools executes the accumulated calls in order, pushing start and outcome
// events to the dashboard, and returns the tool messages for the follow-up.
func runTools(ctx context.Context, calls []model.Tool) []model.Message {
	results := make([]model.Message, 0, len(calls))
	for _, call := range calls {
		name := call.Function.Name
		args := parseArguments(call.Function.Arguments)
		monitor.Emit(monitor.EventToolStart, map[string]any{
			"tool":  name,
			"label": tool.StartLabel(name),
			"args":  args,
		})
		logger.Infof(ctx, "executing tool %s", name)
		result := toolExecutor.Execute(ctx, name, args)
		outcome := monitor.ClassifyToolResult(result)
		monitor.Emit(outcome.Type, map[string]any{
			"tool":  name,
			"label": outcome.Label,
		})
		results = append(results, model.Message{
			Role:       "tool",
			Content:    result,
			ToolCallId: call.Id,
		})
	}
	return results
}
