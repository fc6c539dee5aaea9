package controller

import (
	"github.com/ZiadElshayeb/workky/common/helper"
	"github.com/ZiadElshayeb/workky/common/random"
	"github.com/ZiadElshayeb/workky/relay/constant"
	"github.com/ZiadElshayeb/workky/relay/model"
)

func chunkId() string {
	return "chatcmpl-" + random.GetUUID()[:8]
}

// waitingChunk wraps a waiting utterance as a normal text delta so the voice
// consumer speaks it like any other assistant output.
func waitingChunk(message string, modelName string) *model.ChatCompletionsStreamResponse {
	return &model.ChatCompletionsStreamResponse{
		Id:      chunkId(),
		Object:  "chat.completion.chunk",
		Created: helper.GetTimestamp(),
		Model:   modelName,
		Choices: []model.ChatCompletionsStreamResponseChoice{
			{
				Index: 0,
				Delta: model.Message{Content: message},
			},
		},
	}
}

// stopChunk is an empty delta with a stop finish reason. Emitting it right
// after the waiting chunk makes the consumer commit the utterance to TTS
// instead of waiting for more tokens.
func stopChunk(modelName string) *model.ChatCompletionsStreamResponse {
	return &model.ChatCompletionsStreamResponse{
		Id:      chunkId(),
		Object:  "chat.completion.chunk",
		Created: helper.GetTimestamp(),
		Model:   modelName,
		Choices: []model.ChatCompletionsStreamResponseChoice{
			{
				Index:        0,
				Delta:        model.Message{},
				FinishReason: &constant.StopFinishReason,
			},
		},
	}
}
