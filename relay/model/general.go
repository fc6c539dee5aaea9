package model

type JSONSchema struct {
	Description string         `json:"description,omitempty"`
	Name        string         `json:"name"`
	Schema      map[string]any `json:"schema,omitempty"`
	Strict      *bool          `json:"strict,omitempty"`
}

type ResponseFormat struct {
	Type       string      `json:"type,omitempty"`
	JsonSchema *JSONSchema `json:"json_schema,omitempty"`
}

type StreamOptions struct {
	IncludeUsage bool `json:"include_usage,omitempty"`
}

type GeneralOpenAIRequest struct {
	Context           map[string]any    `json:"context,omitempty"`
	Model             string            `json:"model,omitempty"`
	Messages          []Message         `json:"messages"`
	ResponseFormat    *ResponseFormat   `json:"response_format,omitempty"`
	Modalities        []string          `json:"modalities,omitempty"`
	Audio             map[string]string `json:"audio,omitempty"`
	Tools             []Tool            `json:"tools,omitempty"`
	ToolChoice        any               `json:"tool_choice,omitempty"`
	ParallelToolCalls *bool             `json:"parallel_tool_calls,omitempty"`
	Stream            bool              `json:"stream,omitempty"`
	StreamOptions     *StreamOptions    `json:"stream_options,omitempty"`
	Temperature       *float64          `json:"temperature,omitempty"`
	TopP              *float64          `json:"top_p,omitempty"`
	MaxTokens         int               `json:"max_tokens,omitempty"`
}
