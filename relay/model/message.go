package model

// Message is one chat turn on the wire. Content stays opaque (string or typed
// part list) because the relay forwards it without inspecting it; the tool
// linkage fields tie assistant tool_calls entries to their tool-role results.
type Message struct {
	Role       string            `json:"role,omitempty"`
	Content    any               `json:"content,omitempty"`
	Name       *string           `json:"name,omitempty"`
	Audio      map[string]string `json:"audio,omitempty"`
	ToolCalls  []Tool            `json:"tool_calls,omitempty"`
	ToolCallId string            `json:"tool_call_id,omitempty"`
}
