package constant

var StopFinishReason = "stop"
var ToolCallsFinishReason = "tool_calls"
