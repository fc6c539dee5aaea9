package monitor

import (
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	EventToolStart   = "tool_start"
	EventToolSuccess = "tool_success"
	EventToolError   = "tool_error"
)

type Outcome struct {
	Type  string
	Label string
}

// ClassifyToolResult maps a tool-result JSON document to a dashboard outcome.
// Precedence is fixed: an explicit error key wins over success, which wins
// over the informational available shape; anything else counts as completed.
func ClassifyToolResult(result string) Outcome {
	parsed := gjson.Parse(result)
	if errValue := parsed.Get("error"); errValue.Exists() {
		return Outcome{
			Type:  EventToolError,
			Label: "Error: " + errValue.String(),
		}
	}
	if parsed.Get("success").Bool() {
		label := parsed.Get("message").String()
		if label == "" {
			label = "Done"
		}
		return Outcome{
			Type:  EventToolSuccess,
			Label: label,
		}
	}
	if available := parsed.Get("available"); available.Exists() {
		return Outcome{
			Type:  EventToolSuccess,
			Label: fmt.Sprintf("Found %d available slot(s)", parsed.Get("total_slots").Int()),
		}
	}
	return Outcome{
		Type:  EventToolSuccess,
		Label: "Completed",
	}
}
