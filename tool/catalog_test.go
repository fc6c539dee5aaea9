package tool

import (
	"testing"

	"github.com/ZiadElshayeb/workky/relay/model"
)

func TestMergeToolsNoCallerTools(t *testing.T) {
	merged := MergeTools(nil)
	if len(merged) != len(CalendarTools) {
		t.Fatalf("merged %d tools, want %d", len(merged), len(CalendarTools))
	}
}

func TestMergeToolsCallerOverridesBuiltin(t *testing.T) {
	custom := model.Tool{
		Type: "function",
		Function: model.Function{
			Name:        "book_appointment",
			Description: "caller-supplied booking flow",
		},
	}
	extra := model.Tool{
		Type: "function",
		Function: model.Function{
			Name: "send_invoice",
		},
	}
	merged := MergeTools([]model.Tool{custom, extra})

	if len(merged) != len(CalendarTools)+1 {
		t.Fatalf("merged %d tools, want %d", len(merged), len(CalendarTools)+1)
	}
	seen := make(map[string]int)
	for _, tl := range merged {
		seen[tl.Function.Name]++
		if tl.Function.Name == "book_appointment" && tl.Function.Description != "caller-supplied booking flow" {
			t.Error("caller definition did not replace the built-in")
		}
	}
	for name, count := range seen {
		if count != 1 {
			t.Errorf("tool %q appears %d times in the merged catalog", name, count)
		}
	}
	if seen["send_invoice"] == 0 {
		t.Error("caller-only tool missing from the merged catalog")
	}
}
