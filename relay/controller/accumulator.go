package controller

import (
	"encoding/json"
	"sort"

	"github.com/ZiadElshayeb/workky/relay/model"
)

// toolCallAccumulator merges streamed tool-call fragments by choice index.
// The id is set once; name and arguments grow by string concatenation, since
// a single call's arguments may be split across many chunks.
type toolCallAccumulator struct {
	calls map[int]*model.Tool
}

func newToolCallAccumulator() *toolCallAccumulator {
	return &toolCallAccumulator{calls: make(map[int]*model.Tool)}
}

func (a *toolCallAccumulator) Add(fragments []model.Tool) {
	for i := range fragments {
		fragment := fragments[i]
		index := 0
		if fragment.Index != nil {
			index = *fragment.Index
		}
		existing, ok := a.calls[index]
		if !ok {
			a.calls[index] = &fragment
			continue
		}
		if existing.Id == "" {
			existing.Id = fragment.Id
		}
		if existing.Type == "" {
			existing.Type = fragment.Type
		}
		existing.Function.Name += fragment.Function.Name
		existing.Function.Arguments += fragment.Function.Arguments
	}
}

func (a *toolCallAccumulator) Empty() bool {
	return len(a.calls) == 0
}

// Calls returns the completed records in index order, normalized for the
// follow-up assistant message.
func (a *toolCallAccumulator) Calls() []model.Tool {
	indexes := make([]int, 0, len(a.calls))
	for index := range a.calls {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	calls := make([]model.Tool, 0, len(indexes))
	for _, index := range indexes {
		call := *a.calls[index]
		call.Index = nil
		if call.Type == "" {
			call.Type = "function"
		}
		calls = append(calls, call)
	}
	return calls
}

// parseArguments decodes an accumulated arguments string. Malformed JSON
// degrades to an empty mapping so the tool's own validation can answer.
func parseArguments(arguments string) map[string]any {
	args := make(map[string]any)
	if arguments == "" {
		return args
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return make(map[string]any)
	}
	return args
}
