package waiting

import (
	"math/rand"
	"time"
)

const defaultBucket = "_default"

// Spoken stalling utterances keyed by tool name. The bucket picked for a
// tool-call announcement masks the latency of the calendar write behind it.
var messages = map[string][]string{
	"check_availability": {
		"Let me pull up the calendar for you, one moment.",
		"I'm checking the available slots right now.",
		"Give me just a second while I look at the schedule.",
		"Let me see what openings we have on that day.",
	},
	"book_appointment": {
		"I'm booking that appointment for you now, just a moment.",
		"Let me get that scheduled for you, one second.",
		"I'm locking in your booking right now.",
		"Almost done, I'm confirming your appointment.",
	},
	"delete_appointment": {
		"I'm looking up your appointment now, one moment.",
		"Let me pull that booking up and cancel it for you.",
		"I'm processing the cancellation, just a second.",
		"Give me a moment while I remove that appointment.",
	},
	defaultBucket: {
		"One moment while I look that up.",
		"Give me just a second.",
		"Let me check on that for you.",
	},
}

// Selector picks waiting utterances. The randomness source is injected so
// tests can seed it.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select returns a waiting message for the given tool, falling back to the
// default bucket for unknown tools. Repeated calls may repeat an utterance.
func (s *Selector) Select(toolName string) string {
	candidates, ok := messages[toolName]
	if !ok {
		candidates = messages[defaultBucket]
	}
	return candidates[s.rng.Intn(len(candidates))]
}

var defaultSelector = NewSelector(nil)

func Select(toolName string) string {
	return defaultSelector.Select(toolName)
}
