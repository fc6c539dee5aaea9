// Package calendar implements the appointment tools behind the relay:
// availability lookup, booking and cancellation against the business's
// externally-owned calendar. Every operation returns a JSON document and
// never an error, so results can be fed back to the model verbatim.
package calendar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ZiadElshayeb/workky/common/config"
)

type Calendar struct {
	events func(ctx context.Context) (EventService, string)
	now    func() time.Time
	config func() BusinessConfig
}

func New() *Calendar {
	return &Calendar{
		events: connectGoogle,
		now:    time.Now,
		config: LoadBusinessConfig,
	}
}

func localZone() *time.Location {
	return time.FixedZone("business", config.LocalUTCOffsetHours*3600)
}

func errorJSON(message string) string {
	return toJSON(map[string]string{"error": message})
}

func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"error": "internal serialization failure"}`
	}
	return string(data)
}
