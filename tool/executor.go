// Package tool dispatches model-issued tool calls to the calendar
// collaborator and normalizes every outcome to a JSON envelope.
package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ZiadElshayeb/workky/tool/calendar"
)

type Executor struct {
	calendar *calendar.Calendar
}

func NewExecutor(cal *calendar.Calendar) *Executor {
	return &Executor{calendar: cal}
}

func argString(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return value
}

// Execute runs one tool call. Unknown names come back as a structured error,
// never as a Go error; the collaborator validates its own required arguments.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) string {
	switch name {
	case "check_availability":
		return e.calendar.CheckAvailability(ctx,
			argString(args, "date"),
			argString(args, "service_name"),
		)
	case "book_appointment":
		return e.calendar.BookAppointment(ctx, calendar.BookingRequest{
			Date:          argString(args, "date"),
			Time:          argString(args, "time"),
			ServiceName:   argString(args, "service_name"),
			CustomerName:  argString(args, "customer_name"),
			CustomerPhone: argString(args, "customer_phone"),
			CustomerEmail: argString(args, "customer_email"),
			Notes:         argString(args, "notes"),
		})
	case "delete_appointment":
		return e.calendar.DeleteAppointment(ctx,
			argString(args, "event_id"),
			argString(args, "customer_name"),
			argString(args, "date"),
		)
	default:
		result, _ := json.Marshal(map[string]string{
			"error": fmt.Sprintf("Unknown tool: %s", name),
		})
		return string(result)
	}
}

var startLabels = map[string]string{
	"check_availability": "📅 Checking calendar availability",
	"book_appointment":   "📝 Booking appointment",
	"delete_appointment": "🗑️ Cancelling appointment",
}

// StartLabel is the human-readable line shown on the dashboard when a tool
// starts executing.
func StartLabel(name string) string {
	if label, ok := startLabels[name]; ok {
		return label
	}
	return fmt.Sprintf("🔧 Running %s", name)
}
