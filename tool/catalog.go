package tool

import (
	"github.com/ZiadElshayeb/workky/relay/model"
)

// CalendarTools is the built-in tool catalog sent upstream with every
// request, merged with any caller-supplied definitions.
var CalendarTools = []model.Tool{
	{
		Type: "function",
		Function: model.Function{
			Name: "check_availability",
			Description: "Check available appointment time slots for a given date. " +
				"Returns a list of open slots based on business hours and existing calendar events. " +
				"Use this when a customer asks about availability or wants to know open times.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date": map[string]any{
						"type":        "string",
						"description": "The date to check availability for, in YYYY-MM-DD format.",
					},
					"service_name": map[string]any{
						"type":        "string",
						"description": "Optional service name to determine the appointment duration.",
					},
				},
				"required": []string{"date"},
			},
		},
	},
	{
		Type: "function",
		Function: model.Function{
			Name: "book_appointment",
			Description: "Book an appointment on the calendar for a customer. " +
				"Requires date, time, service name, and customer name. " +
				"Use this after confirming availability and collecting customer details.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date": map[string]any{
						"type":        "string",
						"description": "Appointment date in YYYY-MM-DD format.",
					},
					"time": map[string]any{
						"type":        "string",
						"description": "Appointment start time in HH:MM 24-hour format.",
					},
					"service_name": map[string]any{
						"type":        "string",
						"description": "Name of the service being booked.",
					},
					"customer_name": map[string]any{
						"type":        "string",
						"description": "Full name of the customer.",
					},
					"customer_phone": map[string]any{
						"type":        "string",
						"description": "Customer phone number (optional).",
					},
					"customer_email": map[string]any{
						"type":        "string",
						"description": "Customer email address (optional).",
					},
					"notes": map[string]any{
						"type":        "string",
						"description": "Additional notes or special requests (optional).",
					},
				},
				"required": []string{"date", "time", "service_name", "customer_name"},
			},
		},
	},
	{
		Type: "function",
		Function: model.Function{
			Name: "delete_appointment",
			Description: "Cancel/delete an existing appointment from the calendar. " +
				"Can search by event ID or by customer name. " +
				"Use this when a customer wants to cancel their appointment.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"event_id": map[string]any{
						"type":        "string",
						"description": "The calendar event ID if known.",
					},
					"customer_name": map[string]any{
						"type":        "string",
						"description": "Customer name to search for the appointment.",
					},
					"date": map[string]any{
						"type":        "string",
						"description": "Date of the appointment in YYYY-MM-DD format (helps narrow the search).",
					},
				},
				"required": []string{},
			},
		},
	},
}

// MergeTools appends caller-supplied definitions to the built-in catalog.
// A caller definition with a built-in's name replaces the built-in, so the
// merged catalog never carries duplicate names upstream.
func MergeTools(callerTools []model.Tool) []model.Tool {
	merged := make([]model.Tool, 0, len(CalendarTools)+len(callerTools))
	overridden := make(map[string]bool, len(callerTools))
	for _, t := range callerTools {
		overridden[t.Function.Name] = true
	}
	for _, t := range CalendarTools {
		if !overridden[t.Function.Name] {
			merged = append(merged, t)
		}
	}
	return append(merged, callerTools...)
}
