package calendar

import (
	"context"
	"fmt"
	"time"
)

type cancellationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventId string `json:"event_id"`
}

type matchedAppointment struct {
	EventId string `json:"event_id"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
}

type multipleMatchesResult struct {
	MultipleMatches bool                 `json:"multiple_matches"`
	Message         string               `json:"message"`
	Appointments    []matchedAppointment `json:"appointments"`
}

// DeleteAppointment cancels an appointment, located either directly by event
// id or by searching for the customer's name. An ambiguous name search
// reports the matches and deletes nothing.
func (c *Calendar) DeleteAppointment(ctx context.Context, eventId, customerName, date string) string {
	events, errMsg := c.events(ctx)
	if errMsg != "" {
		return errorJSON(errMsg)
	}

	if eventId != "" {
		event, err := events.Get(ctx, eventId)
		if err != nil {
			return errorJSON(fmt.Sprintf("Failed to delete appointment: %s", err.Error()))
		}
		summary := event.Summary
		if summary == "" {
			summary = "Unknown"
		}
		if err := events.Delete(ctx, eventId); err != nil {
			return errorJSON(fmt.Sprintf("Failed to delete appointment: %s", err.Error()))
		}
		return toJSON(cancellationResult{
			Success: true,
			Message: fmt.Sprintf("Appointment '%s' has been cancelled successfully.", summary),
			EventId: eventId,
		})
	}

	if customerName != "" {
		var timeMin, timeMax time.Time
		if date != "" {
			searchDate, err := time.Parse("2006-01-02", date)
			if err != nil {
				return errorJSON(fmt.Sprintf("Invalid date format: %s. Please use YYYY-MM-DD.", date))
			}
			timeMin = time.Date(searchDate.Year(), searchDate.Month(), searchDate.Day(), 0, 0, 0, 0, time.UTC)
			timeMax = time.Date(searchDate.Year(), searchDate.Month(), searchDate.Day(), 23, 59, 59, 0, time.UTC)
		} else {
			timeMin = c.now().UTC()
			timeMax = timeMin.AddDate(0, 0, 60)
		}

		matches, err := events.List(ctx, timeMin, timeMax, customerName)
		if err != nil {
			return errorJSON(fmt.Sprintf("Failed to search for appointments: %s", err.Error()))
		}

		if len(matches) == 0 {
			return errorJSON(fmt.Sprintf("No appointments found for '%s'.", customerName))
		}

		if len(matches) == 1 {
			evt := matches[0]
			if err := events.Delete(ctx, evt.Id); err != nil {
				return errorJSON(fmt.Sprintf("Failed to search for appointments: %s", err.Error()))
			}
			summary := evt.Summary
			if summary == "" {
				summary = "Unknown"
			}
			return toJSON(cancellationResult{
				Success: true,
				Message: fmt.Sprintf("Appointment '%s' has been cancelled successfully.", summary),
				EventId: evt.Id,
			})
		}

		appointments := make([]matchedAppointment, 0, len(matches))
		for _, evt := range matches {
			summary := evt.Summary
			if summary == "" {
				summary = "Unknown"
			}
			appointments = append(appointments, matchedAppointment{
				EventId: evt.Id,
				Summary: summary,
				Start:   evt.StartDisplay(),
			})
		}
		return toJSON(multipleMatchesResult{
			MultipleMatches: true,
			Message: fmt.Sprintf("Found %d appointments matching '%s'. Please specify which one to cancel.",
				len(matches), customerName),
			Appointments: appointments,
		})
	}

	return errorJSON("Please provide either an event_id or customer_name to cancel an appointment.")
}
