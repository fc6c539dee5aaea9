package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type BookingRequest struct {
	Date          string
	Time          string
	ServiceName   string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
}

type bookingResult struct {
	Success         bool   `json:"success"`
	EventId         string `json:"event_id"`
	Summary         string `json:"summary"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	Link            string `json:"link"`
	Message         string `json:"message"`
}

func priceString(price any) string {
	if price == nil {
		return "N/A"
	}
	switch v := price.(type) {
	case string:
		if v == "" {
			return "N/A"
		}
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// BookAppointment writes a single calendar event for the customer. The write
// happens at most once per call; validation failures return before any
// calendar traffic.
func (c *Calendar) BookAppointment(ctx context.Context, req BookingRequest) string {
	events, errMsg := c.events(ctx)
	if errMsg != "" {
		return errorJSON(errMsg)
	}

	cfg := c.config()

	var serviceDetails *Service
	for i, svc := range cfg.Services {
		if strings.EqualFold(svc.Name, req.ServiceName) {
			serviceDetails = &cfg.Services[i]
			break
		}
	}

	durationMinutes := cfg.BookingRules.DefaultDuration
	price := "N/A"
	if serviceDetails != nil {
		if serviceDetails.Duration > 0 {
			durationMinutes = serviceDetails.Duration
		}
		price = priceString(serviceDetails.Price)
	}

	// The agent quotes times in the business's local timezone; they are
	// stored on the calendar as UTC instants.
	startDt, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, localZone())
	if err != nil {
		return errorJSON("Invalid date/time format. Use YYYY-MM-DD for date and HH:MM for time.")
	}
	endDt := startDt.Add(time.Duration(durationMinutes) * time.Minute)

	now := c.now().UTC()
	minNotice := cfg.BookingRules.MinNotice
	if startDt.Before(now.Add(time.Duration(minNotice) * time.Hour)) {
		return errorJSON(fmt.Sprintf("Appointments must be booked at least %d hour(s) in advance.", minNotice))
	}

	maxAdvance := cfg.BookingRules.MaxAdvance
	if startDt.After(now.AddDate(0, 0, maxAdvance)) {
		return errorJSON(fmt.Sprintf("Appointments can only be booked up to %d days in advance.", maxAdvance))
	}

	descriptionParts := []string{
		fmt.Sprintf("Service: %s", req.ServiceName),
		fmt.Sprintf("Duration: %d minutes", durationMinutes),
		fmt.Sprintf("Customer: %s", req.CustomerName),
	}
	if req.CustomerPhone != "" {
		descriptionParts = append(descriptionParts, fmt.Sprintf("Phone: %s", req.CustomerPhone))
	}
	if req.CustomerEmail != "" {
		descriptionParts = append(descriptionParts, fmt.Sprintf("Email: %s", req.CustomerEmail))
	}
	if price != "N/A" {
		descriptionParts = append(descriptionParts, fmt.Sprintf("Price: $%s", price))
	}
	if req.Notes != "" {
		descriptionParts = append(descriptionParts, fmt.Sprintf("Notes: %s", req.Notes))
	}
	businessName := cfg.BusinessInfo.Name
	if businessName == "" {
		businessName = "Workky"
	}
	descriptionParts = append(descriptionParts, fmt.Sprintf("\nBooked via %s AI Assistant", businessName))

	event := &Event{
		Summary:     fmt.Sprintf("%s - %s", req.ServiceName, req.CustomerName),
		Description: strings.Join(descriptionParts, "\n"),
		Start:       startDt.UTC(),
		End:         endDt.UTC(),
	}
	if req.CustomerEmail != "" {
		event.Attendees = []string{req.CustomerEmail}
	}

	created, err := events.Insert(ctx, event)
	if err != nil {
		return errorJSON(fmt.Sprintf("Failed to create appointment: %s", err.Error()))
	}

	return toJSON(bookingResult{
		Success:         true,
		EventId:         created.Id,
		Summary:         created.Summary,
		Start:           startDt.Format("2006-01-02 15:04"),
		End:             endDt.Format("2006-01-02 15:04"),
		DurationMinutes: durationMinutes,
		Price:           price,
		Link:            created.HtmlLink,
		Message: fmt.Sprintf("Appointment booked successfully! %s for %s on %s at %s.",
			req.ServiceName, req.CustomerName, req.Date, req.Time),
	})
}
