package calendar

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type availabilityResult struct {
	Available              bool   `json:"available"`
	Date                   string `json:"date"`
	Day                    string `json:"day"`
	BusinessHours          string `json:"business_hours"`
	ServiceDurationMinutes int    `json:"service_duration_minutes"`
	TotalSlots             int    `json:"total_slots"`
	Slots                  []Slot `json:"slots"`
	Message                string `json:"message"`
}

type closedResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
	Slots     []Slot `json:"slots"`
}

func parseClock(value, fallback string) (hour, minute int) {
	if value == "" {
		value = fallback
	}
	parts := strings.SplitN(value, ":", 2)
	if len(parts) == 2 {
		hour, _ = strconv.Atoi(parts[0])
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}

// CheckAvailability lists open appointment slots for a date. Slots start on a
// 15-minute grid between the business's open and close times; any slot that
// overlaps an existing event, widened by the configured buffer, is dropped.
func (c *Calendar) CheckAvailability(ctx context.Context, date, serviceName string) string {
	events, errMsg := c.events(ctx)
	if errMsg != "" {
		return errorJSON(errMsg)
	}

	cfg := c.config()

	requested, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errorJSON(fmt.Sprintf("Invalid date format: %s. Please use YYYY-MM-DD.", date))
	}

	dayName := requested.Weekday().String()
	dayHours := cfg.Hours[strings.ToLower(dayName)]
	if !dayHours.Enabled {
		return toJSON(closedResult{
			Available: false,
			Message:   fmt.Sprintf("The business is closed on %ss.", dayName),
			Slots:     []Slot{},
		})
	}

	durationMinutes := cfg.BookingRules.DefaultDuration
	if serviceName != "" {
		for _, svc := range cfg.Services {
			if strings.EqualFold(svc.Name, serviceName) {
				if svc.Duration > 0 {
					durationMinutes = svc.Duration
				}
				break
			}
		}
	}

	openHour, openMin := parseClock(dayHours.Open, "09:00")
	closeHour, closeMin := parseClock(dayHours.Close, "17:00")
	openTime := dayHours.Open
	if openTime == "" {
		openTime = "09:00"
	}
	closeTime := dayHours.Close
	if closeTime == "" {
		closeTime = "17:00"
	}

	// Slot times are computed in the business's local timezone so they line
	// up with what the customer hears.
	tz := localZone()
	dayStart := time.Date(requested.Year(), requested.Month(), requested.Day(), openHour, openMin, 0, 0, tz)
	dayEnd := time.Date(requested.Year(), requested.Month(), requested.Day(), closeHour, closeMin, 0, 0, tz)

	existing, err := events.List(ctx, dayStart, dayEnd, "")
	if err != nil {
		return errorJSON(fmt.Sprintf("Failed to fetch calendar events: %s", err.Error()))
	}

	type busyPeriod struct {
		start time.Time
		end   time.Time
	}
	var busyPeriods []busyPeriod
	for _, evt := range existing {
		if evt.AllDay || evt.Start.IsZero() || evt.End.IsZero() {
			continue
		}
		busyPeriods = append(busyPeriods, busyPeriod{start: evt.Start, end: evt.End})
	}

	buffer := time.Duration(cfg.BookingRules.BufferTime) * time.Minute
	slotDuration := time.Duration(durationMinutes) * time.Minute
	availableSlots := make([]Slot, 0)

	for slotStart := dayStart; !slotStart.Add(slotDuration).After(dayEnd); slotStart = slotStart.Add(15 * time.Minute) {
		slotEnd := slotStart.Add(slotDuration)
		isAvailable := true
		for _, busy := range busyPeriods {
			if slotStart.Before(busy.end.Add(buffer)) && slotEnd.After(busy.start.Add(-buffer)) {
				isAvailable = false
				break
			}
		}
		if isAvailable {
			availableSlots = append(availableSlots, Slot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return toJSON(availabilityResult{
		Available:              len(availableSlots) > 0,
		Date:                   date,
		Day:                    dayName,
		BusinessHours:          fmt.Sprintf("%s - %s", openTime, closeTime),
		ServiceDurationMinutes: durationMinutes,
		TotalSlots:             len(availableSlots),
		Slots:                  availableSlots,
		Message:                fmt.Sprintf("Found %d available slot(s) on %s, %s.", len(availableSlots), dayName, date),
	})
}
