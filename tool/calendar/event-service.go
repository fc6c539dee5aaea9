package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/ZiadElshayeb/workky/common/config"
	"github.com/ZiadElshayeb/workky/common/logger"
)

// Event is the calendar entry shape the tools operate on.
type Event struct {
	Id          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	HtmlLink    string
	Attendees   []string
}

// StartDisplay renders the start the way the voice agent reads it back:
// a bare date for all-day events, RFC 3339 otherwise.
func (e Event) StartDisplay() string {
	if e.AllDay {
		return e.Start.Format("2006-01-02")
	}
	return e.Start.Format(time.RFC3339)
}

// EventService abstracts the externally-owned calendar. The production
// implementation talks to Google Calendar; tests substitute an in-memory one.
// Individual writes are atomic on the provider side, no extra locking here.
type EventService interface {
	List(ctx context.Context, timeMin, timeMax time.Time, query string) ([]Event, error)
	Get(ctx context.Context, eventId string) (*Event, error)
	Insert(ctx context.Context, event *Event) (*Event, error)
	Delete(ctx context.Context, eventId string) error
}

// storedToken mirrors the token.json layout written by the setup script.
type storedToken struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	TokenURI     string    `json:"token_uri"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	Scopes       []string  `json:"scopes"`
	Expiry       time.Time `json:"expiry"`
}

const (
	errNotConnected  = "Google Calendar is not connected. Please ask the business owner to connect their calendar."
	errInvalidCreds  = "Google Calendar credentials are invalid. Please reconnect your calendar."
	calendarReadOnly = "https://www.googleapis.com/auth/calendar.readonly"
	calendarEvents   = "https://www.googleapis.com/auth/calendar.events"
)

// persistingTokenSource writes refreshed tokens back to token.json so the
// next process start does not need a new interactive consent.
type persistingTokenSource struct {
	base oauth2.TokenSource
	path string
	last *storedToken
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := p.base.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != p.last.Token {
		p.last.Token = tok.AccessToken
		p.last.Expiry = tok.Expiry
		if tok.RefreshToken != "" {
			p.last.RefreshToken = tok.RefreshToken
		}
		data, err := json.Marshal(p.last)
		if err == nil {
			if werr := os.WriteFile(p.path, data, 0600); werr != nil {
				logger.SysError("failed to persist refreshed calendar token: " + werr.Error())
			}
		}
	}
	return tok, nil
}

type googleEventService struct {
	svc *calendarapi.Service
}

// connectGoogle builds an authenticated EventService from the stored token.
// It returns a user-facing error message instead of an error so callers can
// fold it straight into a tool result.
func connectGoogle(ctx context.Context) (EventService, string) {
	tokenPath := filepath.Join(config.DataDir, "token.json")
	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, errNotConnected
	}
	var stored storedToken
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errInvalidCreds
	}
	if stored.RefreshToken == "" && stored.Token == "" {
		return nil, errInvalidCreds
	}
	conf := &oauth2.Config{
		ClientID:     stored.ClientID,
		ClientSecret: stored.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendarReadOnly, calendarEvents},
	}
	tok := &oauth2.Token{
		AccessToken:  stored.Token,
		RefreshToken: stored.RefreshToken,
		Expiry:       stored.Expiry,
	}
	ts := &persistingTokenSource{
		base: conf.TokenSource(ctx, tok),
		path: tokenPath,
		last: &stored,
	}
	svc, err := calendarapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Sprintf("Failed to connect to Google Calendar: %s", err.Error())
	}
	return &googleEventService{svc: svc}, ""
}

func fromGoogleEvent(item *calendarapi.Event) Event {
	event := Event{
		Id:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
	}
	for _, attendee := range item.Attendees {
		event.Attendees = append(event.Attendees, attendee.Email)
	}
	if item.Start != nil {
		if item.Start.DateTime != "" {
			event.Start, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		} else if item.Start.Date != "" {
			event.AllDay = true
			event.Start, _ = time.Parse("2006-01-02", item.Start.Date)
		}
	}
	if item.End != nil {
		if item.End.DateTime != "" {
			event.End, _ = time.Parse(time.RFC3339, item.End.DateTime)
		} else if item.End.Date != "" {
			event.End, _ = time.Parse("2006-01-02", item.End.Date)
		}
	}
	return event
}

func (g *googleEventService) List(ctx context.Context, timeMin, timeMax time.Time, query string) ([]Event, error) {
	call := g.svc.Events.List("primary").
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if query != "" {
		call = call.Q(query)
	}
	result, err := call.Do()
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, fromGoogleEvent(item))
	}
	return events, nil
}

func (g *googleEventService) Get(ctx context.Context, eventId string) (*Event, error) {
	item, err := g.svc.Events.Get("primary", eventId).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	event := fromGoogleEvent(item)
	return &event, nil
}

func (g *googleEventService) Insert(ctx context.Context, event *Event) (*Event, error) {
	body := &calendarapi.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendarapi.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendarapi.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}
	for _, email := range event.Attendees {
		body.Attendees = append(body.Attendees, &calendarapi.EventAttendee{Email: email})
	}
	created, err := g.svc.Events.Insert("primary", body).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	result := fromGoogleEvent(created)
	return &result, nil
}

func (g *googleEventService) Delete(ctx context.Context, eventId string) error {
	return g.svc.Events.Delete("primary", eventId).Context(ctx).Do()
}
