package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smarthire-api/core/cache"
	"smarthire-api/core/config"
	"smarthire-api/core/constants"
	"smarthire-api/core/logger"
	"smarthire-api/modules/calendar/dto"
	"smarthire-api/modules/calendar/entity"
	"smarthire-api/modules/calendar/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleCalendarAPIBase = "https://www.googleapis.com/calendar/v3"
	googleFreeBusyAPI     = googleCalendarAPIBase + "/freeBusy"
	googleEventsAPI       = googleCalendarAPIBase + "/calendars/primary/events"
)

// Provider is the abstract calendar backend the scheduling pipeline talks to.
type Provider interface {
	ListBusy(ctx context.Context, calendarEmail string, start, end time.Time) ([]dto.BusyPeriod, error)
	CreateEvent(ctx context.Context, req *dto.ProviderEventRequest) (*dto.ProviderEventResponse, error)
}

type googleProvider struct {
	repo       repository.CalendarRepositoryInterface
	cache      cache.Cache
	httpClient *http.Client
	oauthCfg   *oauth2.Config
}

// NewGoogleProvider builds a Provider backed by the Google Calendar REST API.
// Access tokens are refreshed through the stored connection's refresh token.
func NewGoogleProvider(repo repository.CalendarRepositoryInterface, c cache.Cache) Provider {
	cfg := config.Get()
	timeout := constants.DefaultRequestTimeout
	if cfg.Scheduler.ProviderTimeoutSec > 0 {
		timeout = time.Duration(cfg.Scheduler.ProviderTimeoutSec) * time.Second
	}

	return &googleProvider{
		repo:  repo,
		cache: c,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleAPI.ClientID,
			ClientSecret: cfg.GoogleAPI.ClientSecret,
			Endpoint:     google.Endpoint,
		},
	}
}

// ListBusy queries the freeBusy API for one calendar. Results are cached
// briefly so that scheduling several interviews in a row does not hammer
// the provider.
func (p *googleProvider) ListBusy(ctx context.Context, calendarEmail string, start, end time.Time) ([]dto.BusyPeriod, error) {
	cacheKey := fmt.Sprintf("%s%s:%d:%d", constants.RedisKeyFreeBusy, calendarEmail, start.Unix(), end.Unix())
	if p.cache != nil {
		if cached, ok, err := p.cache.Get(ctx, cacheKey); err == nil && ok {
			var periods []dto.BusyPeriod
			if err := json.Unmarshal([]byte(cached), &periods); err == nil {
				return periods, nil
			}
		}
	}

	accessToken, err := p.tokenForEmail(ctx, calendarEmail)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"timeMin":  start.UTC().Format(time.RFC3339),
		"timeMax":  end.UTC().Format(time.RFC3339),
		"timeZone": "UTC",
		"items": []map[string]string{
			{"id": calendarEmail},
		},
	}
	payloadJSON, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleFreeBusyAPI, bytes.NewReader(payloadJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google freeBusy API returned %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Calendars map[string]struct {
			Busy []struct {
				Start time.Time `json:"start"`
				End   time.Time `json:"end"`
			} `json:"busy"`
		} `json:"calendars"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var periods []dto.BusyPeriod
	if cal, ok := result.Calendars[calendarEmail]; ok {
		for _, b := range cal.Busy {
			periods = append(periods, dto.BusyPeriod{Start: b.Start, End: b.End})
		}
	}

	if p.cache != nil {
		if encoded, err := json.Marshal(periods); err == nil {
			_ = p.cache.Set(ctx, cacheKey, string(encoded), constants.FreeBusyCacheTTL)
		}
	}

	logger.Info("GoogleProvider:ListBusy", "email", calendarEmail, "busy_count", len(periods))
	return periods, nil
}

// CreateEvent inserts a calendar event. When conferencing is requested the
// insert carries a conferenceData createRequest so the provider attaches a
// Meet entry point.
func (p *googleProvider) CreateEvent(ctx context.Context, req *dto.ProviderEventRequest) (*dto.ProviderEventResponse, error) {
	conn, err := p.organizerConnection(ctx, req.Attendees)
	if err != nil {
		return nil, err
	}

	accessToken, err := p.ensureValidToken(ctx, conn)
	if err != nil {
		return nil, err
	}

	event := map[string]any{
		"summary":     req.Summary,
		"description": req.Description,
		"start":       map[string]string{"dateTime": req.Start.UTC().Format(time.RFC3339), "timeZone": "UTC"},
		"end":         map[string]string{"dateTime": req.End.UTC().Format(time.RFC3339), "timeZone": "UTC"},
		"sendUpdates": "all",
	}

	if len(req.Attendees) > 0 {
		attendees := make([]map[string]string, len(req.Attendees))
		for i, email := range req.Attendees {
			attendees[i] = map[string]string{"email": email}
		}
		event["attendees"] = attendees
	}

	url := googleEventsAPI
	if req.ConferencingRequested {
		event["conferenceData"] = map[string]any{
			"createRequest": map[string]any{
				"requestId":             req.RequestID,
				"conferenceSolutionKey": map[string]string{"type": "hangoutsMeet"},
			},
		}
		url += "?conferenceDataVersion=1"
	}

	eventJSON, _ := json.Marshal(event)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(eventJSON))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google events API returned %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		ID             string `json:"id"`
		HTMLLink       string `json:"htmlLink"`
		HangoutLink    string `json:"hangoutLink"`
		ConferenceData struct {
			EntryPoints []struct {
				EntryPointType string `json:"entryPointType"`
				URI            string `json:"uri"`
			} `json:"entryPoints"`
		} `json:"conferenceData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	out := &dto.ProviderEventResponse{
		EventID:  result.ID,
		HTMLLink: result.HTMLLink,
	}
	for _, ep := range result.ConferenceData.EntryPoints {
		out.EntryPoints = append(out.EntryPoints, dto.ConferenceEntryPoint{
			Type: ep.EntryPointType,
			URI:  ep.URI,
		})
	}
	if len(out.EntryPoints) == 0 && result.HangoutLink != "" {
		out.EntryPoints = append(out.EntryPoints, dto.ConferenceEntryPoint{Type: "video", URI: result.HangoutLink})
	}

	logger.Info("GoogleProvider:CreateEvent:Success", "event_id", out.EventID, "entry_points", len(out.EntryPoints))
	return out, nil
}

// organizerConnection picks the stored connection that will own the event:
// the first attendee with a connected calendar.
func (p *googleProvider) organizerConnection(ctx context.Context, attendees []string) (*entity.CalendarConnection, error) {
	for _, email := range attendees {
		conn, err := p.repo.GetConnectionByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if conn != nil {
			return conn, nil
		}
	}
	return nil, fmt.Errorf("no attendee has a connected calendar")
}

// tokenForEmail resolves an access token for one attendee's calendar.
func (p *googleProvider) tokenForEmail(ctx context.Context, calendarEmail string) (string, error) {
	conn, err := p.repo.GetConnectionByEmail(ctx, calendarEmail)
	if err != nil {
		return "", err
	}
	if conn == nil {
		return "", fmt.Errorf("no calendar connection for %s", calendarEmail)
	}
	return p.ensureValidToken(ctx, conn)
}

// ensureValidToken refreshes the connection's access token when it is within
// five minutes of expiry.
func (p *googleProvider) ensureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, error) {
	if time.Now().Before(conn.TokenExpiresAt.Add(-5 * time.Minute)) {
		return conn.AccessToken, nil
	}

	logger.Info("GoogleProvider:RefreshingToken", "user_id", conn.UserID, "email", conn.CalendarEmail)

	src := p.oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: conn.RefreshToken})
	token, err := src.Token()
	if err != nil {
		logger.Error("GoogleProvider:TokenRefresh:Error", "error", err, "email", conn.CalendarEmail)
		return "", err
	}

	conn.AccessToken = token.AccessToken
	conn.TokenExpiresAt = token.Expiry
	if token.RefreshToken != "" {
		conn.RefreshToken = token.RefreshToken
	}

	if err := p.repo.UpdateConnection(ctx, conn); err != nil {
		logger.Error("GoogleProvider:TokenRefresh:PersistError", "error", err)
	}
	return token.AccessToken, nil
}
