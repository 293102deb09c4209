// Package graph is a small read-only Microsoft Graph client.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/presence"
	"github.com/tesso57/availnot/internal/domain/schedule"
)

// DefaultBaseURL is the Graph v1.0 endpoint.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// dateTimeLayout is the layout of Graph dateTimeTimeZone values. Fractional
// seconds are accepted when parsing.
const dateTimeLayout = "2006-01-02T15:04:05"

// Client issues Graph requests on behalf of the signed-in user.
type Client struct {
	http       *http.Client
	baseURL    string
	eventLimit int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Graph endpoint.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			c.baseURL = base
		}
	}
}

// WithEventLimit caps the number of events Events returns.
func WithEventLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.eventLimit = n
		}
	}
}

// New creates a Client. httpClient must authorize its requests.
func New(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{http: httpClient, baseURL: DefaultBaseURL, eventLimit: 10}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Error is a failed Graph request.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Path       string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("graph %s: %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("graph %s: %s: %s", e.Path, e.Code, e.Message)
}

// DebugInfo returns the error payload for display.
func (e *Error) DebugInfo() any {
	return map[string]any{
		"code":       e.Code,
		"message":    e.Message,
		"path":       e.Path,
		"statusCode": e.StatusCode,
	}
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type user struct {
	DisplayName       string `json:"displayName"`
	UserPrincipalName string `json:"userPrincipalName"`
	Mail              string `json:"mail"`
}

// Me returns the display attributes of the signed-in user.
func (c *Client) Me(ctx context.Context) (*account.Session, error) {
	q := url.Values{}
	q.Set("$select", "displayName,userPrincipalName,mail")

	var u user
	if err := c.get(ctx, "/me", q, nil, &u); err != nil {
		return nil, err
	}
	userName := u.UserPrincipalName
	if userName == "" {
		userName = u.Mail
	}
	return &account.Session{Name: u.DisplayName, UserName: userName}, nil
}

type dateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type event struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Organizer struct {
		EmailAddress struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"emailAddress"`
	} `json:"organizer"`
	Start dateTimeTimeZone `json:"start"`
	End   dateTimeTimeZone `json:"end"`
}

// Events returns the signed-in user's events ordered by start time. Times
// are requested and returned in UTC.
func (c *Client) Events(ctx context.Context) (schedule.Page, error) {
	q := url.Values{}
	q.Set("$select", "subject,organizer,start,end")
	q.Set("$orderby", "start/dateTime")
	q.Set("$top", strconv.Itoa(c.eventLimit))
	header := http.Header{}
	header.Set("Prefer", `outlook.timezone="UTC"`)

	var body struct {
		Value []event `json:"value"`
	}
	if err := c.get(ctx, "/me/events", q, header, &body); err != nil {
		return schedule.Page{}, err
	}

	page := schedule.Page{Value: make([]schedule.Event, 0, len(body.Value))}
	for _, ev := range body.Value {
		start, err := parseDateTime(ev.Start)
		if err != nil {
			return schedule.Page{}, fmt.Errorf("event %s start: %w", ev.ID, err)
		}
		end, err := parseDateTime(ev.End)
		if err != nil {
			return schedule.Page{}, fmt.Errorf("event %s end: %w", ev.ID, err)
		}
		organizer := ev.Organizer.EmailAddress.Name
		if organizer == "" {
			organizer = ev.Organizer.EmailAddress.Address
		}
		page.Value = append(page.Value, schedule.Event{
			ID:        ev.ID,
			Organizer: organizer,
			Subject:   ev.Subject,
			Start:     start,
			End:       end,
		})
	}
	return page, nil
}

// Presence returns the signed-in user's Teams presence.
func (c *Client) Presence(ctx context.Context) (presence.Status, error) {
	var status presence.Status
	if err := c.get(ctx, "/me/presence", nil, nil, &status); err != nil {
		return presence.Status{}, err
	}
	return status, nil
}

func parseDateTime(v dateTimeTimeZone) (time.Time, error) {
	loc := time.UTC
	if tz := strings.TrimSpace(v.TimeZone); tz != "" && !strings.EqualFold(tz, "UTC") {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	t, err := time.ParseInLocation(dateTimeLayout, v.DateTime, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, header http.Header, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graph %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("graph %s: read body: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gerr := &Error{StatusCode: resp.StatusCode, Path: path}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			gerr.Code = eb.Error.Code
			gerr.Message = eb.Error.Message
		}
		return gerr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("graph %s: decode: %w", path, err)
	}
	return nil
}
