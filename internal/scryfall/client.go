// Package scryfall looks up card records by exact name.
package scryfall

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/cubesync/internal/transport"
	"github.com/agentstation/cubesync/pkg/cards"
	"github.com/agentstation/cubesync/pkg/constants"
	"github.com/agentstation/cubesync/pkg/errors"
	"github.com/agentstation/cubesync/pkg/logging"
)

// ServiceName identifies the lookup service in errors and logs.
const ServiceName = "scryfall"

// Response structure of the exact-name endpoint. Only the fields we keep.
type cardResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ManaCost *string  `json:"mana_cost"`
	TypeLine *string  `json:"type_line"`
	Colors   []string `json:"colors"`
	Rarity   *string  `json:"rarity"`
}

// Result is the outcome of a single lookup: either a Record or an error.
type Result struct {
	Record *cards.Record
	Err    error
}

// OK reports whether the lookup produced a record.
func (r Result) OK() bool {
	return r.Err == nil && r.Record != nil
}

// Fetcher fetches one record by exact name.
type Fetcher interface {
	Fetch(ctx context.Context, name string) Result
}

// Client talks to the exact-name endpoint.
type Client struct {
	baseURL   string
	transport *transport.Client
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client for the service at baseURL. An empty baseURL
// selects the public endpoint.
func NewClient(baseURL string, opts ...transport.Option) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultLookupURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport.New(opts...),
	}
}

// BaseURL returns the service root the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch performs exactly one request for name. Failures are logged and
// returned in the Result, never panicked or retried.
func (c *Client) Fetch(ctx context.Context, name string) Result {
	name = strings.TrimSpace(name)
	ctx = logging.WithCard(ctx, name)
	logger := logging.FromContext(ctx)
	endpoint := c.namedURL(name)

	resp, err := c.transport.Get(ctx, endpoint)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching card")
		return Result{Err: &errors.APIError{
			Service:  ServiceName,
			Endpoint: endpoint,
			Message:  "request failed",
			Err:      err,
		}}
	}

	var card cardResponse
	if err := transport.DecodeResponse(resp, ServiceName, &card); err != nil {
		logFailure(logger, err)
		return Result{Err: err}
	}

	return Result{Record: toRecord(name, card)}
}

// logFailure reports a failed lookup. Status errors are warnings, with the
// common cases named; anything else is an error.
func logFailure(logger *zerolog.Logger, err error) {
	var apiErr *errors.APIError
	if !errors.As(err, &apiErr) {
		logger.Error().Err(err).Msg("Error fetching card")
		return
	}

	event := logger.Warn().Int("status", apiErr.StatusCode)
	switch {
	case errors.IsNotFound(err):
		event.Str("reason", "not_found").Msg("Failed to fetch card: no exact match")
	case errors.IsRateLimited(err):
		event.Str("reason", "rate_limited").Msg("Failed to fetch card: rate limited")
	case errors.IsServiceUnavailable(err):
		event.Str("reason", "unavailable").Msg("Failed to fetch card: service unavailable")
	default:
		event.Str("message", apiErr.Message).Msg("Failed to fetch card")
	}
}

// namedURL builds <base>/cards/named?exact=<name>, escaping spaces as %20
// and leaving "/" intact so split cards read naturally in logs.
func (c *Client) namedURL(name string) string {
	escaped := url.QueryEscape(name)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	escaped = strings.ReplaceAll(escaped, "%2F", "/")
	return c.baseURL + constants.NamedCardPath + "?exact=" + escaped
}

// toRecord maps the service fields onto a Record under the requested name.
func toRecord(name string, card cardResponse) *cards.Record {
	return cards.NewRecord(
		name,
		card.ID,
		deref(card.ManaCost),
		deref(card.TypeLine),
		card.Colors,
		deref(card.Rarity),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
