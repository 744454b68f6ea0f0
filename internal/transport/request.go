package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/cubesync/pkg/errors"
	"github.com/agentstation/cubesync/pkg/logging"
)

// maxErrorBody caps how much of an error response ends up in APIError.Message.
const maxErrorBody = 512

// DecodeResponse decodes a JSON response into the target structure.
// Non-200 responses become an *errors.APIError attributed to service.
func DecodeResponse(resp *http.Response, service string, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Debug().Err(err).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint(resp),
			Message:    errorMessage(resp, body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

func endpoint(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.String()
}

// errorMessage prefers the "details" field of a JSON error object, falling
// back to the raw body and then the status text.
func errorMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Details string `json:"details"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Details != "" {
		return payload.Details
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return resp.Status
	}
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}
	return msg
}
