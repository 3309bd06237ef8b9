package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return mapStatusError(resp.StatusCode(), resp.Body())
}

func mapStatusError(status int, body []byte) error {
	return &StatusError{Status: status, Detail: errorDetail(body)}
}

// errorDetail extracts the backend's {"detail": "..."} error body, falling
// back to the trimmed raw body.
func errorDetail(body []byte) string {
	var wrapped struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Detail != "" {
		return wrapped.Detail
	}
	return strings.TrimSpace(string(body))
}
