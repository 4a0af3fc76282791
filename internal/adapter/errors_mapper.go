package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// forumErrorBody is the error envelope the forum uses on 4xx answers.
type forumErrorBody struct {
	Errors  []string `json:"errors"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
}

func (b forumErrorBody) text() string {
	switch {
	case len(b.Errors) > 0:
		return strings.Join(b.Errors, "; ")
	case b.Message != "":
		return b.Message
	default:
		return b.Error
	}
}

// mapHTTPError returns nil for 2xx, otherwise the status class wrapped with
// the forum's error text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorText(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorText prefers the forum's JSON error message over the raw body.
func errorText(raw []byte) string {
	var envelope forumErrorBody
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if text := envelope.text(); text != "" {
			return text
		}
	}
	return strings.TrimSpace(string(raw))
}

// looksTaken reports whether a rejection message says the account exists.
func looksTaken(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "taken") ||
		strings.Contains(m, "already") ||
		strings.Contains(m, "must be unique")
}
