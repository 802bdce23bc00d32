package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	apperrors "myroom/pkg/errors"
)

var ErrInvalidResponse = errors.New("hotel api: invalid response")

// APIError is the single failure shape of every call made by this package.
// Status is 0 when no HTTP response was received.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorBody is the error payload of the hotel API. Depending on the endpoint
// the reason is carried by exactly one of these keys, or by none of them.
type ErrorBody struct {
	Error   string
	Message string
	Detail  string
}

// ParseErrorBody reads the three known keys from a JSON object. Keys holding
// something other than a string are ignored, and a body that is not a JSON
// object yields an empty ErrorBody.
func ParseErrorBody(body []byte) ErrorBody {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ErrorBody{}
	}
	return ErrorBody{
		Error:   stringField(raw, "error"),
		Message: stringField(raw, "message"),
		Detail:  stringField(raw, "detail"),
	}
}

// Reason returns the first populated field in error, message, detail order.
func (b ErrorBody) Reason() string {
	for _, s := range []string{b.Error, b.Message, b.Detail} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// ErrorMessage is the message carried by an APIError for a non-2xx response.
func ErrorMessage(status int, body []byte) string {
	if reason := ParseErrorBody(body).Reason(); reason != "" {
		return reason
	}
	return fmt.Sprintf("HTTP error: %d", status)
}

func stringField(raw map[string]json.RawMessage, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// AsAPIError unwraps err into an *APIError when it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ToAppError converts a failure from this package into the application error
// the storefront reports. Errors that are not *APIError pass through.
func ToAppError(err error) error {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return err
	}
	return apperrors.Upstream(apiErr.Status, apiErr.Message, apiErr)
}
