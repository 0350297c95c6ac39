package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Donghyun-K/board-client/internal/common"
)

var ErrNoToken = errors.New("sign-in response carried no access token")

// ErrEmptyIdentity is returned by Me when a 2xx reply names no user.
var ErrEmptyIdentity = errors.New("identity reply named no user")

// APIError is a non-2xx answer from the board API. errors.Is matches
// common.ErrUnauthorized for 401 and common.ErrNotFound for 404.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// errorBody is the server's error envelope. message is either a string or a
// list of strings (one per rejected field).
type errorBody struct {
	StatusCode int             `json:"statusCode"`
	Message    json.RawMessage `json:"message"`
	Error      string          `json:"error"`
}

func parseErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return strings.TrimSpace(string(body))
	}

	var single string
	if err := json.Unmarshal(eb.Message, &single); err == nil && single != "" {
		return single
	}
	var many []string
	if err := json.Unmarshal(eb.Message, &many); err == nil && len(many) > 0 {
		return strings.Join(many, "; ")
	}
	return eb.Error
}
