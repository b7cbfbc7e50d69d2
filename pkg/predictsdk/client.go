package predictsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the public predictclass endpoints and opens Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a 10 second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an existing session token, e.g. one kept from an earlier
// Login.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
