//go:build e2e

package predictclass_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

// TestRateLimitLogin verifies credential endpoints use the strict profile.
func TestRateLimitLogin(t *testing.T) {
	svc := setupServiceWithDefaultRateLimits(t)
	client := predictsdk.NewSDKClient(svc.BaseURL)

	var limited bool
	for i := 0; i < 10; i++ {
		_, err := client.Login(t.Context(), "nobody", "wrong password")
		require.Error(t, err)

		var apiErr *predictsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		if apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, predictsdk.ErrorCodeRateLimited, apiErr.Code)
			limited = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	}
	require.True(t, limited, "login should be rate limited within 10 attempts")
}

// TestRateLimitHealthEndpoints verifies probes are not rate limited.
func TestRateLimitHealthEndpoints(t *testing.T) {
	svc := setupServiceWithDefaultRateLimits(t)
	client := predictsdk.NewSDKClient(svc.BaseURL)

	for i := 0; i < 30; i++ {
		health, err := client.GetLiveness(t.Context())
		assertHealthy(t, health, err)
	}
}
