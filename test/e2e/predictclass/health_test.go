//go:build e2e

package predictclass_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

func TestHealthEndpoints(t *testing.T) {
	svc := setupService(t)
	client := predictsdk.NewSDKClient(svc.BaseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}

func TestSwaggerDocs(t *testing.T) {
	svc := setupService(t)

	resp, err := http.Get(svc.BaseURL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "/v1/password-reset/confirm")
}
