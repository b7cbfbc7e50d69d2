package predictsdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness checks if the service and its database are ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

func (c *SDKClient) getHealth(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
