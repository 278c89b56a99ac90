//go:build !gcloud

package metrics

import "context"

// NewProvider has no exporter outside Cloud Run; instruments are recorded and dropped.
func NewProvider(_ context.Context, cfg Config) (*Provider, error) {
	return newNoopProvider(cfg), nil
}
