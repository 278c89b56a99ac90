//go:build gcloud

package config

import "errors"

var (
	ErrGCloudProjectRequired = errors.New("GCLOUD_PROJECT_ID is required for event publishing")
	ErrGCloudDurableDatabase = errors.New("DB_DRIVER must be postgres on Cloud Run: the sqlite file does not survive instance restarts")
)

// ValidateGCloud reports every setting the Cloud Run deployment cannot run without.
func (c *Config) ValidateGCloud() error {
	var errs []error

	if c.PubSub.GCloudProjectID == "" {
		errs = append(errs, ErrGCloudProjectRequired)
	}

	if c.Database.Driver != DriverPostgres {
		errs = append(errs, ErrGCloudDurableDatabase)
	}

	return errors.Join(errs...)
}
