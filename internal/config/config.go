package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Firestore settings. When SERVICE_ACCOUNT_KEY_PATH is empty the client
	// falls back to application default credentials.
	GCPProjectID          string `envconfig:"GCP_PROJECT_ID" required:"true"`
	ServiceAccountKeyPath string `envconfig:"SERVICE_ACCOUNT_KEY_PATH"`

	CoursesCollection string `envconfig:"COURSES_COLLECTION" default:"courses"`
	CatalogCollection string `envconfig:"CATALOG_COLLECTION" default:"department_courses"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
