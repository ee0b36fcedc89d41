package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Hiram"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"hiram"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Esign struct {
		BaseURL      string `envconfig:"ESIGN_BASE_URL"`
		APIKey       string `envconfig:"ESIGN_API_KEY"`
		TemplateID   string `envconfig:"ESIGN_TEMPLATE_ID"`
		WitnessEmail string `envconfig:"ESIGN_WITNESS_EMAIL" default:"agreements@hiram.ph"`
		WitnessName  string `envconfig:"ESIGN_WITNESS_NAME" default:"Hiram Agreements"`
	}

	// Pipeline tunes the document delivery run: how long to wait for a new
	// document to become sendable, and the send retry budget.
	Pipeline struct {
		PollMaxAttempts  int           `envconfig:"PIPELINE_POLL_MAX_ATTEMPTS" default:"30"`
		PollInterval     time.Duration `envconfig:"PIPELINE_POLL_INTERVAL" default:"1s"`
		DirectLendWait   time.Duration `envconfig:"PIPELINE_DIRECT_LEND_WAIT" default:"8s"`
		SendMaxAttempts  int           `envconfig:"PIPELINE_SEND_MAX_ATTEMPTS" default:"3"`
		SendBackoff      time.Duration `envconfig:"PIPELINE_SEND_BACKOFF" default:"5s"`
		ConflictCooldown time.Duration `envconfig:"PIPELINE_CONFLICT_COOLDOWN" default:"5s"`
		SettleDelay      time.Duration `envconfig:"PIPELINE_SETTLE_DELAY" default:"3s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
