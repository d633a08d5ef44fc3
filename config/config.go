package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Errorf("Error initializing: %s", err.Error())
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Ledger
}

type APP struct {
	PORT     string `env:"APP_PORT" envDefault:"8080"`
	ENV      string `env:"GO_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func (a APP) IsLocal() bool {
	return a.ENV == "local"
}

type DB struct {
	Enabled  bool   `env:"DB_ENABLED" envDefault:"false"`
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Enabled          bool          `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string        `env:"KAFKA_PREPAID_GROUP_ID" envDefault:"prepaid-service"`
	SubscriberTopics string        `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"card.refund.received,authorization.capture.requested,authorization.reversal.requested"`
	PublishTopics    string        `env:"KAFKA_PUBLISH_TOPICS" envDefault:"authorizations.decided,merchant.payout.requested,prepaid.dlq"`
	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Ledger struct {
	Currency string `env:"LEDGER_CURRENCY" envDefault:"GBP"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// ConfigureLogger applies the log level and picks a JSON formatter outside local runs.
func (a APP) ConfigureLogger() {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", a.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if !a.IsLocal() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
