package config_test

import (
	"testing"
	"time"

	"github.com/jeffleon2/draftea-prepaid-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.APP.PORT)
	assert.False(t, cfg.DB.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "prepaid-service", cfg.Kafka.ConsumerGroup)
	assert.Equal(t, "GBP", cfg.Ledger.Currency)
	assert.Equal(t, config.RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		Jitter:      true,
	}, cfg.Kafka.GetRetryConfig())
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("APP_PORT", "9999")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_RETRY_BASE_DELAY", "250ms")
	t.Setenv("LEDGER_CURRENCY", "EUR")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.APP.PORT)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Kafka.RetryBaseDelay)
	assert.Equal(t, "EUR", cfg.Ledger.Currency)
}

func TestNew_InvalidValue(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("KAFKA_RETRY_MAX_ATTEMPTS", "many")

	_, err := config.New()

	assert.Error(t, err)
}

func TestDB_DSN(t *testing.T) {
	db := config.DB{HOST: "db", USER: "u", PASSWORD: "p", NAME: "prepaid", PORT: "5432", SSLMODE: "disable"}

	assert.Equal(t, "host=db user=u password=p dbname=prepaid port=5432 sslmode=disable", db.DSN())
}
