package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults run in memory", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("KAFKA_BROKERS", "")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Empty(t, cfg.Database.URL)
		assert.Empty(t, cfg.Kafka.Brokers)
		assert.Equal(t, 5*time.Second, cfg.TxTimeout)
		assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	})

	t.Run("parses lists and durations", func(t *testing.T) {
		t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,")
		t.Setenv("NOTIFY_TIMEOUT", "750ms")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
		assert.Equal(t, 750*time.Millisecond, cfg.NotifyTimeout)
	})

	t.Run("rejects bad duration", func(t *testing.T) {
		t.Setenv("TX_TIMEOUT", "soon")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "TX_TIMEOUT")
	})

	t.Run("production needs a signing key", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_SIGNING_KEY", "")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}
