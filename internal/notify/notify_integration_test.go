//go:build integration

package notify_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"estate/internal/notify"
	"estate/internal/platform/config"
	"estate/internal/platform/kafka"
	id "estate/pkg/domain"
	"estate/pkg/testutil/containers"
)

type BrokerNotifierSuite struct {
	suite.Suite
	redis    *containers.RedisContainer
	redpanda *containers.RedpandaContainer
}

func TestBrokerNotifierSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(BrokerNotifierSuite))
}

func (s *BrokerNotifierSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.redpanda = mgr.GetRedpanda(s.T())
}

func (s *BrokerNotifierSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func event() notify.Event {
	return notify.Event{
		UserID:     id.UserID(uuid.New()),
		Kind:       notify.EventRightsRevoked,
		Payload:    map[string]string{"property": "apartment:1"},
		OccurredAt: time.Now().UTC(),
	}
}

func (s *BrokerNotifierSuite) TestRedisStream() {
	ctx := context.Background()
	e := event()
	n := notify.NewRedis(s.redis.Client, 100)
	s.Require().NoError(n.Notify(ctx, e))

	msgs, err := s.redis.ReadStream(ctx, notify.StreamKey(e.UserID.String()))
	s.Require().NoError(err)
	s.Require().Len(msgs, 1)
	s.Equal("rights_revoked", msgs[0].Values["kind"])
}

func (s *BrokerNotifierSuite) TestKafkaProduce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	topic := "estate.notifications." + uuid.NewString()[:8]

	producer, err := kafka.NewProducer(config.KafkaConfig{Brokers: s.redpanda.Brokers, NotifyTopic: topic})
	s.Require().NoError(err)
	defer producer.Close()
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, topic, 1))
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, topic, 1), "provisioning is idempotent")

	e := event()
	s.Require().NoError(notify.NewKafka(producer, topic).Notify(ctx, e))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().NotEmpty(records)
	s.Equal(e.UserID.String(), string(records[0].Key))

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(records[0].Value, &decoded))
	s.Equal("rights_revoked", decoded["kind"])
}
