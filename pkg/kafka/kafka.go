package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	ClubEventsTopic    = "club-events"
	StatsConsumerGroup = "stats-group"
)

// Event types recorded on ClubEventsTopic.
const (
	EventClubCreated         = "club_created"
	EventClubDisbanded       = "club_disbanded"
	EventMemberJoined        = "member_joined"
	EventMemberLeft          = "member_left"
	EventMemberPromoted      = "member_promoted"
	EventMemberDemoted       = "member_demoted"
	EventApplicationAccepted = "application_accepted"
	EventApplicationRejected = "application_rejected"
	EventMeetingScheduled    = "meeting_scheduled"
)

// ClubEvent is the message body shared by producer and stats consumer.
type ClubEvent struct {
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	ClubID    int       `json:"club_id"`
	UserID    int       `json:"user_id"`
}

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is cancelled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
