package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/internal/repository"
	"github.com/pagebound/bookclub-service/internal/stats"
	"github.com/pagebound/bookclub-service/pkg/kafka"
)

// Config carries the page-size knobs for the listing endpoints.
type Config struct {
	ApplicationsPerPage int
	UsersPerPage        int
	ClubsPerPage        int
	TokenTTL            time.Duration
}

type Service struct {
	log   *zap.Logger
	repo  repository.Repository
	stats stats.Repository
	enq   Enqueuer
	cfg   Config
	now   func() time.Time
}

func NewService(repo repository.Repository, statsRepo stats.Repository, enq Enqueuer, cfg Config, log *zap.Logger) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &Service{
		log:   log,
		repo:  repo,
		stats: statsRepo,
		enq:   enq,
		cfg:   cfg,
		now:   time.Now,
	}
}

// publish emits a club telemetry event. Failures are logged and never
// surfaced: the event stream is observability, not part of the workflow.
func (s *Service) publish(eventType string, clubID, userID int) {
	if s.enq == nil {
		return
	}
	ev := kafka.ClubEvent{
		Timestamp: s.now().UTC(),
		EventType: eventType,
		ClubID:    clubID,
		UserID:    userID,
	}
	if err := s.enq.Enqueue(kafka.ClubEventsTopic, ev); err != nil {
		s.log.Warn("enqueue club event", zap.String("type", eventType), zap.Error(err))
	}
}
