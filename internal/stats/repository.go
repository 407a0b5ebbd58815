package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/pkg/kafka"
)

type Repository interface {
	GetStats(ctx context.Context) (StatsInfo, error)
	Record(ctx context.Context, event kafka.ClubEvent) error
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("stats-repo"),
	}, nil
}

func (r *repository) Record(ctx context.Context, event kafka.ClubEvent) error {
	q := `insert into club_events (timestamp, event_type, club_id, user_id)
	values (@timestamp, @event_type, @club_id, @user_id)`
	args := pgx.NamedArgs{
		"timestamp":  event.Timestamp,
		"event_type": event.EventType,
		"club_id":    event.ClubID,
		"user_id":    event.UserID,
	}
	_, err := r.db.Exec(ctx, q, args)
	return err
}

func (r *repository) GetStats(ctx context.Context) (StatsInfo, error) {
	const q = `
	select club_id, max(timestamp) as last_updated,
	       coalesce(count(*) filter (where event_type in ('member_joined', 'application_accepted')), 0)
	           - coalesce(count(*) filter (where event_type = 'member_left'), 0) as cnt_members,
	       coalesce(count(*) filter (where event_type = 'application_accepted'), 0) as cnt_accepted,
	       coalesce(count(*) filter (where event_type = 'application_rejected'), 0) as cnt_rejected,
	       coalesce(count(*) filter (where event_type = 'meeting_scheduled'), 0) as cnt_meetings
	from club_events
	group by club_id
	order by club_id
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return StatsInfo{}, err
	}
	defer rows.Close()
	data, err := pgx.CollectRows(rows, pgx.RowToStructByName[ClubStats])
	if err != nil {
		return StatsInfo{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return StatsInfo{Data: data}, nil
}
