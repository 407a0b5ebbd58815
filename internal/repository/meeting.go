package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/internal/model"
)

func (r *repository) CreateMeeting(ctx context.Context, meeting model.Meeting) (model.Meeting, error) {
	q, args, err := qb.Insert(meetingsTableName).
		Columns("meeting_uid", "club_id", "starts_at", "address").
		Values(uuid.New(), meeting.ClubID, meeting.StartsAt, meeting.Address).
		Suffix("returning id, meeting_uid, club_id, starts_at, address").
		ToSql()
	if err != nil {
		return model.Meeting{}, err
	}

	var created model.Meeting
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateMeeting", zap.String("q", q), zap.Error(err))
		return model.Meeting{}, err
	}
	return created, nil
}

func (r *repository) ListMeetings(ctx context.Context, clubID, page, size int) (model.ListMeetings, error) {
	q := qb.Select("id", "meeting_uid", "club_id", "starts_at", "address").
		From(meetingsTableName).
		Where(sq.Eq{"club_id": clubID}).
		OrderBy("starts_at", "id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListMeetings{}, err
	}

	var meetings []model.Meeting
	if err := r.db.SelectContext(ctx, &meetings, query, args...); err != nil {
		return model.ListMeetings{}, err
	}

	return model.ListMeetings{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(meetings),
		},
		Items: meetings,
	}, nil
}

func (r *repository) NextMeeting(ctx context.Context, clubID int) (*model.Meeting, error) {
	q, args, err := qb.Select("id", "meeting_uid", "club_id", "starts_at", "address").
		From(meetingsTableName).
		Where(sq.Eq{"club_id": clubID}).
		Where("starts_at > now()").
		OrderBy("starts_at").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var meeting model.Meeting
	if err := r.db.GetContext(ctx, &meeting, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}
