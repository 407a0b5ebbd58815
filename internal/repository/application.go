package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
)

func (r *repository) CreateApplication(ctx context.Context, applicantID, clubID int) (model.Application, error) {
	q, args, err := qb.Insert(applicationsTableName).
		Columns("applicant_id", "club_id").
		Values(applicantID, clubID).
		Suffix("returning id, applicant_id, club_id, created_at").
		ToSql()
	if err != nil {
		return model.Application{}, err
	}

	var app model.Application
	if err := r.db.GetContext(ctx, &app, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Application{}, errs.ErrAlreadyApplied
		}
		r.log.Error("CreateApplication", zap.String("q", q), zap.Error(err))
		return model.Application{}, err
	}
	return app, nil
}

func (r *repository) GetApplication(ctx context.Context, id int) (model.Application, error) {
	q, args, err := qb.Select("id", "applicant_id", "club_id", "created_at").
		From(applicationsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Application{}, err
	}

	var app model.Application
	if err := r.db.GetContext(ctx, &app, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Application{}, errs.ErrNotFound
		}
		return model.Application{}, err
	}
	return app, nil
}

func (r *repository) ListOwnerApplications(ctx context.Context, ownerID, page, size int) (model.ListApplications, error) {
	return r.listApplications(ctx, sq.Eq{"c.owner_id": ownerID}, page, size)
}

func (r *repository) ListUserApplications(ctx context.Context, applicantID, page, size int) (model.ListApplications, error) {
	return r.listApplications(ctx, sq.Eq{"a.applicant_id": applicantID}, page, size)
}

func (r *repository) listApplications(ctx context.Context, pred sq.Eq, page, size int) (model.ListApplications, error) {
	q := qb.Select(
		"a.id", "a.applicant_id",
		"u.email as applicant_email",
		"u.first_name || ' ' || u.last_name as applicant_name",
		"a.club_id", "c.name as club_name", "a.created_at").
		From(applicationsTableName + " a").
		Join(clubsTableName + " c on c.id = a.club_id").
		Join(usersTableName + " u on u.id = a.applicant_id").
		Where(pred).
		OrderBy("a.created_at", "a.id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListApplications{}, err
	}

	var apps []model.ApplicationInfo
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return model.ListApplications{}, err
	}

	return model.ListApplications{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(apps),
		},
		Items: apps,
	}, nil
}

// AcceptApplication converts a pending application into a membership
// and removes the row, in one transaction. The member insert is
// idempotent, so a replay after a partial failure converges.
func (r *repository) AcceptApplication(ctx context.Context, id int) (model.Application, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Application{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var app model.Application
	const get = `select id, applicant_id, club_id, created_at from applications where id = $1 for update`
	if err := tx.GetContext(ctx, &app, get, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Application{}, errs.ErrNotFound
		}
		return model.Application{}, err
	}

	const join = `
insert into club_members (club_id, user_id, role)
values ($1, $2, 'Member')
on conflict (club_id, user_id) do nothing`
	if _, err := tx.ExecContext(ctx, join, app.ClubID, app.ApplicantID); err != nil {
		return model.Application{}, err
	}

	if _, err := tx.ExecContext(ctx, `delete from applications where id = $1`, id); err != nil {
		return model.Application{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Application{}, err
	}
	return app, nil
}

func (r *repository) DeleteApplication(ctx context.Context, id int) error {
	q, args, err := qb.Delete(applicationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
