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

func (r *repository) CreateClub(ctx context.Context, club model.Club) (model.Club, error) {
	q, args, err := qb.Insert(clubsTableName).
		Columns("name", "description", "location", "owner_id").
		Values(club.Name, club.Description, club.Location, club.OwnerID).
		Suffix("returning id, name, description, location, owner_id").
		ToSql()
	if err != nil {
		return model.Club{}, err
	}

	var created model.Club
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Club{}, errs.ErrDuplicate
		}
		r.log.Error("CreateClub", zap.String("q", q), zap.Error(err))
		return model.Club{}, err
	}
	return created, nil
}

func (r *repository) GetClub(ctx context.Context, id int) (model.Club, error) {
	q, args, err := qb.Select("id", "name", "description", "location", "owner_id").
		From(clubsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Club{}, err
	}

	var club model.Club
	if err := r.db.GetContext(ctx, &club, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Club{}, errs.ErrNotFound
		}
		return model.Club{}, err
	}
	return club, nil
}

func (r *repository) UpdateClub(ctx context.Context, club model.Club) (model.Club, error) {
	q, args, err := qb.Update(clubsTableName).
		Set("name", club.Name).
		Set("description", club.Description).
		Set("location", club.Location).
		Where(sq.Eq{"id": club.ID}).
		Suffix("returning id, name, description, location, owner_id").
		ToSql()
	if err != nil {
		return model.Club{}, err
	}

	var updated model.Club
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Club{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Club{}, errs.ErrDuplicate
		}
		return model.Club{}, err
	}
	return updated, nil
}

func (r *repository) DeleteClub(ctx context.Context, id int) error {
	q, args, err := qb.Delete(clubsTableName).
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

func (r *repository) ListClubs(ctx context.Context, page, size int) (model.ListClubs, error) {
	q := qb.Select("id", "name", "description", "location", "owner_id").
		From(clubsTableName).
		OrderBy("id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListClubs{}, err
	}

	var clubs []model.Club
	if err := r.db.SelectContext(ctx, &clubs, query, args...); err != nil {
		return model.ListClubs{}, err
	}

	return model.ListClubs{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(clubs),
		},
		Items: clubs,
	}, nil
}

func (r *repository) ListUserClubs(ctx context.Context, userID int) ([]model.Club, error) {
	q := `
select distinct c.id, c.name, c.description, c.location, c.owner_id
from clubs c
    left join club_members cm on cm.club_id = c.id
where c.owner_id = $1 or cm.user_id = $1
order by c.id`

	var clubs []model.Club
	if err := r.db.SelectContext(ctx, &clubs, q, userID); err != nil {
		return nil, err
	}
	return clubs, nil
}

// ListMembers returns the owner, organisers and members of a club,
// owner first. The owner has no club_members row, so the listing is a
// union with the computed Owner label.
func (r *repository) ListMembers(ctx context.Context, clubID, page, size int) (model.ListMembers, error) {
	q := `
select user_id, email, first_name, last_name, role
from (
    select u.id as user_id, u.email, u.first_name, u.last_name, 'Owner' as role, 0 as rank
    from clubs c
        join users u on u.id = c.owner_id
    where c.id = $1
    union all
    select u.id, u.email, u.first_name, u.last_name, cm.role,
           case cm.role when 'Organiser' then 1 else 2 end
    from club_members cm
        join users u on u.id = cm.user_id
    where cm.club_id = $1
) members
order by rank, user_id`
	args := []any{clubID}

	if page != 0 && size != 0 {
		q += ` limit $2 offset $3`
		args = append(args, size, (page-1)*size)
	}

	var members []model.ClubMember
	if err := r.db.SelectContext(ctx, &members, q, args...); err != nil {
		return model.ListMembers{}, err
	}

	return model.ListMembers{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(members),
		},
		Items: members,
	}, nil
}

func (r *repository) MemberCount(ctx context.Context, clubID int) (int, error) {
	q := `select count(*) + 1 from club_members where club_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, q, clubID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) GetMemberRole(ctx context.Context, clubID, userID int) (model.Role, error) {
	q := `
select case
    when c.owner_id = $2 then 'Owner'
    else coalesce(cm.role, 'None')
end as role
from clubs c
    left join club_members cm on cm.club_id = c.id and cm.user_id = $2
where c.id = $1`

	var role model.Role
	if err := r.db.QueryRowContext(ctx, q, clubID, userID).Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoleNone, errs.ErrNotFound
		}
		return model.RoleNone, err
	}
	return role, nil
}

// AddMember is idempotent: an existing (club_id, user_id) row is left as is.
func (r *repository) AddMember(ctx context.Context, clubID, userID int) error {
	q, args, err := qb.Insert(clubMembersTableName).
		Columns("club_id", "user_id", "role").
		Values(clubID, userID, model.RoleMember).
		Suffix("on conflict (club_id, user_id) do nothing").
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// SetMemberRole flips role from one value to another and is a silent
// no-op when the user holds no such row (promote of a non-member,
// demote of a plain member).
func (r *repository) SetMemberRole(ctx context.Context, clubID, userID int, from, to model.Role) error {
	q, args, err := qb.Update(clubMembersTableName).
		Set("role", to).
		Where(sq.Eq{"club_id": clubID, "user_id": userID, "role": from}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) RemoveMember(ctx context.Context, clubID, userID int) error {
	q, args, err := qb.Delete(clubMembersTableName).
		Where(sq.Eq{"club_id": clubID, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
