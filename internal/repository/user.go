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

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("email", "password", "first_name", "last_name", "public_bio", "favourite_genre", "location", "age").
		Values(user.Email, user.Password, user.FirstName, user.LastName, user.PublicBio, user.FavouriteGenre, user.Location, user.Age).
		Suffix("returning id, email, password, first_name, last_name, public_bio, favourite_genre, location, age").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrDuplicate
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	q, args, err := qb.Select("id", "email", "password", "first_name", "last_name", "public_bio", "favourite_genre", "location", "age").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q, args, err := qb.Select("id", "email", "password", "first_name", "last_name", "public_bio", "favourite_genre", "location", "age").
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
