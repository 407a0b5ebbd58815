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

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("isbn", "title", "author", "pub_year", "publisher", "small_url", "medium_url", "large_url").
		Values(book.ISBN, book.Title, book.Author, book.PubYear, book.Publisher, book.SmallUrl, book.MediumUrl, book.LargeUrl).
		Suffix("returning id, isbn, title, author, pub_year, publisher, small_url, medium_url, large_url").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var created model.Book
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrDuplicate
		}
		r.log.Error("CreateBook", zap.String("q", q), zap.Error(err))
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	q, args, err := qb.Select("id", "isbn", "title", "author", "pub_year", "publisher", "small_url", "medium_url", "large_url").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	q := qb.Select("id", "isbn", "title", "author", "pub_year", "publisher", "small_url", "medium_url", "large_url").
		From(booksTableName).
		OrderBy("title", "id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

// UpsertRating keeps one rating per (user, book): re-rating replaces
// the previous value.
func (r *repository) UpsertRating(ctx context.Context, rating model.Rating) (model.Rating, error) {
	q, args, err := qb.Insert(ratingsTableName).
		Columns("user_id", "book_id", "rating").
		Values(rating.UserID, rating.BookID, rating.Rating).
		Suffix("on conflict (user_id, book_id) do update set rating = excluded.rating").
		Suffix("returning id, user_id, book_id, rating").
		ToSql()
	if err != nil {
		return model.Rating{}, err
	}

	var saved model.Rating
	if err := r.db.GetContext(ctx, &saved, q, args...); err != nil {
		r.log.Error("UpsertRating", zap.String("q", q), zap.Error(err))
		return model.Rating{}, err
	}
	return saved, nil
}
