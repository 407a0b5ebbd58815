package service

import (
	"context"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/internal/stats"
)

const minPubYear = 1800

func (s *Service) CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error) {
	if req.PubYear < minPubYear || req.PubYear > s.now().Year() {
		return model.Book{}, errs.ErrPubYearRange
	}

	return s.repo.CreateBook(ctx, model.Book{
		ISBN:      req.ISBN,
		Title:     req.Title,
		Author:    req.Author,
		PubYear:   req.PubYear,
		Publisher: req.Publisher,
		SmallUrl:  req.SmallUrl,
		MediumUrl: req.MediumUrl,
		LargeUrl:  req.LargeUrl,
	})
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, page, size)
}

// ValidateRating rejects missing, non-integer and out-of-range values
// before anything touches the store.
func ValidateRating(rating *int) error {
	if rating == nil || *rating < 0 || *rating > 10 {
		return errs.ErrRatingRange
	}
	return nil
}

func (s *Service) RateBook(ctx context.Context, userID, bookID int, rating *int) (model.Rating, error) {
	if err := ValidateRating(rating); err != nil {
		return model.Rating{}, err
	}
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Rating{}, err
	}

	return s.repo.UpsertRating(ctx, model.Rating{
		UserID: userID,
		BookID: bookID,
		Rating: *rating,
	})
}

func (s *Service) GetStats(ctx context.Context) (stats.StatsInfo, error) {
	return s.stats.GetStats(ctx)
}
