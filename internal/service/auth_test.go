package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	mock_repository "github.com/pagebound/bookclub-service/internal/repository/mocks"
	"github.com/pagebound/bookclub-service/pkg/auth"
)

func TestService_Authorize(t *testing.T) {
	t.Parallel()

	var (
		now   = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx   = context.Background()
		email = "jane@example.org"
	)
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.User{ID: 7, Email: email, Password: string(hash)}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetUserByEmail(ctx, email).Return(user, nil)
		s := newTestService(repo, now)

		resp, err := s.Authorize(ctx, model.AuthRequest{Email: email, Password: "Password123"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		require.Equal(t, int(now.Add(24*time.Hour).Unix()), resp.ExpiresIn)

		jwt.TimeFunc = func() time.Time { return now }
		defer func() { jwt.TimeFunc = time.Now }()

		claims := &auth.Claims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.Equal(t, 7, claims.UserID)
		require.Equal(t, email, claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetUserByEmail(ctx, email).Return(user, nil)
		s := newTestService(repo, now)

		_, err := s.Authorize(ctx, model.AuthRequest{Email: email, Password: "nope"})
		require.ErrorIs(t, err, errs.ErrBadCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetUserByEmail(ctx, email).Return(model.User{}, errs.ErrNotFound)
		s := newTestService(repo, now)

		_, err := s.Authorize(ctx, model.AuthRequest{Email: email, Password: "Password123"})
		require.ErrorIs(t, err, errs.ErrBadCredentials)
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	var (
		now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx = context.Background()
	)

	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			require.Equal(t, "jane@example.org", u.Email)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Password123")))
			u.ID = 7
			return u, nil
		})
	s := newTestService(repo, now)

	user, err := s.Register(ctx, model.UserCreateRequest{
		Email:     "jane@example.org",
		Password:  "Password123",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	require.Equal(t, 7, user.ID)
	require.NotEqual(t, "Password123", user.Password)
}
