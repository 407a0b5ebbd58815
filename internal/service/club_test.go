package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	mock_repository "github.com/pagebound/bookclub-service/internal/repository/mocks"
)

func TestService_LeaveClub(t *testing.T) {
	t.Parallel()

	var (
		now      = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx      = context.Background()
		callerID = 7
		clubID   = 3
	)
	type mockBehavior func(r *mock_repository.MockRepository)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "member leaves",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleMember, nil)
				r.EXPECT().RemoveMember(ctx, clubID, callerID).Return(nil)
			},
		},
		{
			name: "organiser leaves",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOrganiser, nil)
				r.EXPECT().RemoveMember(ctx, clubID, callerID).Return(nil)
			},
		},
		{
			name: "owner is refused",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOwner, nil)
			},
			wantErr: errs.ErrOwnerLeave,
		},
		{
			name: "non-member leave is a no-op",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleNone, nil)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockRepository(c)
			tt.mockBehavior(repo)
			s := newTestService(repo, now)

			err := s.LeaveClub(ctx, callerID, clubID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_PromoteDemote(t *testing.T) {
	t.Parallel()

	var (
		now     = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx     = context.Background()
		ownerID = 1
		clubID  = 3
		userID  = 7
	)
	club := model.Club{ID: clubID, OwnerID: ownerID}

	t.Run("owner promotes member to organiser", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(club, nil)
		repo.EXPECT().SetMemberRole(ctx, clubID, userID, model.RoleMember, model.RoleOrganiser).Return(nil)
		s := newTestService(repo, now)

		require.NoError(t, s.Promote(ctx, ownerID, clubID, userID))
	})

	t.Run("owner demotes organiser to member", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(club, nil)
		repo.EXPECT().SetMemberRole(ctx, clubID, userID, model.RoleOrganiser, model.RoleMember).Return(nil)
		s := newTestService(repo, now)

		require.NoError(t, s.Demote(ctx, ownerID, clubID, userID))
	})

	t.Run("organiser cannot promote", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(club, nil)
		s := newTestService(repo, now)

		require.ErrorIs(t, s.Promote(ctx, userID, clubID, 8), errs.ErrForbidden)
	})

	t.Run("organiser cannot demote", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(club, nil)
		s := newTestService(repo, now)

		require.ErrorIs(t, s.Demote(ctx, userID, clubID, 8), errs.ErrForbidden)
	})
}

func TestService_UserLevel(t *testing.T) {
	t.Parallel()

	var (
		now    = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx    = context.Background()
		clubID = 3
	)
	tests := []struct {
		name   string
		userID int
		role   model.Role
	}{
		{name: "owner", userID: 1, role: model.RoleOwner},
		{name: "organiser", userID: 5, role: model.RoleOrganiser},
		{name: "member", userID: 7, role: model.RoleMember},
		{name: "outsider", userID: 9, role: model.RoleNone},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockRepository(c)
			repo.EXPECT().GetMemberRole(ctx, clubID, tt.userID).Return(tt.role, nil)
			s := newTestService(repo, now)

			role, err := s.UserLevel(ctx, clubID, tt.userID)
			require.NoError(t, err)
			require.Equal(t, tt.role, role)
		})
	}
}

func TestService_GetClubProfile(t *testing.T) {
	t.Parallel()

	var (
		now    = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx    = context.Background()
		clubID = 3
		userID = 7
	)
	club := model.Club{ID: clubID, Name: "Bush Book Club", OwnerID: 1}
	next := &model.Meeting{ID: 4, ClubID: clubID, StartsAt: now.Add(48 * time.Hour), Address: "12 Bush Road"}

	t.Run("member profile", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(gomock.Any(), clubID).Return(club, nil)
		repo.EXPECT().GetMemberRole(gomock.Any(), clubID, userID).Return(model.RoleMember, nil)
		repo.EXPECT().MemberCount(gomock.Any(), clubID).Return(5, nil)
		repo.EXPECT().NextMeeting(gomock.Any(), clubID).Return(next, nil)
		s := newTestService(repo, now)

		profile, err := s.GetClubProfile(ctx, clubID, userID)
		require.NoError(t, err)
		require.Equal(t, model.ClubProfile{
			Club:        club,
			Role:        model.RoleMember,
			IsOwner:     false,
			MemberCount: 5,
			NextMeeting: next,
		}, profile)
	})

	t.Run("owner profile", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(gomock.Any(), clubID).Return(club, nil)
		repo.EXPECT().GetMemberRole(gomock.Any(), clubID, 1).Return(model.RoleOwner, nil)
		repo.EXPECT().MemberCount(gomock.Any(), clubID).Return(5, nil)
		repo.EXPECT().NextMeeting(gomock.Any(), clubID).Return(nil, nil)
		s := newTestService(repo, now)

		profile, err := s.GetClubProfile(ctx, clubID, 1)
		require.NoError(t, err)
		require.True(t, profile.IsOwner)
		require.Equal(t, model.RoleOwner, profile.Role)
		require.Nil(t, profile.NextMeeting)
	})
}

func TestService_DisbandClub(t *testing.T) {
	t.Parallel()

	var (
		now     = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx     = context.Background()
		ownerID = 1
		clubID  = 3
	)
	club := model.Club{ID: clubID, OwnerID: ownerID}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(club, nil)
		repo.EXPECT().DeleteClub(ctx, clubID).Return(nil)
		s := newTestService(repo, now)

		require.NoError(t, s.DisbandClub(ctx, ownerID, clubID))
	})

	t.Run("only the owner disbands", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(club, nil)
		s := newTestService(repo, now)

		require.ErrorIs(t, s.DisbandClub(ctx, 9, clubID), errs.ErrForbidden)
	})
}
