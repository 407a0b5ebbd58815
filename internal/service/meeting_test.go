package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	mock_repository "github.com/pagebound/bookclub-service/internal/repository/mocks"
)

func newTestService(repo *mock_repository.MockRepository, now time.Time) *Service {
	s := NewService(repo, nil, nil, Config{
		ApplicationsPerPage: 10,
		UsersPerPage:        10,
		ClubsPerPage:        10,
	}, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func TestService_ScheduleMeeting(t *testing.T) {
	t.Parallel()

	var (
		now      = time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)
		ctx      = context.Background()
		callerID = 7
		clubID   = 3
	)
	type mockBehavior func(r *mock_repository.MockRepository)

	tests := []struct {
		name         string
		req          model.ScheduleMeetingRequest
		mockBehavior mockBehavior
		want         model.Meeting
		wantErr      error
	}{
		{
			name: "ok organiser",
			req: model.ScheduleMeetingRequest{
				Date:    "2025-05-02",
				Time:    "19:00",
				Address: "12 Bush Road",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOrganiser, nil)
				r.EXPECT().CreateMeeting(ctx, model.Meeting{
					ClubID:   clubID,
					StartsAt: time.Date(2025, 5, 2, 19, 0, 0, 0, time.Local),
					Address:  "12 Bush Road",
				}).Return(model.Meeting{
					ID:       1,
					ClubID:   clubID,
					StartsAt: time.Date(2025, 5, 2, 19, 0, 0, 0, time.Local),
					Address:  "12 Bush Road",
				}, nil)
			},
			want: model.Meeting{
				ID:       1,
				ClubID:   clubID,
				StartsAt: time.Date(2025, 5, 2, 19, 0, 0, 0, time.Local),
				Address:  "12 Bush Road",
			},
		},
		{
			name: "ok owner, address trimmed",
			req: model.ScheduleMeetingRequest{
				Date:    "2025-06-10",
				Time:    "18:30",
				Address: "  https://meet.example.com/bush  ",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOwner, nil)
				r.EXPECT().CreateMeeting(ctx, model.Meeting{
					ClubID:   clubID,
					StartsAt: time.Date(2025, 6, 10, 18, 30, 0, 0, time.Local),
					Address:  "https://meet.example.com/bush",
				}).Return(model.Meeting{
					ID:       2,
					ClubID:   clubID,
					StartsAt: time.Date(2025, 6, 10, 18, 30, 0, 0, time.Local),
					Address:  "https://meet.example.com/bush",
				}, nil)
			},
			want: model.Meeting{
				ID:       2,
				ClubID:   clubID,
				StartsAt: time.Date(2025, 6, 10, 18, 30, 0, 0, time.Local),
				Address:  "https://meet.example.com/bush",
			},
		},
		{
			name: "member cannot schedule",
			req: model.ScheduleMeetingRequest{
				Date:    "2025-05-02",
				Time:    "19:00",
				Address: "12 Bush Road",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleMember, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "outsider cannot schedule",
			req: model.ScheduleMeetingRequest{
				Date:    "2025-05-02",
				Time:    "19:00",
				Address: "12 Bush Road",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleNone, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "bad date format",
			req: model.ScheduleMeetingRequest{
				Date:    "02/05/2025",
				Time:    "19:00",
				Address: "12 Bush Road",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOwner, nil)
			},
			wantErr: errs.ErrBadDateTime,
		},
		{
			name: "datetime in the past",
			req: model.ScheduleMeetingRequest{
				Date:    "2025-04-30",
				Time:    "19:00",
				Address: "12 Bush Road",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOwner, nil)
			},
			wantErr: errs.ErrMeetingInPast,
		},
		{
			name: "datetime equal to now is rejected",
			req: model.ScheduleMeetingRequest{
				Date:    "2025-05-01",
				Time:    "12:00",
				Address: "12 Bush Road",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOwner, nil)
			},
			wantErr: errs.ErrMeetingInPast,
		},
		{
			name: "blank address",
			req: model.ScheduleMeetingRequest{
				Date:    "2025-05-02",
				Time:    "19:00",
				Address: "   ",
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, callerID).Return(model.RoleOwner, nil)
			},
			wantErr: errs.ErrEmptyAddress,
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

			got, err := s.ScheduleMeeting(ctx, callerID, clubID, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ListMeetings(t *testing.T) {
	t.Parallel()

	var (
		now    = time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)
		ctx    = context.Background()
		clubID = 3
	)

	t.Run("page and size defaulted", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(model.Club{ID: clubID}, nil)
		repo.EXPECT().ListMeetings(ctx, clubID, 1, meetingsPerPage).
			Return(model.ListMeetings{Items: []model.Meeting{}}, nil)
		s := newTestService(repo, now)

		_, err := s.ListMeetings(ctx, clubID, 0, 0)
		require.NoError(t, err)
	})

	t.Run("unknown club", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := mock_repository.NewMockRepository(c)
		repo.EXPECT().GetClub(ctx, clubID).Return(model.Club{}, errs.ErrNotFound)
		s := newTestService(repo, now)

		_, err := s.ListMeetings(ctx, clubID, 1, 10)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestMeetingOnline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		address string
		online  bool
	}{
		{"https://meet.example.com/bush", true},
		{"http://example.com/room", true},
		{"12 Bush Road, Bushville", false},
		{"httpstreet 4", false},
	}
	for _, tt := range tests {
		m := model.Meeting{Address: tt.address}
		require.Equal(t, tt.online, m.Online(), tt.address)
	}
}
