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

func TestService_Apply(t *testing.T) {
	t.Parallel()

	var (
		now         = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx         = context.Background()
		applicantID = 7
		clubID      = 3
	)
	type mockBehavior func(r *mock_repository.MockRepository)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		want         model.Application
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, applicantID).Return(model.RoleNone, nil)
				r.EXPECT().CreateApplication(ctx, applicantID, clubID).
					Return(model.Application{ID: 11, ApplicantID: applicantID, ClubID: clubID, CreatedAt: now}, nil)
			},
			want: model.Application{ID: 11, ApplicantID: applicantID, ClubID: clubID, CreatedAt: now},
		},
		{
			name: "member cannot apply",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, applicantID).Return(model.RoleMember, nil)
			},
			wantErr: errs.ErrAlreadyMember,
		},
		{
			name: "owner cannot apply",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, applicantID).Return(model.RoleOwner, nil)
			},
			wantErr: errs.ErrAlreadyMember,
		},
		{
			name: "pending application already exists",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, applicantID).Return(model.RoleNone, nil)
				r.EXPECT().CreateApplication(ctx, applicantID, clubID).
					Return(model.Application{}, errs.ErrAlreadyApplied)
			},
			wantErr: errs.ErrAlreadyApplied,
		},
		{
			name: "unknown club",
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetMemberRole(ctx, clubID, applicantID).Return(model.Role(""), errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
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

			got, err := s.Apply(ctx, applicantID, clubID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_AcceptApplication(t *testing.T) {
	t.Parallel()

	var (
		now     = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx     = context.Background()
		ownerID = 1
		appID   = 11
		clubID  = 3
	)
	app := model.Application{ID: appID, ApplicantID: 7, ClubID: clubID}
	type mockBehavior func(r *mock_repository.MockRepository)

	tests := []struct {
		name         string
		callerID     int
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:     "ok",
			callerID: ownerID,
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetApplication(ctx, appID).Return(app, nil)
				r.EXPECT().GetClub(ctx, clubID).Return(model.Club{ID: clubID, OwnerID: ownerID}, nil)
				r.EXPECT().AcceptApplication(ctx, appID).Return(app, nil)
			},
		},
		{
			name:     "only the owner accepts",
			callerID: 2,
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetApplication(ctx, appID).Return(app, nil)
				r.EXPECT().GetClub(ctx, clubID).Return(model.Club{ID: clubID, OwnerID: ownerID}, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:     "application already decided",
			callerID: ownerID,
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetApplication(ctx, appID).Return(model.Application{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
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

			err := s.AcceptApplication(ctx, tt.callerID, appID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_RejectApplication(t *testing.T) {
	t.Parallel()

	var (
		now     = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx     = context.Background()
		ownerID = 1
		appID   = 11
		clubID  = 3
	)
	app := model.Application{ID: appID, ApplicantID: 7, ClubID: clubID}
	type mockBehavior func(r *mock_repository.MockRepository)

	tests := []struct {
		name         string
		callerID     int
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:     "ok",
			callerID: ownerID,
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetApplication(ctx, appID).Return(app, nil)
				r.EXPECT().GetClub(ctx, clubID).Return(model.Club{ID: clubID, OwnerID: ownerID}, nil)
				r.EXPECT().DeleteApplication(ctx, appID).Return(nil)
			},
		},
		{
			name:     "only the owner rejects",
			callerID: 9,
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().GetApplication(ctx, appID).Return(app, nil)
				r.EXPECT().GetClub(ctx, clubID).Return(model.Club{ID: clubID, OwnerID: ownerID}, nil)
			},
			wantErr: errs.ErrForbidden,
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

			err := s.RejectApplication(ctx, tt.callerID, appID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
