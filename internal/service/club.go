package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/pkg/kafka"
)

func (s *Service) CreateClub(ctx context.Context, ownerID int, req model.ClubCreateRequest) (model.Club, error) {
	club, err := s.repo.CreateClub(ctx, model.Club{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		OwnerID:     ownerID,
	})
	if err != nil {
		return model.Club{}, err
	}

	s.publish(kafka.EventClubCreated, club.ID, ownerID)
	return club, nil
}

func (s *Service) ListClubs(ctx context.Context, page int) (model.ListClubs, error) {
	if page <= 0 {
		page = 1
	}
	return s.repo.ListClubs(ctx, page, s.cfg.ClubsPerPage)
}

// ListUserClubs is the per-request replacement for the old process-wide
// "current user's clubs" cache: always recomputed, never shared.
func (s *Service) ListUserClubs(ctx context.Context, userID int) ([]model.Club, error) {
	return s.repo.ListUserClubs(ctx, userID)
}

// UserLevel reports the closed role variant of a user within a club.
func (s *Service) UserLevel(ctx context.Context, clubID, userID int) (model.Role, error) {
	return s.repo.GetMemberRole(ctx, clubID, userID)
}

// GetClubProfile assembles the club page: the club row, the caller's
// role, the member count and the next upcoming meeting, fetched
// concurrently.
func (s *Service) GetClubProfile(ctx context.Context, clubID, userID int) (model.ClubProfile, error) {
	var profile model.ClubProfile

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		club, err := s.repo.GetClub(ctx, clubID)
		if err != nil {
			return err
		}
		profile.Club = club
		return nil
	})
	gg.Go(func() error {
		role, err := s.repo.GetMemberRole(ctx, clubID, userID)
		if err != nil {
			return err
		}
		profile.Role = role
		return nil
	})
	gg.Go(func() error {
		count, err := s.repo.MemberCount(ctx, clubID)
		if err != nil {
			return err
		}
		profile.MemberCount = count
		return nil
	})
	gg.Go(func() error {
		next, err := s.repo.NextMeeting(ctx, clubID)
		if err != nil {
			return err
		}
		profile.NextMeeting = next
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.ClubProfile{}, err
	}

	profile.IsOwner = profile.Role == model.RoleOwner
	return profile, nil
}

func (s *Service) UpdateClub(ctx context.Context, callerID, clubID int, req model.ClubUpdateRequest) (model.Club, error) {
	club, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return model.Club{}, err
	}
	if club.OwnerID != callerID {
		return model.Club{}, errs.ErrForbidden
	}

	club.Name = req.Name
	club.Description = req.Description
	club.Location = req.Location
	return s.repo.UpdateClub(ctx, club)
}

func (s *Service) DisbandClub(ctx context.Context, callerID, clubID int) error {
	club, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return err
	}
	if club.OwnerID != callerID {
		return errs.ErrForbidden
	}

	if err := s.repo.DeleteClub(ctx, clubID); err != nil {
		return err
	}
	s.publish(kafka.EventClubDisbanded, clubID, callerID)
	return nil
}

// LeaveClub removes the caller's membership. The owner is refused:
// ownership never drops silently, disband is the owner's exit.
func (s *Service) LeaveClub(ctx context.Context, callerID, clubID int) error {
	role, err := s.repo.GetMemberRole(ctx, clubID, callerID)
	if err != nil {
		return err
	}
	if role == model.RoleOwner {
		return errs.ErrOwnerLeave
	}
	if role == model.RoleNone {
		return nil
	}

	if err := s.repo.RemoveMember(ctx, clubID, callerID); err != nil {
		return err
	}
	s.publish(kafka.EventMemberLeft, clubID, callerID)
	return nil
}

func (s *Service) ListMembers(ctx context.Context, clubID, page int) (model.ListMembers, error) {
	if _, err := s.repo.GetClub(ctx, clubID); err != nil {
		return model.ListMembers{}, err
	}
	if page <= 0 {
		page = 1
	}
	return s.repo.ListMembers(ctx, clubID, page, s.cfg.UsersPerPage)
}

// Promote raises an existing member to organiser. Promoting a user who
// is not a plain member of the club is a silent no-op.
func (s *Service) Promote(ctx context.Context, callerID, clubID, userID int) error {
	club, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return err
	}
	if club.OwnerID != callerID {
		return errs.ErrForbidden
	}

	if err := s.repo.SetMemberRole(ctx, clubID, userID, model.RoleMember, model.RoleOrganiser); err != nil {
		return err
	}
	s.publish(kafka.EventMemberPromoted, clubID, userID)
	return nil
}

func (s *Service) Demote(ctx context.Context, callerID, clubID, userID int) error {
	club, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return err
	}
	if club.OwnerID != callerID {
		return errs.ErrForbidden
	}

	if err := s.repo.SetMemberRole(ctx, clubID, userID, model.RoleOrganiser, model.RoleMember); err != nil {
		return err
	}
	s.publish(kafka.EventMemberDemoted, clubID, userID)
	return nil
}
