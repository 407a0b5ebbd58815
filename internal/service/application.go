package service

import (
	"context"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/pkg/kafka"
)

// Apply creates a pending application. Preconditions: the applicant has
// no standing in the club and no pending application for it.
func (s *Service) Apply(ctx context.Context, applicantID, clubID int) (model.Application, error) {
	role, err := s.repo.GetMemberRole(ctx, clubID, applicantID)
	if err != nil {
		return model.Application{}, err
	}
	if role != model.RoleNone {
		return model.Application{}, errs.ErrAlreadyMember
	}

	return s.repo.CreateApplication(ctx, applicantID, clubID)
}

// IncomingApplications lists pending applications to clubs the caller owns.
func (s *Service) IncomingApplications(ctx context.Context, ownerID, page int) (model.ListApplications, error) {
	if page <= 0 {
		page = 1
	}
	return s.repo.ListOwnerApplications(ctx, ownerID, page, s.cfg.ApplicationsPerPage)
}

func (s *Service) MyApplications(ctx context.Context, applicantID, page int) (model.ListApplications, error) {
	if page <= 0 {
		page = 1
	}
	return s.repo.ListUserApplications(ctx, applicantID, page, s.cfg.ApplicationsPerPage)
}

// AcceptApplication converts the application into a membership and
// deletes the row, owner only. The repository runs both steps in one
// transaction.
func (s *Service) AcceptApplication(ctx context.Context, callerID, id int) error {
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return err
	}
	club, err := s.repo.GetClub(ctx, app.ClubID)
	if err != nil {
		return err
	}
	if club.OwnerID != callerID {
		return errs.ErrForbidden
	}

	accepted, err := s.repo.AcceptApplication(ctx, id)
	if err != nil {
		return err
	}
	s.publish(kafka.EventApplicationAccepted, accepted.ClubID, accepted.ApplicantID)
	return nil
}

// RejectApplication deletes the row without touching membership, owner only.
func (s *Service) RejectApplication(ctx context.Context, callerID, id int) error {
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return err
	}
	club, err := s.repo.GetClub(ctx, app.ClubID)
	if err != nil {
		return err
	}
	if club.OwnerID != callerID {
		return errs.ErrForbidden
	}

	if err := s.repo.DeleteApplication(ctx, id); err != nil {
		return err
	}
	s.publish(kafka.EventApplicationRejected, app.ClubID, app.ApplicantID)
	return nil
}
