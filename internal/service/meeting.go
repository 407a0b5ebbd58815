package service

import (
	"context"
	"strings"
	"time"

	"github.com/pagebound/bookclub-service/internal/errs"
	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/pkg/kafka"
)

const meetingsPerPage = 10

// ScheduleMeeting validates and persists a meeting for a club.
// Owner and organisers may schedule; the datetime must be strictly in
// the future and the address non-empty.
func (s *Service) ScheduleMeeting(ctx context.Context, callerID, clubID int, req model.ScheduleMeetingRequest) (model.Meeting, error) {
	role, err := s.repo.GetMemberRole(ctx, clubID, callerID)
	if err != nil {
		return model.Meeting{}, err
	}
	if role != model.RoleOwner && role != model.RoleOrganiser {
		return model.Meeting{}, errs.ErrForbidden
	}

	startsAt, err := req.StartsAt(time.Local)
	if err != nil {
		return model.Meeting{}, errs.ErrBadDateTime
	}
	if !startsAt.After(s.now()) {
		return model.Meeting{}, errs.ErrMeetingInPast
	}
	if strings.TrimSpace(req.Address) == "" {
		return model.Meeting{}, errs.ErrEmptyAddress
	}

	meeting, err := s.repo.CreateMeeting(ctx, model.Meeting{
		ClubID:   clubID,
		StartsAt: startsAt,
		Address:  strings.TrimSpace(req.Address),
	})
	if err != nil {
		return model.Meeting{}, err
	}

	s.publish(kafka.EventMeetingScheduled, clubID, callerID)
	return meeting, nil
}

func (s *Service) ListMeetings(ctx context.Context, clubID, page, size int) (model.ListMeetings, error) {
	if _, err := s.repo.GetClub(ctx, clubID); err != nil {
		return model.ListMeetings{}, err
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = meetingsPerPage
	}
	return s.repo.ListMeetings(ctx, clubID, page, size)
}
