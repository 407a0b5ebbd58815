package errs

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("operation requires a higher club role")
	ErrAlreadyMember  = errors.New("already a member of this club")
	ErrAlreadyApplied = errors.New("a pending application for this club already exists")
	ErrOwnerLeave     = errors.New("the owner cannot leave the club, disband it instead")
	ErrMeetingInPast  = errors.New("meeting must be scheduled strictly in the future")
	ErrBadDateTime    = errors.New("invalid meeting date or time")
	ErrEmptyAddress   = errors.New("meeting address is required")
	ErrRatingRange    = errors.New("rating must be an integer between 0 and 10")
	ErrPubYearRange   = errors.New("publication year is out of range")
	ErrDuplicate      = errors.New("duplicate value for a unique field")
	ErrBadCredentials = errors.New("invalid credentials")
)
