package handler

import (
	"context"

	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/internal/service"
	"github.com/pagebound/bookclub-service/internal/stats"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookclubService interface {
	Register(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Authorize(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
	GetUser(ctx context.Context, id int) (model.User, error)

	CreateClub(ctx context.Context, ownerID int, req model.ClubCreateRequest) (model.Club, error)
	ListClubs(ctx context.Context, page int) (model.ListClubs, error)
	ListUserClubs(ctx context.Context, userID int) ([]model.Club, error)
	GetClubProfile(ctx context.Context, clubID, userID int) (model.ClubProfile, error)
	UpdateClub(ctx context.Context, callerID, clubID int, req model.ClubUpdateRequest) (model.Club, error)
	DisbandClub(ctx context.Context, callerID, clubID int) error
	LeaveClub(ctx context.Context, callerID, clubID int) error
	ListMembers(ctx context.Context, clubID, page int) (model.ListMembers, error)
	Promote(ctx context.Context, callerID, clubID, userID int) error
	Demote(ctx context.Context, callerID, clubID, userID int) error

	Apply(ctx context.Context, applicantID, clubID int) (model.Application, error)
	IncomingApplications(ctx context.Context, ownerID, page int) (model.ListApplications, error)
	MyApplications(ctx context.Context, applicantID, page int) (model.ListApplications, error)
	AcceptApplication(ctx context.Context, callerID, id int) error
	RejectApplication(ctx context.Context, callerID, id int) error

	ScheduleMeeting(ctx context.Context, callerID, clubID int, req model.ScheduleMeetingRequest) (model.Meeting, error)
	ListMeetings(ctx context.Context, clubID, page, size int) (model.ListMeetings, error)

	CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	RateBook(ctx context.Context, userID, bookID int, rating *int) (model.Rating, error)

	GetStats(ctx context.Context) (stats.StatsInfo, error)
}

var _ BookclubService = (*service.Service)(nil)
