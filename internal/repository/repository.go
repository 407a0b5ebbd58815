package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	CreateClub(ctx context.Context, club model.Club) (model.Club, error)
	GetClub(ctx context.Context, id int) (model.Club, error)
	UpdateClub(ctx context.Context, club model.Club) (model.Club, error)
	DeleteClub(ctx context.Context, id int) error
	ListClubs(ctx context.Context, page, size int) (model.ListClubs, error)
	ListUserClubs(ctx context.Context, userID int) ([]model.Club, error)

	ListMembers(ctx context.Context, clubID, page, size int) (model.ListMembers, error)
	MemberCount(ctx context.Context, clubID int) (int, error)
	GetMemberRole(ctx context.Context, clubID, userID int) (model.Role, error)
	AddMember(ctx context.Context, clubID, userID int) error
	SetMemberRole(ctx context.Context, clubID, userID int, from, to model.Role) error
	RemoveMember(ctx context.Context, clubID, userID int) error

	CreateApplication(ctx context.Context, applicantID, clubID int) (model.Application, error)
	GetApplication(ctx context.Context, id int) (model.Application, error)
	ListOwnerApplications(ctx context.Context, ownerID, page, size int) (model.ListApplications, error)
	ListUserApplications(ctx context.Context, applicantID, page, size int) (model.ListApplications, error)
	AcceptApplication(ctx context.Context, id int) (model.Application, error)
	DeleteApplication(ctx context.Context, id int) error

	CreateMeeting(ctx context.Context, meeting model.Meeting) (model.Meeting, error)
	ListMeetings(ctx context.Context, clubID, page, size int) (model.ListMeetings, error)
	NextMeeting(ctx context.Context, clubID int) (*model.Meeting, error)

	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	UpsertRating(ctx context.Context, rating model.Rating) (model.Rating, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	clubsTableName        = `clubs`
	clubMembersTableName  = `club_members`
	applicationsTableName = `applications`
	meetingsTableName     = `meetings`
	booksTableName        = `books`
	ratingsTableName      = `ratings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
