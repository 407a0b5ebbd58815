package model

import (
	"strings"
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Role string

const (
	RoleOwner     Role = "Owner"
	RoleOrganiser Role = "Organiser"
	RoleMember    Role = "Member"
	RoleNone      Role = "None"
)

type User struct {
	ID             int    `json:"id" db:"id"`
	Email          string `json:"email" db:"email"`
	Password       string `json:"-" db:"password"`
	FirstName      string `json:"firstName" db:"first_name"`
	LastName       string `json:"lastName" db:"last_name"`
	PublicBio      string `json:"publicBio" db:"public_bio"`
	FavouriteGenre string `json:"favouriteGenre" db:"favourite_genre"`
	Location       string `json:"location" db:"location"`
	Age            *int   `json:"age,omitempty" db:"age"`
}

type Club struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Location    string `json:"location" db:"location"`
	OwnerID     int    `json:"ownerId" db:"owner_id"`
}

// ClubMember is a user listed with their standing in a club.
// The owner appears with RoleOwner even though clubs.owner_id is the
// only place ownership is stored.
type ClubMember struct {
	UserID    int    `json:"userId" db:"user_id"`
	Email     string `json:"email" db:"email"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Role      Role   `json:"role" db:"role"`
}

type Application struct {
	ID          int       `json:"id" db:"id"`
	ApplicantID int       `json:"applicantId" db:"applicant_id"`
	ClubID      int       `json:"clubId" db:"club_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ApplicationInfo is an application joined with applicant and club names
// for the incoming/outgoing listings.
type ApplicationInfo struct {
	ID             int       `json:"id" db:"id"`
	ApplicantID    int       `json:"applicantId" db:"applicant_id"`
	ApplicantEmail string    `json:"applicantEmail" db:"applicant_email"`
	ApplicantName  string    `json:"applicantName" db:"applicant_name"`
	ClubID         int       `json:"clubId" db:"club_id"`
	ClubName       string    `json:"clubName" db:"club_name"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type Meeting struct {
	ID         int       `json:"id" db:"id"`
	MeetingUid string    `json:"meetingUid" db:"meeting_uid"`
	ClubID     int       `json:"clubId" db:"club_id"`
	StartsAt   time.Time `json:"startsAt" db:"starts_at"`
	Address    string    `json:"address" db:"address"`
}

// Online reports whether the meeting address looks like a URL.
// Display concern only, never persisted.
func (m Meeting) Online() bool {
	return strings.HasPrefix(m.Address, "http://") || strings.HasPrefix(m.Address, "https://")
}

type Book struct {
	ID        int    `json:"id" db:"id"`
	ISBN      string `json:"isbn" db:"isbn"`
	Title     string `json:"title" db:"title"`
	Author    string `json:"author" db:"author"`
	PubYear   int    `json:"pubYear" db:"pub_year"`
	Publisher string `json:"publisher" db:"publisher"`
	SmallUrl  string `json:"smallUrl" db:"small_url"`
	MediumUrl string `json:"mediumUrl" db:"medium_url"`
	LargeUrl  string `json:"largeUrl" db:"large_url"`
}

type Rating struct {
	ID     int `json:"id" db:"id"`
	UserID int `json:"userId" db:"user_id"`
	BookID int `json:"bookId" db:"book_id"`
	Rating int `json:"rating" db:"rating"`
}

type ListClubs struct {
	Paging `json:",inline"`
	Items  []Club `json:"items"`
}

type ListMembers struct {
	Paging `json:",inline"`
	Items  []ClubMember `json:"items"`
}

type ListApplications struct {
	Paging `json:",inline"`
	Items  []ApplicationInfo `json:"items"`
}

type ListMeetings struct {
	Paging `json:",inline"`
	Items  []Meeting `json:"items"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type UserCreateRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	PublicBio      string `json:"publicBio"`
	FavouriteGenre string `json:"favouriteGenre"`
	Location       string `json:"location"`
	Age            *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

type ClubCreateRequest struct {
	Name        string `json:"name" validate:"required,max=48"`
	Description string `json:"description" validate:"max=512"`
	Location    string `json:"location" validate:"max=96"`
}

type ClubUpdateRequest struct {
	Name        string `json:"name" validate:"required,max=48"`
	Description string `json:"description" validate:"max=512"`
	Location    string `json:"location" validate:"max=96"`
}

// ClubProfile is the /club_profile payload: the club itself plus the
// bits the page shows next to it.
type ClubProfile struct {
	Club        Club     `json:"club"`
	Role        Role     `json:"role"`
	IsOwner     bool     `json:"isOwner"`
	MemberCount int      `json:"memberCount"`
	NextMeeting *Meeting `json:"nextMeeting,omitempty"`
}

type ScheduleMeetingRequest struct {
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Address string `json:"address" validate:"required,max=512"`
}

// StartsAt combines the submitted date and time in the given location.
func (r ScheduleMeetingRequest) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, loc)
}

type MeetingResponse struct {
	Meeting `json:",inline"`
	Online  bool `json:"online"`
}

type BookCreateRequest struct {
	ISBN      string `json:"isbn" validate:"required,max=12"`
	Title     string `json:"title" validate:"required,max=512"`
	Author    string `json:"author" validate:"required,max=512"`
	PubYear   int    `json:"pubYear" validate:"required"`
	Publisher string `json:"publisher" validate:"max=512"`
	SmallUrl  string `json:"smallUrl" validate:"omitempty,url"`
	MediumUrl string `json:"mediumUrl" validate:"omitempty,url"`
	LargeUrl  string `json:"largeUrl" validate:"omitempty,url"`
}

type RateBookRequest struct {
	Rating *int `json:"rating" validate:"required"`
}
