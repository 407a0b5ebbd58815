package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/internal/errs"
	md "github.com/pagebound/bookclub-service/pkg/middleware"
	"github.com/pagebound/bookclub-service/pkg/validate"
)

type Handler struct {
	svc BookclubService
	log *zap.Logger
}

func New(svc BookclubService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/manage/stats", h.Stats)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/authorize", h.Authorize)

	api = api.Group("", md.JwtAuthentication)

	api.GET("/me", h.Me)
	api.GET("/users/:id", h.GetUser)

	api.POST("/clubs", h.CreateClub)
	api.GET("/clubs", h.ListClubs)
	api.GET("/clubs/my", h.MyClubs)
	api.GET("/club_profile/:club_id", h.ClubProfile)
	api.GET("/club_profile/:club_id/meeting", h.MeetingForm)
	api.POST("/club_profile/:club_id/meeting", h.ScheduleMeeting)
	api.GET("/club_members/:club_id", h.ClubMembers)
	api.GET("/club_meetings/:club_id", h.ClubMeetings)

	api.POST("/applications/new/:club_id", h.NewApplication)
	api.GET("/applications", h.Applications)
	api.GET("/my_applications", h.MyApplications)
	api.POST("/applications/:pk/accept", h.AcceptApplication)
	api.POST("/applications/:pk/remove", h.RemoveApplication)

	api.POST("/club/:c_pk/promote/:u_pk", h.PromoteMember)
	api.POST("/club/:c_pk/demote/:u_pk", h.DemoteOrganiser)
	api.POST("/club/leave/:club_id", h.LeaveClub)
	api.POST("/club/disband/:c_pk", h.DisbandClub)
	api.GET("/club/edit/:c_pk", h.GetClubForEdit)
	api.PUT("/club/edit/:c_pk", h.EditClub)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books/:id/rating", h.RateBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Stats(c echo.Context) error {
	info, err := h.svc.GetStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, info)
}

// httpError maps service sentinels onto status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrBadCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrAlreadyMember),
		errors.Is(err, errs.ErrAlreadyApplied),
		errors.Is(err, errs.ErrDuplicate):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrOwnerLeave),
		errors.Is(err, errs.ErrMeetingInPast),
		errors.Is(err, errs.ErrBadDateTime),
		errors.Is(err, errs.ErrEmptyAddress),
		errors.Is(err, errs.ErrRatingRange),
		errors.Is(err, errs.ErrPubYearRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func paramInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return v, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	param := c.QueryParam(name)
	if param == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(param)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return v, nil
}
