package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/pkg/auth"
)

// MeetingForm returns the scheduling form contract for a club: the club
// profile plus the field names the POST expects.
func (h *Handler) MeetingForm(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "club_id")
	if err != nil {
		return err
	}

	profile, err := h.svc.GetClubProfile(ctx, clubID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"club":   profile.Club,
		"fields": []string{"date", "time", "address"},
	})
}

func (h *Handler) ScheduleMeeting(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "club_id")
	if err != nil {
		return err
	}

	var req model.ScheduleMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	meeting, err := h.svc.ScheduleMeeting(ctx, userID, clubID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, model.MeetingResponse{
		Meeting: meeting,
		Online:  meeting.Online(),
	})
}

func (h *Handler) ClubMeetings(c echo.Context) error {
	clubID, err := paramInt(c, "club_id")
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return err
	}

	meetings, err := h.svc.ListMeetings(c.Request().Context(), clubID, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, meetings)
}
