package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/pkg/auth"
)

func (h *Handler) CreateClub(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.ClubCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	club, err := h.svc.CreateClub(ctx, userID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, club)
}

func (h *Handler) ListClubs(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}

	clubs, err := h.svc.ListClubs(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, clubs)
}

// MyClubs lists the clubs the caller belongs to in any role, computed
// per request.
func (h *Handler) MyClubs(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	clubs, err := h.svc.ListUserClubs(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, clubs)
}

func (h *Handler) ClubProfile(c echo.Context) error {
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
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) ClubMembers(c echo.Context) error {
	clubID, err := paramInt(c, "club_id")
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}

	members, err := h.svc.ListMembers(c.Request().Context(), clubID, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) GetClubForEdit(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "c_pk")
	if err != nil {
		return err
	}

	profile, err := h.svc.GetClubProfile(ctx, clubID, userID)
	if err != nil {
		return httpError(err)
	}
	if !profile.IsOwner {
		return echo.NewHTTPError(http.StatusForbidden, "only the owner may edit the club")
	}
	return c.JSON(http.StatusOK, profile.Club)
}

func (h *Handler) EditClub(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "c_pk")
	if err != nil {
		return err
	}

	var req model.ClubUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	club, err := h.svc.UpdateClub(ctx, userID, clubID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, club)
}

func (h *Handler) LeaveClub(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "club_id")
	if err != nil {
		return err
	}

	if err := h.svc.LeaveClub(ctx, userID, clubID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DisbandClub(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "c_pk")
	if err != nil {
		return err
	}

	if err := h.svc.DisbandClub(ctx, userID, clubID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) PromoteMember(c echo.Context) error {
	ctx := c.Request().Context()
	callerID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "c_pk")
	if err != nil {
		return err
	}
	userID, err := paramInt(c, "u_pk")
	if err != nil {
		return err
	}

	if err := h.svc.Promote(ctx, callerID, clubID, userID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DemoteOrganiser(c echo.Context) error {
	ctx := c.Request().Context()
	callerID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "c_pk")
	if err != nil {
		return err
	}
	userID, err := paramInt(c, "u_pk")
	if err != nil {
		return err
	}

	if err := h.svc.Demote(ctx, callerID, clubID, userID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
