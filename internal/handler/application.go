package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagebound/bookclub-service/pkg/auth"
)

func (h *Handler) NewApplication(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	clubID, err := paramInt(c, "club_id")
	if err != nil {
		return err
	}

	app, err := h.svc.Apply(ctx, userID, clubID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, app)
}

// Applications lists pending applications to the caller's owned clubs.
func (h *Handler) Applications(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}

	apps, err := h.svc.IncomingApplications(ctx, userID, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *Handler) MyApplications(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}

	apps, err := h.svc.MyApplications(ctx, userID, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *Handler) AcceptApplication(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramInt(c, "pk")
	if err != nil {
		return err
	}

	if err := h.svc.AcceptApplication(ctx, userID, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RemoveApplication(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramInt(c, "pk")
	if err != nil {
		return err
	}

	if err := h.svc.RejectApplication(ctx, userID, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
