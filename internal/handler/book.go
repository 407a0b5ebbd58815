package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagebound/bookclub-service/internal/model"
	"github.com/pagebound/bookclub-service/pkg/auth"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return err
	}

	books, err := h.svc.ListBooks(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) RateBook(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID, err := paramInt(c, "id")
	if err != nil {
		return err
	}

	var req model.RateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.svc.RateBook(ctx, userID, bookID, req.Rating)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rating)
}
