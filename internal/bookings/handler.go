package bookings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/bookings", h.Create)
	r.GET("/bookings", h.ListByBooker)
	r.GET("/bookings/owner", h.ListByOwner)
	r.GET("/bookings/:booking_id", h.Get)
	r.PATCH("/bookings/:booking_id", h.SetApproved)
}

// POST /bookings
func (h *Handler) Create(c *gin.Context) {
	userID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, apperr.ErrInvalid("invalid json: "+err.Error()))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.Header("Location", "/bookings/"+strconv.FormatInt(res.ID, 10))
	c.JSON(http.StatusOK, res)
}

// PATCH /bookings/:booking_id?approved=true|false
func (h *Handler) SetApproved(c *gin.Context) {
	id, err := httpx.PathID(c, "booking_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	userID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httpx.WriteError(c, apperr.ErrInvalid("approved must be true or false"))
		return
	}
	res, err := h.svc.SetApproved(c.Request.Context(), id, userID, approved)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := httpx.PathID(c, "booking_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	userID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	res, err := h.svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListByBooker(c *gin.Context) {
	h.list(c, h.svc.ListByBooker)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	h.list(c, h.svc.ListByOwner)
}

type listFunc func(ctx context.Context, userID int64, state State, page httpx.Page) ([]BookingResponse, error)

// GET /bookings?state=&from=&size=
func (h *Handler) list(c *gin.Context, fn listFunc) {
	userID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	// state の検証はユーザ確認の後（サービス側）
	state := State(c.Query("state"))
	page, err := httpx.ParsePage(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	res, err := fn(c.Request.Context(), userID, state, page)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
