package gateway

import (
	"log"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/clock"
	"shareit-backend/internal/platform/httpx"
)

// Handler は入力を検証してから server へ転送する
type Handler struct {
	client *Client
	clock  clock.Clock
}

func NewHandler(client *Client, clk clock.Clock) *Handler {
	if clk == nil {
		clk = clock.Real()
	}
	return &Handler{client: client, clock: clk}
}

func RegisterRoutes(r gin.IRoutes, h *Handler) {
	RegisterValidators()

	r.POST("/users", h.body(false, func() any { return &userCreate{} }))
	r.GET("/users", h.pass(false))
	r.GET("/users/:id", h.withID(false))
	r.PATCH("/users/:id", h.withIDBody(false, func() any { return &userPatch{} }))
	r.DELETE("/users/:id", h.withID(false))

	r.POST("/items", h.body(true, func() any { return &itemCreate{} }))
	r.GET("/items", h.pass(true))
	r.GET("/items/search", h.pass(false))
	r.GET("/items/:id", h.withID(false))
	r.PATCH("/items/:id", h.withIDBody(true, func() any { return &itemPatch{} }))
	r.DELETE("/items/:id", h.withID(true))
	r.POST("/items/:id/comment", h.withIDBody(true, func() any { return &commentCreate{} }))

	r.POST("/bookings", h.createBooking)
	r.GET("/bookings", h.listBookings)
	r.GET("/bookings/owner", h.listBookings)
	r.GET("/bookings/:id", h.withID(true))
	r.PATCH("/bookings/:id", h.approveBooking)

	r.POST("/requests", h.body(true, func() any { return &requestCreate{} }))
	r.GET("/requests", h.pass(true))
	r.GET("/requests/all", h.paged)
	r.GET("/requests/:id", h.withID(false))
}

// createBooking: 開始は現在以降、かつ終了より前
func (h *Handler) createBooking(c *gin.Context) {
	if !h.checkSharer(c, true) {
		return
	}
	raw, ok := h.readBody(c)
	if !ok {
		return
	}
	var in bookingCreate
	if err := bindBody(raw, &in); err != nil {
		httpx.WriteError(c, err)
		return
	}
	start, end := in.Start.Time, in.End.Time
	switch {
	case start.Before(h.clock.Now().Truncate(clock.Precision)):
		httpx.WriteError(c, apperr.ErrInvalid("start must be in the present or future"))
		return
	case !start.Before(end):
		httpx.WriteError(c, apperr.ErrInvalid("start must be before end"))
		return
	}
	log.Printf("[INFO] creating booking: item=%d", in.ItemID)
	h.client.Forward(c, raw)
}

// PATCH /bookings/:id?approved=
func (h *Handler) approveBooking(c *gin.Context) {
	if !h.checkSharer(c, true) || !checkID(c) {
		return
	}
	switch c.Query("approved") {
	case "true", "false":
	default:
		httpx.WriteError(c, apperr.ErrInvalid("approved must be true or false"))
		return
	}
	h.client.Forward(c, nil)
}

func (h *Handler) listBookings(c *gin.Context) {
	if !h.checkSharer(c, true) {
		return
	}
	if _, err := parseState(c.Query("state")); err != nil {
		httpx.WriteError(c, err)
		return
	}
	if _, err := httpx.ParsePage(c); err != nil {
		httpx.WriteError(c, err)
		return
	}
	h.client.Forward(c, nil)
}

func (h *Handler) paged(c *gin.Context) {
	if !h.checkSharer(c, true) {
		return
	}
	if _, err := httpx.ParsePage(c); err != nil {
		httpx.WriteError(c, err)
		return
	}
	h.client.Forward(c, nil)
}

// pass はヘッダだけ検証して転送
func (h *Handler) pass(sharer bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.checkSharer(c, sharer) {
			return
		}
		h.client.Forward(c, nil)
	}
}

func (h *Handler) withID(sharer bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.checkSharer(c, sharer) || !checkID(c) {
			return
		}
		h.client.Forward(c, nil)
	}
}

// body の newDTO はバインド先を毎回新しく作る
func (h *Handler) body(sharer bool, newDTO func() any) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.checkSharer(c, sharer) {
			return
		}
		h.forwardBody(c, newDTO())
	}
}

func (h *Handler) withIDBody(sharer bool, newDTO func() any) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.checkSharer(c, sharer) || !checkID(c) {
			return
		}
		h.forwardBody(c, newDTO())
	}
}

func (h *Handler) forwardBody(c *gin.Context, dto any) {
	raw, ok := h.readBody(c)
	if !ok {
		return
	}
	if err := bindBody(raw, dto); err != nil {
		httpx.WriteError(c, err)
		return
	}
	h.client.Forward(c, raw)
}

func (h *Handler) readBody(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		httpx.WriteError(c, apperr.ErrInvalid("reading body: "+err.Error()))
		return nil, false
	}
	return raw, true
}

// checkSharer: required=false でも値があれば形式は確認する
func (h *Handler) checkSharer(c *gin.Context, required bool) bool {
	var err error
	if required {
		_, err = httpx.SharerID(c)
	} else {
		_, err = httpx.OptionalSharerID(c)
	}
	if err != nil {
		httpx.WriteError(c, err)
		return false
	}
	return true
}

func checkID(c *gin.Context) bool {
	if _, err := httpx.PathID(c, "id"); err != nil {
		httpx.WriteError(c, err)
		return false
	}
	return true
}
