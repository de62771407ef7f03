package requests

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/requests", h.Create)
	r.GET("/requests", h.ListOwn)
	r.GET("/requests/all", h.ListOthers)
	r.GET("/requests/:request_id", h.Get)
}

// POST /requests
func (h *Handler) Create(c *gin.Context) {
	userID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, apperr.ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.Header("Location", "/requests/"+strconv.FormatInt(res.ID, 10))
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListOwn(c *gin.Context) {
	userID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	res, err := h.svc.ListOwn(c.Request.Context(), userID)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /requests/all?from=&size=
func (h *Handler) ListOthers(c *gin.Context) {
	userID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	page, err := httpx.ParsePage(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	res, err := h.svc.ListOthers(c.Request.Context(), userID, page)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := httpx.PathID(c, "request_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
