package items

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

	r.POST("/items", h.Create)
	r.GET("/items", h.ListByOwner)
	r.GET("/items/search", h.Search)
	r.GET("/items/:item_id", h.Get)
	r.PATCH("/items/:item_id", h.Update)
	r.DELETE("/items/:item_id", h.Delete)
	r.POST("/items/:item_id/comment", h.CreateComment)
}

// POST /items
func (h *Handler) Create(c *gin.Context) {
	sharerID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, apperr.ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), sharerID, req)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.Header("Location", "/items/"+strconv.FormatInt(res.ID, 10))
	c.JSON(http.StatusOK, res)
}

// GET /items/:item_id  ヘッダは任意（オーナーなら予約情報付き）
func (h *Handler) Get(c *gin.Context) {
	id, err := httpx.PathID(c, "item_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	sharerID, err := httpx.OptionalSharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id, sharerID)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	sharerID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	res, err := h.svc.ListByOwner(c.Request.Context(), sharerID)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Search(c *gin.Context) {
	res, err := h.svc.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := httpx.PathID(c, "item_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	sharerID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, apperr.ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.Update(c.Request.Context(), id, sharerID, req)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := httpx.PathID(c, "item_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	sharerID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, sharerID); err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// POST /items/:item_id/comment
func (h *Handler) CreateComment(c *gin.Context) {
	id, err := httpx.PathID(c, "item_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	sharerID, err := httpx.SharerID(c)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, apperr.ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.CreateComment(c.Request.Context(), sharerID, id, req)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
