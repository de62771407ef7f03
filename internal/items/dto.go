package items

import "shareit-backend/internal/platform/jsontime"

// ===== Requests =====

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// 必須。nil は「未指定」として弾く
	Available *bool  `json:"available"`
	RequestID *int64 `json:"requestId,omitempty"`
}

// 部分更新。nil のフィールドは現行値を維持
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// ===== Responses =====

type ItemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     int64             `json:"ownerId"`
	RequestID   *int64            `json:"requestId,omitempty"`
	LastBooking *BookingShort     `json:"lastBooking"`
	NextBooking *BookingShort     `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

type BookingShort struct {
	ID       int64             `json:"id"`
	BookerID int64             `json:"bookerId"`
	Start    jsontime.DateTime `json:"start"`
	End      jsontime.DateTime `json:"end"`
}

type CommentResponse struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    jsontime.DateTime `json:"created"`
}
