package gateway

import "shareit-backend/internal/platform/jsontime"

// ゲートウェイ側の入力検証用。サーバへはボディをそのまま送る。

type userCreate struct {
	Name  string `json:"name" binding:"notblank"`
	Email string `json:"email" binding:"required,email"`
}

type userPatch struct {
	Name  *string `json:"name" binding:"omitempty,notblank"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type itemCreate struct {
	Name        string `json:"name" binding:"notblank"`
	Description string `json:"description" binding:"notblank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

type itemPatch struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type commentCreate struct {
	Text string `json:"text" binding:"notblank"`
}

type bookingCreate struct {
	ItemID int64              `json:"itemId" binding:"required,gt=0"`
	Start  *jsontime.DateTime `json:"start" binding:"required"`
	End    *jsontime.DateTime `json:"end" binding:"required"`
}

type requestCreate struct {
	Description string `json:"description" binding:"notblank"`
}
