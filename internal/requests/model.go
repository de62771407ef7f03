package requests

import (
	"time"

	"shareit-backend/internal/platform/jsontime"
)

type ItemRequest struct {
	ID          int64     `db:"id"`
	Description string    `db:"description"`
	RequestorID int64     `db:"requestor_id"`
	Created     time.Time `db:"created"`
}

// LinkedItem はリクエストに応えて登録されたアイテム
type LinkedItem struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	OwnerID   int64  `db:"owner_id"`
	RequestID int64  `db:"request_id"`
}

func (r ItemRequest) toDTO(items []LinkedItem) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		Created:     jsontime.From(r.Created),
		Items:       make([]ItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, ItemResponse{ID: it.ID, Name: it.Name, OwnerID: it.OwnerID})
	}
	return resp
}
