package items

import (
	"database/sql"
	"time"

	"shareit-backend/internal/platform/jsontime"
)

// Item は items テーブルの1行を表す
type Item struct {
	ID          int64         `db:"id"`
	Name        string        `db:"name"`
	Description string        `db:"description"`
	Available   bool          `db:"is_available"`
	OwnerID     int64         `db:"owner_id"`
	RequestID   sql.NullInt64 `db:"request_id"`
}

// Comment は comments と作者名の結合結果
type Comment struct {
	ID         int64     `db:"id"`
	ItemID     int64     `db:"item_id"`
	AuthorID   int64     `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Text       string    `db:"body"`
	Created    time.Time `db:"created"`
}

// BookingRef はアイテムの直前・直後の予約
type BookingRef struct {
	ID       int64     `db:"id"`
	ItemID   int64     `db:"item_id"`
	BookerID int64     `db:"booker_id"`
	Start    time.Time `db:"start_at"`
	End      time.Time `db:"end_at"`
}

func (i Item) toDTO() ItemResponse {
	resp := ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		Comments:    []CommentResponse{},
	}
	if i.RequestID.Valid {
		v := i.RequestID.Int64
		resp.RequestID = &v
	}
	return resp
}

func (c Comment) toDTO() CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    jsontime.From(c.Created),
	}
}

func (b *BookingRef) toDTO() *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    jsontime.From(b.Start),
		End:      jsontime.From(b.End),
	}
}
