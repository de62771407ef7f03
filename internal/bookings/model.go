package bookings

import (
	"strings"
	"time"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/jsontime"
)

// Status は保存される予約の状態
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// State は一覧取得時の絞り込み条件
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState は大文字小文字を区別しない。空文字は ALL。
func ParseState(s string) (State, error) {
	if strings.TrimSpace(s) == "" {
		return StateAll, nil
	}
	switch st := State(strings.ToUpper(strings.TrimSpace(s))); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, nil
	}
	return "", apperr.ErrInvalid("Unknown state: " + s)
}

type Booking struct {
	ID       int64     `db:"id"`
	Start    time.Time `db:"start_at"`
	End      time.Time `db:"end_at"`
	ItemID   int64     `db:"item_id"`
	ItemName string    `db:"item_name"`
	BookerID int64     `db:"booker_id"`
	OwnerID  int64     `db:"owner_id"`
	Status   Status    `db:"status"`
}

// itemRef は予約対象アイテムの最小限の情報
type itemRef struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	OwnerID   int64  `db:"owner_id"`
	Available bool   `db:"is_available"`
}

func (b Booking) toDTO() BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  jsontime.From(b.Start),
		End:    jsontime.From(b.End),
		Status: b.Status,
		Booker: BookerRef{ID: b.BookerID},
		Item:   ItemRef{ID: b.ItemID, Name: b.ItemName},
	}
}
