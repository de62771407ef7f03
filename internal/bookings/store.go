package bookings

import (
	"context"
	"database/sql"
	"math"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/platform/httpx"
)

const selectBooking = `SELECT b.id, b.start_at, b.end_at, b.item_id, i.name AS item_name, b.booker_id, i.owner_id, b.status
FROM bookings b JOIN items i ON i.id = b.item_id`

type Store struct{ db *sqlx.DB }

func NewStore(conn *sqlx.DB) *Store { return &Store{db: conn} }

func (s *Store) UserExists(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`SELECT 1 FROM users WHERE id = ?`), userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetItem は見つからなければ sql.ErrNoRows を返す
func (s *Store) GetItem(ctx context.Context, itemID int64) (*itemRef, error) {
	const q = `SELECT id, name, owner_id, is_available FROM items WHERE id = ?`
	var it itemRef
	if err := sqlx.GetContext(ctx, s.db, &it, s.db.Rebind(q), itemID); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *Store) Insert(ctx context.Context, b *Booking) error {
	const q = `INSERT INTO bookings (start_at, end_at, item_id, booker_id, status) VALUES (?, ?, ?, ?, ?)`
	id, err := db.InsertReturningID(ctx, s.db, q, b.Start, b.End, b.ItemID, b.BookerID, b.Status)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// GetByID は Tx 内でも使えるよう ext を受け取る。見つからなければ sql.ErrNoRows。
func (s *Store) GetByID(ctx context.Context, ext db.DBTX, id int64) (*Booking, error) {
	var b Booking
	if err := sqlx.GetContext(ctx, ext, &b, ext.Rebind(selectBooking+` WHERE b.id = ?`), id); err != nil {
		return nil, err
	}
	return &b, nil
}

// Decide は WAITING のときだけ状態を書き換える。更新件数を返す。
func (s *Store) Decide(ctx context.Context, tx db.DBTX, id int64, status Status) (int64, error) {
	const q = `UPDATE bookings SET status = ? WHERE id = ? AND status = ?`
	res, err := tx.ExecContext(ctx, tx.Rebind(q), status, id, StatusWaiting)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type ListFilter struct {
	BookerID int64 // どちらか一方を指定
	OwnerID  int64
	State    State
	Now      time.Time
	Page     httpx.Page
}

// List は終了日時の新しい順
func (s *Store) List(ctx context.Context, f ListFilter) ([]Booking, error) {
	var sb strings.Builder
	sb.WriteString(selectBooking)
	sb.WriteString(` WHERE 1=1`)
	args := []any{}

	if f.BookerID != 0 {
		sb.WriteString(` AND b.booker_id = ?`)
		args = append(args, f.BookerID)
	}
	if f.OwnerID != 0 {
		sb.WriteString(` AND i.owner_id = ?`)
		args = append(args, f.OwnerID)
	}

	switch f.State {
	case StatePast:
		sb.WriteString(` AND b.end_at < ?`)
		args = append(args, f.Now)
	case StateFuture:
		sb.WriteString(` AND b.start_at > ?`)
		args = append(args, f.Now)
	case StateCurrent:
		sb.WriteString(` AND b.start_at <= ? AND b.end_at >= ?`)
		args = append(args, f.Now, f.Now)
	case StateWaiting:
		sb.WriteString(` AND b.status = ?`)
		args = append(args, StatusWaiting)
	case StateRejected:
		sb.WriteString(` AND b.status = ?`)
		args = append(args, StatusRejected)
	}

	sb.WriteString(` ORDER BY b.end_at DESC, b.id DESC`)
	if f.Page.Limit > 0 || f.Page.Offset > 0 {
		limit := f.Page.Limit
		if limit == 0 {
			limit = math.MaxInt32
		}
		sb.WriteString(` LIMIT ? OFFSET ?`)
		args = append(args, limit, f.Page.Offset)
	}

	list := []Booking{}
	if err := sqlx.SelectContext(ctx, s.db, &list, s.db.Rebind(sb.String()), args...); err != nil {
		return nil, err
	}
	return list, nil
}
