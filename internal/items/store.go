package items

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/platform/search"
)

const itemColumns = `id, name, description, is_available, owner_id, request_id`

type Store struct{ db *sqlx.DB }

func NewStore(conn *sqlx.DB) *Store { return &Store{db: conn} }

func (s *Store) Insert(ctx context.Context, it *Item) error {
	const q = `INSERT INTO items (name, description, is_available, owner_id, request_id, search_key)
VALUES (?, ?, ?, ?, ?, ?)`
	id, err := db.InsertReturningID(ctx, s.db, q,
		it.Name, it.Description, it.Available, it.OwnerID, it.RequestID, search.Key(it.Name, it.Description))
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

// GetByID は見つからなければ sql.ErrNoRows を返す
func (s *Store) GetByID(ctx context.Context, id int64) (*Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	var it Item
	if err := sqlx.GetContext(ctx, s.db, &it, s.db.Rebind(q), id); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID int64) ([]Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = ? ORDER BY id`
	list := []Item{}
	if err := sqlx.SelectContext(ctx, s.db, &list, s.db.Rebind(q), ownerID); err != nil {
		return nil, err
	}
	return list, nil
}

// Search は search_key の部分一致。貸出可能なものだけ。
func (s *Store) Search(ctx context.Context, text string) ([]Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items
WHERE is_available = ? AND search_key LIKE ? ESCAPE '` + search.EscapeChar + `'
ORDER BY id`
	list := []Item{}
	if err := sqlx.SelectContext(ctx, s.db, &list, s.db.Rebind(q), true, search.LikePattern(text)); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) Update(ctx context.Context, it *Item) error {
	const q = `UPDATE items SET name = ?, description = ?, is_available = ?, search_key = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, s.db.Rebind(q),
		it.Name, it.Description, it.Available, search.Key(it.Name, it.Description), it.ID)
	return err
}

func (s *Store) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM items WHERE id = ? AND owner_id = ?`), id, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) UserName(ctx context.Context, userID int64) (string, error) {
	var name string
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`SELECT name FROM users WHERE id = ?`), userID).Scan(&name)
	return name, err
}

func (s *Store) UserExists(ctx context.Context, userID int64) (bool, error) {
	return s.exists(ctx, `SELECT 1 FROM users WHERE id = ?`, userID)
}

func (s *Store) RequestExists(ctx context.Context, requestID int64) (bool, error) {
	return s.exists(ctx, `SELECT 1 FROM requests WHERE id = ?`, requestID)
}

// HasFinishedBooking: 承認済みで now より前に終わった予約があるか
func (s *Store) HasFinishedBooking(ctx context.Context, itemID, userID int64, now time.Time) (bool, error) {
	return s.exists(ctx,
		`SELECT 1 FROM bookings WHERE item_id = ? AND booker_id = ? AND status = 'APPROVED' AND end_at < ? LIMIT 1`,
		itemID, userID, now)
}

// BookingsAround はアイテムごとの直前（now より前に終了）と直後（now より後に開始）の予約。
// 却下済みは除外し、該当が無いアイテムはマップに含まれない。
func (s *Store) BookingsAround(ctx context.Context, itemIDs []int64, now time.Time) (last, next map[int64]*BookingRef, err error) {
	last = make(map[int64]*BookingRef, len(itemIDs))
	next = make(map[int64]*BookingRef, len(itemIDs))
	if len(itemIDs) == 0 {
		return last, next, nil
	}
	q, args, err := sqlx.In(`SELECT id, item_id, booker_id, start_at, end_at FROM bookings
WHERE item_id IN (?) AND status <> 'REJECTED' AND (end_at < ? OR start_at > ?)`, itemIDs, now, now)
	if err != nil {
		return nil, nil, err
	}
	var rows []BookingRef
	if err := sqlx.SelectContext(ctx, s.db, &rows, s.db.Rebind(q), args...); err != nil {
		return nil, nil, err
	}
	for i := range rows {
		b := &rows[i]
		if b.End.Before(now) {
			if cur := last[b.ItemID]; cur == nil || b.End.After(cur.End) || (b.End.Equal(cur.End) && b.ID > cur.ID) {
				last[b.ItemID] = b
			}
			continue
		}
		if cur := next[b.ItemID]; cur == nil || b.Start.Before(cur.Start) || (b.Start.Equal(cur.Start) && b.ID < cur.ID) {
			next[b.ItemID] = b
		}
	}
	return last, next, nil
}

func (s *Store) InsertComment(ctx context.Context, c *Comment) error {
	const q = `INSERT INTO comments (body, item_id, author_id, created) VALUES (?, ?, ?, ?)`
	id, err := db.InsertReturningID(ctx, s.db, q, c.Text, c.ItemID, c.AuthorID, c.Created)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// CommentsByItems は item_id ごとにまとめたコメント（古い順）
func (s *Store) CommentsByItems(ctx context.Context, itemIDs []int64) (map[int64][]Comment, error) {
	out := make(map[int64][]Comment, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	q, args, err := sqlx.In(`SELECT c.id, c.item_id, c.author_id, u.name AS author_name, c.body, c.created
FROM comments c JOIN users u ON u.id = c.author_id
WHERE c.item_id IN (?)
ORDER BY c.created, c.id`, itemIDs)
	if err != nil {
		return nil, err
	}
	var rows []Comment
	if err := sqlx.SelectContext(ctx, s.db, &rows, s.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	for _, c := range rows {
		out[c.ItemID] = append(out[c.ItemID], c)
	}
	return out, nil
}

func (s *Store) exists(ctx context.Context, q string, args ...any) (bool, error) {
	var one int
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(q), args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
