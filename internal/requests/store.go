package requests

import (
	"context"
	"database/sql"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/platform/httpx"
)

const requestColumns = `id, description, requestor_id, created`

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

func (s *Store) Insert(ctx context.Context, r *ItemRequest) error {
	const q = `INSERT INTO requests (description, requestor_id, created) VALUES (?, ?, ?)`
	id, err := db.InsertReturningID(ctx, s.db, q, r.Description, r.RequestorID, r.Created)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// GetByID は見つからなければ sql.ErrNoRows を返す
func (s *Store) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	var r ItemRequest
	q := `SELECT ` + requestColumns + ` FROM requests WHERE id = ?`
	if err := sqlx.GetContext(ctx, s.db, &r, s.db.Rebind(q), id); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByRequestor: own=true なら本人の、false なら本人以外のリクエスト（新しい順）
func (s *Store) ListByRequestor(ctx context.Context, userID int64, own bool, p httpx.Page) ([]ItemRequest, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + requestColumns + ` FROM requests WHERE `)
	if own {
		sb.WriteString(`requestor_id = ?`)
	} else {
		sb.WriteString(`requestor_id <> ?`)
	}
	sb.WriteString(` ORDER BY created DESC, id DESC`)
	args := []any{userID}
	if p.Limit > 0 || p.Offset > 0 {
		limit := p.Limit
		if limit == 0 {
			limit = math.MaxInt32
		}
		sb.WriteString(` LIMIT ? OFFSET ?`)
		args = append(args, limit, p.Offset)
	}

	list := []ItemRequest{}
	if err := sqlx.SelectContext(ctx, s.db, &list, s.db.Rebind(sb.String()), args...); err != nil {
		return nil, err
	}
	return list, nil
}

// ItemsByRequests は request_id ごとにまとめた紐づきアイテム
func (s *Store) ItemsByRequests(ctx context.Context, requestIDs []int64) (map[int64][]LinkedItem, error) {
	out := make(map[int64][]LinkedItem, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}
	q, args, err := sqlx.In(`SELECT id, name, owner_id, request_id FROM items WHERE request_id IN (?) ORDER BY id`, requestIDs)
	if err != nil {
		return nil, err
	}
	var rows []LinkedItem
	if err := sqlx.SelectContext(ctx, s.db, &rows, s.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	for _, it := range rows {
		out[it.RequestID] = append(out[it.RequestID], it)
	}
	return out, nil
}
