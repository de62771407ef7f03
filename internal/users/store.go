package users

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/db"
)

type Store struct{ db *sqlx.DB }

func NewStore(conn *sqlx.DB) *Store { return &Store{db: conn} }

func (s *Store) Insert(ctx context.Context, u *User) error {
	const q = `INSERT INTO users (name, email) VALUES (?, ?)`
	id, err := db.InsertReturningID(ctx, s.db, q, u.Name, u.Email)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// GetByID は見つからなければ sql.ErrNoRows を返す
func (s *Store) GetByID(ctx context.Context, id int64) (*User, error) {
	const q = `SELECT id, name, email FROM users WHERE id = ?`
	var u User
	if err := sqlx.GetContext(ctx, s.db, &u, s.db.Rebind(q), id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) List(ctx context.Context) ([]User, error) {
	const q = `SELECT id, name, email FROM users ORDER BY id`
	list := []User{}
	if err := sqlx.SelectContext(ctx, s.db, &list, q); err != nil {
		return nil, err
	}
	return list, nil
}

// EmailTaken: exceptID 以外のユーザがそのメールを使っているか
func (s *Store) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	const q = `SELECT 1 FROM users WHERE email = ? AND id <> ? LIMIT 1`
	var one int
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(q), email, exceptID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) UpdateName(ctx context.Context, id int64, name string) (int64, error) {
	return s.exec(ctx, `UPDATE users SET name = ? WHERE id = ?`, name, id)
}

func (s *Store) UpdateEmail(ctx context.Context, id int64, email string) (int64, error) {
	return s.exec(ctx, `UPDATE users SET email = ? WHERE id = ?`, email, id)
}

func (s *Store) Update(ctx context.Context, u *User) (int64, error) {
	return s.exec(ctx, `UPDATE users SET name = ?, email = ? WHERE id = ?`, u.Name, u.Email, u.ID)
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	return s.exec(ctx, `DELETE FROM users WHERE id = ?`, id)
}

func (s *Store) exec(ctx context.Context, q string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(q), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
