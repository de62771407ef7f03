package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/db"
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}$`)

func ValidEmail(email string) bool {
	return email != "" && emailPattern.MatchString(email)
}

type Service struct {
	store *Store
}

func NewService(conn *sqlx.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func (s *Service) Create(ctx context.Context, in CreateUserRequest) (UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return UserResponse{}, apperr.ErrInvalid("name must not be blank")
	}
	if !ValidEmail(in.Email) {
		return UserResponse{}, apperr.ErrInvalid("invalid email: " + in.Email)
	}
	taken, err := s.store.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return UserResponse{}, err
	}
	if taken {
		return UserResponse{}, emailTaken(in.Email)
	}

	u := User{Name: name, Email: in.Email}
	if err := s.store.Insert(ctx, &u); err != nil {
		if db.IsDuplicateKey(err) {
			return UserResponse{}, emailTaken(in.Email)
		}
		return UserResponse{}, err
	}
	log.Printf("[INFO] user created: id=%d", u.ID)
	return u.toDTO(), nil
}

func (s *Service) Get(ctx context.Context, id int64) (UserResponse, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return u.toDTO(), nil
}

func (s *Service) List(ctx context.Context) ([]UserResponse, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, u.toDTO())
	}
	return out, nil
}

// Update は部分更新。
// メールのみ → 形式と重複を検証して email だけ更新、名前のみ → 検証なしで name だけ更新、
// 両方 → 検証の上でまとめて保存。
func (s *Service) Update(ctx context.Context, id int64, in UpdateUserRequest) (UserResponse, error) {
	cur, err := s.load(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	switch {
	case in.Email == nil && in.Name == nil:
		return cur.toDTO(), nil

	case in.Email == nil:
		if _, err := s.store.UpdateName(ctx, id, *in.Name); err != nil {
			return UserResponse{}, err
		}
		cur.Name = *in.Name
		log.Printf("[INFO] user name updated: id=%d", id)
		return cur.toDTO(), nil
	}

	if err := s.checkEmail(ctx, id, *in.Email); err != nil {
		return UserResponse{}, err
	}

	if in.Name == nil {
		_, err = s.store.UpdateEmail(ctx, id, *in.Email)
	} else {
		cur.Name = *in.Name
		cur.Email = *in.Email
		_, err = s.store.Update(ctx, cur)
	}
	if err != nil {
		if db.IsDuplicateKey(err) {
			return UserResponse{}, emailTaken(*in.Email)
		}
		return UserResponse{}, err
	}
	cur.Email = *in.Email
	log.Printf("[INFO] user updated: id=%d", id)
	return cur.toDTO(), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(id)
	}
	log.Printf("[INFO] user deleted: id=%d", id)
	return nil
}

func (s *Service) load(ctx context.Context, id int64) (*User, error) {
	u, err := s.store.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	return u, err
}

func (s *Service) checkEmail(ctx context.Context, id int64, email string) error {
	if !ValidEmail(email) {
		return apperr.ErrInvalid("invalid email: " + email)
	}
	taken, err := s.store.EmailTaken(ctx, email, id)
	if err != nil {
		return err
	}
	if taken {
		return emailTaken(email)
	}
	return nil
}

func notFound(id int64) error {
	return apperr.ErrNotFound(fmt.Sprintf("user with id = %d not found", id))
}

func emailTaken(email string) error {
	return apperr.ErrConflict("email " + email + " is already taken")
}
