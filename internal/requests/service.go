package requests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/clock"
	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/platform/httpx"
)

type Service struct {
	store *Store
	clock clock.Clock
}

func NewService(conn *sqlx.DB, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.Real()
	}
	return &Service{store: NewStore(conn), clock: clk}
}

func (s *Service) Create(ctx context.Context, userID int64, in CreateRequestRequest) (RequestResponse, error) {
	if err := s.requireUser(ctx, userID, apperr.ErrNotFound); err != nil {
		return RequestResponse{}, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return RequestResponse{}, apperr.ErrInvalid("description must not be blank")
	}
	r := ItemRequest{Description: in.Description, RequestorID: userID, Created: s.clock.Now()}
	if err := s.store.Insert(ctx, &r); err != nil {
		if db.IsForeignKeyViolation(err) {
			return RequestResponse{}, apperr.ErrNotFound(fmt.Sprintf("user with id = %d not found", userID))
		}
		return RequestResponse{}, err
	}
	log.Printf("[INFO] item request created: id=%d requestor=%d", r.ID, userID)
	return r.toDTO(nil), nil
}

func (s *Service) ListOwn(ctx context.Context, userID int64) ([]RequestResponse, error) {
	return s.list(ctx, userID, true, httpx.Page{})
}

func (s *Service) ListOthers(ctx context.Context, userID int64, page httpx.Page) ([]RequestResponse, error) {
	return s.list(ctx, userID, false, page)
}

func (s *Service) Get(ctx context.Context, requestID int64) (RequestResponse, error) {
	r, err := s.store.GetByID(ctx, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return RequestResponse{}, apperr.ErrNotFound(fmt.Sprintf("request with id = %d not found", requestID))
	}
	if err != nil {
		return RequestResponse{}, err
	}
	items, err := s.store.ItemsByRequests(ctx, []int64{r.ID})
	if err != nil {
		return RequestResponse{}, err
	}
	return r.toDTO(items[r.ID]), nil
}

func (s *Service) list(ctx context.Context, userID int64, own bool, page httpx.Page) ([]RequestResponse, error) {
	if err := s.requireUser(ctx, userID, apperr.ErrWrongUser); err != nil {
		return nil, err
	}
	list, err := s.store.ListByRequestor(ctx, userID, own, page)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	items, err := s.store.ItemsByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]RequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, r.toDTO(items[r.ID]))
	}
	return out, nil
}

func (s *Service) requireUser(ctx context.Context, userID int64, mkErr func(string) *apperr.APIError) error {
	ok, err := s.store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return mkErr(fmt.Sprintf("user with id = %d not found", userID))
	}
	return nil
}
