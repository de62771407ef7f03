package bookings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/clock"
	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/platform/httpx"
)

type Service struct {
	db    *sqlx.DB
	store *Store
	clock clock.Clock
}

func NewService(conn *sqlx.DB, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.Real()
	}
	return &Service{db: conn, store: NewStore(conn), clock: clk}
}

// Create は WAITING で登録する。同じアイテムへの重複予約は許容。
func (s *Service) Create(ctx context.Context, userID int64, in CreateBookingRequest) (BookingResponse, error) {
	if err := s.requireUser(ctx, userID, apperr.ErrNotFound); err != nil {
		return BookingResponse{}, err
	}
	if in.Start == nil || in.End == nil || in.Start.IsZero() || in.End.IsZero() {
		return BookingResponse{}, apperr.ErrInvalid("start and end must be set")
	}
	start := in.Start.UTC().Truncate(clock.Precision)
	end := in.End.UTC().Truncate(clock.Precision)
	now := s.clock.Now()
	switch {
	case start.Equal(end):
		return BookingResponse{}, apperr.ErrInvalid("start and end must differ")
	case start.After(end):
		return BookingResponse{}, apperr.ErrInvalid("start must be before end")
	case start.Before(now):
		return BookingResponse{}, apperr.ErrInvalid("start must not be in the past")
	}

	it, err := s.store.GetItem(ctx, in.ItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return BookingResponse{}, itemNotFound(in.ItemID)
	}
	if err != nil {
		return BookingResponse{}, err
	}
	if !it.Available {
		return BookingResponse{}, apperr.ErrUnavailableItem(fmt.Sprintf("item %d is not available", it.ID))
	}

	b := Booking{
		Start:    start,
		End:      end,
		ItemID:   it.ID,
		ItemName: it.Name,
		BookerID: userID,
		OwnerID:  it.OwnerID,
		Status:   StatusWaiting,
	}
	if err := s.store.Insert(ctx, &b); err != nil {
		if db.IsForeignKeyViolation(err) {
			return BookingResponse{}, itemNotFound(in.ItemID)
		}
		return BookingResponse{}, err
	}
	log.Printf("[INFO] booking created: id=%d item=%d booker=%d", b.ID, b.ItemID, userID)
	return b.toDTO(), nil
}

// SetApproved はオーナーによる承認/却下。
// 同じ判断の繰り返しはそのまま返し、決定済みの予約を覆すことはできない。
func (s *Service) SetApproved(ctx context.Context, bookingID, userID int64, approved bool) (BookingResponse, error) {
	if err := s.requireUser(ctx, userID, apperr.ErrWrongUser); err != nil {
		return BookingResponse{}, err
	}
	next := StatusRejected
	if approved {
		next = StatusApproved
	}

	var out Booking
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		b, err := s.store.GetByID(ctx, tx, bookingID)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(bookingID)
		}
		if err != nil {
			return err
		}
		if b.OwnerID != userID {
			return apperr.ErrApproveByWrongUser(
				fmt.Sprintf("user %d is not the owner of item %d", userID, b.ItemID))
		}
		switch b.Status {
		case next:
			out = *b
			return nil
		case StatusWaiting:
		default:
			return apperr.ErrInvalid(fmt.Sprintf("booking %d is already %s", bookingID, b.Status))
		}

		n, err := s.store.Decide(ctx, tx, bookingID, next)
		if err != nil {
			return err
		}
		if n == 0 {
			// 並行して別の判断が先に確定した
			return apperr.ErrInvalid(fmt.Sprintf("booking %d is no longer waiting", bookingID))
		}
		b.Status = next
		out = *b
		return nil
	})
	if err != nil {
		return BookingResponse{}, err
	}
	log.Printf("[INFO] booking %d set to %s by user %d", bookingID, out.Status, userID)
	return out.toDTO(), nil
}

func (s *Service) Get(ctx context.Context, userID, bookingID int64) (BookingResponse, error) {
	if err := s.requireUser(ctx, userID, apperr.ErrNotFound); err != nil {
		return BookingResponse{}, err
	}
	b, err := s.store.GetByID(ctx, s.db, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return BookingResponse{}, notFound(bookingID)
	}
	if err != nil {
		return BookingResponse{}, err
	}
	return b.toDTO(), nil
}

func (s *Service) ListByBooker(ctx context.Context, userID int64, state State, page httpx.Page) ([]BookingResponse, error) {
	return s.list(ctx, userID, ListFilter{BookerID: userID, State: state, Page: page})
}

func (s *Service) ListByOwner(ctx context.Context, userID int64, state State, page httpx.Page) ([]BookingResponse, error) {
	return s.list(ctx, userID, ListFilter{OwnerID: userID, State: state, Page: page})
}

func (s *Service) list(ctx context.Context, userID int64, f ListFilter) ([]BookingResponse, error) {
	if err := s.requireUser(ctx, userID, apperr.ErrWrongUser); err != nil {
		return nil, err
	}
	st, err := ParseState(string(f.State))
	if err != nil {
		return nil, err
	}
	f.State = st
	f.Now = s.clock.Now()

	list, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, b.toDTO())
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

func notFound(id int64) error {
	return apperr.ErrNotFound(fmt.Sprintf("booking with id = %d not found", id))
}

func itemNotFound(id int64) error {
	return apperr.ErrNotFound(fmt.Sprintf("item with id = %d not found", id))
}
