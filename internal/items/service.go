package items

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

func (s *Service) Create(ctx context.Context, sharerID int64, in CreateItemRequest) (ItemResponse, error) {
	if err := s.requireUser(ctx, sharerID); err != nil {
		return ItemResponse{}, err
	}
	if in.Available == nil {
		return ItemResponse{}, apperr.ErrInvalid("available must be set")
	}
	name := strings.TrimSpace(in.Name)
	desc := strings.TrimSpace(in.Description)
	if name == "" || desc == "" {
		return ItemResponse{}, apperr.ErrInvalid("name and description must not be blank")
	}

	it := Item{Name: in.Name, Description: in.Description, Available: *in.Available, OwnerID: sharerID}
	if in.RequestID != nil {
		ok, err := s.store.RequestExists(ctx, *in.RequestID)
		if err != nil {
			return ItemResponse{}, err
		}
		if !ok {
			return ItemResponse{}, apperr.ErrNotFound(fmt.Sprintf("request with id = %d not found", *in.RequestID))
		}
		it.RequestID = sql.NullInt64{Int64: *in.RequestID, Valid: true}
	}

	if err := s.store.Insert(ctx, &it); err != nil {
		if db.IsForeignKeyViolation(err) {
			// 検証後に利用者かリクエストが消えた
			return ItemResponse{}, apperr.ErrNotFound("owner or request no longer exists")
		}
		return ItemResponse{}, err
	}
	log.Printf("[INFO] item created: id=%d owner=%d", it.ID, sharerID)
	return it.toDTO(), nil
}

// Get: 予約情報はオーナーが見るときだけ付ける
func (s *Service) Get(ctx context.Context, itemID, sharerID int64) (ItemResponse, error) {
	it, err := s.load(ctx, itemID)
	if err != nil {
		return ItemResponse{}, err
	}
	out, err := s.assemble(ctx, []Item{*it}, it.OwnerID == sharerID)
	if err != nil {
		return ItemResponse{}, err
	}
	return out[0], nil
}

func (s *Service) ListByOwner(ctx context.Context, sharerID int64) ([]ItemResponse, error) {
	if err := s.requireUser(ctx, sharerID); err != nil {
		return nil, err
	}
	list, err := s.store.ListByOwner(ctx, sharerID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, list, true)
}

func (s *Service) Update(ctx context.Context, itemID, sharerID int64, in UpdateItemRequest) (ItemResponse, error) {
	it, err := s.owned(ctx, itemID, sharerID)
	if err != nil {
		return ItemResponse{}, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return ItemResponse{}, apperr.ErrInvalid("name must not be blank")
		}
		it.Name = *in.Name
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return ItemResponse{}, apperr.ErrInvalid("description must not be blank")
		}
		it.Description = *in.Description
	}
	if in.Available != nil {
		it.Available = *in.Available
	}
	if err := s.store.Update(ctx, it); err != nil {
		return ItemResponse{}, err
	}
	log.Printf("[INFO] item updated: id=%d", itemID)
	return it.toDTO(), nil
}

func (s *Service) Delete(ctx context.Context, itemID, sharerID int64) error {
	n, err := s.store.Delete(ctx, itemID, sharerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(itemID)
	}
	log.Printf("[INFO] item deleted: id=%d", itemID)
	return nil
}

// Search: 空文字は常に空リスト
func (s *Service) Search(ctx context.Context, text string) ([]ItemResponse, error) {
	if text == "" {
		return []ItemResponse{}, nil
	}
	list, err := s.store.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, it.toDTO())
	}
	return out, nil
}

// CreateComment は承認済みの予約を終えた利用者だけが書ける
func (s *Service) CreateComment(ctx context.Context, sharerID, itemID int64, in CreateCommentRequest) (CommentResponse, error) {
	if strings.TrimSpace(in.Text) == "" {
		return CommentResponse{}, apperr.ErrInvalid("text must not be blank")
	}
	author, err := s.store.UserName(ctx, sharerID)
	if errors.Is(err, sql.ErrNoRows) {
		return CommentResponse{}, userNotFound(sharerID)
	}
	if err != nil {
		return CommentResponse{}, err
	}
	if _, err := s.load(ctx, itemID); err != nil {
		return CommentResponse{}, err
	}

	now := s.clock.Now()
	ok, err := s.store.HasFinishedBooking(ctx, itemID, sharerID, now)
	if err != nil {
		return CommentResponse{}, err
	}
	if !ok {
		return CommentResponse{}, apperr.ErrNoItemBookings(
			fmt.Sprintf("user %d has no finished bookings of item %d", sharerID, itemID))
	}

	cm := Comment{ItemID: itemID, AuthorID: sharerID, AuthorName: author, Text: in.Text, Created: now}
	if err := s.store.InsertComment(ctx, &cm); err != nil {
		if db.IsForeignKeyViolation(err) {
			return CommentResponse{}, notFound(itemID)
		}
		return CommentResponse{}, err
	}
	log.Printf("[INFO] comment created: id=%d item=%d", cm.ID, itemID)
	return cm.toDTO(), nil
}

// assemble はコメントと（必要なら）直前・直後の予約をまとめて付与する
func (s *Service) assemble(ctx context.Context, list []Item, withBookings bool) ([]ItemResponse, error) {
	ids := make([]int64, 0, len(list))
	for _, it := range list {
		ids = append(ids, it.ID)
	}
	comments, err := s.store.CommentsByItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	var last, next map[int64]*BookingRef
	if withBookings {
		last, next, err = s.store.BookingsAround(ctx, ids, s.clock.Now())
		if err != nil {
			return nil, err
		}
	}
	out := make([]ItemResponse, 0, len(list))
	for _, it := range list {
		resp := it.toDTO()
		for _, c := range comments[it.ID] {
			resp.Comments = append(resp.Comments, c.toDTO())
		}
		// 予約情報を付けない場合マップは nil で、nil が返る
		resp.LastBooking = last[it.ID].toDTO()
		resp.NextBooking = next[it.ID].toDTO()
		out = append(out, resp)
	}
	return out, nil
}

func (s *Service) load(ctx context.Context, id int64) (*Item, error) {
	it, err := s.store.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	return it, err
}

// owned: 他人のアイテムは存在しないものとして扱う
func (s *Service) owned(ctx context.Context, itemID, sharerID int64) (*Item, error) {
	it, err := s.load(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != sharerID {
		return nil, notFound(itemID)
	}
	return it, nil
}

func (s *Service) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return userNotFound(userID)
	}
	return nil
}

func notFound(id int64) error {
	return apperr.ErrNotFound(fmt.Sprintf("item with id = %d not found", id))
}

func userNotFound(id int64) error {
	return apperr.ErrNotFound(fmt.Sprintf("user with id = %d not found", id))
}
