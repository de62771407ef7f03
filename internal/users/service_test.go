package users

import (
	"context"
	"testing"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/testfixtures"
)

func ptr(s string) *string { return &s }

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testfixtures.NewTestDB(t))
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != created {
		t.Errorf("expected %+v, got %+v", created, got)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateUserRequest{Name: "Alice", Email: "same@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(ctx, CreateUserRequest{Name: "Bob", Email: "same@example.com"})
	if !apperr.Is(err, apperr.CodeConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestCreateInvalidEmail(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(context.Background(), CreateUserRequest{Name: "Alice", Email: "not-an-email"})
	if !apperr.Is(err, apperr.CodeInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Get(context.Background(), 42)
	if !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdatePaths(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, _ := svc.Create(ctx, CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	other, _ := svc.Create(ctx, CreateUserRequest{Name: "Bob", Email: "bob@example.com"})

	// Name only: email untouched.
	got, err := svc.Update(ctx, u.ID, UpdateUserRequest{Name: ptr("Alicia")})
	if err != nil {
		t.Fatalf("name-only update: %v", err)
	}
	if got.Name != "Alicia" || got.Email != "alice@example.com" {
		t.Errorf("unexpected result %+v", got)
	}

	// Email only.
	got, err = svc.Update(ctx, u.ID, UpdateUserRequest{Email: ptr("alicia@example.com")})
	if err != nil {
		t.Fatalf("email-only update: %v", err)
	}
	if got.Name != "Alicia" || got.Email != "alicia@example.com" {
		t.Errorf("unexpected result %+v", got)
	}

	// Both.
	got, err = svc.Update(ctx, u.ID, UpdateUserRequest{Name: ptr("A"), Email: ptr("a@example.com")})
	if err != nil {
		t.Fatalf("full update: %v", err)
	}
	stored, _ := svc.Get(ctx, u.ID)
	if stored != got || stored.Name != "A" || stored.Email != "a@example.com" {
		t.Errorf("stored %+v does not match returned %+v", stored, got)
	}

	// Email of another user.
	_, err = svc.Update(ctx, u.ID, UpdateUserRequest{Email: ptr(other.Email)})
	if !apperr.Is(err, apperr.CodeConflict) {
		t.Errorf("expected conflict, got %v", err)
	}

	// Keeping one's own email is not a conflict.
	if _, err := svc.Update(ctx, u.ID, UpdateUserRequest{Email: ptr("a@example.com")}); err != nil {
		t.Errorf("re-saving own email: %v", err)
	}

	// Invalid and empty email.
	for _, bad := range []string{"", "broken@", "x@y"} {
		_, err = svc.Update(ctx, u.ID, UpdateUserRequest{Email: ptr(bad)})
		if !apperr.Is(err, apperr.CodeInvalidArgument) {
			t.Errorf("email %q: expected invalid argument, got %v", bad, err)
		}
	}
}

func TestUpdateMissingUser(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Update(context.Background(), 7, UpdateUserRequest{Name: ptr("x")})
	if !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, _ := svc.Create(ctx, CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, u.ID); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %v", list)
	}
}

func TestValidEmail(t *testing.T) {
	good := []string{"user@example.com", "First.Last+tag@sub.domain.org", "X@Y.IO"}
	for _, e := range good {
		if !ValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}
	bad := []string{"", "user", "user@", "@example.com", "user@example.c", "user@example.toolongtld"}
	for _, e := range bad {
		if ValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}
