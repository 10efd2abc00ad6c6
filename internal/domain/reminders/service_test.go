package reminders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Reminder
}

func newTestRepo() *testRepo {
	return &testRepo{items: []Reminder{}}
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]Reminder, error) {
	out := make([]Reminder, 0)
	for _, it := range r.items {
		if strings.EqualFold(it.OwnerEmail, ownerEmail) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Reminder, bool, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return Reminder{}, false, nil
}

func (r *testRepo) Create(ctx context.Context, rem Reminder) error {
	r.items = append(r.items, rem)
	return nil
}

func (r *testRepo) Update(ctx context.Context, rem Reminder) (bool, error) {
	for i, it := range r.items {
		if it.ID == rem.ID {
			r.items[i] = rem
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) (bool, error) {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	n := 0
	svc.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Millisecond)
	}
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestCreate_RequiresDateAndText(t *testing.T) {
	svc := newTestService(newTestRepo())
	ctx := context.Background()

	cases := []Input{
		{Date: "2025-07-01"},                 // sin texto
		{Text: "vacuna"},                     // sin fecha
		{Date: "   ", Text: "vacuna"},        // fecha en blanco
		{PetName: "Rex", Date: "2025-07-01"}, // texto vacío igual falla
	}
	for _, in := range cases {
		if _, err := svc.Create(ctx, "owner1@example.com", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Create(%+v): expected ErrInvalidInput, got %v", in, err)
		}
	}

	rem, err := svc.Create(ctx, "Owner1@Example.com", Input{PetName: " Rex ", Date: "2025-07-01", Text: " vacuna "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rem.OwnerEmail != "owner1@example.com" {
		t.Fatalf("expected normalized owner email, got %q", rem.OwnerEmail)
	}
	if rem.PetName != "Rex" || rem.Text != "vacuna" {
		t.Fatalf("expected trimmed fields, got %+v", rem)
	}
	if rem.ID == 0 {
		t.Fatalf("expected time-based id, got 0")
	}
}

func TestUpdate_KeepsIDAndOwner(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	rem, err := svc.Create(ctx, "owner1@example.com", Input{Date: "2025-07-01", Text: "vacuna"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(ctx, "owner1@example.com", rem.ID, Input{Date: "2025-08-01", Text: "refuerzo"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ID != rem.ID || got.OwnerEmail != "owner1@example.com" {
		t.Fatalf("id/owner changed: %+v", got)
	}
	if got.Date != "2025-08-01" || got.Text != "refuerzo" {
		t.Fatalf("fields not replaced: %+v", got)
	}

	if _, err := svc.Update(ctx, "owner1@example.com", 99999, Input{Date: "x", Text: "y"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
	if _, err := svc.Update(ctx, "other@example.com", rem.ID, Input{Date: "x", Text: "y"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign reminder, got %v", err)
	}
}

func TestDelete_MissingIsNoOp(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	rem, err := svc.Create(ctx, "owner1@example.com", Input{Date: "2025-07-01", Text: "vacuna"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "owner1@example.com", 99999); err != nil {
		t.Fatalf("delete of unknown id should be a no-op, got %v", err)
	}
	if err := svc.Delete(ctx, "other@example.com", rem.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden deleting foreign reminder, got %v", err)
	}
	if err := svc.Delete(ctx, "owner1@example.com", rem.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	left, err := svc.ListByOwner(ctx, "owner1@example.com")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", left)
	}
}
