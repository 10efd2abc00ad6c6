package appointments

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Appointment
}

func newTestRepo() *testRepo {
	return &testRepo{items: []Appointment{}}
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.items {
		if a.OwnerEmail == ownerEmail {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Appointment, error) {
	out := make([]Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Appointment, bool, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, true, nil
		}
	}
	return Appointment{}, false, nil
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	r.items = append(r.items, a)
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) (bool, error) {
	for i := range r.items {
		if r.items[i].ID == a.ID {
			r.items[i] = a
			return true, nil
		}
	}
	return false, nil
}

// -------------------------
// Tests
// -------------------------

func book(t *testing.T, svc *Service, owner string) Appointment {
	t.Helper()
	a, err := svc.Book(context.Background(), owner, "Owner", BookInput{
		PetName: "Rex", Date: "2025-06-01", Reason: "checkup",
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	return a
}

func TestService_Book_StartsPending(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a := book(t, svc, "owner1@example.com")
	if a.Status != StatusPending {
		t.Fatalf("expected Pending, got %s", a.Status)
	}
	if a.ID != now.UnixMilli() {
		t.Fatalf("expected time-based id %d, got %d", now.UnixMilli(), a.ID)
	}
}

func TestService_SetStatus_TransitionsOnlyFromPending(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a := book(t, svc, "owner1@example.com")

	confirmed, err := svc.SetStatus(context.Background(), a.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("SetStatus to Confirmed error: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Fatalf("expected Confirmed, got %s", confirmed.Status)
	}

	// Estado terminal: la segunda transición no toca el registro.
	again, err := svc.SetStatus(context.Background(), a.ID, StatusRejected)
	if !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending on terminal state, got %v", err)
	}
	if again.Status != StatusConfirmed {
		t.Fatalf("terminal status must stay Confirmed, got %s", again.Status)
	}

	stored, _, _ := repo.GetByID(context.Background(), a.ID)
	if stored.Status != StatusConfirmed {
		t.Fatalf("stored status changed, got %s", stored.Status)
	}
}

func TestService_SetStatus_RejectsUnknownTarget(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a := book(t, svc, "owner1@example.com")

	if _, err := svc.SetStatus(context.Background(), a.ID, Status("Archived")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	// Completed es un estado válido del dato pero nunca un destino.
	if _, err := svc.SetStatus(context.Background(), a.ID, StatusCompleted); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for Completed, got %v", err)
	}
}

func TestService_SetStatus_UnknownID(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.SetStatus(context.Background(), 12345, StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SetStatus_OthersUnaffected(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	// ids distintos vía reloj inyectado
	base := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	a1 := book(t, svc, "owner1@example.com")
	svc.now = func() time.Time { return base.Add(time.Second) }
	a2 := book(t, svc, "owner1@example.com")

	if _, err := svc.SetStatus(context.Background(), a1.ID, StatusConfirmed); err != nil {
		t.Fatalf("SetStatus a1 error: %v", err)
	}
	if _, err := svc.SetStatus(context.Background(), a2.ID, StatusRejected); err != nil {
		t.Fatalf("SetStatus a2 error: %v", err)
	}

	s1, _, _ := repo.GetByID(context.Background(), a1.ID)
	s2, _, _ := repo.GetByID(context.Background(), a2.ID)
	if s1.Status != StatusConfirmed || s2.Status != StatusRejected {
		t.Fatalf("expected Confirmed/Rejected, got %s/%s", s1.Status, s2.Status)
	}
}

func TestService_Update_OnlyPendingAndOwnRecords(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a := book(t, svc, "owner1@example.com")

	// Otro dueño no puede editar.
	if _, err := svc.Update(context.Background(), "other@example.com", a.ID, BookInput{
		PetName: "Rex", Date: "2025-06-02", Reason: "x",
	}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// El dueño sí, mientras esté Pending.
	updated, err := svc.Update(context.Background(), "owner1@example.com", a.ID, BookInput{
		PetName: "Rex", Date: "2025-06-02", Reason: "vaccine",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Date != "2025-06-02" || updated.Status != StatusPending {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := svc.SetStatus(context.Background(), a.ID, StatusConfirmed); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if _, err := svc.Update(context.Background(), "owner1@example.com", a.ID, BookInput{
		PetName: "Rex", Date: "2025-06-03", Reason: "late edit",
	}); !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending after confirm, got %v", err)
	}
}

func TestService_Cancel_ChecksOwnership(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a := book(t, svc, "owner1@example.com")

	if _, err := svc.Cancel(context.Background(), "other@example.com", a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), "owner1@example.com", a.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Fatalf("expected Cancelled, got %s", cancelled.Status)
	}
}
