package pets

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Pet
}

func newTestRepo() *testRepo {
	return &testRepo{items: []Pet{}}
}

func (r *testRepo) key(p Pet) string {
	return strings.ToLower(p.OwnerEmail) + "/" + p.Name
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.items {
		if strings.EqualFold(p.OwnerEmail, ownerEmail) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) Get(ctx context.Context, ownerEmail, name string) (Pet, bool, error) {
	for _, p := range r.items {
		if strings.EqualFold(p.OwnerEmail, ownerEmail) && p.Name == name {
			return p, true, nil
		}
	}
	return Pet{}, false, nil
}

func (r *testRepo) Put(ctx context.Context, pet Pet) error {
	for i, p := range r.items {
		if r.key(p) == r.key(pet) {
			r.items[i] = pet
			return nil
		}
	}
	r.items = append(r.items, pet)
	return nil
}

func (r *testRepo) Delete(ctx context.Context, ownerEmail, name string) (bool, error) {
	for i, p := range r.items {
		if strings.EqualFold(p.OwnerEmail, ownerEmail) && p.Name == name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RejectsDuplicateNamePerOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "owner1@example.com", "Owner One", Input{Name: "Rex", Species: "Dog"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	_, err = svc.Create(context.Background(), "owner1@example.com", "Owner One", Input{Name: "Rex", Species: "Cat"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// Mismo nombre para OTRO dueño es válido: la clave es (owner, name).
	_, err = svc.Create(context.Background(), "owner2@example.com", "Owner Two", Input{Name: "Rex", Species: "Dog"})
	if err != nil {
		t.Fatalf("Create for other owner error: %v", err)
	}
}

func TestService_Update_PreservesPhotoWhenEmpty(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "owner1@example.com", "Owner One", Input{
		Name: "Rex", Species: "Dog", Photo: "data:image/png;base64,AAA",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(context.Background(), "owner1@example.com", "Rex", Input{
		Name: "Rex", Species: "Dog", Weight: 12.5,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Photo != "data:image/png;base64,AAA" {
		t.Fatalf("expected stored photo preserved, got %q", updated.Photo)
	}
	if updated.Weight != 12.5 {
		t.Fatalf("expected weight updated, got %v", updated.Weight)
	}

	// Con foto nueva, reemplaza.
	updated, err = svc.Update(context.Background(), "owner1@example.com", "Rex", Input{
		Name: "Rex", Species: "Dog", Weight: 12.5, Photo: "data:image/png;base64,BBB",
	})
	if err != nil {
		t.Fatalf("Update #2 error: %v", err)
	}
	if updated.Photo != "data:image/png;base64,BBB" {
		t.Fatalf("expected new photo, got %q", updated.Photo)
	}
}

func TestService_Update_UnknownPet(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "owner1@example.com", "Ghost", Input{Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_MissingPetIsNoop(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "owner1@example.com", "Ghost"); err != nil {
		t.Fatalf("Delete of missing pet must be a no-op, got %v", err)
	}

	_, err := svc.Create(context.Background(), "owner1@example.com", "Owner One", Input{Name: "Rex", Species: "Dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(context.Background(), "owner1@example.com", "Rex"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected empty repo after delete, got %d", len(repo.items))
	}
}
