package kv

import (
	"context"
	"strings"
	"sync"

	"pet-haven/internal/domain/pets"
	"pet-haven/internal/kvstore"
)

// PetsRepo guarda LA colección de mascotas: la vista por dueño y la vista
// global de la veterinaria son filtros sobre la misma lista.
type PetsRepo struct {
	store kvstore.KV
	mu    sync.Mutex
}

func NewPetsRepo(store kvstore.KV) *PetsRepo {
	return &PetsRepo{store: store}
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]pets.Pet, error) {
	all, err := readCollection[pets.Pet](ctx, r.store, KeyPets)
	if err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0)
	for _, p := range all {
		if p.OwnerEmail == ownerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return readCollection[pets.Pet](ctx, r.store, KeyPets)
}

func (r *PetsRepo) Get(ctx context.Context, ownerEmail, name string) (pets.Pet, bool, error) {
	all, err := readCollection[pets.Pet](ctx, r.store, KeyPets)
	if err != nil {
		return pets.Pet{}, false, err
	}

	for _, p := range all {
		if matches(p, ownerEmail, name) {
			return p, true, nil
		}
	}
	return pets.Pet{}, false, nil
}

func (r *PetsRepo) Put(ctx context.Context, pet pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[pets.Pet](ctx, r.store, KeyPets)
	if err != nil {
		return err
	}

	replaced := false
	for i, p := range all {
		if matches(p, pet.OwnerEmail, pet.Name) {
			all[i] = pet
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, pet)
	}

	return writeCollection(ctx, r.store, KeyPets, all)
}

func (r *PetsRepo) Delete(ctx context.Context, ownerEmail, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[pets.Pet](ctx, r.store, KeyPets)
	if err != nil {
		return false, err
	}

	// se borra exactamente una entrada, la primera que matchee
	for i, p := range all {
		if matches(p, ownerEmail, name) {
			all = append(all[:i], all[i+1:]...)
			if err := writeCollection(ctx, r.store, KeyPets, all); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// matches compara por la clave (ownerEmail, name); el nombre de la mascota
// se compara tal cual, el email sin distinguir mayúsculas.
func matches(p pets.Pet, ownerEmail, name string) bool {
	return strings.EqualFold(p.OwnerEmail, ownerEmail) && p.Name == name
}
