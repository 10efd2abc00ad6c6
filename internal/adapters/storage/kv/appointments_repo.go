package kv

import (
	"context"
	"sync"

	"pet-haven/internal/domain/appointments"
	"pet-haven/internal/kvstore"
)

type AppointmentsRepo struct {
	store kvstore.KV
	mu    sync.Mutex
}

func NewAppointmentsRepo(store kvstore.KV) *AppointmentsRepo {
	return &AppointmentsRepo{store: store}
}

func (r *AppointmentsRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]appointments.Appointment, error) {
	all, err := readCollection[appointments.Appointment](ctx, r.store, KeyAppointments)
	if err != nil {
		return nil, err
	}

	out := make([]appointments.Appointment, 0)
	for _, a := range all {
		if a.OwnerEmail == ownerEmail {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AppointmentsRepo) ListAll(ctx context.Context) ([]appointments.Appointment, error) {
	return readCollection[appointments.Appointment](ctx, r.store, KeyAppointments)
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, bool, error) {
	all, err := readCollection[appointments.Appointment](ctx, r.store, KeyAppointments)
	if err != nil {
		return appointments.Appointment{}, false, err
	}

	for _, a := range all {
		if a.ID == id {
			return a, true, nil
		}
	}
	return appointments.Appointment{}, false, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[appointments.Appointment](ctx, r.store, KeyAppointments)
	if err != nil {
		return err
	}
	all = append(all, a)
	return writeCollection(ctx, r.store, KeyAppointments, all)
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[appointments.Appointment](ctx, r.store, KeyAppointments)
	if err != nil {
		return false, err
	}

	for i := range all {
		if all[i].ID == a.ID {
			all[i] = a
			if err := writeCollection(ctx, r.store, KeyAppointments, all); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	// id desconocido: no-op
	return false, nil
}
