// Package summary arma el resumen del tablero del dueño a partir de los
// otros módulos; es solo lectura, no toca el almacén directamente.
package summary

import (
	"context"
	"sort"

	"pet-haven/internal/domain/appointments"
	"pet-haven/internal/domain/pets"
	"pet-haven/internal/domain/reminders"
)

type Summary struct {
	PetCount         int `json:"petCount"`
	AppointmentCount int `json:"appointmentCount"`
	ReminderCount    int `json:"reminderCount"`

	// NextAppointment es el turno más próximo por fecha; nil si no hay.
	NextAppointment *appointments.Appointment `json:"nextAppointment,omitempty"`

	RecentPets      []pets.Pet           `json:"recentPets"`
	RecentReminders []reminders.Reminder `json:"recentReminders"`
}

type Service struct {
	pets         *pets.Service
	appointments *appointments.Service
	reminders    *reminders.Service
}

func NewService(p *pets.Service, a *appointments.Service, r *reminders.Service) *Service {
	return &Service{pets: p, appointments: a, reminders: r}
}

// ForOwner junta contadores, el próximo turno y los últimos tres registros
// de mascotas y recordatorios del dueño.
func (s *Service) ForOwner(ctx context.Context, ownerEmail string) (Summary, error) {
	petList, err := s.pets.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return Summary{}, err
	}
	appts, err := s.appointments.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return Summary{}, err
	}
	rems, err := s.reminders.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{
		PetCount:         len(petList),
		AppointmentCount: len(appts),
		ReminderCount:    len(rems),
		RecentPets:       lastN(petList, 3),
		RecentReminders:  lastN(rems, 3),
	}

	if len(appts) > 0 {
		// Las fechas son YYYY-MM-DD: el orden lexicográfico es cronológico.
		sorted := make([]appointments.Appointment, len(appts))
		copy(sorted, appts)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
		out.NextAppointment = &sorted[0]
	}

	return out, nil
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
