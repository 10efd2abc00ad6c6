package appointments

// Status es el estado del turno.
// @Enum Pending, Confirmed, Rejected, Cancelled, Completed
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"

	// StatusCompleted es válido pero ninguna operación lo setea; queda por
	// compatibilidad con datos existentes.
	StatusCompleted Status = "Completed"
)

// IsTerminal: un estado terminal no vuelve a transicionar por
// confirm/reject/cancel.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment es un pedido de turno. PetName referencia a la mascota por
// nombre, sin integridad referencial: si la mascota se borra, el turno
// queda apuntando a un nombre que ya no existe y se muestra igual.
type Appointment struct {
	ID         int64  `json:"id"`
	OwnerEmail string `json:"ownerEmail"`
	OwnerName  string `json:"ownerName"`

	PetName string `json:"petName"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time,omitempty"`
	Reason  string `json:"reason"`

	Status Status `json:"status"`
}
