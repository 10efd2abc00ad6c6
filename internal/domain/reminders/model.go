package reminders

// Reminder es una nota con fecha del dueño; puede nombrar a una mascota
// (por nombre, sin integridad referencial) o ser genérica.
type Reminder struct {
	ID         int64  `json:"id"`
	OwnerEmail string `json:"user"`

	PetName string `json:"petName,omitempty"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time,omitempty"`
	Text    string `json:"text"`
}
