package pets

import "time"

// Pet es el perfil de una mascota. Su identidad es el par
// (OwnerEmail, Name): no hay id propio y el rename no está soportado.
//
// Hay UNA sola colección de mascotas: la vista "global" de la veterinaria
// es una consulta sobre ella, no una segunda copia (antes se mantenían dos
// listas escritas en paralelo y había que sincronizarlas a mano).
type Pet struct {
	OwnerEmail string `json:"ownerEmail"`
	// OwnerName es el nombre a mostrar del dueño; lo consume la vista vet.
	OwnerName string `json:"owner"`

	Name    string `json:"name"`
	Species string `json:"species"`

	BirthDate *time.Time `json:"bday,omitempty"`
	Weight    float64    `json:"weight,omitempty"`

	// Vaccinations son notas libres de vacunación.
	Vaccinations string `json:"vax,omitempty"`

	// Photo es una imagen embebida como data URL; puede pesar bastante.
	Photo string `json:"photo,omitempty"`
}
