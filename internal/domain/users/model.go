package users

// Role define los dos perfiles del sistema.
// @Enum owner, vet
type Role string

const (
	RoleOwner Role = "owner"
	RoleVet   Role = "vet"
)

// User es una cuenta registrada. El email (siempre en minúsculas) es la
// clave con la que se scopea el resto de los datos del dueño.
// La contraseña se guarda en texto plano: así funciona el sistema que
// estamos replicando, no es un descuido nuevo.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
