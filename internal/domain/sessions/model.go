package sessions

import "pet-haven/internal/domain/users"

// Session es la identidad autenticada. Hay un único slot: el login lo
// sobreescribe, el logout lo borra, no hay expiración.
type Session struct {
	UserID int64      `json:"id"`
	Email  string     `json:"email"`
	Role   users.Role `json:"role"`
	Name   string     `json:"name"`
}
