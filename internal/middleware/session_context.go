package middleware

import (
	"context"
	"net/http"

	"pet-haven/internal/domain/sessions"
	"pet-haven/internal/domain/users"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// Claims es la identidad resuelta para el request.
type Claims struct {
	UserID int64      `json:"id"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   users.Role `json:"role"`
}

// SessionSource expone la sesión activa (el slot único del almacén).
type SessionSource interface {
	Active(ctx context.Context) (sessions.Session, bool, error)
}

// SessionContext:
// - Si hay sesión activa en el almacén, setea claims en el contexto.
// - Si no hay, el request sigue igual; cada handler decide si exige 401.
// El scoping por dueño sale de estos claims, nunca de una lectura ambiente
// dentro de los servicios.
func SessionContext(src SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok, err := src.Active(r.Context())
			if err != nil || !ok {
				// Sin sesión (o almacén caído): no cortamos acá para no
				// acoplar; el handler devuelve el código que corresponda.
				next.ServeHTTP(w, r)
				return
			}

			claims := Claims{
				UserID: sess.UserID,
				Email:  sess.Email,
				Name:   sess.Name,
				Role:   sess.Role,
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return Claims{}, false
	}
	c, ok := v.(Claims)
	return c, ok
}
