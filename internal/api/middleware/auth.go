package middleware

import (
	"context"
	"net/http"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
)

type ctxKey string

const usuarioKey ctxKey = "usuario"

// HeaderUsuario заголовок с именем сотрудника, проставляется шлюзом
// после аутентификации
const HeaderUsuario = "X-Usuario"

// Auth проверяет наличие заголовка X-Usuario и кладет имя сотрудника
// в context запроса. Сама аутентификация выполняется на шлюзе.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuario := r.Header.Get(HeaderUsuario)
		if usuario == "" {
			handlers.RespondUnauthorized(w, "falta el encabezado X-Usuario")
			return
		}

		ctx := context.WithValue(r.Context(), usuarioKey, usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsuarioFromContext возвращает имя сотрудника из context запроса
func UsuarioFromContext(ctx context.Context) string {
	usuario, _ := ctx.Value(usuarioKey).(string)
	return usuario
}
