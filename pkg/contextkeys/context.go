package contextkeys

// Используем кастомный тип, чтобы избежать коллизий ключей в контексте
type contextKey string

// Ключи, под которыми SessionMiddleware сохраняет данные сессии в gin.Context.
const (
	UserIDKey    = contextKey("userID")
	UserRoleKey  = contextKey("userRole")
	SessionIDKey = contextKey("sessionID")
)

// String возвращает строковое представление ключа (для c.Set/c.Get).
func (k contextKey) String() string {
	return string(k)
}
