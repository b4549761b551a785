package handlers

import (
	"time"

	"collabotree_backend/internal/middleware"
	"collabotree_backend/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionManager выпускает и гасит сессионные cookie.
// В cookie уходит только подписанный идентификатор; само состояние
// сессии живет в сторе.
type SessionManager struct {
	store      session.Store
	secret     string
	cookieName string
	ttl        time.Duration
}

func NewSessionManager(store session.Store, secret, cookieName string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		store:      store,
		secret:     secret,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Issue создает сессию и ставит cookie. HttpOnly; Secure оставлен
// выключенным, как в оригинале (TLS-терминация на прокси).
func (m *SessionManager) Issue(c *gin.Context, sess session.Session) error {
	id, err := m.store.Create(c.Request.Context(), sess)
	if err != nil {
		return err
	}
	c.SetCookie(m.cookieName, session.SignID(id, m.secret), int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Clear удаляет сессию из стора и гасит cookie.
func (m *SessionManager) Clear(c *gin.Context) error {
	var err error
	if id := middleware.GetSessionID(c); id != "" {
		err = m.store.Delete(c.Request.Context(), id)
	}
	c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
	return err
}
