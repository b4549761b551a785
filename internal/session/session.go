package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"collabotree_backend/internal/models"
)

// ErrNotFound - сессия отсутствует или истекла
var ErrNotFound = errors.New("session not found")

// Session - типизированное состояние "Authenticated(userId, role)".
// Анонимное состояние - это просто отсутствие сессии в сторе.
type Session struct {
	UserID string          `json:"userId"`
	Role   models.UserRole `json:"role"`
}

// Store - серверное хранилище сессий; в cookie уходит только
// непрозрачный идентификатор. TTL фиксированный, активностью не продлевается.
type Store interface {
	Create(ctx context.Context, sess Session) (string, error)
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

// --- Подпись cookie ---
// Идентификатор подписывается секретом в формате "<id>.<sig>",
// как это делает express-session. Подделанный или обрезанный
// идентификатор отбрасывается до обращения к стору.

// SignID подписывает идентификатор сессии секретом.
func SignID(id, secret string) string {
	return id + "." + signature(id, secret)
}

// VerifyID проверяет подпись и возвращает чистый идентификатор.
func VerifyID(signed, secret string) (string, bool) {
	idx := strings.LastIndexByte(signed, '.')
	if idx <= 0 {
		return "", false
	}
	id, sig := signed[:idx], signed[idx+1:]
	if !hmac.Equal([]byte(sig), []byte(signature(id, secret))) {
		return "", false
	}
	return id, true
}

func signature(id, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
