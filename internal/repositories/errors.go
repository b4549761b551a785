package repositories

import (
	"errors"
	"strings"
)

// Сентинельные ошибки репозиториев. Сервисы преобразуют их в apperrors.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateFavorite    = errors.New("favorite already exists")
	ErrDuplicateSlug        = errors.New("slug already exists")
)

// isDuplicateKey распознает нарушение уникального индекса postgres
// ("duplicate key value violates unique constraint"). gorm не дает
// типизированной ошибки, поэтому смотрим на текст.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
