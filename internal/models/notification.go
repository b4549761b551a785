package models

import (
	"time"

	"gorm.io/datatypes"
)

// Типы уведомлений
const (
	NotificationVerificationUpdate = "VERIFICATION_UPDATE"
)

// Notification сохраняется, но никуда не доставляется:
// клиент забирает их через GET /api/notifications.
type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"userId"`
	Type    string         `gorm:"not null" json:"type"`
	Payload datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	ReadAt  *time.Time     `json:"readAt"`
}
