package models

import "gorm.io/datatypes"

// Действия, попадающие в журнал
const (
	AuditActionVerifyStudent = "VERIFY_STUDENT"
)

type AuditLog struct {
	BaseModel
	ActorID    string         `gorm:"type:uuid;not null;index" json:"actorId"`
	Action     string         `gorm:"not null" json:"action"`
	EntityType string         `gorm:"not null" json:"entityType"`
	EntityID   string         `gorm:"not null" json:"entityId"`
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
}
