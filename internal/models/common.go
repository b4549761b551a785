package models

import "time"

// BaseModel - общие поля всех сущностей.
// ID назначается приложением (uuid), чтобы memory- и postgres-бэкенды
// вели себя одинаково.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
