package models

// Order фиксирует цену и владельца проекта на момент создания:
// amount = Project.Price, StudentID = Project.OwnerID (денормализация).
type Order struct {
	BaseModel
	ProjectID string      `gorm:"type:uuid;not null;index" json:"projectId"`
	BuyerID   string      `gorm:"type:uuid;not null;index" json:"buyerId"`
	StudentID string      `gorm:"type:uuid;not null;index" json:"studentId"`
	Amount    int         `gorm:"not null" json:"amount"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
}
