package models

type Review struct {
	BaseModel
	OrderID string  `gorm:"type:uuid;not null;uniqueIndex" json:"orderId"`
	Rating  int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment *string `json:"comment"`
}
