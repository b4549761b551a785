package models

type Project struct {
	BaseModel
	OwnerID       string            `gorm:"type:uuid;not null;index" json:"ownerId"`
	Title         string            `gorm:"not null" json:"title"`
	Slug          string            `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string            `gorm:"not null" json:"description"`
	Skills        []string          `gorm:"serializer:json" json:"skills"`
	Tags          []string          `gorm:"serializer:json" json:"tags"`
	Price         int               `gorm:"not null" json:"price"`
	Status        ProjectStatus     `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	Visibility    ProjectVisibility `gorm:"type:varchar(20);not null;default:'PUBLIC'" json:"visibility"`
	CoverImageURL *string           `json:"coverImageUrl"`
	DeliveryTime  int               `gorm:"not null" json:"deliveryTime"` // недели
	Revisions     int               `gorm:"not null;default:3" json:"revisions"`
}
