package models

// Favorite - пара (buyer, project), уникальная на пару.
// Единственная сущность с физическим удалением.
type Favorite struct {
	BaseModel
	BuyerID   string `gorm:"type:uuid;not null;uniqueIndex:idx_fav_buyer_project" json:"buyerId"`
	ProjectID string `gorm:"type:uuid;not null;uniqueIndex:idx_fav_buyer_project" json:"projectId"`
}
