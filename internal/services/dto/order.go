package dto

import "collabotree_backend/internal/models"

type CreateOrderRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

type OrderListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=PENDING PAID REFUNDED DISPUTED"`
}

// OrderView - заказ с проектом и обеими сторонами сделки.
type OrderView struct {
	models.Order
	Project *models.Project `json:"project"`
	Buyer   *models.User    `json:"buyer"`
	Student *models.User    `json:"student"`
}
