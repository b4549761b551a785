package dto

type CreateReviewRequest struct {
	OrderID string  `json:"orderId" validate:"required"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}
