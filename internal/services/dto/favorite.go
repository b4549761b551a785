package dto

import "collabotree_backend/internal/models"

type CreateFavoriteRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

type FavoriteView struct {
	models.Favorite
	Project *models.Project `json:"project"`
}
