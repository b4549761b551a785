package handlers

import (
	"net/http"

	"collabotree_backend/internal/middleware"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/services"
	"collabotree_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

// RegisterRoutes регистрирует маршруты избранного (только покупатели)
func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.Use(middleware.RequireAuth(), middleware.RequireRoles(models.UserRoleBuyer))
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Add)
		favorites.DELETE("/:projectId", h.Remove)
	}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	views, err := h.favoriteService.List(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dto.CreateFavoriteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	favorite, err := h.favoriteService.Add(middleware.GetUserID(c), req.ProjectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorite)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	if err := h.favoriteService.Remove(middleware.GetUserID(c), c.Param("projectId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
