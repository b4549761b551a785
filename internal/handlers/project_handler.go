package handlers

import (
	"net/http"

	"collabotree_backend/internal/middleware"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/services"
	"collabotree_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
	reviewService  services.ReviewService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService, reviewService services.ReviewService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
		reviewService:  reviewService,
	}
}

// RegisterRoutes регистрирует маршруты каталога проектов
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.List)
		projects.GET("/:idOrSlug", h.Get)
		projects.GET("/:idOrSlug/reviews", h.Reviews)
		projects.POST("", middleware.RequireAuth(), middleware.RequireRoles(models.UserRoleStudent), h.Create)
		projects.PATCH("/:idOrSlug", middleware.RequireAuth(), h.Update)
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	views, err := h.projectService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	view, err := h.projectService.GetByIDOrSlug(c.Param("idOrSlug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProjectHandler) Reviews(c *gin.Context) {
	reviews, err := h.reviewService.ListByProject(c.Param("idOrSlug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Update - владелец или админ; проверка внутри сервиса,
// поэтому роут закрыт только RequireAuth.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(
		middleware.GetUserID(c),
		middleware.GetUserRole(c),
		c.Param("idOrSlug"),
		&req,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
