package services

import (
	"strings"

	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
	"github.com/google/uuid"
)

type ProjectService interface {
	List(query *dto.ProjectListQuery) ([]dto.ProjectView, error)
	GetByIDOrSlug(idOrSlug string) (*dto.ProjectView, error)
	Create(ownerID string, req *dto.CreateProjectRequest) (*models.Project, error)
	Update(actorID string, actorRole models.UserRole, idOrSlug string, req *dto.UpdateProjectRequest) (*models.Project, error)
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	views       *viewService
}

func NewProjectService(projectRepo repositories.ProjectRepository, views *viewService) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo, views: views}
}

// List - каталог и дашборды. Параметр search переключает ветку
// поиска (только LISTED+PUBLIC); без него отдается плоский список,
// где видны и черновики.
func (s *ProjectServiceImpl) List(query *dto.ProjectListQuery) ([]dto.ProjectView, error) {
	var (
		projects []models.Project
		err      error
	)

	if query.Search != "" {
		projects, err = s.projectRepo.Search(query.Search, repositories.ProjectSearchFilter{
			Category:   query.Category,
			University: query.University,
			PriceRange: query.PriceRange,
		})
	} else {
		projects, err = s.projectRepo.Find(repositories.ProjectFilter{
			OwnerID: query.OwnerID,
			Status:  models.ProjectStatus(query.Status),
			Limit:   query.Limit,
			Offset:  query.Offset,
		})
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.views.projectViews(projects)
}

// GetByIDOrSlug - сначала по id, затем по slug (оба уникальны).
func (s *ProjectServiceImpl) GetByIDOrSlug(idOrSlug string) (*dto.ProjectView, error) {
	project, err := s.projectRepo.FindByID(idOrSlug)
	if apperrors.Is(err, repositories.ErrProjectNotFound) {
		project, err = s.projectRepo.FindBySlug(idOrSlug)
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.views.projectView(project)
}

// Create - новый проект студента. Slug выводится из заголовка
// с uuid-суффиксом, поэтому коллизии практически исключены.
func (s *ProjectServiceImpl) Create(ownerID string, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		OwnerID:      ownerID,
		Title:        req.Title,
		Slug:         slugify(req.Title) + "-" + uuid.NewString()[:8],
		Description:  req.Description,
		Skills:       req.Skills,
		Tags:         req.Tags,
		Price:        req.Price,
		DeliveryTime: req.DeliveryTime,
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}
	if req.Revisions != nil {
		project.Revisions = *req.Revisions
	}

	if err := s.projectRepo.Create(project); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateSlug) {
			return nil, apperrors.ErrAlreadyExists("project", "Project slug already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// Update - частичное обновление. Разрешено владельцу и админу.
// Проект адресуется так же, как в GetByIDOrSlug: сначала id, затем slug.
func (s *ProjectServiceImpl) Update(actorID string, actorRole models.UserRole, idOrSlug string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(idOrSlug)
	if apperrors.Is(err, repositories.ErrProjectNotFound) {
		project, err = s.projectRepo.FindBySlug(idOrSlug)
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if project.OwnerID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}

	update := repositories.ProjectUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Skills:        req.Skills,
		Tags:          req.Tags,
		Price:         req.Price,
		CoverImageURL: req.CoverImageURL,
		DeliveryTime:  req.DeliveryTime,
		Revisions:     req.Revisions,
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		update.Status = &status
	}
	if req.Visibility != nil {
		visibility := models.ProjectVisibility(*req.Visibility)
		update.Visibility = &visibility
	}

	updated, err := s.projectRepo.Update(project.ID, update)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

// slugify приводит заголовок к URL-форме: нижний регистр,
// последовательности не-алфанумериков схлопываются в дефис.
func slugify(title string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return b.String()
}
