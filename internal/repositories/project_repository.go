package repositories

import (
	"errors"
	"strings"

	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	FindByID(id string) (*models.Project, error)
	FindByIDs(ids []string) (map[string]*models.Project, error)
	FindBySlug(slug string) (*models.Project, error)
	// Find возвращает проекты любого статуса/видимости (дашборды
	// показывают и черновики владельца), новые сверху.
	Find(filter ProjectFilter) ([]models.Project, error)
	Create(project *models.Project) error
	Update(id string, update ProjectUpdate) (*models.Project, error)
	// Search - регистронезависимый поиск по подстроке в title,
	// description, skills и tags; только LISTED + PUBLIC.
	Search(query string, filter ProjectSearchFilter) ([]models.Project, error)
}

type gormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) FindByIDs(ids []string) (map[string]*models.Project, error) {
	result := make(map[string]*models.Project, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var projects []models.Project
	if err := r.db.Where("id IN ?", ids).Find(&projects).Error; err != nil {
		return nil, err
	}
	for i := range projects {
		result[projects[i].ID] = &projects[i]
	}
	return result, nil
}

func (r *gormProjectRepository) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) Find(filter ProjectFilter) ([]models.Project, error) {
	query := r.db.Model(&models.Project{})

	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	query = query.Order("created_at DESC")
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var projects []models.Project
	err := query.Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepository) Create(project *models.Project) error {
	normalizeNewProject(project)
	err := r.db.Create(project).Error
	if isDuplicateKey(err) {
		return ErrDuplicateSlug
	}
	return err
}

func (r *gormProjectRepository) Update(id string, update ProjectUpdate) (*models.Project, error) {
	project, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		project.Title = *update.Title
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Skills != nil {
		project.Skills = *update.Skills
	}
	if update.Tags != nil {
		project.Tags = *update.Tags
	}
	if update.Price != nil {
		project.Price = *update.Price
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.Visibility != nil {
		project.Visibility = *update.Visibility
	}
	if update.CoverImageURL != nil {
		project.CoverImageURL = update.CoverImageURL
	}
	if update.DeliveryTime != nil {
		project.DeliveryTime = *update.DeliveryTime
	}
	if update.Revisions != nil {
		project.Revisions = *update.Revisions
	}

	if err := r.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (r *gormProjectRepository) Search(query string, filter ProjectSearchFilter) ([]models.Project, error) {
	q := r.db.Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusListed).
		Where("visibility = ?", models.VisibilityPublic)

	if query != "" {
		// skills/tags сериализованы в JSON-текст, подстрочный LIKE по
		// нему эквивалентен поиску по элементам массива
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(skills::text) LIKE ? OR LOWER(tags::text) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	// "All Categories" - сентинел клиента, означает отсутствие фильтра
	if filter.Category != "" && filter.Category != "All Categories" {
		q = q.Where(`tags::text LIKE ?`, `%"`+filter.Category+`"%`)
	}

	var projects []models.Project
	err := q.Order("created_at DESC").Find(&projects).Error
	return projects, err
}
