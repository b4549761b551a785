package services

import (
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
)

// viewService собирает денормализованные ответы API: вместо
// запроса на каждую строку связанные сущности выбираются батчем
// (FindByIDs) и раскладываются по view-структурам.
type viewService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	projectRepo repositories.ProjectRepository
}

func newViewService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	projectRepo repositories.ProjectRepository,
) *viewService {
	return &viewService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		projectRepo: projectRepo,
	}
}

// projectViews обогащает проекты владельцем и его студенческим профилем.
// Отсутствующий владелец не ошибка: поле остается null, как в оригинале.
func (v *viewService) projectViews(projects []models.Project) ([]dto.ProjectView, error) {
	ownerIDs := make([]string, 0, len(projects))
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if !seen[p.OwnerID] {
			seen[p.OwnerID] = true
			ownerIDs = append(ownerIDs, p.OwnerID)
		}
	}

	owners, err := v.userRepo.FindByIDs(ownerIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	studentIDs := make([]string, 0, len(owners))
	for id, owner := range owners {
		if owner.Role == models.UserRoleStudent {
			studentIDs = append(studentIDs, id)
		}
	}
	profiles, err := v.profileRepo.GetStudentProfilesByUserIDs(studentIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, dto.ProjectView{
			Project:        p,
			Owner:          owners[p.OwnerID],
			StudentProfile: profiles[p.OwnerID],
		})
	}
	return views, nil
}

func (v *viewService) projectView(project *models.Project) (*dto.ProjectView, error) {
	views, err := v.projectViews([]models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// orderViews обогащает заказы проектом и обеими сторонами сделки.
func (v *viewService) orderViews(orders []models.Order) ([]dto.OrderView, error) {
	projectIDs := make([]string, 0, len(orders))
	userIDs := make([]string, 0, 2*len(orders))
	seenProject := make(map[string]bool, len(orders))
	seenUser := make(map[string]bool, 2*len(orders))
	for _, o := range orders {
		if !seenProject[o.ProjectID] {
			seenProject[o.ProjectID] = true
			projectIDs = append(projectIDs, o.ProjectID)
		}
		for _, id := range []string{o.BuyerID, o.StudentID} {
			if !seenUser[id] {
				seenUser[id] = true
				userIDs = append(userIDs, id)
			}
		}
	}

	projects, err := v.projectRepo.FindByIDs(projectIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	users, err := v.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, dto.OrderView{
			Order:   o,
			Project: projects[o.ProjectID],
			Buyer:   users[o.BuyerID],
			Student: users[o.StudentID],
		})
	}
	return views, nil
}

// favoriteViews обогащает избранное проектами.
func (v *viewService) favoriteViews(favorites []models.Favorite) ([]dto.FavoriteView, error) {
	projectIDs := make([]string, 0, len(favorites))
	seen := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		if !seen[f.ProjectID] {
			seen[f.ProjectID] = true
			projectIDs = append(projectIDs, f.ProjectID)
		}
	}

	projects, err := v.projectRepo.FindByIDs(projectIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.FavoriteView, 0, len(favorites))
	for _, f := range favorites {
		views = append(views, dto.FavoriteView{
			Favorite: f,
			Project:  projects[f.ProjectID],
		})
	}
	return views, nil
}

// verificationViews обогащает очередь модерации пользователями.
func (v *viewService) verificationViews(profiles []models.StudentProfile) ([]dto.VerificationView, error) {
	userIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}

	users, err := v.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.VerificationView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, dto.VerificationView{
			StudentProfile: p,
			User:           users[p.UserID],
		})
	}
	return views, nil
}
