package services

import (
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
)

type FavoriteService interface {
	List(buyerID string) ([]dto.FavoriteView, error)
	Add(buyerID, projectID string) (*models.Favorite, error)
	Remove(buyerID, projectID string) error
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	views        *viewService
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, views *viewService) FavoriteService {
	return &FavoriteServiceImpl{favoriteRepo: favoriteRepo, views: views}
}

func (s *FavoriteServiceImpl) List(buyerID string) ([]dto.FavoriteView, error) {
	favorites, err := s.favoriteRepo.FindByBuyer(buyerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.views.favoriteViews(favorites)
}

// Add - повторное добавление той же пары отклоняется с 400,
// идентификатор проекта не проверяется на существование (как в оригинале).
func (s *FavoriteServiceImpl) Add(buyerID, projectID string) (*models.Favorite, error) {
	favorite := &models.Favorite{
		BuyerID:   buyerID,
		ProjectID: projectID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateFavorite) {
			return nil, apperrors.ErrConflict("favorite", "Project already in favorites")
		}
		return nil, apperrors.InternalError(err)
	}
	return favorite, nil
}

// Remove идемпотентен: удаление отсутствующей пары - успех.
func (s *FavoriteServiceImpl) Remove(buyerID, projectID string) error {
	if err := s.favoriteRepo.Delete(buyerID, projectID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
