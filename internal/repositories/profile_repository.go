package repositories

import (
	"errors"

	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository обслуживает оба вида профилей.
// Профили адресуются по userID (связь 1:1 с пользователем).
type ProfileRepository interface {
	GetStudentProfile(userID string) (*models.StudentProfile, error)
	GetStudentProfilesByUserIDs(userIDs []string) (map[string]*models.StudentProfile, error)
	CreateStudentProfile(profile *models.StudentProfile) error
	UpdateStudentProfile(userID string, update StudentProfileUpdate) (*models.StudentProfile, error)
	// SetVerification фиксирует решение модератора. Заметки пишутся
	// безусловно: nil стирает заметки предыдущего решения.
	SetVerification(userID string, status models.VerificationStatus, notes *string) (*models.StudentProfile, error)
	// FindPendingVerifications - очередь модерации: все студенческие
	// профили со статусом PENDING, новые сверху.
	FindPendingVerifications() ([]models.StudentProfile, error)

	GetBuyerProfile(userID string) (*models.BuyerProfile, error)
	CreateBuyerProfile(profile *models.BuyerProfile) error
}

type gormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) GetStudentProfile(userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormProfileRepository) GetStudentProfilesByUserIDs(userIDs []string) (map[string]*models.StudentProfile, error) {
	result := make(map[string]*models.StudentProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var profiles []models.StudentProfile
	if err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for i := range profiles {
		result[profiles[i].UserID] = &profiles[i]
	}
	return result, nil
}

func (r *gormProfileRepository) CreateStudentProfile(profile *models.StudentProfile) error {
	normalizeNewStudentProfile(profile)
	return r.db.Create(profile).Error
}

func (r *gormProfileRepository) UpdateStudentProfile(userID string, update StudentProfileUpdate) (*models.StudentProfile, error) {
	profile, err := r.GetStudentProfile(userID)
	if err != nil {
		return nil, err
	}

	if update.University != nil {
		profile.University = *update.University
	}
	if update.StudentID != nil {
		profile.StudentID = *update.StudentID
	}
	if update.Program != nil {
		profile.Program = *update.Program
	}
	if update.VerificationStatus != nil {
		profile.VerificationStatus = *update.VerificationStatus
	}
	if update.IDDocURL != nil {
		profile.IDDocURL = update.IDDocURL
	}
	if update.SelfieURL != nil {
		profile.SelfieURL = update.SelfieURL
	}

	if err := r.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *gormProfileRepository) SetVerification(userID string, status models.VerificationStatus, notes *string) (*models.StudentProfile, error) {
	profile, err := r.GetStudentProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.VerificationStatus = status
	profile.VerificationNotes = notes

	if err := r.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *gormProfileRepository) FindPendingVerifications() ([]models.StudentProfile, error) {
	var profiles []models.StudentProfile
	err := r.db.
		Where("verification_status = ?", models.VerificationPending).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *gormProfileRepository) GetBuyerProfile(userID string) (*models.BuyerProfile, error) {
	var profile models.BuyerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormProfileRepository) CreateBuyerProfile(profile *models.BuyerProfile) error {
	normalizeNewBuyerProfile(profile)
	return r.db.Create(profile).Error
}
