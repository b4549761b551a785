package services

import (
	"collabotree_backend/internal/auth"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"
	"collabotree_backend/internal/validator"

	"collabotree_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(userID string) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register - регистрация нового пользователя с профилем его роли.
// Сессию открывает хендлер, сервис только создает записи.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !models.ValidRegistrationRole(req.Role) {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	// Дополнительные требования к студентам
	if req.Role == models.UserRoleStudent {
		if !validator.IsEduEmail(req.Email) {
			return nil, apperrors.NewBadRequestError(
				"Student registration requires an educational email address (.edu, .ac.uk, .org)")
		}
		if req.University == "" || req.StudentID == "" || req.Program == "" {
			return nil, apperrors.NewBadRequestError(
				"University, student ID, and program are required for students")
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists("auth", "User already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	var profile interface{}
	switch req.Role {
	case models.UserRoleStudent:
		sp := &models.StudentProfile{
			UserID:     user.ID,
			University: req.University,
			StudentID:  req.StudentID,
			Program:    req.Program,
		}
		if err := s.profileRepo.CreateStudentProfile(sp); err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile = sp
	case models.UserRoleBuyer:
		bp := &models.BuyerProfile{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
		}
		if err := s.profileRepo.CreateBuyerProfile(bp); err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile = bp
	}

	return &dto.AuthResponse{User: user, Profile: profile}, nil
}

// Login - проверка пары email/пароль.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	profile, err := s.profileFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: user, Profile: profile}, nil
}

// Me - текущий пользователь с профилем его роли.
func (s *AuthServiceImpl) Me(userID string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: user, Profile: profile}, nil
}

// profileFor подбирает профиль по роли; у админа профиля нет.
// Отсутствие профиля - не ошибка (оригинал отдает null).
func (s *AuthServiceImpl) profileFor(user *models.User) (interface{}, error) {
	switch user.Role {
	case models.UserRoleStudent:
		sp, err := s.profileRepo.GetStudentProfile(user.ID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, apperrors.InternalError(err)
		}
		return sp, nil
	case models.UserRoleBuyer:
		bp, err := s.profileRepo.GetBuyerProfile(user.ID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, apperrors.InternalError(err)
		}
		return bp, nil
	}
	return nil, nil
}
