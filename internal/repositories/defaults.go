package repositories

import "collabotree_backend/internal/models"

// Дефолты объявленных опциональных полей применяются на create
// в коде репозитория, one source of truth для обоих бэкендов.

func normalizeNewUser(user *models.User) {
	touchBase(&user.BaseModel)
	if user.Role == "" {
		user.Role = models.UserRoleStudent
	}
}

func normalizeNewStudentProfile(profile *models.StudentProfile) {
	touchBase(&profile.BaseModel)
	if profile.VerificationStatus == "" {
		profile.VerificationStatus = models.VerificationPending
	}
}

func normalizeNewBuyerProfile(profile *models.BuyerProfile) {
	touchBase(&profile.BaseModel)
}

func normalizeNewProject(project *models.Project) {
	touchBase(&project.BaseModel)
	if project.Status == "" {
		project.Status = models.ProjectStatusDraft
	}
	if project.Visibility == "" {
		project.Visibility = models.VisibilityPublic
	}
	if project.Revisions == 0 {
		project.Revisions = 3
	}
	if project.Skills == nil {
		project.Skills = []string{}
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}
}

func normalizeNewOrder(order *models.Order) {
	touchBase(&order.BaseModel)
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
}
