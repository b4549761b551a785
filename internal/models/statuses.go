package models

type UserRole string
type VerificationStatus string
type ProjectStatus string
type ProjectVisibility string
type OrderStatus string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleBuyer   UserRole = "BUYER"
	UserRoleAdmin   UserRole = "ADMIN"

	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"

	ProjectStatusDraft      ProjectStatus = "DRAFT"
	ProjectStatusListed     ProjectStatus = "LISTED"
	ProjectStatusHired      ProjectStatus = "HIRED"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusDelivered  ProjectStatus = "DELIVERED"
	ProjectStatusClosed     ProjectStatus = "CLOSED"

	VisibilityPublic  ProjectVisibility = "PUBLIC"
	VisibilityPrivate ProjectVisibility = "PRIVATE"

	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusRefunded OrderStatus = "REFUNDED"
	OrderStatusDisputed OrderStatus = "DISPUTED"
)

// ValidRegistrationRole - роли, доступные при самостоятельной регистрации.
// Админов создает только сид.
func ValidRegistrationRole(role UserRole) bool {
	return role == UserRoleStudent || role == UserRoleBuyer
}
