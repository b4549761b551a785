package services

import (
	"testing"

	"collabotree_backend/internal/models"
	"collabotree_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatsService_StudentAndBuyer - агрегаты обеих сторон после покупки
func TestStatsService_StudentAndBuyer(t *testing.T) {
	_, svc := newTestContainer()
	student := registerStudent(t, svc, "s@uni.edu")
	buyer := registerBuyer(t, svc, "b@co.com")

	listed := createListedProject(t, svc, student.User.ID, "Listed", 100)
	_, err := svc.ProjectService.Create(student.User.ID, &dto.CreateProjectRequest{
		Title:        "Draft",
		Description:  "d",
		Price:        50,
		DeliveryTime: 1,
	})
	require.NoError(t, err)

	_, err = svc.OrderService.Create(buyer.User.ID, listed.ID)
	require.NoError(t, err)
	_, err = svc.FavoriteService.Add(buyer.User.ID, listed.ID)
	require.NoError(t, err)

	studentStatsRaw, err := svc.StatsService.ForUser(student.User.ID, models.UserRoleStudent)
	require.NoError(t, err)
	studentStats := studentStatsRaw.(*dto.StudentStats)
	assert.Equal(t, 100, studentStats.TotalEarnings)
	assert.Equal(t, 1, studentStats.ActiveOrders)
	assert.Equal(t, 2, studentStats.TotalProjects)
	assert.Equal(t, 1, studentStats.ActiveProjects)

	buyerStatsRaw, err := svc.StatsService.ForUser(buyer.User.ID, models.UserRoleBuyer)
	require.NoError(t, err)
	buyerStats := buyerStatsRaw.(*dto.BuyerStats)
	assert.Equal(t, 1, buyerStats.TotalPurchases)
	assert.Equal(t, 1, buyerStats.ActivePurchases)
	assert.Equal(t, 1, buyerStats.TotalFavorites)
	assert.Equal(t, 100, buyerStats.TotalSpent)
}

// TestStatsService_Admin - платформенные агрегаты
func TestStatsService_Admin(t *testing.T) {
	_, svc := newTestContainer()
	student := registerStudent(t, svc, "s@uni.edu")
	pendingStudent := registerStudent(t, svc, "p@uni.edu")
	buyer := registerBuyer(t, svc, "b@co.com")
	_ = pendingStudent

	listed := createListedProject(t, svc, student.User.ID, "Listed", 300)
	_, err := svc.OrderService.Create(buyer.User.ID, listed.ID)
	require.NoError(t, err)

	statsRaw, err := svc.StatsService.ForUser("any", models.UserRoleAdmin)
	require.NoError(t, err)
	stats := statsRaw.(*dto.AdminStats)

	assert.Equal(t, int64(2), stats.TotalStudents)
	// Оба студента зарегистрированы и еще не проверены
	assert.Equal(t, 2, stats.PendingVerifications)
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 300, stats.MonthlyGMV)
}
