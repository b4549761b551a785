package repositories

import (
	"testing"

	"collabotree_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos() *Repositories {
	return NewMemory()
}

func createUser(t *testing.T, repos *Repositories, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test User",
		Role:         role,
	}
	require.NoError(t, repos.Users.Create(user))
	return user
}

func createProject(t *testing.T, repos *Repositories, ownerID, title, slug string, status models.ProjectStatus) *models.Project {
	t.Helper()
	project := &models.Project{
		OwnerID:      ownerID,
		Title:        title,
		Slug:         slug,
		Description:  "description",
		Skills:       []string{"Go"},
		Tags:         []string{"Web Development"},
		Price:        100,
		Status:       status,
		DeliveryTime: 2,
	}
	require.NoError(t, repos.Projects.Create(project))
	return project
}

// TestUserRepository_CreateAssignsDefaults - Create назначает id и created_at
func TestUserRepository_CreateAssignsDefaults(t *testing.T) {
	repos := newTestRepos()

	user := createUser(t, repos, "a@uni.edu", models.UserRoleStudent)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repos.Users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@uni.edu", found.Email)
}

// TestUserRepository_DuplicateEmail - повторный email отклоняется
func TestUserRepository_DuplicateEmail(t *testing.T) {
	repos := newTestRepos()

	createUser(t, repos, "dup@uni.edu", models.UserRoleStudent)
	err := repos.Users.Create(&models.User{
		Email:        "dup@uni.edu",
		PasswordHash: "hash",
		Name:         "Other",
		Role:         models.UserRoleBuyer,
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

// TestUserRepository_NotFound - неизвестный id и email дают ErrUserNotFound
func TestUserRepository_NotFound(t *testing.T) {
	repos := newTestRepos()

	_, err := repos.Users.FindByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repos.Users.FindByEmail("missing@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// TestUserRepository_FindByIDs - батч пропускает отсутствующие id
func TestUserRepository_FindByIDs(t *testing.T) {
	repos := newTestRepos()

	u1 := createUser(t, repos, "u1@uni.edu", models.UserRoleStudent)
	u2 := createUser(t, repos, "u2@co.com", models.UserRoleBuyer)

	found, err := repos.Users.FindByIDs([]string{u1.ID, u2.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "u1@uni.edu", found[u1.ID].Email)
}

// TestProjectRepository_Defaults - дефолты: DRAFT, PUBLIC, 3 ревизии
func TestProjectRepository_Defaults(t *testing.T) {
	repos := newTestRepos()
	owner := createUser(t, repos, "o@uni.edu", models.UserRoleStudent)

	project := &models.Project{
		OwnerID:      owner.ID,
		Title:        "No Status",
		Slug:         "no-status",
		Description:  "d",
		Price:        50,
		DeliveryTime: 1,
	}
	require.NoError(t, repos.Projects.Create(project))

	assert.Equal(t, models.ProjectStatusDraft, project.Status)
	assert.Equal(t, models.VisibilityPublic, project.Visibility)
	assert.Equal(t, 3, project.Revisions)
}

// TestProjectRepository_FindOrdering - список отдается новыми сверху
func TestProjectRepository_FindOrdering(t *testing.T) {
	repos := newTestRepos()
	owner := createUser(t, repos, "o@uni.edu", models.UserRoleStudent)

	createProject(t, repos, owner.ID, "First", "first", models.ProjectStatusListed)
	createProject(t, repos, owner.ID, "Second", "second", models.ProjectStatusListed)
	createProject(t, repos, owner.ID, "Third", "third", models.ProjectStatusListed)

	projects, err := repos.Projects.Find(ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "Third", projects[0].Title)
	assert.Equal(t, "First", projects[2].Title)
}

// TestProjectRepository_FindFilters - фильтры по владельцу, статусу и пагинация
func TestProjectRepository_FindFilters(t *testing.T) {
	repos := newTestRepos()
	owner1 := createUser(t, repos, "o1@uni.edu", models.UserRoleStudent)
	owner2 := createUser(t, repos, "o2@uni.edu", models.UserRoleStudent)

	createProject(t, repos, owner1.ID, "Draft", "draft-1", models.ProjectStatusDraft)
	createProject(t, repos, owner1.ID, "Listed", "listed-1", models.ProjectStatusListed)
	createProject(t, repos, owner2.ID, "Other", "listed-2", models.ProjectStatusListed)

	byOwner, err := repos.Projects.Find(ProjectFilter{OwnerID: owner1.ID})
	require.NoError(t, err)
	assert.Len(t, byOwner, 2)

	listed, err := repos.Projects.Find(ProjectFilter{Status: models.ProjectStatusListed})
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	paged, err := repos.Projects.Find(ProjectFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Listed", paged[0].Title)
}

// TestProjectRepository_Update - shallow merge: меняются только переданные поля
func TestProjectRepository_Update(t *testing.T) {
	repos := newTestRepos()
	owner := createUser(t, repos, "o@uni.edu", models.UserRoleStudent)
	project := createProject(t, repos, owner.ID, "Original", "original", models.ProjectStatusDraft)

	newTitle := "Updated"
	newStatus := models.ProjectStatusListed
	updated, err := repos.Projects.Update(project.ID, ProjectUpdate{
		Title:  &newTitle,
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, models.ProjectStatusListed, updated.Status)
	// Нетронутые поля сохраняются
	assert.Equal(t, "description", updated.Description)
	assert.Equal(t, 100, updated.Price)

	_, err = repos.Projects.Update("missing", ProjectUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

// TestProjectRepository_Search - поиск только по LISTED+PUBLIC, регистронезависимый
func TestProjectRepository_Search(t *testing.T) {
	repos := newTestRepos()
	owner := createUser(t, repos, "o@uni.edu", models.UserRoleStudent)

	createProject(t, repos, owner.ID, "React Dashboard", "react-dashboard", models.ProjectStatusListed)
	createProject(t, repos, owner.ID, "React Draft", "react-draft", models.ProjectStatusDraft)

	results, err := repos.Projects.Search("react", ProjectSearchFilter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "React Dashboard", results[0].Title)

	// Совпадение по навыкам тоже считается
	bySkill, err := repos.Projects.Search("go", ProjectSearchFilter{})
	require.NoError(t, err)
	assert.Len(t, bySkill, 1)

	none, err := repos.Projects.Search("kotlin", ProjectSearchFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestProjectRepository_SearchCategory - фильтр категории по тегам;
// "All Categories" не сужает выдачу
func TestProjectRepository_SearchCategory(t *testing.T) {
	repos := newTestRepos()
	owner := createUser(t, repos, "o@uni.edu", models.UserRoleStudent)
	createProject(t, repos, owner.ID, "React Dashboard", "react-dashboard", models.ProjectStatusListed)

	matched, err := repos.Projects.Search("react", ProjectSearchFilter{Category: "Web Development"})
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	all, err := repos.Projects.Search("react", ProjectSearchFilter{Category: "All Categories"})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	other, err := repos.Projects.Search("react", ProjectSearchFilter{Category: "Design"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

// TestFavoriteRepository_Uniqueness - дубликат пары отклоняется,
// удаление идемпотентно
func TestFavoriteRepository_Uniqueness(t *testing.T) {
	repos := newTestRepos()
	buyer := createUser(t, repos, "b@co.com", models.UserRoleBuyer)
	owner := createUser(t, repos, "o@uni.edu", models.UserRoleStudent)
	project := createProject(t, repos, owner.ID, "Fav", "fav", models.ProjectStatusListed)

	first := &models.Favorite{BuyerID: buyer.ID, ProjectID: project.ID}
	require.NoError(t, repos.Favorites.Create(first))

	dup := &models.Favorite{BuyerID: buyer.ID, ProjectID: project.ID}
	assert.ErrorIs(t, repos.Favorites.Create(dup), ErrDuplicateFavorite)

	exists, err := repos.Favorites.Exists(buyer.ID, project.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repos.Favorites.Delete(buyer.ID, project.ID))
	// Повторное удаление - не ошибка
	require.NoError(t, repos.Favorites.Delete(buyer.ID, project.ID))

	exists, err = repos.Favorites.Exists(buyer.ID, project.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestOrderRepository_Filters - фильтры по сторонам сделки и статусу
func TestOrderRepository_Filters(t *testing.T) {
	repos := newTestRepos()
	buyer := createUser(t, repos, "b@co.com", models.UserRoleBuyer)
	student := createUser(t, repos, "s@uni.edu", models.UserRoleStudent)
	project := createProject(t, repos, student.ID, "P", "p", models.ProjectStatusListed)

	order := &models.Order{
		ProjectID: project.ID,
		BuyerID:   buyer.ID,
		StudentID: student.ID,
		Amount:    100,
	}
	require.NoError(t, repos.Orders.Create(order))
	assert.Equal(t, models.OrderStatusPending, order.Status)

	paid := models.OrderStatusPaid
	updated, err := repos.Orders.Update(order.ID, OrderUpdate{Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)

	byBuyer, err := repos.Orders.Find(OrderFilter{BuyerID: buyer.ID})
	require.NoError(t, err)
	assert.Len(t, byBuyer, 1)

	byStudent, err := repos.Orders.Find(OrderFilter{StudentID: student.ID, Status: models.OrderStatusPaid})
	require.NoError(t, err)
	assert.Len(t, byStudent, 1)

	none, err := repos.Orders.Find(OrderFilter{BuyerID: buyer.ID, Status: models.OrderStatusRefunded})
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestProfileRepository_PendingQueue - в очереди только PENDING-профили
func TestProfileRepository_PendingQueue(t *testing.T) {
	repos := newTestRepos()
	s1 := createUser(t, repos, "s1@uni.edu", models.UserRoleStudent)
	s2 := createUser(t, repos, "s2@uni.edu", models.UserRoleStudent)

	require.NoError(t, repos.Profiles.CreateStudentProfile(&models.StudentProfile{
		UserID: s1.ID, University: "MIT", StudentID: "1", Program: "CS",
	}))
	approved := models.VerificationApproved
	require.NoError(t, repos.Profiles.CreateStudentProfile(&models.StudentProfile{
		UserID: s2.ID, University: "MIT", StudentID: "2", Program: "CS",
		VerificationStatus: approved,
	}))

	pending, err := repos.Profiles.FindPendingVerifications()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, s1.ID, pending[0].UserID)

	// Решение убирает профиль из очереди
	_, err = repos.Profiles.UpdateStudentProfile(s1.ID, StudentProfileUpdate{VerificationStatus: &approved})
	require.NoError(t, err)

	pending, err = repos.Profiles.FindPendingVerifications()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

// TestProfileRepository_SetVerification - заметки пишутся безусловно,
// nil стирает заметки предыдущего решения
func TestProfileRepository_SetVerification(t *testing.T) {
	repos := newTestRepos()
	s := createUser(t, repos, "s@uni.edu", models.UserRoleStudent)
	require.NoError(t, repos.Profiles.CreateStudentProfile(&models.StudentProfile{
		UserID: s.ID, University: "MIT", StudentID: "1", Program: "CS",
	}))

	notes := "Looks legit"
	profile, err := repos.Profiles.SetVerification(s.ID, models.VerificationApproved, &notes)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationApproved, profile.VerificationStatus)
	require.NotNil(t, profile.VerificationNotes)
	assert.Equal(t, "Looks legit", *profile.VerificationNotes)

	profile, err = repos.Profiles.SetVerification(s.ID, models.VerificationRejected, nil)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRejected, profile.VerificationStatus)
	assert.Nil(t, profile.VerificationNotes)

	_, err = repos.Profiles.SetVerification("ghost", models.VerificationApproved, nil)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// TestNotificationRepository_MarkRead - readAt проставляется один раз
func TestNotificationRepository_MarkRead(t *testing.T) {
	repos := newTestRepos()
	user := createUser(t, repos, "n@uni.edu", models.UserRoleStudent)

	notification := &models.Notification{
		UserID: user.ID,
		Type:   models.NotificationVerificationUpdate,
	}
	require.NoError(t, repos.Notifications.Create(notification))
	assert.Nil(t, notification.ReadAt)

	read, err := repos.Notifications.MarkRead(notification.ID)
	require.NoError(t, err)
	require.NotNil(t, read.ReadAt)

	_, err = repos.Notifications.MarkRead("missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
