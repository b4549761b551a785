package repositories

import (
	"strings"
	"sync"
	"time"

	"collabotree_backend/internal/models"
)

// memStore - общий in-memory стор (бэкенд для демо и тестов).
// Слайсы хранят записи в порядке вставки; CreatedAt назначается при
// вставке, поэтому обратный обход слайса дает порядок "новые сверху"
// даже при совпадающих таймстемпах.
// В отличие от однопоточного оригинала gin обслуживает запросы
// параллельно, отсюда RWMutex на весь стор.
type memStore struct {
	mu sync.RWMutex

	users           []*models.User
	studentProfiles []*models.StudentProfile
	buyerProfiles   []*models.BuyerProfile
	projects        []*models.Project
	orders          []*models.Order
	favorites       []*models.Favorite
	reviews         []*models.Review
	notifications   []*models.Notification
	auditLogs       []*models.AuditLog
}

func newMemStore() *memStore {
	return &memStore{}
}

// ---------------- users ----------------

type memUserRepository struct {
	store *memStore
}

func (r *memUserRepository) FindByID(id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memUserRepository) FindByIDs(ids []string) (map[string]*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	result := make(map[string]*models.User, len(ids))
	for _, u := range r.store.users {
		if wanted[u.ID] {
			clone := *u
			result[u.ID] = &clone
		}
	}
	return result, nil
}

func (r *memUserRepository) FindByEmail(email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memUserRepository) Create(user *models.User) error {
	normalizeNewUser(user)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == user.Email {
			return ErrUserAlreadyExists
		}
	}

	clone := *user
	r.store.users = append(r.store.users, &clone)
	return nil
}

func (r *memUserRepository) Update(id string, update UserUpdate) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.ID == id {
			if update.Name != nil {
				u.Name = *update.Name
			}
			if update.AvatarURL != nil {
				u.AvatarURL = update.AvatarURL
			}
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memUserRepository) CountByRole(role models.UserRole) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, u := range r.store.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// ---------------- profiles ----------------

type memProfileRepository struct {
	store *memStore
}

func (r *memProfileRepository) GetStudentProfile(userID string) (*models.StudentProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.studentProfiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (r *memProfileRepository) GetStudentProfilesByUserIDs(userIDs []string) (map[string]*models.StudentProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}

	result := make(map[string]*models.StudentProfile, len(userIDs))
	for _, p := range r.store.studentProfiles {
		if wanted[p.UserID] {
			clone := *p
			result[p.UserID] = &clone
		}
	}
	return result, nil
}

func (r *memProfileRepository) CreateStudentProfile(profile *models.StudentProfile) error {
	normalizeNewStudentProfile(profile)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *profile
	r.store.studentProfiles = append(r.store.studentProfiles, &clone)
	return nil
}

func (r *memProfileRepository) UpdateStudentProfile(userID string, update StudentProfileUpdate) (*models.StudentProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.studentProfiles {
		if p.UserID == userID {
			if update.University != nil {
				p.University = *update.University
			}
			if update.StudentID != nil {
				p.StudentID = *update.StudentID
			}
			if update.Program != nil {
				p.Program = *update.Program
			}
			if update.VerificationStatus != nil {
				p.VerificationStatus = *update.VerificationStatus
			}
			if update.IDDocURL != nil {
				p.IDDocURL = update.IDDocURL
			}
			if update.SelfieURL != nil {
				p.SelfieURL = update.SelfieURL
			}
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (r *memProfileRepository) SetVerification(userID string, status models.VerificationStatus, notes *string) (*models.StudentProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.studentProfiles {
		if p.UserID == userID {
			p.VerificationStatus = status
			p.VerificationNotes = notes
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (r *memProfileRepository) FindPendingVerifications() ([]models.StudentProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var pending []models.StudentProfile
	for i := len(r.store.studentProfiles) - 1; i >= 0; i-- {
		p := r.store.studentProfiles[i]
		if p.VerificationStatus == models.VerificationPending {
			pending = append(pending, *p)
		}
	}
	return pending, nil
}

func (r *memProfileRepository) GetBuyerProfile(userID string) (*models.BuyerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.buyerProfiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (r *memProfileRepository) CreateBuyerProfile(profile *models.BuyerProfile) error {
	normalizeNewBuyerProfile(profile)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *profile
	r.store.buyerProfiles = append(r.store.buyerProfiles, &clone)
	return nil
}

// ---------------- projects ----------------

type memProjectRepository struct {
	store *memStore
}

func (r *memProjectRepository) FindByID(id string) (*models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.projects {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *memProjectRepository) FindByIDs(ids []string) (map[string]*models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	result := make(map[string]*models.Project, len(ids))
	for _, p := range r.store.projects {
		if wanted[p.ID] {
			clone := *p
			result[p.ID] = &clone
		}
	}
	return result, nil
}

func (r *memProjectRepository) FindBySlug(slug string) (*models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.projects {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *memProjectRepository) Find(filter ProjectFilter) ([]models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var projects []models.Project
	for i := len(r.store.projects) - 1; i >= 0; i-- {
		p := r.store.projects[i]
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		projects = append(projects, *p)
	}

	return paginate(projects, filter.Limit, filter.Offset), nil
}

func (r *memProjectRepository) Create(project *models.Project) error {
	normalizeNewProject(project)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.projects {
		if p.Slug == project.Slug {
			return ErrDuplicateSlug
		}
	}

	clone := *project
	r.store.projects = append(r.store.projects, &clone)
	return nil
}

func (r *memProjectRepository) Update(id string, update ProjectUpdate) (*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.projects {
		if p.ID == id {
			if update.Title != nil {
				p.Title = *update.Title
			}
			if update.Description != nil {
				p.Description = *update.Description
			}
			if update.Skills != nil {
				p.Skills = *update.Skills
			}
			if update.Tags != nil {
				p.Tags = *update.Tags
			}
			if update.Price != nil {
				p.Price = *update.Price
			}
			if update.Status != nil {
				p.Status = *update.Status
			}
			if update.Visibility != nil {
				p.Visibility = *update.Visibility
			}
			if update.CoverImageURL != nil {
				p.CoverImageURL = update.CoverImageURL
			}
			if update.DeliveryTime != nil {
				p.DeliveryTime = *update.DeliveryTime
			}
			if update.Revisions != nil {
				p.Revisions = *update.Revisions
			}
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *memProjectRepository) Search(query string, filter ProjectSearchFilter) ([]models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lowerQuery := strings.ToLower(query)
	applyCategory := filter.Category != "" && filter.Category != "All Categories"

	var projects []models.Project
	for i := len(r.store.projects) - 1; i >= 0; i-- {
		p := r.store.projects[i]
		if p.Status != models.ProjectStatusListed || p.Visibility != models.VisibilityPublic {
			continue
		}
		if lowerQuery != "" && !projectMatches(p, lowerQuery) {
			continue
		}
		if applyCategory && !containsString(p.Tags, filter.Category) {
			continue
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

func projectMatches(p *models.Project, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), lowerQuery) {
		return true
	}
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), lowerQuery) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// ---------------- orders ----------------

type memOrderRepository struct {
	store *memStore
}

func (r *memOrderRepository) FindByID(id string) (*models.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *memOrderRepository) Find(filter OrderFilter) ([]models.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var orders []models.Order
	for i := len(r.store.orders) - 1; i >= 0; i-- {
		o := r.store.orders[i]
		if filter.BuyerID != "" && o.BuyerID != filter.BuyerID {
			continue
		}
		if filter.StudentID != "" && o.StudentID != filter.StudentID {
			continue
		}
		if filter.ProjectID != "" && o.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

func (r *memOrderRepository) Create(order *models.Order) error {
	normalizeNewOrder(order)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *order
	r.store.orders = append(r.store.orders, &clone)
	return nil
}

func (r *memOrderRepository) Update(id string, update OrderUpdate) (*models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, o := range r.store.orders {
		if o.ID == id {
			if update.Status != nil {
				o.Status = *update.Status
			}
			clone := *o
			return &clone, nil
		}
	}
	return nil, ErrOrderNotFound
}

// ---------------- favorites ----------------

type memFavoriteRepository struct {
	store *memStore
}

func (r *memFavoriteRepository) FindByBuyer(buyerID string) ([]models.Favorite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var favorites []models.Favorite
	for i := len(r.store.favorites) - 1; i >= 0; i-- {
		f := r.store.favorites[i]
		if f.BuyerID == buyerID {
			favorites = append(favorites, *f)
		}
	}
	return favorites, nil
}

func (r *memFavoriteRepository) Create(favorite *models.Favorite) error {
	touchBase(&favorite.BaseModel)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.favorites {
		if f.BuyerID == favorite.BuyerID && f.ProjectID == favorite.ProjectID {
			return ErrDuplicateFavorite
		}
	}

	clone := *favorite
	r.store.favorites = append(r.store.favorites, &clone)
	return nil
}

func (r *memFavoriteRepository) Delete(buyerID, projectID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, f := range r.store.favorites {
		if f.BuyerID == buyerID && f.ProjectID == projectID {
			r.store.favorites = append(r.store.favorites[:i], r.store.favorites[i+1:]...)
			return nil
		}
	}
	// идемпотентно: отсутствие пары - no-op
	return nil
}

func (r *memFavoriteRepository) Exists(buyerID, projectID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, f := range r.store.favorites {
		if f.BuyerID == buyerID && f.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

// ---------------- reviews ----------------

type memReviewRepository struct {
	store *memStore
}

func (r *memReviewRepository) Create(review *models.Review) error {
	touchBase(&review.BaseModel)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *review
	r.store.reviews = append(r.store.reviews, &clone)
	return nil
}

func (r *memReviewRepository) FindByOrderID(orderID string) (*models.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rev := range r.store.reviews {
		if rev.OrderID == orderID {
			clone := *rev
			return &clone, nil
		}
	}
	return nil, ErrReviewNotFound
}

func (r *memReviewRepository) FindByOrderIDs(orderIDs []string) ([]models.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}

	var reviews []models.Review
	for i := len(r.store.reviews) - 1; i >= 0; i-- {
		rev := r.store.reviews[i]
		if wanted[rev.OrderID] {
			reviews = append(reviews, *rev)
		}
	}
	return reviews, nil
}

// ---------------- notifications ----------------

type memNotificationRepository struct {
	store *memStore
}

func (r *memNotificationRepository) Create(notification *models.Notification) error {
	touchBase(&notification.BaseModel)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *notification
	r.store.notifications = append(r.store.notifications, &clone)
	return nil
}

func (r *memNotificationRepository) FindByID(id string) (*models.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, n := range r.store.notifications {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, ErrNotificationNotFound
}

func (r *memNotificationRepository) FindByUser(userID string) ([]models.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var notifications []models.Notification
	for i := len(r.store.notifications) - 1; i >= 0; i-- {
		n := r.store.notifications[i]
		if n.UserID == userID {
			notifications = append(notifications, *n)
		}
	}
	return notifications, nil
}

func (r *memNotificationRepository) MarkRead(id string) (*models.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.notifications {
		if n.ID == id {
			now := time.Now()
			n.ReadAt = &now
			clone := *n
			return &clone, nil
		}
	}
	return nil, ErrNotificationNotFound
}

// ---------------- audit logs ----------------

type memAuditLogRepository struct {
	store *memStore
}

func (r *memAuditLogRepository) Create(entry *models.AuditLog) error {
	touchBase(&entry.BaseModel)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *entry
	r.store.auditLogs = append(r.store.auditLogs, &clone)
	return nil
}

func (r *memAuditLogRepository) Find(limit, offset int) ([]models.AuditLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var entries []models.AuditLog
	for i := len(r.store.auditLogs) - 1; i >= 0; i-- {
		entries = append(entries, *r.store.auditLogs[i])
	}
	return paginate(entries, limit, offset), nil
}
