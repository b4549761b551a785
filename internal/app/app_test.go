package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"collabotree_backend/internal/config"
	"collabotree_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Database.Driver = "memory"
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "collabotree.sid"
	cfg.Session.TTLHours = 1
	cfg.Session.Store = "memory"
	return cfg
}

// testClient - HTTP клиент со своей cookie jar (своей сессией)
type testClient struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newTestClient(t *testing.T, base string) *testClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, base: base, client: &http.Client{Jar: jar}}
}

func (c *testClient) do(method, path string, body interface{}) (*http.Response, string) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(c.t, err)
	return res, string(raw)
}

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := SetupRouter(testConfig(), repositories.NewMemory())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// TestAPI_MarketplaceFlow - сквозной "золотой путь":
// регистрация обеих сторон, публикация, избранное, покупка, статистика
func TestAPI_MarketplaceFlow(t *testing.T) {
	server := startServer(t)

	buyer := newTestClient(t, server.URL)
	student := newTestClient(t, server.URL)

	// --- 1. Регистрация покупателя ---
	res, body := buyer.do("POST", "/api/auth/register", map[string]interface{}{
		"email":    "b@co.com",
		"password": "pw123456",
		"name":     "Buyer",
		"role":     "BUYER",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"b@co.com"`)
	assert.NotContains(t, body, "pw123456", "пароль не должен утекать в ответ")
	assert.NotContains(t, body, "passwordHash")

	// --- 2. Регистрация студента ---
	res, body = student.do("POST", "/api/auth/register", map[string]interface{}{
		"email":      "s@uni.edu",
		"password":   "pw123456",
		"name":       "Student",
		"role":       "STUDENT",
		"university": "X",
		"studentId":  "1",
		"program":    "CS",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"PENDING"`)

	// --- 3. Студент публикует проект ---
	res, body = student.do("POST", "/api/projects", map[string]interface{}{
		"title":        "Landing Page",
		"description":  "I'll build a landing page",
		"skills":       []string{"React"},
		"tags":         []string{"Web Development"},
		"price":        100,
		"deliveryTime": 2,
		"status":       "LISTED",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var project struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &project))
	require.NotEmpty(t, project.ID)

	// --- 4. Каталог: проект виден с владельцем ---
	res, body = buyer.do("GET", "/api/projects?search=landing", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, project.ID)
	assert.Contains(t, body, `"owner"`)
	assert.NotContains(t, body, "passwordHash")

	// --- 5. Избранное: второй раз дает 400 ---
	res, body = buyer.do("POST", "/api/favorites", map[string]interface{}{"projectId": project.ID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = buyer.do("POST", "/api/favorites", map[string]interface{}{"projectId": project.ID})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Project already in favorites")

	// --- 6. Покупка: заказ сразу PAID с зафиксированной ценой ---
	res, body = buyer.do("POST", "/api/orders", map[string]interface{}{"projectId": project.ID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"PAID"`)
	assert.Contains(t, body, `"amount":100`)

	// --- 7. Статистика покупателя ---
	res, body = buyer.do("GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"totalSpent":100`)
	assert.Contains(t, body, `"totalFavorites":1`)

	// --- 8. Статистика студента ---
	res, body = student.do("GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"totalEarnings":100`)
}

// TestAPI_AuthAndRoleGates - анонимы и чужие роли отсекаются
func TestAPI_AuthAndRoleGates(t *testing.T) {
	server := startServer(t)

	anon := newTestClient(t, server.URL)

	// Аноним не видит /me и защищенные роуты
	res, body := anon.do("GET", "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Authentication required")

	res, _ = anon.do("GET", "/api/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Каталог публичный
	res, _ = anon.do("GET", "/api/projects", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Покупатель не может публиковать проекты
	buyer := newTestClient(t, server.URL)
	res, _ = buyer.do("POST", "/api/auth/register", map[string]interface{}{
		"email":    "b@co.com",
		"password": "pw123456",
		"name":     "Buyer",
		"role":     "BUYER",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = buyer.do("POST", "/api/projects", map[string]interface{}{
		"title":        "Nope",
		"description":  "d",
		"price":        10,
		"deliveryTime": 1,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Insufficient permissions")

	// Покупатель не админ
	res, _ = buyer.do("GET", "/api/admin/verification-queue", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestAPI_SessionLifecycle - logout гасит сессию, cookie перестает работать
func TestAPI_SessionLifecycle(t *testing.T) {
	server := startServer(t)
	client := newTestClient(t, server.URL)

	res, _ := client.do("POST", "/api/auth/register", map[string]interface{}{
		"email":    "b@co.com",
		"password": "pw123456",
		"name":     "Buyer",
		"role":     "BUYER",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := client.do("GET", "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "b@co.com")

	res, body = client.do("POST", "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Logged out successfully")

	res, _ = client.do("GET", "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Повторный вход тем же паролем
	res, _ = client.do("POST", "/api/auth/login", map[string]interface{}{
		"email":    "b@co.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Неверный пароль
	res, body = client.do("POST", "/api/auth/login", map[string]interface{}{
		"email":    "b@co.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid credentials")
}

// TestAPI_AdminVerificationFlow - очередь модерации и решение через HTTP.
// Админ появляется через first-admin сид, самостоятельная регистрация
// с ролью ADMIN закрыта.
func TestAPI_AdminVerificationFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.Seed.FirstAdminEmail = "root@collabotree.com"
	cfg.Seed.FirstAdminPassword = "admin123"

	repos := repositories.NewMemory()
	require.NoError(t, seedFirstAdmin(repos, cfg))

	server := httptest.NewServer(SetupRouter(cfg, repos))
	t.Cleanup(server.Close)

	student := newTestClient(t, server.URL)
	res, body := student.do("POST", "/api/auth/register", map[string]interface{}{
		"email":      "s@uni.edu",
		"password":   "pw123456",
		"name":       "Student",
		"role":       "STUDENT",
		"university": "MIT",
		"studentId":  "STU-1",
		"program":    "CS",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var auth struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &auth))

	// Студент загружает документ (мок)
	res, body = student.do("POST", "/api/student/verify-id", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "ID document uploaded successfully")
	assert.Contains(t, body, "STU-2024-123456")

	// Студенту админка закрыта
	res, _ = student.do("GET", "/api/admin/verification-queue", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Админ входит и видит студента в очереди
	admin := newTestClient(t, server.URL)
	res, body = admin.do("POST", "/api/auth/login", map[string]interface{}{
		"email":    "root@collabotree.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = admin.do("GET", "/api/admin/verification-queue", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, auth.User.ID)
	assert.Contains(t, body, "s@uni.edu")

	// Решение: APPROVED с заметкой
	res, body = admin.do("POST", "/api/admin/verify/"+auth.User.ID, map[string]interface{}{
		"status": "APPROVED",
		"notes":  "Verified against registry",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"APPROVED"`)

	// Очередь опустела
	res, body = admin.do("GET", "/api/admin/verification-queue", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, auth.User.ID)

	// Решение попало в журнал
	res, body = admin.do("GET", "/api/admin/audit-logs", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "VERIFY_STUDENT")

	// Студент получил уведомление и отмечает его прочитанным
	res, body = student.do("GET", "/api/notifications", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "VERIFICATION_UPDATE")

	var notifications []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &notifications))
	require.NotEmpty(t, notifications)

	res, body = student.do("POST", "/api/notifications/"+notifications[0].ID+"/read", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"readAt"`)
	assert.NotContains(t, body, `"readAt":null`)
}
