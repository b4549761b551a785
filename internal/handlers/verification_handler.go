package handlers

import (
	"net/http"

	"collabotree_backend/internal/middleware"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/services"
	"collabotree_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// VerificationHandler обслуживает обе стороны верификации:
// студент подает документы, админ разбирает очередь.
type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewVerificationHandler(base *BaseHandler, verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		BaseHandler:         base,
		verificationService: verificationService,
	}
}

// RegisterRoutes регистрирует админские и студенческие маршруты верификации
func (h *VerificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/verification-queue", h.Queue)
		admin.POST("/verify/:userId", h.Verify)
		admin.GET("/audit-logs", h.AuditLogs)
	}

	student := rg.Group("/student")
	student.Use(middleware.RequireAuth(), middleware.RequireRoles(models.UserRoleStudent))
	{
		student.POST("/verify-id", h.SubmitID)
	}
}

func (h *VerificationHandler) Queue(c *gin.Context) {
	views, err := h.verificationService.PendingQueue()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *VerificationHandler) Verify(c *gin.Context) {
	var req dto.VerifyStudentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.verificationService.Verify(middleware.GetUserID(c), c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *VerificationHandler) AuditLogs(c *gin.Context) {
	limit, offset := ParsePagination(c)
	entries, err := h.verificationService.AuditLogs(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *VerificationHandler) SubmitID(c *gin.Context) {
	resp, err := h.verificationService.SubmitID(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
