package handlers

import (
	"net/http"

	"collabotree_backend/internal/middleware"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/services"
	"collabotree_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

// RegisterRoutes регистрирует маршруты заказов
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.RequireAuth())
	{
		orders.GET("", h.List)
		orders.POST("", middleware.RequireRoles(models.UserRoleBuyer), h.Create)
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	var query dto.OrderListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	views, err := h.orderService.List(middleware.GetUserID(c), middleware.GetUserRole(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(middleware.GetUserID(c), req.ProjectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
