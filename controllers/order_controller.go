package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}
