package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /cart/add/:slug
func (h *CartController) Add(c *gin.Context) {
	item, err := h.Svc.Add(utils.CurrentUserID(c), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"item": item})
}

// GET /cart
func (h *CartController) View(c *gin.Context) {
	items, err := h.Svc.View(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
