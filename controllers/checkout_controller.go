package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"
)

type CheckoutController struct {
	Svc       *services.CheckoutService
	Cart      *services.CartService
	Addresses *services.AddressService
}

func NewCheckoutController(s *services.CheckoutService, cart *services.CartService, addr *services.AddressService) *CheckoutController {
	return &CheckoutController{Svc: s, Cart: cart, Addresses: addr}
}

// GET /checkout — read-only preview: the cart lines plus the user's
// addresses to pick from. Doing the mutation on GET (as the original did)
// was replaced with the POST below.
func (h *CheckoutController) Preview(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := h.Cart.View(uid)
	if err != nil {
		fail(c, err)
		return
	}
	addrs, err := h.Addresses.List(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "addresses": addrs})
}

// POST /checkout?address=<id> — turns every cart line into a Pending
// order and empties the cart. The address is optional; omitting it
// succeeds with a warning.
func (h *CheckoutController) Checkout(c *gin.Context) {
	var addressID *uint
	if raw := c.Query("address"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			resp.BadRequest(c, "invalid address id")
			return
		}
		v := uint(id)
		addressID = &v
	}

	result, err := h.Svc.Checkout(utils.CurrentUserID(c), addressID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, result)
}
