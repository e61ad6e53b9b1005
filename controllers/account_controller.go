package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"
)

// AccountController serves the profile page and the address book.
type AccountController struct {
	Addresses *services.AddressService
	Orders    *services.OrderService
}

func NewAccountController(a *services.AddressService, o *services.OrderService) *AccountController {
	return &AccountController{Addresses: a, Orders: o}
}

// GET /profile
func (h *AccountController) Profile(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	addrs, err := h.Addresses.List(uid)
	if err != nil {
		fail(c, err)
		return
	}
	orders, err := h.Orders.ListForUser(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"addresses": addrs, "orders": orders})
}

// GET /address/add — the form schema, for parity with the form-rendering
// original.
func (h *AccountController) AddressForm(c *gin.Context) {
	resp.OK(c, gin.H{"fields": []string{"locality", "city", "state"}})
}

// POST /address/add
func (h *AccountController) AddAddress(c *gin.Context) {
	var in services.AddressIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Addresses.Add(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"address": a})
}

// POST /address/remove/:id
func (h *AccountController) RemoveAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid address id")
		return
	}
	if err := h.Addresses.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": id})
}
