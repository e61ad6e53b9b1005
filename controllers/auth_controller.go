package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /register
func (h *AuthController) Register(c *gin.Context) {
	var in services.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"user": user})
}

// POST /login
func (h *AuthController) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(in.Email, in.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}
