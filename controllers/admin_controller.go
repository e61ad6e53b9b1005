package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/entity"
	"storefront/pkg/resp"
	"storefront/repository"
	"storefront/services"
	"storefront/utils"
)

// AdminController manages the catalog and order lifecycle. All routes are
// role-gated to admin.
type AdminController struct {
	Catalog *repository.CatalogRepository
	Orders  *services.OrderService
}

func NewAdminController(cat *repository.CatalogRepository, o *services.OrderService) *AdminController {
	return &AdminController{Catalog: cat, Orders: o}
}

type categoryIn struct {
	Name       string `json:"name" binding:"required"`
	Slug       string `json:"slug"`
	IsActive   *bool  `json:"isActive"`
	IsFeatured bool   `json:"isFeatured"`
}

// POST /admin/categories
func (h *AdminController) CreateCategory(c *gin.Context) {
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Name)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	cat := entity.Category{Name: in.Name, Slug: in.Slug, IsActive: active, IsFeatured: in.IsFeatured}
	if err := h.Catalog.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"category": cat})
}

type productIn struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug"`
	Price      int64  `json:"price" binding:"min=0"`
	CategoryID uint   `json:"categoryId" binding:"required"`
	IsActive   *bool  `json:"isActive"`
	IsFeatured bool   `json:"isFeatured"`
}

// POST /admin/products
func (h *AdminController) CreateProduct(c *gin.Context) {
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Title)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	p := entity.Product{
		Title: in.Title, Slug: in.Slug, Price: in.Price,
		CategoryID: in.CategoryID, IsActive: active, IsFeatured: in.IsFeatured,
	}
	if err := h.Catalog.CreateProduct(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"product": p})
}

// PATCH /admin/orders/:id/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var in struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Orders.UpdateStatus(uint(id), in.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": in.Status})
}
