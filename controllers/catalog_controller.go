package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET / and GET /deals
func (h *CatalogController) Home(c *gin.Context) {
	data, err := h.Svc.Home()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, data)
}

// GET /product/:slug
func (h *CatalogController) Detail(c *gin.Context) {
	detail, err := h.Svc.Detail(c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /categories
func (h *CatalogController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// GET /category/:slug
func (h *CatalogController) ByCategory(c *gin.Context) {
	data, err := h.Svc.ByCategory(c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, data)
}

// GET /shop
func (h *CatalogController) Shop(c *gin.Context) {
	products, err := h.Svc.Shop()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

// GET /search?q=
func (h *CatalogController) Search(c *gin.Context) {
	query := c.Query("q")
	results, err := h.Svc.Search(query)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"query": query, "results": results})
}
