package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

const featuredCategoryLimit = 3

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(r *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: r}
}

type Storefront struct {
	Categories []entity.Category `json:"categories"`
	Products   []entity.Product  `json:"products"`
}

// Home is the landing page data set: the three newest featured categories
// plus all featured products.
func (s *CatalogService) Home() (*Storefront, error) {
	cats, err := s.Repo.FeaturedCategories(featuredCategoryLimit)
	if err != nil {
		return nil, err
	}
	products, err := s.Repo.FeaturedProducts()
	if err != nil {
		return nil, err
	}
	return &Storefront{Categories: cats, Products: products}, nil
}

type ProductDetail struct {
	Product *entity.Product  `json:"product"`
	Related []entity.Product `json:"related"`
}

func (s *CatalogService) Detail(slug string) (*ProductDetail, error) {
	p, err := s.Repo.ProductBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	related, err := s.Repo.RelatedProducts(p.ID, p.CategoryID)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: p, Related: related}, nil
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.Repo.ActiveCategories()
}

type CategoryProducts struct {
	Category *entity.Category  `json:"category"`
	Products []entity.Product  `json:"products"`
	All      []entity.Category `json:"categories"`
}

func (s *CatalogService) ByCategory(slug string) (*CategoryProducts, error) {
	c, err := s.Repo.CategoryBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	products, err := s.Repo.ActiveProductsByCategory(c.ID)
	if err != nil {
		return nil, err
	}
	all, err := s.Repo.ActiveCategories()
	if err != nil {
		return nil, err
	}
	return &CategoryProducts{Category: c, Products: products, All: all}, nil
}

func (s *CatalogService) Shop() ([]entity.Product, error) {
	return s.Repo.AllProducts()
}

// Search matches product titles case-insensitively. An empty query
// returns an empty set, not the whole catalog.
func (s *CatalogService) Search(query string) ([]entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Product{}, nil
	}
	return s.Repo.SearchByTitle(strings.ToLower(query))
}
