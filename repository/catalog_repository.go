package repository

import (
	"strings"

	"gorm.io/gorm"

	"storefront/entity"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// FeaturedCategories returns active+featured categories, newest first,
// capped at limit.
func (r *CatalogRepository) FeaturedCategories(limit int) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) FeaturedProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *CatalogRepository) ActiveCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) CategoryBySlug(slug string) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) ProductBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("slug = ?", slug).Preload("Category").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) ActiveProductsByCategory(categoryID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("is_active = ? AND category_id = ?", true, categoryID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// RelatedProducts returns active products sharing a category, excluding
// the product itself.
func (r *CatalogRepository) RelatedProducts(productID, categoryID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("is_active = ? AND category_id = ? AND id <> ?", true, categoryID, productID).
		Find(&products).Error
	return products, err
}

func (r *CatalogRepository) AllProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Order("created_at DESC").Find(&products).Error
	return products, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchByTitle does a case-insensitive substring match on product title.
// LIKE metacharacters in the query match themselves, so "100%" only finds
// titles containing the literal "100%".
func (r *CatalogRepository) SearchByTitle(query string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(query)+"%").
		Find(&products).Error
	return products, err
}

func (r *CatalogRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}
