package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront/entity"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts a starter catalog so the storefront is browsable
// before an admin has created anything.
func SeedCatalog(db *gorm.DB) error {
	categories := []entity.Category{
		{Name: "Clothing", Slug: "clothing", IsActive: true, IsFeatured: true},
		{Name: "Footwear", Slug: "footwear", IsActive: true, IsFeatured: true},
		{Name: "Accessories", Slug: "accessories", IsActive: true, IsFeatured: true},
	}
	for i := range categories {
		if err := db.Where(entity.Category{Slug: categories[i].Slug}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	products := []entity.Product{
		{Title: "Plain White Shirt", Slug: "plain-white-shirt", Price: 1999, CategoryID: categories[0].ID, IsActive: true, IsFeatured: true},
		{Title: "Denim Jacket", Slug: "denim-jacket", Price: 5499, CategoryID: categories[0].ID, IsActive: true, IsFeatured: true},
		{Title: "Canvas Sneakers", Slug: "canvas-sneakers", Price: 3999, CategoryID: categories[1].ID, IsActive: true, IsFeatured: true},
		{Title: "Leather Belt", Slug: "leather-belt", Price: 1499, CategoryID: categories[2].ID, IsActive: true},
	}
	for i := range products {
		if err := db.Where(entity.Product{Slug: products[i].Slug}).
			FirstOrCreate(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
