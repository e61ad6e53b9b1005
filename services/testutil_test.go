package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/configs"
	"storefront/entity"
	"storefront/repository"
)

var dbSeq atomic.Int64

// setupDB opens a fresh in-memory database per test. Shared cache keeps
// gorm's pooled connections on the same database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createCategory(t *testing.T, db *gorm.DB, name, slug string, featured bool, createdAt time.Time) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name, Slug: slug, IsActive: true, IsFeatured: featured}
	require.NoError(t, db.Create(c).Error)
	require.NoError(t, db.Model(c).Update("created_at", createdAt).Error)
	c.CreatedAt = createdAt
	return c
}

func createProduct(t *testing.T, db *gorm.DB, title, slug string, categoryID uint) *entity.Product {
	t.Helper()
	p := &entity.Product{Title: title, Slug: slug, Price: 1000, CategoryID: categoryID, IsActive: true, IsFeatured: true}
	require.NoError(t, db.Create(p).Error)
	return p
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(db,
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewAddressRepository(db),
	)
}
