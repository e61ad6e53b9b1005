package configs

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/entity"
)

var dbSeq atomic.Int64

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:cfg_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	db := setupDB(t)
	cfg := &Config{AdminEmail: "admin@example.com", AdminPassword: "secret"}

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg), "re-seeding must be a no-op")

	var admins []entity.User
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin", admins[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("secret")))
}

func TestSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, SeedAdmin(db, &Config{}))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

// A failed duplicate check must surface, not fall through to the insert.
func TestSeedAdmin_CountErrorSurfaces(t *testing.T) {
	db := setupDB(t)
	cfg := &Config{AdminEmail: "admin@example.com", AdminPassword: "secret"}

	require.NoError(t, db.Callback().Query().Before("gorm:query").
		Register("storefront:fail_user_query", func(tx *gorm.DB) {
			if _, ok := tx.Statement.Model.(*entity.User); ok {
				_ = tx.AddError(errors.New("query failure"))
			}
		}))
	err := SeedAdmin(db, cfg)
	require.Error(t, err)
	require.NoError(t, db.Callback().Query().Remove("storefront:fail_user_query"))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count, "no admin row may be created when the check fails")
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	var catCount, prodCount int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&catCount).Error)
	require.NoError(t, db.Model(&entity.Product{}).Count(&prodCount).Error)
	assert.Equal(t, int64(3), catCount)
	assert.Equal(t, int64(4), prodCount)
}
