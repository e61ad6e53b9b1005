package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/entity"
)

func TestCartAdd_FirstAddCreatesSingleItem(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shopper@example.com")
	cat := createCategory(t, db, "Clothing", "clothing", true, time.Now())
	createProduct(t, db, "Plain White Shirt", "plain-white-shirt", cat.ID)

	svc := newCartService(db)
	item, err := svc.Add(user.ID, "plain-white-shirt")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCartAdd_RepeatIncrementsQuantity(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shopper@example.com")
	cat := createCategory(t, db, "Clothing", "clothing", true, time.Now())
	createProduct(t, db, "Denim Jacket", "denim-jacket", cat.ID)

	svc := newCartService(db)
	const n = 5
	for i := 0; i < n; i++ {
		_, err := svc.Add(user.ID, "denim-jacket")
		require.NoError(t, err)
	}

	var items []entity.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1, "repeated adds must merge into one row")
	assert.Equal(t, n, items[0].Quantity)
}

func TestCartAdd_UnknownSlug(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shopper@example.com")

	svc := newCartService(db)
	_, err := svc.Add(user.ID, "no-such-product")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Count(&count).Error)
	assert.Zero(t, count, "failed add must not create a cart")
}

func TestCartAdd_Unauthenticated(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	_, err := svc.Add(0, "anything")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCartView_EmptyWithoutCart(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shopper@example.com")

	svc := newCartService(db)
	items, err := svc.View(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartView_ReturnsItemsWithProducts(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shopper@example.com")
	cat := createCategory(t, db, "Clothing", "clothing", true, time.Now())
	createProduct(t, db, "Plain White Shirt", "plain-white-shirt", cat.ID)
	createProduct(t, db, "Denim Jacket", "denim-jacket", cat.ID)

	svc := newCartService(db)
	_, err := svc.Add(user.ID, "plain-white-shirt")
	require.NoError(t, err)
	_, err = svc.Add(user.ID, "denim-jacket")
	require.NoError(t, err)

	items, err := svc.View(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotEmpty(t, items[0].Product.Title)
}
