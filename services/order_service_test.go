package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/entity"
	"storefront/repository"
)

func TestOrderList_NewestFirst(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shopper@example.com")
	cat := createCategory(t, db, "Clothing", "clothing", true, time.Now())
	p := createProduct(t, db, "Plain White Shirt", "plain-white-shirt", cat.ID)

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		o := &entity.Order{
			UserID: user.ID, ProductID: p.ID, Quantity: 1,
			Status: entity.OrderStatusPending, OrderedDate: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(o).Error)
	}

	svc := NewOrderService(repository.NewOrderRepository(db))
	orders, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.True(t, orders[0].OrderedDate.After(orders[1].OrderedDate))
	assert.True(t, orders[1].OrderedDate.After(orders[2].OrderedDate))
}

func TestOrderList_ScopedToUser(t *testing.T) {
	db := setupDB(t)
	a := createUser(t, db, "a@example.com")
	b := createUser(t, db, "b@example.com")
	cat := createCategory(t, db, "Clothing", "clothing", true, time.Now())
	p := createProduct(t, db, "Plain White Shirt", "plain-white-shirt", cat.ID)

	require.NoError(t, db.Create(&entity.Order{UserID: a.ID, ProductID: p.ID, Quantity: 1, Status: entity.OrderStatusPending, OrderedDate: time.Now()}).Error)

	svc := NewOrderService(repository.NewOrderRepository(db))
	orders, err := svc.ListForUser(b.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderUpdateStatus(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shopper@example.com")
	cat := createCategory(t, db, "Clothing", "clothing", true, time.Now())
	p := createProduct(t, db, "Plain White Shirt", "plain-white-shirt", cat.ID)

	o := &entity.Order{UserID: user.ID, ProductID: p.ID, Quantity: 1, Status: entity.OrderStatusPending, OrderedDate: time.Now()}
	require.NoError(t, db.Create(o).Error)

	svc := NewOrderService(repository.NewOrderRepository(db))
	require.NoError(t, svc.UpdateStatus(o.ID, entity.OrderStatusPacked))

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.OrderStatusPacked, got.Status)
}

func TestOrderUpdateStatus_UnknownStatus(t *testing.T) {
	db := setupDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))

	err := svc.UpdateStatus(1, "Lost In Transit")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"status"}, ve.Fields)
}

func TestOrderUpdateStatus_MissingOrder(t *testing.T) {
	db := setupDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	err := svc.UpdateStatus(42, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}
