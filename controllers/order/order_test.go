package orderControllers

import (
	"fmt"
	"strings"
	"testing"

	cartControllers "github.com/nmihaylov96/sportzone-api/controllers/cart"
	"github.com/nmihaylov96/sportzone-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.NotificationIntent{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Username: "ivan", Email: "ivan@example.com", Password: "x", FirstName: "Ivan"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price string, discounted string) models.Product {
	t.Helper()
	p := models.Product{
		Name:          name,
		NameEn:        name,
		Description:   "d",
		DescriptionEn: "d",
		Price:         decimal.RequireFromString(price),
		CategoryID:    1,
		Image:         "img.jpg",
		Stock:         10,
	}
	if discounted != "" {
		p.DiscountedPrice = decimal.NullDecimal{Decimal: decimal.RequireFromString(discounted), Valid: true}
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func shipping() PlaceOrderRequest {
	return PlaceOrderRequest{Address: "ul. Vitosha 15", City: "Sofia", Phone: "+359888123456"}
}

func TestPlaceOrderSnapshotsCurrentPrices(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	p1 := createTestProduct(t, db, "running shoes", "100.00", "")
	p2 := createTestProduct(t, db, "football", "80.00", "50.00")

	_, err := cartControllers.AddItem(db, user.ID, p1.ID, 2)
	require.NoError(t, err)
	_, err = cartControllers.AddItem(db, user.ID, p2.ID, 1)
	require.NoError(t, err)

	order, err := PlaceOrder(db, user, shipping())
	require.NoError(t, err)

	// 2x100 + 1x50 (discounted price wins over base).
	assert.True(t, order.Total.Equal(decimal.RequireFromString("250.00")),
		"total = %s", order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, sum.Equal(order.Total), "item sum %s != total %s", sum, order.Total)

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.EqualValues(t, 0, cartCount, "cart must be empty after checkout")

	var intents []models.NotificationIntent
	db.Find(&intents)
	require.Len(t, intents, 1)
	assert.Equal(t, models.NotificationOrderConfirmation, intents[0].Kind)
	assert.Equal(t, order.ID, intents[0].OrderID)
}

func TestPlaceOrderPriceChangeAfterAddToCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	p := createTestProduct(t, db, "jersey", "40.00", "")

	_, err := cartControllers.AddItem(db, user.ID, p.ID, 3)
	require.NoError(t, err)

	// Catalog price changes while the item sits in the cart; the order
	// must charge the price current at checkout.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", p.ID).
		Update("price", decimal.RequireFromString("45.00")).Error)

	order, err := PlaceOrder(db, user, shipping())
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("135.00")), "total = %s", order.Total)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	_, err := PlaceOrder(db, user, shipping())
	require.ErrorIs(t, err, ErrEmptyCart)

	var orders, intents int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.NotificationIntent{}).Count(&intents)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 0, intents)
}

func TestPlaceOrderIdempotencyKey(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	p := createTestProduct(t, db, "ball", "30.00", "")

	_, err := cartControllers.AddItem(db, user.ID, p.ID, 1)
	require.NoError(t, err)

	req := shipping()
	req.IdempotencyKey = "checkout-abc-123"

	first, err := PlaceOrder(db, user, req)
	require.NoError(t, err)

	// Client retries the same submission; meanwhile something new
	// landed in the cart. The retry must return the original order and
	// leave the new cart line alone.
	_, err = cartControllers.AddItem(db, user.ID, p.ID, 5)
	require.NoError(t, err)

	second, err := PlaceOrder(db, user, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.EqualValues(t, 1, orders)

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.EqualValues(t, 1, cartCount)
}

func TestPlaceOrderOneLinePerProduct(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	for i := 0; i < 4; i++ {
		p := createTestProduct(t, db, fmt.Sprintf("item-%d", i), "10.00", "")
		_, err := cartControllers.AddItem(db, user.ID, p.ID, i+1)
		require.NoError(t, err)
	}

	order, err := PlaceOrder(db, user, shipping())
	require.NoError(t, err)
	assert.Len(t, order.Items, 4)
	// 1+2+3+4 lines of 10.00
	assert.True(t, order.Total.Equal(decimal.RequireFromString("100.00")), "total = %s", order.Total)
}

func TestSetStatusAppendsIntentOnlyOnChange(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	p := createTestProduct(t, db, "gloves", "20.00", "")
	_, err := cartControllers.AddItem(db, user.ID, p.ID, 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, user, shipping())
	require.NoError(t, err)

	updated, changed, err := SetStatus(db, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	var intents []models.NotificationIntent
	db.Where("kind = ?", models.NotificationStatusChange).Find(&intents)
	require.Len(t, intents, 1)
	assert.Equal(t, models.OrderStatusPending, intents[0].OldStatus)
	assert.Equal(t, models.OrderStatusShipped, intents[0].NewStatus)

	// Same label again: idempotent, no second notification.
	_, changed, err = SetStatus(db, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.False(t, changed)
	var count int64
	db.Model(&models.NotificationIntent{}).
		Where("kind = ?", models.NotificationStatusChange).Count(&count)
	assert.EqualValues(t, 1, count)

	// No transition graph: delivered back to pending is accepted.
	_, changed, err = SetStatus(db, order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, changed)
	_, changed, err = SetStatus(db, order.ID, models.OrderStatusPending)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestSetStatusUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	_, _, err := SetStatus(db, 9999, models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestParseOrderStatus(t *testing.T) {
	for _, label := range []string{"pending", "processing", "shipped", "delivered", "canceled"} {
		status, err := models.ParseOrderStatus(label)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatus(label), status)
	}
	_, err := models.ParseOrderStatus("returned")
	require.ErrorIs(t, err, models.ErrInvalidOrderStatus)
}
