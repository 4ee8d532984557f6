package cartControllers

import (
	"fmt"
	"strings"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	p := models.Product{
		Name:          name,
		NameEn:        name,
		Description:   "d",
		DescriptionEn: "d",
		Price:         decimal.RequireFromString("25.00"),
		CategoryID:    1,
		Image:         "img.jpg",
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestAddItemMergesDuplicates(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProduct(t, db, "shoes")

	first, err := AddItem(db, 1, p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := AddItem(db, 1, p.ID, 3)
	require.NoError(t, err)

	// Same line, summed quantity, never a duplicate row.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddItemSeparateLinesPerUser(t *testing.T) {
	db := setupTestDB(t)
	p := createTestProduct(t, db, "shoes")

	_, err := AddItem(db, 1, p.ID, 1)
	require.NoError(t, err)
	_, err = AddItem(db, 2, p.ID, 4)
	require.NoError(t, err)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddItem(db, 1, 9999, 1)
	require.ErrorIs(t, err, ErrProductNotFound)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
