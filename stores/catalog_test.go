package stores_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/lunch-voting-app/models"
	"github.com/yeremiapane/lunch-voting-app/stores"
)

func TestAddRestaurant(t *testing.T) {
	db := setupTestDB(t)
	catalog := stores.NewCatalogStore(db)

	first, err := catalog.AddRestaurant("Napoli Pizza")
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)

	// Names are not unique, both rows must exist.
	second, err := catalog.AddRestaurant("Napoli Pizza")
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUploadMenu(t *testing.T) {
	db := setupTestDB(t)
	catalog := stores.NewCatalogStore(db)

	restaurant, err := catalog.AddRestaurant("Soup Corner")
	assert.NoError(t, err)

	items := json.RawMessage(`[{"name":"Tomato soup","price":4.5}]`)
	menu, err := catalog.UploadMenu(restaurant.ID, items)
	assert.NoError(t, err)
	assert.Equal(t, restaurant.ID, menu.RestaurantID)
	assert.Equal(t, stores.Today(), menu.Date)
	assert.JSONEq(t, string(items), string(menu.ItemsJSON()))
}

func TestUploadMenuUnknownRestaurant(t *testing.T) {
	db := setupTestDB(t)
	catalog := stores.NewCatalogStore(db)

	_, err := catalog.UploadMenu(42, json.RawMessage(`["soup"]`))
	assert.ErrorIs(t, err, stores.ErrNotFound)
}

func TestUploadMenuRejectsInvalidItems(t *testing.T) {
	db := setupTestDB(t)
	catalog := stores.NewCatalogStore(db)

	restaurant, err := catalog.AddRestaurant("Broken Payload Bar")
	assert.NoError(t, err)

	_, err = catalog.UploadMenu(restaurant.ID, json.RawMessage(`{not json`))
	assert.Error(t, err)

	_, err = catalog.UploadMenu(restaurant.ID, nil)
	assert.Error(t, err)
}

func TestSameRestaurantTwoMenusSameDay(t *testing.T) {
	db := setupTestDB(t)
	catalog := stores.NewCatalogStore(db)

	restaurant, err := catalog.AddRestaurant("Double Lunch")
	assert.NoError(t, err)

	first, err := catalog.UploadMenu(restaurant.ID, json.RawMessage(`["meat"]`))
	assert.NoError(t, err)
	second, err := catalog.UploadMenu(restaurant.ID, json.RawMessage(`["veg"]`))
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	menus, err := catalog.MenusForDate(stores.Today())
	assert.NoError(t, err)
	assert.Len(t, menus, 2)
}

func TestMenusForDateScoping(t *testing.T) {
	db := setupTestDB(t)
	catalog := stores.NewCatalogStore(db)

	restaurant, err := catalog.AddRestaurant("Time Traveler Diner")
	assert.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	// Seed rows directly; UploadMenu always stamps today.
	for _, date := range []string{yesterday, stores.Today(), tomorrow} {
		menu := models.Menu{RestaurantID: restaurant.ID, Date: date, Items: `["dish"]`}
		assert.NoError(t, db.Create(&menu).Error)
	}

	menus, err := catalog.MenusForDate(stores.Today())
	assert.NoError(t, err)
	assert.Len(t, menus, 1)
	assert.Equal(t, restaurant.ID, menus[0].RestaurantID)
	assert.Equal(t, "Time Traveler Diner", menus[0].RestaurantName)
}
