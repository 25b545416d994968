package stores

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/yeremiapane/lunch-voting-app/models"
	"gorm.io/gorm"
)

// CatalogStore holds restaurants and their daily menus.
type CatalogStore struct {
	DB *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{DB: db}
}

// MenuWithRestaurant is one row of a menus-joined-to-restaurants query.
type MenuWithRestaurant struct {
	RestaurantID   uint            `gorm:"column:restaurant_id" json:"restaurant_id"`
	RestaurantName string          `gorm:"column:restaurant_name" json:"restaurant_name"`
	MenuID         uint            `gorm:"column:menu_id" json:"menu_id"`
	Items          json.RawMessage `gorm:"column:items" json:"items"`
}

// AddRestaurant creates a restaurant. Names are not unique; two branches of
// the same chain are two rows.
func (s *CatalogStore) AddRestaurant(name string) (*models.Restaurant, error) {
	restaurant := models.Restaurant{Name: name}
	if err := s.DB.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// UploadMenu stores a menu for an existing restaurant, dated with the
// server's current date. The client never supplies the date.
func (s *CatalogStore) UploadMenu(restaurantID uint, items json.RawMessage) (*models.Menu, error) {
	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	menu := models.Menu{
		RestaurantID: restaurant.ID,
		Date:         Today(),
	}
	if err := menu.SetItems(items); err != nil {
		return nil, err
	}
	if err := s.DB.Create(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// MenusForDate returns every menu dated date, from any restaurant, paired
// with the owning restaurant's identity.
func (s *CatalogStore) MenusForDate(date string) ([]MenuWithRestaurant, error) {
	var rows []MenuWithRestaurant
	err := s.DB.Table("menus").
		Select("restaurants.id AS restaurant_id, restaurants.name AS restaurant_name, menus.id AS menu_id, menus.items AS items").
		Joins("JOIN restaurants ON restaurants.id = menus.restaurant_id").
		Where("menus.date = ?", date).
		Order("menus.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Today formats the server's current date in the menu date layout.
func Today() string {
	return time.Now().Format(models.DateLayout)
}
